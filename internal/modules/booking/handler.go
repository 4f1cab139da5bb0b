package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"leprive/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	wizard := rg.Group("/booking/wizard")
	{
		wizard.POST("", h.OpenWizard)
		wizard.GET("", h.GetWizard)
		wizard.PATCH("/fields", h.SetFields)
		wizard.POST("/next", h.Next)
		wizard.POST("/previous", h.Previous)
		wizard.POST("/confirm", h.Confirm)
		wizard.DELETE("", h.CloseWizard)
	}
}

// clientID identifies the browser instance holding the wizard. The front-end
// generates it once and sends it on every call.
func clientID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-Client-ID")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_CLIENT_ID", "X-Client-ID header is required")
		return "", false
	}
	return id, true
}

func (h *Handler) OpenWizard(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	var req OpenWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess, err := h.service.OpenWizard(c.Request.Context(), id, req.CompanionID)
	if err != nil {
		if errors.Is(err, ErrListingNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Companion not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to open booking wizard")
		return
	}

	response.Success(c, http.StatusCreated, ToWizardStateResponse(sess, nil))
}

func (h *Handler) GetWizard(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	sess, err := h.service.GetWizard(id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NO_SESSION", "No open booking wizard")
		return
	}

	response.Success(c, http.StatusOK, ToWizardStateResponse(sess, nil))
}

func (h *Handler) SetFields(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	var req SetFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess, fieldErrs, err := h.service.SetFields(id, req.Fields)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NO_SESSION", "No open booking wizard")
		return
	}

	response.Success(c, http.StatusOK, ToWizardStateResponse(sess, fieldErrs))
}

func (h *Handler) Next(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	sess, fieldErrs, err := h.service.Next(id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NO_SESSION", "No open booking wizard")
		return
	}

	status := http.StatusOK
	if len(fieldErrs) > 0 {
		// The transition is refused until the step's errors are cleared.
		status = http.StatusUnprocessableEntity
	}
	response.Success(c, status, ToWizardStateResponse(sess, fieldErrs))
}

func (h *Handler) Previous(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	sess, err := h.service.Previous(id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NO_SESSION", "No open booking wizard")
		return
	}

	response.Success(c, http.StatusOK, ToWizardStateResponse(sess, nil))
}

func (h *Handler) Confirm(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	conf, fieldErrs, err := h.service.Confirm(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoSession):
			response.Error(c, http.StatusNotFound, "NO_SESSION", "No open booking wizard")
		case errors.Is(err, ErrNotOnConfirmStep):
			response.Error(c, http.StatusConflict, "WRONG_STEP", "Wizard is not on the confirmation step")
		case errors.Is(err, ErrValidationFailed):
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_FAILED",
				"Booking draft is incomplete", fieldErrs)
		case errors.Is(err, ErrSlotUnavailable):
			response.Error(c, http.StatusConflict, "SLOT_UNAVAILABLE",
				"The selected date and time is no longer available")
		case errors.Is(err, ErrListingNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Companion not found")
		default:
			response.Error(c, http.StatusBadGateway, "NETWORK_ERROR", "Failed to submit booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, conf)
}

func (h *Handler) CloseWizard(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	h.service.CloseWizard(id)
	c.Status(http.StatusNoContent)
}
