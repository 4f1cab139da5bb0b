package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leprive/internal/domain"
	"leprive/internal/pkg/response"
)

type Handler struct {
	service       *Service
	defaultLocale string
}

func NewHandler(service *Service, defaultLocale string) *Handler {
	return &Handler{service: service, defaultLocale: defaultLocale}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/companions", h.List)
	rg.GET("/companions/:id", h.GetByID)
}

// List returns the gallery. expanded=true is the "View All" toggle; without
// it the response holds the first three cards only.
func (h *Handler) List(c *gin.Context) {
	locale := c.DefaultQuery("locale", h.defaultLocale)
	expanded := c.Query("expanded") == "true"

	companions, total, err := h.service.List(c.Request.Context(), locale, expanded)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list companions")
		return
	}

	response.Success(c, http.StatusOK, ToListResponse(companions, total, expanded))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid companion id")
		return
	}

	companion, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Companion not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get companion")
		return
	}

	response.Success(c, http.StatusOK, companion)
}
