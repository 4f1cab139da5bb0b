package verification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leprive/internal/pkg/jwt"
	"leprive/internal/pkg/response"
)

const cookieName = "age_verified"

// Handler implements the age gate: confirming sets a signed cookie, status
// tells the front-end whether to show the gate. Absence of the cookie means
// the gate must be shown.
type Handler struct {
	tokens       *jwt.Service
	cookieMaxAge int
	cookieSecure bool
}

func NewHandler(tokens *jwt.Service, cookieMaxAge int, cookieSecure bool) *Handler {
	return &Handler{
		tokens:       tokens,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	age := rg.Group("/age-verification")
	{
		age.POST("/confirm", h.Confirm)
		age.GET("/status", h.Status)
	}
}

func (h *Handler) Confirm(c *gin.Context) {
	token, err := h.tokens.GenerateToken()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue verification token")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, token, h.cookieMaxAge, "/", "", h.cookieSecure, true)

	response.Success(c, http.StatusOK, gin.H{"verified": true})
}

func (h *Handler) Status(c *gin.Context) {
	token, err := c.Cookie(cookieName)
	if err != nil || token == "" {
		response.Success(c, http.StatusOK, gin.H{"verified": false})
		return
	}

	claims, err := h.tokens.ValidateToken(token)
	verified := err == nil && claims.AgeVerified

	response.Success(c, http.StatusOK, gin.H{"verified": verified})
}
