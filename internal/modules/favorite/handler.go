package favorite

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leprive/internal/pkg/response"
)

// Handler exposes the liked set. State is per client id, in memory only.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.List)
		favorites.POST("/:listingId/toggle", h.Toggle)
		favorites.GET("/:listingId/check", h.Check)
	}
}

func clientID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-Client-ID")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_CLIENT_ID", "X-Client-ID header is required")
		return "", false
	}
	return id, true
}

func listingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("listingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid listing id")
		return 0, false
	}
	return id, true
}

func (h *Handler) List(c *gin.Context) {
	client, ok := clientID(c)
	if !ok {
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Liked: h.store.List(client)})
}

func (h *Handler) Toggle(c *gin.Context) {
	client, ok := clientID(c)
	if !ok {
		return
	}
	listing, ok := listingID(c)
	if !ok {
		return
	}

	liked := h.store.Toggle(client, listing)
	response.Success(c, http.StatusOK, ToggleResponse{ListingID: listing, Liked: liked})
}

func (h *Handler) Check(c *gin.Context) {
	client, ok := clientID(c)
	if !ok {
		return
	}
	listing, ok := listingID(c)
	if !ok {
		return
	}

	response.Success(c, http.StatusOK, CheckResponse{IsLiked: h.store.IsLiked(client, listing)})
}
