package content

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	core "leprive/internal/content"
	"leprive/internal/pkg/response"
)

// Handler serves hydrated content slices to the front-end and the websocket
// channel that announces section refreshes.
type Handler struct {
	registry      *core.Registry
	hub           *core.Hub
	defaultLocale string
	upgrader      websocket.Upgrader
}

func NewHandler(registry *core.Registry, hub *core.Hub, defaultLocale string) *Handler {
	return &Handler{
		registry:      registry,
		hub:           hub,
		defaultLocale: defaultLocale,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser origin checks are handled by the CORS middleware.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	contentGroup := rg.Group("/content")
	{
		contentGroup.GET("/sections", h.Sections)
		contentGroup.GET("/updates", h.Subscribe)
		contentGroup.GET("/:section", h.GetSection)
	}
}

func (h *Handler) Sections(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"sections": core.Sections()})
}

// GetSection hydrates one section for the requested locale. A CMS failure is
// never surfaced here; the caller gets the defaults or the last good slice.
func (h *Handler) GetSection(c *gin.Context) {
	section := c.Param("section")
	locale := c.DefaultQuery("locale", h.defaultLocale)

	slice, ok := h.registry.Load(c.Request.Context(), section, locale)
	if !ok {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Unknown content section")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"section": section,
		"locale":  locale,
		"content": slice,
	})
}

// Subscribe upgrades to a websocket that receives RefreshEvents whenever a
// section picks up new managed content.
func (h *Handler) Subscribe(c *gin.Context) {
	clientID := c.GetHeader("X-Client-ID")
	if clientID == "" {
		clientID = c.Query("client_id")
	}
	if clientID == "" {
		clientID = uuid.NewString()
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Register(clientID, conn)

	// Reader loop only to detect the close; subscribers never send.
	go func() {
		defer h.hub.Unregister(clientID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
