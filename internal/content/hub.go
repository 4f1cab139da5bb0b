package content

import (
	"sync"

	"github.com/gorilla/websocket"
)

// RefreshEvent is pushed to connected pages when a section picks up new
// managed content, so they can re-render without polling.
type RefreshEvent struct {
	Section string `json:"section"`
	Locale  string `json:"locale"`
	Seq     uint64 `json:"seq"`
}

// Hub tracks websocket subscribers to content refreshes. One connection per
// client id; a reconnect replaces the previous socket.
type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(clientID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[clientID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[clientID] = conn
}

func (h *Hub) Unregister(clientID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[clientID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, clientID)
	}
}

// NotifyRefresh fans a refresh event out to every subscriber. Dead
// connections are dropped on write failure.
func (h *Hub) NotifyRefresh(section, locale string, seq uint64) {
	event := RefreshEvent{Section: section, Locale: locale, Seq: seq}

	h.mutex.RLock()
	conns := make(map[string]*websocket.Conn, len(h.connections))
	for id, c := range h.connections {
		conns[id] = c
	}
	h.mutex.RUnlock()

	for id, conn := range conns {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(event); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}
