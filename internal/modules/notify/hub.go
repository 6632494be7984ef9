package notify

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks one live websocket per user for pushing booking events.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{connections: make(map[int64]*websocket.Conn)}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, ok := h.connections[userID]; ok && old != nil {
		_ = old.Close()
	}
	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, ok := h.connections[userID]; ok && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

// Push delivers an event to one user if they are connected. Best effort:
// a dead connection is dropped, never retried.
func (h *Hub) Push(userID int64, event any) bool {
	h.mutex.RLock()
	conn, ok := h.connections[userID]
	h.mutex.RUnlock()

	if !ok || conn == nil {
		return false
	}
	if err := conn.WriteJSON(event); err != nil {
		h.Unregister(userID)
		return false
	}
	return true
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}
