package handlers

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/wonny/stabrank/internal/contracts"
	"github.com/wonny/stabrank/pkg/logger"
)

// Hub broadcasts freshly computed summaries to websocket subscribers.
// The scheduler publishes here after every watch refresh.
// ⭐ SSOT: 실시간 요약 브로드캐스트는 여기서만
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]bool
	logger  *logger.Logger
}

// NewHub creates a new broadcast hub
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		logger:  log,
	}
}

// Publish sends a summary to every connected client. Clients that fail
// to receive are dropped.
func (h *Hub) Publish(summary *contracts.Summary) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(summary); err != nil {
			h.logger.WithError(err).Debug("Dropping live client")
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Subscribers returns the current client count
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// LiveHandler upgrades clients onto the summary broadcast hub
type LiveHandler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *logger.Logger
}

// NewLiveHandler creates a new live handler
func NewLiveHandler(hub *Hub, log *logger.Logger) *LiveHandler {
	return &LiveHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: log,
	}
}

// Serve upgrades the connection and keeps it registered until closed.
// GET /api/live
func (h *LiveHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}

	h.hub.mu.Lock()
	h.hub.clients[conn] = true
	h.hub.mu.Unlock()
	h.logger.WithField("subscribers", h.hub.Subscribers()).Debug("Live client connected")

	// Read loop exists only to notice the client going away.
	go func() {
		defer func() {
			h.hub.mu.Lock()
			delete(h.hub.clients, conn)
			h.hub.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
