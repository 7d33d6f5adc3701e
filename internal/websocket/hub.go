package websocket

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sitesafe-engine-go/internal/models"
)

// Hub maintains the set of active WebSocket subscribers and fans alert
// pushes out to them. Subscribers may join and leave at any time without
// blocking ingestion; a client whose send buffer fills up is dropped.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	logger     zerolog.Logger
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     log.With().Str("service", "websocket").Logger(),
	}
}

// Run processes register/unregister/broadcast events. Call in its own
// goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Debug().Str("remote", client.conn.RemoteAddr().String()).Msg("WebSocket client registered")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Debug().Str("remote", client.conn.RemoteAddr().String()).Msg("WebSocket client unregistered")

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Client is blocked or gone, drop it
					close(client.send)
					delete(h.clients, client)
					h.logger.Warn().Str("remote", client.conn.RemoteAddr().String()).Msg("WebSocket client send buffer full, removing")
				}
			}
			h.mu.Unlock()
		}
	}
}

// RegisterClient adds a new client to the hub
func (h *Hub) RegisterClient(client *Client) {
	h.register <- client
}

// BroadcastAlert pushes one feed alert to all connected clients
func (h *Hub) BroadcastAlert(alert models.Alert) {
	message, err := json.Marshal(map[string]interface{}{"type": "alert", "payload": alert})
	if err != nil {
		h.logger.Error().Err(err).Str("alert_id", alert.ID).Msg("Failed to encode alert for broadcast")
		return
	}

	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn().Str("alert_id", alert.ID).Msg("WebSocket broadcast queue full, dropping push")
	}
}

// BroadcastSnapshot pushes the full feed so a late joiner can replace
// its local view wholesale.
func (h *Hub) BroadcastSnapshot(alerts []models.Alert) {
	message, err := json.Marshal(map[string]interface{}{"type": "snapshot", "payload": alerts})
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode snapshot for broadcast")
		return
	}

	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn().Msg("WebSocket broadcast queue full, dropping snapshot")
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
