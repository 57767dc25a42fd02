package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"hotel-chatbot-be/internal/dto"
	"hotel-chatbot-be/internal/pkg/logger"

	"github.com/patrickmn/go-cache"
)

const lastSnapshotKey = "stats:last"

// Hub fans stats snapshots out to the connected admin dashboards. Delivery
// is fire-and-forget: a client whose send buffer is full gets dropped.
type Hub struct {
	// Registered dashboard clients
	clients map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Holds the most recent stats payload so a freshly connected
	// dashboard sees current numbers without waiting for the next chat
	// turn.
	snapshot *cache.Cache

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		snapshot:   cache.New(cache.NoExpiration, 10*time.Minute),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "Dashboard client registered", nil)

			// Replay the last snapshot so the dashboard renders
			// immediately.
			if data, found := h.snapshot.Get(lastSnapshotKey); found {
				if payload, ok := data.([]byte); ok {
					select {
					case client.Send <- payload:
					default:
					}
				}
			}

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.logger.Info("Hub", "Dashboard client unregistered", nil)
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastStats pushes a stats snapshot to every connected dashboard.
func (h *Hub) BroadcastStats(stats *dto.ChatStats) {
	data, err := json.Marshal(map[string]interface{}{
		"type": "statsUpdate",
		"data": stats,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal stats broadcast", map[string]interface{}{"error": err.Error()})
		return
	}

	h.snapshot.Set(lastSnapshotKey, data, cache.NoExpiration)

	var slow []*Client
	h.mu.RLock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			// Slow client; drop it rather than block the publisher.
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.unregister <- client
	}
}

// ClientCount reports connected dashboards, used by tests and logging.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
