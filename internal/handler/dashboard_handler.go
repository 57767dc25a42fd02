package handler

import (
	"hotel-chatbot-be/internal/pkg/logger"
	internalWS "hotel-chatbot-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// DashboardHandler upgrades admin dashboard connections onto the stats hub.
type DashboardHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewDashboardHandler(hub *internalWS.Hub, log logger.ILogger) *DashboardHandler {
	return &DashboardHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *DashboardHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/ws", h.ServeWs)
}

// ServeWs handles websocket requests from the dashboard.
func (h *DashboardHandler) ServeWs(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("DashboardHandler", "Starting dashboard WebSocket session", nil)
			internalWS.ServeWs(h.hub, conn)
			h.logger.Info("DashboardHandler", "Dashboard WebSocket session ended", nil)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
