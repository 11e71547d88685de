package handlers

import (
	"net/http"

	"marketplace-service/internal/websocket"

	"github.com/gin-gonic/gin"
)

type WSHandler struct {
	hub *websocket.Hub
}

func NewWSHandler(hub *websocket.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// HandleWebSocket godoc
// @Summary WebSocket connection
// @Description Upgrade to the shared realtime connection. Identity is asserted afterwards with an auth envelope.
// @Tags websocket
// @Success 101 "Switching Protocols - WebSocket connection established"
// @Failure 400 "Not a websocket handshake"
// @Router /ws [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	h.hub.ServeWS(c.Writer, c.Request)
}

// GetStats godoc
// @Summary Realtime layer counters
// @Tags websocket
// @Produce json
// @Success 200 {object} websocket.Stats "Connection and routing counters"
// @Router /ws/stats [get]
func (h *WSHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.hub.Stats())
}
