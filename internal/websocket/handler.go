package websocket

import (
	"context"

	"voz-orientador-be/internal/pkg/logger"
	"voz-orientador-be/internal/service"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs runs a dialogue session over an accepted (already authenticated)
// websocket connection. It blocks until the session ends.
func ServeWs(hub *Hub, conn *websocket.Conn, sessions service.ISessionService, log logger.ILogger) {
	client := &Client{
		Hub:       hub,
		Conn:      conn,
		SessionID: uuid.New(),
		Send:      make(chan []byte, 16),
		sessions:  sessions,
		logger:    log,
	}
	client.Hub.register <- client

	go client.writePump()

	// Connection-open greeting; not a dialogue turn.
	client.queue(sessions.Welcome(context.Background(), client.SessionID.String()))

	client.readPump() // Run readPump in current goroutine (handler)
}
