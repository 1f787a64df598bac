package websocket

import (
	"context"
	"encoding/json"
	"time"

	"voz-orientador-be/internal/constant"
	"voz-orientador-be/internal/dto"
	"voz-orientador-be/internal/pkg/logger"
	"voz-orientador-be/internal/service"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4 * 1024 * 1024 // base64 WAV turns are large
)

// Client is a middleman between one websocket connection and its dialogue
// session. One inbound message is processed to completion before the next is
// read, so replies always leave in turn order.
type Client struct {
	Hub *Hub

	// The websocket connection.
	Conn *websocket.Conn

	// SessionID identifies this connection's dialogue state.
	SessionID uuid.UUID

	// Buffered channel of outbound messages.
	Send chan []byte

	sessions service.ISessionService
	logger   logger.ILogger
}

// readPump pumps messages from the websocket connection through the session
// service until the dialogue terminates or the peer goes away.
func (c *Client) readPump() {
	defer func() {
		c.sessions.CloseSession(c.SessionID.String())
		// Unregistering closes the send channel; the write pump flushes
		// whatever is queued (including a terminal farewell) and then
		// closes the connection itself.
		c.Hub.unregister <- c
	}()
	c.Conn.SetReadLimit(maxMessageSize)

	for {
		mt, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Warn("WS", "Read error", map[string]interface{}{"session_id": c.SessionID, "error": err.Error()})
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}
		if done := c.handleFrame(raw); done {
			return
		}
	}
}

// handleFrame runs one turn. A panic inside the turn is contained here: the
// session gets a generic terminal error reply and the connection closes, so
// one session's fault never reaches the hub or other sessions.
func (c *Client) handleFrame(raw []byte) (done bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("WS", "Panic in session turn", map[string]interface{}{"session_id": c.SessionID, "panic": r})
			c.queue(&dto.ServerReply{ReplyText: constant.ServerErrorSpeech, Done: true})
			done = true
		}
	}()

	reply, closeConn := c.sessions.HandleMessage(context.Background(), c.SessionID.String(), raw)
	if reply != nil {
		c.queue(reply)
	}
	return closeConn
}

// queue serializes a reply onto the send channel; the write pump drains it
// in order.
func (c *Client) queue(reply *dto.ServerReply) {
	data, err := json.Marshal(reply)
	if err != nil {
		c.logger.Error("WS", "Reply marshal failed", map[string]interface{}{"session_id": c.SessionID, "error": err.Error()})
		return
	}
	select {
	case c.Send <- data:
	default:
		c.logger.Warn("WS", "Send buffer full, dropping reply", map[string]interface{}{"session_id": c.SessionID})
	}
}

// writePump pumps queued replies to the websocket connection. Buffered
// replies are flushed before the closed-channel branch fires, so a terminal
// farewell always reaches the peer.
func (c *Client) writePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
		if !ok {
			// The hub closed the channel.
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}
