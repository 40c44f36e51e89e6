package websocket

import (
	"encoding/json"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Client binds one websocket connection to the hub. Its room set is owned by
// the hub loop; the client goroutines never touch it.
type Client struct {
	Hub *Hub

	Conn *websocket.Conn

	// Id identifies the connection, UserID the authenticated profile behind
	// it. One user opening a second tab produces a second Client.
	Id     uuid.UUID
	UserID uuid.UUID

	// Buffered channel of outbound frames.
	Send chan []byte

	rooms map[string]struct{}
}

// readPump decodes inbound frames and forwards them to the hub loop.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.Hub.logger.Warn("ChatHub", "Unexpected close", map[string]interface{}{"user_id": c.UserID, "error": err.Error()})
			}
			break
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.Hub.logger.Warn("ChatHub", "Malformed frame", map[string]interface{}{"user_id": c.UserID, "error": err.Error()})
			continue
		}
		c.Hub.inbound <- inboundEvent{client: c, envelope: env}
	}
}

// writePump drains the Send channel onto the connection and keeps the peer
// alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
