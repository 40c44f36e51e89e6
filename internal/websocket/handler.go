package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches an upgraded connection to the hub. The user id comes from
// the authenticated upgrade request, never from the client payload.
func ServeWs(hub *Hub, conn *websocket.Conn, userID uuid.UUID) {
	client := &Client{
		Hub:    hub,
		Conn:   conn,
		Id:     uuid.New(),
		UserID: userID,
		Send:   make(chan []byte, 256),
		rooms:  make(map[string]struct{}),
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
