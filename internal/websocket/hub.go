package websocket

import (
	"context"
	"encoding/json"
	"time"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/pkg/logger"
	"viwahaa-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	persistTimeout  = 5 * time.Second
	lastSeenTimeout = 5 * time.Second

	// Redis channel for relaying room traffic between instances.
	relayChannel = "chat_events"
)

// Presence tracks which connection currently speaks for a user. The hub owns
// the only writer; readers (REST presence lookups) go through the same
// registry instance.
type Presence interface {
	Set(userID uuid.UUID, connID uuid.UUID)
	RemoveIfCurrent(userID uuid.UUID, connID uuid.UUID) bool
	Get(userID uuid.UUID) (uuid.UUID, bool)
}

type inboundEvent struct {
	client   *Client
	envelope Envelope
}

// Hub owns all chat connection state. Every mutation goes through the Run
// loop, so room membership, presence writes and message fan-out are processed
// strictly in arrival order without locking.
type Hub struct {
	clients map[uuid.UUID]*Client            // connection id -> client
	rooms   map[string]map[uuid.UUID]*Client // room id -> connection id -> client

	register   chan *Client
	unregister chan *Client
	inbound    chan inboundEvent
	relay      chan relayPayload

	presence Presence
	messages contract.MessageRepository
	profiles contract.ProfileRepository

	// instanceID filters out our own relay publications.
	instanceID uuid.UUID
	rdb        *redis.Client
	logger     logger.ILogger
}

func NewHub(
	presence Presence,
	messages contract.MessageRepository,
	profiles contract.ProfileRepository,
	rdb *redis.Client,
	log logger.ILogger,
) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		rooms:      make(map[string]map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan inboundEvent, 64),
		relay:      make(chan relayPayload, 64),
		presence:   presence,
		messages:   messages,
		profiles:   profiles,
		instanceID: uuid.New(),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRelay()
	}

	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)
		case client := <-h.unregister:
			h.handleUnregister(client)
		case ev := <-h.inbound:
			h.dispatch(ev.client, ev.envelope)
		case p := <-h.relay:
			h.broadcastToRoom(p.RoomId, p.Message, nil)
		}
	}
}

func (h *Hub) dispatch(c *Client, env Envelope) {
	switch env.Event {
	case EventUserConnected:
		h.handleConnected(c)
	case EventJoinRoom:
		var p JoinRoomPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			h.logger.Warn("ChatHub", "Malformed join_room payload", map[string]interface{}{"user_id": c.UserID, "error": err.Error()})
			return
		}
		h.handleJoin(c, p)
	case EventTyping:
		var p TypingPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			h.logger.Warn("ChatHub", "Malformed typing payload", map[string]interface{}{"user_id": c.UserID, "error": err.Error()})
			return
		}
		h.handleTyping(c, p)
	case EventSendMessage:
		var p SendMessagePayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			h.logger.Warn("ChatHub", "Malformed send_message payload", map[string]interface{}{"user_id": c.UserID, "error": err.Error()})
			return
		}
		h.handleSend(c, p)
	default:
		h.logger.Warn("ChatHub", "Unknown event", map[string]interface{}{"event": env.Event, "user_id": c.UserID})
	}
}

func (h *Hub) handleRegister(c *Client) {
	h.clients[c.Id] = c
	h.logger.Info("ChatHub", "Client registered", map[string]interface{}{"user_id": c.UserID, "conn_id": c.Id})
}

// handleConnected marks the user online. A newer connection for the same user
// simply overwrites the presence entry (last writer wins).
func (h *Hub) handleConnected(c *Client) {
	h.presence.Set(c.UserID, c.Id)
	h.logger.Info("ChatHub", "User online", map[string]interface{}{"user_id": c.UserID})
}

// handleJoin is idempotent: joining a room the client is already in is a
// no-op, not an error.
func (h *Hub) handleJoin(c *Client, p JoinRoomPayload) {
	if p.RoomId == "" {
		return
	}
	members, ok := h.rooms[p.RoomId]
	if !ok {
		members = make(map[uuid.UUID]*Client)
		h.rooms[p.RoomId] = members
	}
	if _, joined := members[c.Id]; joined {
		return
	}
	members[c.Id] = c
	c.rooms[p.RoomId] = struct{}{}
	h.logger.Info("ChatHub", "Joined room", map[string]interface{}{"user_id": c.UserID, "room_id": p.RoomId})
}

// handleTyping relays a typing indicator to everyone else in the room. The
// sender is excluded; nothing is persisted.
func (h *Hub) handleTyping(c *Client, p TypingPayload) {
	if p.RoomId == "" {
		return
	}
	data, err := encodeEnvelope(EventDisplayTyping, TypingPayload{RoomId: p.RoomId, SenderId: p.SenderId})
	if err != nil {
		return
	}
	h.broadcastToRoom(p.RoomId, data, c)
	h.publishToRelay(p.RoomId, data)
}

// handleSend persists the message first, then fans it out to every member of
// the room, including the sender. If the write fails nothing is broadcast, so
// a delivered message is always a stored message.
func (h *Hub) handleSend(c *Client, p SendMessagePayload) {
	if p.RoomId == "" || p.SenderId == "" || p.ReceiverId == "" || p.Message == "" || p.Timestamp == "" {
		h.logger.Warn("ChatHub", "Dropping send_message with missing fields", map[string]interface{}{
			"user_id": c.UserID,
			"room_id": p.RoomId,
		})
		return
	}

	senderID, err := uuid.Parse(p.SenderId)
	if err != nil {
		h.logger.Warn("ChatHub", "Invalid sender id", map[string]interface{}{"sender_id": p.SenderId})
		return
	}
	receiverID, err := uuid.Parse(p.ReceiverId)
	if err != nil {
		h.logger.Warn("ChatHub", "Invalid receiver id", map[string]interface{}{"receiver_id": p.ReceiverId})
		return
	}
	ts, err := time.Parse(time.RFC3339, p.Timestamp)
	if err != nil {
		h.logger.Warn("ChatHub", "Invalid timestamp", map[string]interface{}{"timestamp": p.Timestamp})
		return
	}

	message := &entity.ChatMessage{
		RoomId:     p.RoomId,
		SenderId:   senderID,
		ReceiverId: receiverID,
		Message:    p.Message,
		Timestamp:  ts,
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := h.messages.Create(ctx, message); err != nil {
		h.logger.Error("ChatHub", "Failed to persist message, broadcast skipped", map[string]interface{}{
			"room_id": p.RoomId,
			"error":   err.Error(),
		})
		return
	}

	data, err := encodeEnvelope(EventReceiveMessage, ReceiveMessagePayload{
		Id:         message.Id.String(),
		RoomId:     p.RoomId,
		SenderId:   p.SenderId,
		ReceiverId: p.ReceiverId,
		Message:    p.Message,
		Timestamp:  p.Timestamp,
	})
	if err != nil {
		return
	}
	h.broadcastToRoom(p.RoomId, data, nil)
	h.publishToRelay(p.RoomId, data)
}

func (h *Hub) handleUnregister(c *Client) {
	if _, ok := h.clients[c.Id]; !ok {
		return
	}
	delete(h.clients, c.Id)
	for roomID := range c.rooms {
		if members, ok := h.rooms[roomID]; ok {
			delete(members, c.Id)
			if len(members) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
	close(c.Send)

	// A stale disconnect from a replaced connection must not evict the newer
	// one, and its last_seen write is skipped entirely.
	if h.presence.RemoveIfCurrent(c.UserID, c.Id) {
		go h.recordLastSeen(c.UserID)
	}
	h.logger.Info("ChatHub", "Client unregistered", map[string]interface{}{"user_id": c.UserID, "conn_id": c.Id})
}

// recordLastSeen is best effort: a failed write leaves last_seen stale but
// never disturbs the hub.
func (h *Hub) recordLastSeen(userID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), lastSeenTimeout)
	defer cancel()
	if err := h.profiles.UpdateLastSeen(ctx, userID, time.Now()); err != nil {
		h.logger.Error("ChatHub", "Failed to update last_seen", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}

func (h *Hub) broadcastToRoom(roomID string, data []byte, except *Client) {
	for _, client := range h.rooms[roomID] {
		if client == except {
			continue
		}
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("ChatHub", "Send buffer full, dropping client", map[string]interface{}{"user_id": client.UserID})
			h.handleUnregister(client)
		}
	}
}

type relayPayload struct {
	Origin  string          `json:"origin"`
	RoomId  string          `json:"room_id"`
	Message json.RawMessage `json:"message"`
}

func (h *Hub) publishToRelay(roomID string, data []byte) {
	if h.rdb == nil {
		return
	}
	payload, err := json.Marshal(relayPayload{
		Origin:  h.instanceID.String(),
		RoomId:  roomID,
		Message: data,
	})
	if err != nil {
		return
	}
	if err := h.rdb.Publish(context.Background(), relayChannel, payload).Err(); err != nil {
		h.logger.Warn("ChatHub", "Relay publish failed", map[string]interface{}{"error": err.Error()})
	}
}

// subscribeToRelay delivers room traffic published by other instances to the
// members connected here. Our own publications are filtered by origin id.
func (h *Hub) subscribeToRelay() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, relayChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload relayPayload
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("ChatHub", "Malformed relay payload", map[string]interface{}{"error": err.Error()})
			continue
		}
		if payload.Origin == h.instanceID.String() {
			continue
		}
		h.relay <- payload
	}
}
