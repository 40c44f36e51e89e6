package websocket

import "encoding/json"

// Wire event names. Client-to-server and server-to-client events share the
// same envelope shape.
const (
	EventUserConnected  = "user_connected"
	EventJoinRoom       = "join_room"
	EventTyping         = "typing"
	EventDisplayTyping  = "display_typing"
	EventSendMessage    = "send_message"
	EventReceiveMessage = "receive_message"
)

// Envelope wraps every frame exchanged over the chat socket.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type ConnectedPayload struct {
	UserId string `json:"user_id"`
}

type JoinRoomPayload struct {
	RoomId string `json:"room_id"`
}

type TypingPayload struct {
	RoomId   string `json:"room_id"`
	SenderId string `json:"sender_id"`
}

// SendMessagePayload carries a chat message from the sender. All five fields
// are required; frames with any of them missing are dropped.
type SendMessagePayload struct {
	RoomId     string `json:"room_id"`
	SenderId   string `json:"sender_id"`
	ReceiverId string `json:"receiver_id"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
}

// ReceiveMessagePayload is the fan-out form of a persisted message. Id is
// assigned by the store, so receivers can reconcile with REST history.
type ReceiveMessagePayload struct {
	Id         string `json:"id"`
	RoomId     string `json:"room_id"`
	SenderId   string `json:"sender_id"`
	ReceiverId string `json:"receiver_id"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
}

func encodeEnvelope(event string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: raw})
}
