package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessageResponse struct {
	Id         uuid.UUID `json:"id"`
	RoomId     string    `json:"room_id"`
	SenderId   uuid.UUID `json:"sender_id"`
	ReceiverId uuid.UUID `json:"receiver_id"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

type PresenceResponse struct {
	UserId   uuid.UUID  `json:"user_id"`
	Online   bool       `json:"online"`
	LastSeen *time.Time `json:"last_seen,omitempty"`
}
