package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ChatMessage is immutable once persisted; the hub writes it exactly once on
// behalf of the sender.
type ChatMessage struct {
	Id         uuid.UUID
	RoomId     string
	SenderId   uuid.UUID
	ReceiverId uuid.UUID
	Message    string
	Timestamp  time.Time
	CreatedAt  time.Time
}

// RoomId derives the chat room identifier for a participant pair. The smaller
// id (by string order) always comes first, so both sides compute the same room.
func RoomId(a, b uuid.UUID) string {
	as, bs := a.String(), b.String()
	if strings.Compare(as, bs) > 0 {
		as, bs = bs, as
	}
	return as + "_" + bs
}
