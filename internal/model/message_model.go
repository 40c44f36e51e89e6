package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Message struct {
	Id         uuid.UUID `gorm:"type:char(36);primaryKey"`
	RoomId     string    `gorm:"type:varchar(80);not null;index"`
	SenderId   uuid.UUID `gorm:"type:char(36);not null"`
	ReceiverId uuid.UUID `gorm:"type:char(36);not null"`
	Message    string    `gorm:"type:text;not null"`
	Timestamp  time.Time `gorm:"not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	return nil
}
