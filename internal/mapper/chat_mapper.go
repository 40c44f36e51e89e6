package mapper

import (
	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(msg *model.Message) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:         msg.Id,
		RoomId:     msg.RoomId,
		SenderId:   msg.SenderId,
		ReceiverId: msg.ReceiverId,
		Message:    msg.Message,
		Timestamp:  msg.Timestamp,
		CreatedAt:  msg.CreatedAt,
	}
}

func (m *ChatMapper) ToModel(msg *entity.ChatMessage) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:         msg.Id,
		RoomId:     msg.RoomId,
		SenderId:   msg.SenderId,
		ReceiverId: msg.ReceiverId,
		Message:    msg.Message,
		Timestamp:  msg.Timestamp,
		CreatedAt:  msg.CreatedAt,
	}
}
