package service

import (
	"context"
	"fmt"

	"viwahaa-be/internal/dto"
	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/repository/specification"
	"viwahaa-be/internal/repository/unitofwork"
	"viwahaa-be/internal/websocket"

	"github.com/google/uuid"
)

type IChatService interface {
	GetRoomHistory(ctx context.Context, roomId string) ([]*dto.ChatMessageResponse, error)
	GetHistoryWith(ctx context.Context, userId, peerId uuid.UUID) ([]*dto.ChatMessageResponse, error)
	GetPresence(ctx context.Context, userId uuid.UUID) (*dto.PresenceResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	presence   websocket.Presence
}

func NewChatService(uowFactory unitofwork.RepositoryFactory, presence websocket.Presence) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		presence:   presence,
	}
}

// GetRoomHistory returns a room's messages oldest first, matching the order
// the hub delivered them in.
func (s *chatService) GetRoomHistory(ctx context.Context, roomId string) ([]*dto.ChatMessageResponse, error) {
	if roomId == "" {
		return nil, fmt.Errorf("%w: room_id is required", entity.ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByRoom{RoomId: roomId},
		specification.OrderBy{Field: "timestamp", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		res = append(res, &dto.ChatMessageResponse{
			Id:         m.Id,
			RoomId:     m.RoomId,
			SenderId:   m.SenderId,
			ReceiverId: m.ReceiverId,
			Message:    m.Message,
			Timestamp:  m.Timestamp,
		})
	}
	return res, nil
}

// GetHistoryWith derives the pair's room id so callers never compute it
// client-side.
func (s *chatService) GetHistoryWith(ctx context.Context, userId, peerId uuid.UUID) ([]*dto.ChatMessageResponse, error) {
	return s.GetRoomHistory(ctx, entity.RoomId(userId, peerId))
}

func (s *chatService) GetPresence(ctx context.Context, userId uuid.UUID) (*dto.PresenceResponse, error) {
	if _, online := s.presence.Get(userId); online {
		return &dto.PresenceResponse{UserId: userId, Online: true}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: profile %s", entity.ErrNotFound, userId)
	}
	return &dto.PresenceResponse{UserId: userId, Online: false, LastSeen: profile.LastSeen}, nil
}
