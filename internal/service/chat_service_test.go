package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/repository/memory"
	"viwahaa-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRoomHistoryRequiresRoomId(t *testing.T) {
	svc := NewChatService(&stubFactory{uow: &stubUnitOfWork{messages: &stubMessageRepo{}}}, memory.NewPresenceRegistry())

	_, err := svc.GetRoomHistory(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))
}

func TestGetHistoryWithDerivesRoomId(t *testing.T) {
	messages := &stubMessageRepo{}
	svc := NewChatService(&stubFactory{uow: &stubUnitOfWork{messages: messages}}, memory.NewPresenceRegistry())

	userId := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	peerId := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	_, err := svc.GetHistoryWith(context.Background(), userId, peerId)
	require.NoError(t, err)

	require.Len(t, messages.findAllSets, 1)
	byRoom, ok := messages.findAllSets[0][0].(specification.ByRoom)
	require.True(t, ok)
	assert.Equal(t, entity.RoomId(peerId, userId), byRoom.RoomId, "room id must not depend on argument order")
}

func TestGetPresenceOnline(t *testing.T) {
	presence := memory.NewPresenceRegistry()
	userId := uuid.New()
	presence.Set(userId, uuid.New())

	svc := NewChatService(&stubFactory{uow: &stubUnitOfWork{}}, presence)

	resp, err := svc.GetPresence(context.Background(), userId)
	require.NoError(t, err)
	assert.True(t, resp.Online)
	assert.Nil(t, resp.LastSeen)
}

func TestGetPresenceOfflineFallsBackToLastSeen(t *testing.T) {
	seen := time.Now().Add(-time.Hour)
	profiles := &stubProfileRepo{
		findOne: func(specs ...specification.Specification) (*entity.Profile, error) {
			return &entity.Profile{Id: uuid.New(), LastSeen: &seen}, nil
		},
	}
	svc := NewChatService(&stubFactory{uow: &stubUnitOfWork{profiles: profiles}}, memory.NewPresenceRegistry())

	resp, err := svc.GetPresence(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, resp.Online)
	require.NotNil(t, resp.LastSeen)
	assert.Equal(t, seen, *resp.LastSeen)
}

func TestGetPresenceUnknownUser(t *testing.T) {
	svc := NewChatService(&stubFactory{uow: &stubUnitOfWork{profiles: &stubProfileRepo{}}}, memory.NewPresenceRegistry())

	_, err := svc.GetPresence(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrNotFound))
}
