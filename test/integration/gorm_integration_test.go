package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/repository/specification"
	"viwahaa-be/internal/repository/unitofwork"
	"viwahaa-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ProfileRepository())
	assert.NotNil(t, uow.MessageRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check Profile Repository", func(t *testing.T) {
		count, err := uow.ProfileRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Profile count: %d", count)
	})

	t.Run("Check Booking Repository", func(t *testing.T) {
		count, err := uow.BookingRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Booking count: %d", count)
	})

	t.Run("Message Roundtrip", func(t *testing.T) {
		ctx := context.Background()
		sender := uuid.New()
		receiver := uuid.New()
		roomId := entity.RoomId(sender, receiver)

		msg := &entity.ChatMessage{
			RoomId:     roomId,
			SenderId:   sender,
			ReceiverId: receiver,
			Message:    "integration roundtrip",
			Timestamp:  time.Now().UTC().Truncate(time.Second),
		}
		require.NoError(t, uow.MessageRepository().Create(ctx, msg))
		require.NotEqual(t, uuid.Nil, msg.Id)

		history, err := uow.MessageRepository().FindAll(ctx,
			specification.ByRoom{RoomId: roomId},
			specification.OrderBy{Field: "timestamp", Desc: false},
		)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, msg.Id, history[0].Id)
		assert.Equal(t, "integration roundtrip", history[0].Message)

		// cleanup
		gormDB.Exec("DELETE FROM messages WHERE room_id = ?", roomId)
	})

	t.Run("Purge Rolls Back On Error", func(t *testing.T) {
		ctx := context.Background()
		txUow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, txUow.Begin(ctx))

		profile := &entity.Profile{
			MemberId:    "SM-IT01",
			FirstName:   "Rollback",
			Email:       "rollback-" + uuid.NewString() + "@example.com",
			DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			Status:      entity.ProfileStatusSingle,
		}
		require.NoError(t, txUow.ProfileRepository().Create(ctx, profile))
		require.NoError(t, txUow.Rollback())

		found, err := uow.ProfileRepository().FindOne(ctx, specification.ByEmail{Email: profile.Email})
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
