package contract

import (
	"context"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/repository/specification"
)

// MessageRepository is append-only: chat messages are never updated or
// deleted once written.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
