package contract

import (
	"context"
	"time"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, profile *entity.Profile) error
	// UpdateColumns applies a partial column update without touching the rest
	// of the row (admin edits, image path swaps, status changes).
	UpdateColumns(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// MaxMemberId returns the highest assigned member id, or "" when no
	// profile exists yet.
	MaxMemberId(ctx context.Context) (string, error)
	// UpdateLastSeen is the hub's best-effort disconnect bookkeeping write.
	UpdateLastSeen(ctx context.Context, id uuid.UUID, seenAt time.Time) error
}
