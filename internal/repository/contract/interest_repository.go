package contract

import (
	"context"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InterestRepository interface {
	Create(ctx context.Context, interest *entity.Interest) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ProfileInterestRepository interface {
	Create(ctx context.Context, interest *entity.ProfileInterest) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProfileMemId(ctx context.Context, memberId string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProfileInterest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProfileInterest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
