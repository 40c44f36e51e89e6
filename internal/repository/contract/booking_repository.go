package contract

import (
	"context"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCustomerId(ctx context.Context, customerId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Booking, error)
	// FindAllWithCustomer joins the customer columns used by admin listings.
	FindAllWithCustomer(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// TotalIncome sums the income column across all bookings.
	TotalIncome(ctx context.Context) (float64, error)
}
