package service

import (
	"context"
	"errors"
	"testing"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurgeProfileDeletesEverythingInOneTransaction(t *testing.T) {
	profileId := uuid.New()
	profiles := &stubProfileRepo{
		findOne: func(specs ...specification.Specification) (*entity.Profile, error) {
			return &entity.Profile{Id: profileId, MemberId: "SM-0007"}, nil
		},
	}
	bookings := &stubBookingRepo{}
	profileInterests := &stubProfileInterestRepo{}
	uow := &stubUnitOfWork{profiles: profiles, bookings: bookings, profileInterests: profileInterests}

	svc := NewAdminService(&stubFactory{uow: uow}, nil, noopLogger{})

	require.NoError(t, svc.PurgeProfile(context.Background(), profileId))

	assert.Equal(t, []uuid.UUID{profileId}, bookings.deletedByCustomer)
	assert.Equal(t, []string{"SM-0007"}, profileInterests.deletedByMemberId)
	assert.Equal(t, []uuid.UUID{profileId}, profiles.deleted)
	assert.Equal(t, 1, uow.beganCount)
	assert.Equal(t, 1, uow.committedCount)
	assert.Zero(t, uow.rolledBackCount)
}

func TestPurgeProfileUnknownRollsBack(t *testing.T) {
	uow := &stubUnitOfWork{
		profiles:         &stubProfileRepo{},
		bookings:         &stubBookingRepo{},
		profileInterests: &stubProfileInterestRepo{},
	}
	svc := NewAdminService(&stubFactory{uow: uow}, nil, noopLogger{})

	err := svc.PurgeProfile(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrNotFound))
	assert.Equal(t, 1, uow.rolledBackCount)
	assert.Zero(t, uow.committedCount)
	assert.Empty(t, uow.bookings.deletedByCustomer)
}

func TestUpdateProfileStatusRejectsUnknownStatus(t *testing.T) {
	uow := &stubUnitOfWork{profiles: &stubProfileRepo{}}
	svc := NewAdminService(&stubFactory{uow: uow}, nil, noopLogger{})

	err := svc.UpdateProfileStatus(context.Background(), uuid.New(), "married")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))
}

func TestProcessPaymentFoldsBalance(t *testing.T) {
	booking := &entity.Booking{
		Id:            uuid.New(),
		Amount:        30000,
		InstallAmount: 10000,
		Balance:       20000,
	}
	bookings := &stubBookingRepo{
		findOne: func(specs ...specification.Specification) (*entity.Booking, error) {
			return booking, nil
		},
	}
	uow := &stubUnitOfWork{bookings: bookings}
	svc := NewAdminService(&stubFactory{uow: uow}, nil, noopLogger{})

	require.NoError(t, svc.ProcessPayment(context.Background(), booking.Id, "bank transfer"))

	assert.Equal(t, 30000.0, booking.InstallAmount)
	assert.Equal(t, 0.0, booking.Balance)
	assert.Equal(t, "bank transfer", booking.Income)
	require.Len(t, bookings.updated, 1)
}

func TestProcessPaymentNoBalance(t *testing.T) {
	booking := &entity.Booking{Id: uuid.New(), Amount: 30000, InstallAmount: 30000, Balance: 0}
	bookings := &stubBookingRepo{
		findOne: func(specs ...specification.Specification) (*entity.Booking, error) {
			return booking, nil
		},
	}
	svc := NewAdminService(&stubFactory{uow: &stubUnitOfWork{bookings: bookings}}, nil, noopLogger{})

	err := svc.ProcessPayment(context.Background(), booking.Id, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))
	assert.Empty(t, bookings.updated)
}

func TestUpdatePackagePlanValidatesTier(t *testing.T) {
	booking := &entity.Booking{Id: uuid.New()}
	bookings := &stubBookingRepo{
		findOne: func(specs ...specification.Specification) (*entity.Booking, error) {
			return booking, nil
		},
	}
	svc := NewAdminService(&stubFactory{uow: &stubUnitOfWork{bookings: bookings}}, nil, noopLogger{})

	err := svc.UpdatePackagePlan(context.Background(), booking.Id, "Diamond Plan")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrValidation))

	require.NoError(t, svc.UpdatePackagePlan(context.Background(), booking.Id, "Standard Plan"))
	assert.Equal(t, "Standard Plan", booking.PackagePlan)
}
