package unitofwork

import (
	"context"

	"viwahaa-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProfileRepository() contract.ProfileRepository
	MessageRepository() contract.MessageRepository
	BookingRepository() contract.BookingRepository
	InterestRepository() contract.InterestRepository
	ProfileInterestRepository() contract.ProfileInterestRepository
	AdminUserRepository() contract.AdminUserRepository
}
