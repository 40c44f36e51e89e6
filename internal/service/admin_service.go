package service

import (
	"context"
	"fmt"
	"time"

	"viwahaa-be/internal/dto"
	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/pkg/logger"
	"viwahaa-be/internal/repository/specification"
	"viwahaa-be/internal/repository/unitofwork"

	"viwahaa-be/pkg/events"

	"github.com/google/uuid"
)

type IAdminService interface {
	// Profiles
	ListProfiles(ctx context.Context, search string) ([]*dto.ProfileResponse, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfileStatus(ctx context.Context, id uuid.UUID, status string) error
	PurgeProfile(ctx context.Context, id uuid.UUID) error

	// Interests
	ListInterests(ctx context.Context, search string) ([]*dto.InterestResponse, error)
	DeleteInterest(ctx context.Context, id uuid.UUID) error
	ListProfileInterests(ctx context.Context, search string) ([]*dto.ProfileInterestResponse, error)
	DeleteProfileInterest(ctx context.Context, id uuid.UUID) error

	// Bookings
	ListBookings(ctx context.Context, search string) ([]*dto.BookingResponse, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
	ProcessPayment(ctx context.Context, id uuid.UUID, income string) error
	UpdatePackagePlan(ctx context.Context, id uuid.UUID, plan string) error
	UpdateExpiry(ctx context.Context, id uuid.UUID, expDate string) error

	// Dashboard
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	GetLogs(level string, limit, offset int) ([]logger.LogEntry, error)
}

type adminService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher events.Publisher
	logger         logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, eventPublisher events.Publisher, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

var profileSearchFields = []string{"first_name", "last_name", "member_id", "email", "contact_no"}

func (s *adminService) ListProfiles(ctx context.Context, search string) ([]*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if search != "" {
		specs = append(specs, specification.SearchLike{Fields: profileSearchFields, Term: search})
	}

	profiles, err := uow.ProfileRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		res = append(res, ToProfileResponse(p))
	}
	return res, nil
}

func (s *adminService) GetProfile(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: profile %s", entity.ErrNotFound, id)
	}
	return ToProfileResponse(profile), nil
}

// UpdateProfileStatus flips a profile between single and fixed; a fixed
// profile stays listed but the front end marks the match as settled.
func (s *adminService) UpdateProfileStatus(ctx context.Context, id uuid.UUID, status string) error {
	if status != string(entity.ProfileStatusSingle) && status != string(entity.ProfileStatusFixed) {
		return fmt.Errorf("%w: status must be single or fixed", entity.ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProfileRepository().UpdateColumns(ctx, id, map[string]interface{}{"status": status}); err != nil {
		return err
	}

	publishAudit(ctx, s.eventPublisher, s.logger, "Admin", events.TypeProfileStatusSet, map[string]interface{}{
		"profile_id": id,
		"status":     status,
	})
	return nil
}

// PurgeProfile removes a customer and every dependent row in one
// transaction: bookings by customer id and profile-interest records by the
// member id others used to register interest.
func (s *adminService) PurgeProfile(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		uow.Rollback()
		return err
	}
	if profile == nil {
		uow.Rollback()
		return fmt.Errorf("%w: profile %s", entity.ErrNotFound, id)
	}

	if err := uow.BookingRepository().DeleteByCustomerId(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.ProfileInterestRepository().DeleteByProfileMemId(ctx, profile.MemberId); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.ProfileRepository().Delete(ctx, id); err != nil {
		uow.Rollback()
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	publishAudit(ctx, s.eventPublisher, s.logger, "Admin", events.TypeProfilePurged, map[string]interface{}{
		"profile_id": id,
		"member_id":  profile.MemberId,
	})
	return nil
}

func (s *adminService) ListInterests(ctx context.Context, search string) ([]*dto.InterestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if search != "" {
		specs = append(specs, specification.SearchLike{Fields: []string{"name", "email", "contact_no"}, Term: search})
	}

	interests, err := uow.InterestRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.InterestResponse, 0, len(interests))
	for _, i := range interests {
		res = append(res, &dto.InterestResponse{
			Id:        i.Id,
			Name:      i.Name,
			Email:     i.Email,
			ContactNo: i.ContactNo,
			Message:   i.Message,
			CreatedAt: i.CreatedAt,
		})
	}
	return res, nil
}

func (s *adminService) DeleteInterest(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.InterestRepository().Delete(ctx, id)
}

func (s *adminService) ListProfileInterests(ctx context.Context, search string) ([]*dto.ProfileInterestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if search != "" {
		specs = append(specs, specification.SearchLike{
			Fields: []string{"customer_name", "mem_id", "profile_name", "profile_mem_id"},
			Term:   search,
		})
	}

	interests, err := uow.ProfileInterestRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.ProfileInterestResponse, 0, len(interests))
	for _, i := range interests {
		res = append(res, &dto.ProfileInterestResponse{
			Id:           i.Id,
			CustomerName: i.CustomerName,
			MemId:        i.MemId,
			ProfileName:  i.ProfileName,
			ProfileMemId: i.ProfileMemId,
			ContactNo:    i.ContactNo,
			CreatedAt:    i.CreatedAt,
		})
	}
	return res, nil
}

func (s *adminService) DeleteProfileInterest(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProfileInterestRepository().Delete(ctx, id)
}

func (s *adminService) ListBookings(ctx context.Context, search string) ([]*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.OrderBy{Field: "created_at", Desc: true}}
	if search != "" {
		specs = append(specs, specification.SearchLike{Fields: []string{"package", "pay_type", "package_plan"}, Term: search})
	}

	bookings, err := uow.BookingRepository().FindAllWithCustomer(ctx, specs...)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		res = append(res, toBookingResponse(b))
	}
	return res, nil
}

func (s *adminService) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.BookingRepository().Delete(ctx, id)
}

// ProcessPayment settles an outstanding installment: the balance folds into
// install_amount and drops to zero.
func (s *adminService) ProcessPayment(ctx context.Context, id uuid.UUID, income string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.BookingRepository()

	booking, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if booking == nil {
		return fmt.Errorf("%w: booking %s", entity.ErrNotFound, id)
	}
	if booking.Balance <= 0 {
		return fmt.Errorf("%w: booking has no outstanding balance", entity.ErrValidation)
	}

	booking.InstallAmount += booking.Balance
	booking.Balance = 0
	if income != "" {
		booking.Income = income
	}

	if err := repo.Update(ctx, booking); err != nil {
		return err
	}

	publishAudit(ctx, s.eventPublisher, s.logger, "Admin", events.TypePaymentProcessed, map[string]interface{}{
		"booking_id": id,
		"amount":     booking.InstallAmount,
	})
	return nil
}

func (s *adminService) UpdatePackagePlan(ctx context.Context, id uuid.UUID, plan string) error {
	valid := false
	for _, p := range entity.PackagePlans {
		if p == plan {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: unknown package plan %q", entity.ErrValidation, plan)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.BookingRepository()

	booking, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if booking == nil {
		return fmt.Errorf("%w: booking %s", entity.ErrNotFound, id)
	}

	booking.PackagePlan = plan
	return repo.Update(ctx, booking)
}

func (s *adminService) UpdateExpiry(ctx context.Context, id uuid.UUID, expDate string) error {
	exp, err := time.Parse("2006-01-02", expDate)
	if err != nil {
		return fmt.Errorf("%w: exp_date must be YYYY-MM-DD", entity.ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.BookingRepository()

	booking, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if booking == nil {
		return fmt.Errorf("%w: booking %s", entity.ErrNotFound, id)
	}

	booking.ExpDate = &exp
	return repo.Update(ctx, booking)
}

func (s *adminService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profiles, err := uow.ProfileRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := uow.BookingRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	interests, err := uow.InterestRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	profileInterests, err := uow.ProfileInterestRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	earnings, err := uow.BookingRepository().TotalIncome(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalProfiles:         profiles,
		TotalBookings:         bookings,
		TotalInterests:        interests,
		TotalProfileInterests: profileInterests,
		TotalEarnings:         earnings,
	}, nil
}

func (s *adminService) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.logger.GetLogs(level, limit, offset)
}
