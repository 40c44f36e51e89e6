package service

import (
	"context"
	"fmt"
	"time"

	"viwahaa-be/internal/dto"
	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/repository/specification"
	"viwahaa-be/internal/repository/unitofwork"

	"viwahaa-be/pkg/events"

	"viwahaa-be/internal/pkg/logger"

	"github.com/google/uuid"
)

type IBookingService interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetLatestForCustomer(ctx context.Context, customerId uuid.UUID) (*dto.BookingResponse, error)
}

type bookingService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher events.Publisher
	logger         logger.ILogger
}

func NewBookingService(uowFactory unitofwork.RepositoryFactory, eventPublisher events.Publisher, log logger.ILogger) IBookingService {
	return &bookingService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// CreateBooking books a package at catalog price. Full payment settles the
// whole amount; an installment records the paid part and carries the rest as
// balance.
func (s *bookingService) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	amount, ok := entity.PackageAmounts[req.Package]
	if !ok {
		return nil, fmt.Errorf("%w: unknown package %q", entity.ErrValidation, req.Package)
	}

	customerId, err := uuid.Parse(req.CustomerId)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid customer_id", entity.ErrValidation)
	}

	booking := &entity.Booking{
		CustomerId:  customerId,
		Package:     req.Package,
		PayType:     entity.PayType(req.PayType),
		Amount:      amount,
		Income:      req.Income,
		ReciptImg:   req.ReciptImg,
		PackagePlan: req.PackagePlan,
	}

	switch booking.PayType {
	case entity.PayTypeFull:
		booking.InstallAmount = amount
		booking.Balance = 0
	case entity.PayTypeInstallment:
		if req.InstallAmount <= 0 || req.InstallAmount >= amount {
			return nil, fmt.Errorf("%w: install_amount must be between 0 and the package amount", entity.ErrValidation)
		}
		booking.InstallAmount = req.InstallAmount
		booking.Balance = amount - req.InstallAmount
	default:
		return nil, fmt.Errorf("%w: pay_type must be full or installment", entity.ErrValidation)
	}

	if req.ExpDate != "" {
		exp, err := time.Parse("2006-01-02", req.ExpDate)
		if err != nil {
			return nil, fmt.Errorf("%w: exp_date must be YYYY-MM-DD", entity.ErrValidation)
		}
		booking.ExpDate = &exp
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: customerId})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer %s", entity.ErrNotFound, customerId)
	}

	if err := uow.BookingRepository().Create(ctx, booking); err != nil {
		return nil, err
	}

	publishAudit(ctx, s.eventPublisher, s.logger, "Booking", events.TypeBookingCreated, map[string]interface{}{
		"booking_id":  booking.Id,
		"customer_id": customerId,
		"package":     booking.Package,
		"amount":      booking.Amount,
	})

	return toBookingResponse(booking), nil
}

// GetLatestForCustomer returns the customer's most recent booking, used by
// the member area to show the active package.
func (s *bookingService) GetLatestForCustomer(ctx context.Context, customerId uuid.UUID) (*dto.BookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := uow.BookingRepository().FindOne(ctx,
		specification.ForCustomer{CustomerId: customerId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: no booking for customer %s", entity.ErrNotFound, customerId)
	}
	return toBookingResponse(booking), nil
}

func toBookingResponse(b *entity.Booking) *dto.BookingResponse {
	return &dto.BookingResponse{
		Id:            b.Id,
		CustomerId:    b.CustomerId,
		Package:       b.Package,
		PayType:       string(b.PayType),
		Amount:        b.Amount,
		InstallAmount: b.InstallAmount,
		Balance:       b.Balance,
		Income:        b.Income,
		ReciptImg:     b.ReciptImg,
		ExpDate:       b.ExpDate,
		PackagePlan:   b.PackagePlan,
		CreatedAt:     b.CreatedAt,

		CustomerFirstName: b.CustomerFirstName,
		CustomerLastName:  b.CustomerLastName,
		CustomerContactNo: b.CustomerContactNo,
		CustomerWhatsapp:  b.CustomerWhatsapp,
	}
}
