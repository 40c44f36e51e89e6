package service

import (
	"context"
	"time"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/pkg/logger"
	"viwahaa-be/internal/repository/contract"
	"viwahaa-be/internal/repository/specification"
	"viwahaa-be/internal/repository/unitofwork"
	"viwahaa-be/pkg/events"

	"github.com/google/uuid"
)

// noopLogger satisfies logger.ILogger for service tests.
type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }
func (noopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (noopLogger) GetLogById(string) (*logger.LogEntry, error) { return nil, nil }

// recordingLogger keeps the Info entries so log-backed sinks can be asserted.
type recordingLogger struct {
	noopLogger
	infos []loggedEntry
}

type loggedEntry struct {
	tag    string
	msg    string
	fields map[string]interface{}
}

func (l *recordingLogger) Info(tag, msg string, fields map[string]interface{}) {
	l.infos = append(l.infos, loggedEntry{tag: tag, msg: msg, fields: fields})
}

// recordingPublisher captures the audit events the services emit.
type recordingPublisher struct {
	published []events.BaseEvent
	err       error
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, events.BaseEvent{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	return nil
}

// stubMailer swallows every notification.
type stubMailer struct{}

func (stubMailer) SendWelcome(toEmail, name, memberId string) error { return nil }
func (stubMailer) SendInterestNotification(toEmail, name, contactNo, message string) error {
	return nil
}
func (stubMailer) SendProfileInterestNotification(toEmail, customerName, memId, profileName, profileMemId string) error {
	return nil
}

// stubFactory hands out the same unit of work for every request.
type stubFactory struct {
	uow *stubUnitOfWork
}

func (f *stubFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type stubUnitOfWork struct {
	profiles         *stubProfileRepo
	bookings         *stubBookingRepo
	admins           *stubAdminUserRepo
	interests        *stubInterestRepo
	profileInterests *stubProfileInterestRepo
	messages         *stubMessageRepo

	beganCount      int
	committedCount  int
	rolledBackCount int
}

func (u *stubUnitOfWork) Begin(ctx context.Context) error { u.beganCount++; return nil }
func (u *stubUnitOfWork) Commit() error                   { u.committedCount++; return nil }
func (u *stubUnitOfWork) Rollback() error                 { u.rolledBackCount++; return nil }

func (u *stubUnitOfWork) ProfileRepository() contract.ProfileRepository { return u.profiles }
func (u *stubUnitOfWork) MessageRepository() contract.MessageRepository { return u.messages }
func (u *stubUnitOfWork) BookingRepository() contract.BookingRepository { return u.bookings }
func (u *stubUnitOfWork) InterestRepository() contract.InterestRepository {
	return u.interests
}
func (u *stubUnitOfWork) ProfileInterestRepository() contract.ProfileInterestRepository {
	return u.profileInterests
}
func (u *stubUnitOfWork) AdminUserRepository() contract.AdminUserRepository { return u.admins }

// stubProfileRepo records the specification sets of each FindAll call so the
// tier behavior of the matcher can be asserted.
type stubProfileRepo struct {
	findOne     func(specs ...specification.Specification) (*entity.Profile, error)
	findAll     func(call int, specs ...specification.Specification) ([]*entity.Profile, error)
	created     []*entity.Profile
	deleted     []uuid.UUID
	findAllSets [][]specification.Specification
	count       int64
	maxMemberId string
}

func (r *stubProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	profile.Id = uuid.New()
	r.created = append(r.created, profile)
	return nil
}

func (r *stubProfileRepo) Update(ctx context.Context, profile *entity.Profile) error { return nil }

func (r *stubProfileRepo) UpdateColumns(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error {
	return nil
}

func (r *stubProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubProfileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	if r.findOne == nil {
		return nil, nil
	}
	return r.findOne(specs...)
}

func (r *stubProfileRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error) {
	r.findAllSets = append(r.findAllSets, specs)
	if r.findAll == nil {
		return nil, nil
	}
	return r.findAll(len(r.findAllSets), specs...)
}

func (r *stubProfileRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.count, nil
}

func (r *stubProfileRepo) MaxMemberId(ctx context.Context) (string, error) {
	return r.maxMemberId, nil
}

func (r *stubProfileRepo) UpdateLastSeen(ctx context.Context, id uuid.UUID, seenAt time.Time) error {
	return nil
}

type stubBookingRepo struct {
	created           []*entity.Booking
	updated           []*entity.Booking
	deletedByCustomer []uuid.UUID
	findOne           func(specs ...specification.Specification) (*entity.Booking, error)
}

func (r *stubBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	booking.Id = uuid.New()
	r.created = append(r.created, booking)
	return nil
}

func (r *stubBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	r.updated = append(r.updated, booking)
	return nil
}
func (r *stubBookingRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *stubBookingRepo) DeleteByCustomerId(ctx context.Context, customerId uuid.UUID) error {
	r.deletedByCustomer = append(r.deletedByCustomer, customerId)
	return nil
}

func (r *stubBookingRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Booking, error) {
	if r.findOne == nil {
		return nil, nil
	}
	return r.findOne(specs...)
}

func (r *stubBookingRepo) FindAllWithCustomer(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error) {
	return nil, nil
}

func (r *stubBookingRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error) {
	return nil, nil
}

func (r *stubBookingRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func (r *stubBookingRepo) TotalIncome(ctx context.Context) (float64, error) { return 0, nil }

type stubMessageRepo struct {
	findAll     func(specs ...specification.Specification) ([]*entity.ChatMessage, error)
	findAllSets [][]specification.Specification
}

func (r *stubMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	return nil
}

func (r *stubMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	r.findAllSets = append(r.findAllSets, specs)
	if r.findAll == nil {
		return nil, nil
	}
	return r.findAll(specs...)
}

func (r *stubMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type stubInterestRepo struct {
	created []*entity.Interest
}

func (r *stubInterestRepo) Create(ctx context.Context, interest *entity.Interest) error {
	interest.Id = uuid.New()
	r.created = append(r.created, interest)
	return nil
}

func (r *stubInterestRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *stubInterestRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interest, error) {
	return nil, nil
}

func (r *stubInterestRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interest, error) {
	return nil, nil
}

func (r *stubInterestRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type stubProfileInterestRepo struct {
	deletedByMemberId []string
}

func (r *stubProfileInterestRepo) Create(ctx context.Context, interest *entity.ProfileInterest) error {
	return nil
}

func (r *stubProfileInterestRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *stubProfileInterestRepo) DeleteByProfileMemId(ctx context.Context, memberId string) error {
	r.deletedByMemberId = append(r.deletedByMemberId, memberId)
	return nil
}

func (r *stubProfileInterestRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProfileInterest, error) {
	return nil, nil
}

func (r *stubProfileInterestRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProfileInterest, error) {
	return nil, nil
}

func (r *stubProfileInterestRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type stubAdminUserRepo struct {
	findOne func(specs ...specification.Specification) (*entity.AdminUser, error)
}

func (r *stubAdminUserRepo) Create(ctx context.Context, user *entity.AdminUser) error { return nil }

func (r *stubAdminUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminUser, error) {
	if r.findOne == nil {
		return nil, nil
	}
	return r.findOne(specs...)
}

func (r *stubAdminUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
