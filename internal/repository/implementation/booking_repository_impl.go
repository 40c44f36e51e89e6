package implementation

import (
	"context"
	"errors"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/mapper"
	"viwahaa-be/internal/model"
	"viwahaa-be/internal/repository/contract"
	"viwahaa-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookingMapper
}

func NewBookingRepository(db *gorm.DB) contract.BookingRepository {
	return &BookingRepositoryImpl{
		db:     db,
		mapper: mapper.NewBookingMapper(),
	}
}

func (r *BookingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *entity.Booking) error {
	m := r.mapper.ToModel(booking)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*booking = *r.mapper.ToEntity(m)
	return nil
}

func (r *BookingRepositoryImpl) Update(ctx context.Context, booking *entity.Booking) error {
	m := r.mapper.ToModel(booking)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*booking = *r.mapper.ToEntity(m)
	return nil
}

func (r *BookingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.BookedPackage{}, "id = ?", id).Error
}

func (r *BookingRepositoryImpl) DeleteByCustomerId(ctx context.Context, customerId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("customer_id = ?", customerId).Delete(&model.BookedPackage{}).Error
}

func (r *BookingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Booking, error) {
	var m model.BookedPackage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BookingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error) {
	return r.findAll(ctx, false, specs...)
}

func (r *BookingRepositoryImpl) FindAllWithCustomer(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error) {
	return r.findAll(ctx, true, specs...)
}

func (r *BookingRepositoryImpl) findAll(ctx context.Context, withCustomer bool, specs ...specification.Specification) ([]*entity.Booking, error) {
	var models []*model.BookedPackage
	query := r.db.WithContext(ctx)
	if withCustomer {
		query = query.Preload("Customer")
	}
	query = r.applySpecifications(query, specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Booking, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *BookingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.BookedPackage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingRepositoryImpl) TotalIncome(ctx context.Context) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).
		Model(&model.BookedPackage{}).
		Select("SUM(CAST(income AS DECIMAL(10,2)))").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
