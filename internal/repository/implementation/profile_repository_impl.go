package implementation

import (
	"context"
	"errors"
	"time"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/mapper"
	"viwahaa-be/internal/model"
	"viwahaa-be/internal/repository/contract"
	"viwahaa-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *entity.Profile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, profile *entity.Profile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProfileRepositoryImpl) UpdateColumns(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Customer{}).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Customer{}, "id = ?", id).Error
}

func (r *ProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	var m model.Customer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProfileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error) {
	var models []*model.Customer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Profile, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ProfileRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Customer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MaxMemberId orders by length first so SM-10000 ranks above SM-9999 once
// the sequence outgrows four digits.
func (r *ProfileRepositoryImpl) MaxMemberId(ctx context.Context) (string, error) {
	var memberId string
	err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Select("member_id").
		Order("LENGTH(member_id) DESC, member_id DESC").
		Limit(1).
		Scan(&memberId).Error
	if err != nil {
		return "", err
	}
	return memberId, nil
}

func (r *ProfileRepositoryImpl) UpdateLastSeen(ctx context.Context, id uuid.UUID, seenAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("id = ?", id).
		Update("last_seen", seenAt).Error
}
