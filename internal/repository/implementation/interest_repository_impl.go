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

type InterestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterestMapper
}

func NewInterestRepository(db *gorm.DB) contract.InterestRepository {
	return &InterestRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterestMapper(),
	}
}

func (r *InterestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InterestRepositoryImpl) Create(ctx context.Context, interest *entity.Interest) error {
	m := r.mapper.ToModel(interest)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*interest = *r.mapper.ToEntity(m)
	return nil
}

func (r *InterestRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Interest{}, "id = ?", id).Error
}

func (r *InterestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interest, error) {
	var m model.Interest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InterestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interest, error) {
	var models []*model.Interest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Interest, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *InterestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Interest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type ProfileInterestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterestMapper
}

func NewProfileInterestRepository(db *gorm.DB) contract.ProfileInterestRepository {
	return &ProfileInterestRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterestMapper(),
	}
}

func (r *ProfileInterestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProfileInterestRepositoryImpl) Create(ctx context.Context, interest *entity.ProfileInterest) error {
	m := r.mapper.ProfileInterestToModel(interest)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*interest = *r.mapper.ProfileInterestToEntity(m)
	return nil
}

func (r *ProfileInterestRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ProfileInterest{}, "id = ?", id).Error
}

func (r *ProfileInterestRepositoryImpl) DeleteByProfileMemId(ctx context.Context, memberId string) error {
	return r.db.WithContext(ctx).Where("profile_mem_id = ?", memberId).Delete(&model.ProfileInterest{}).Error
}

func (r *ProfileInterestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProfileInterest, error) {
	var m model.ProfileInterest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProfileInterestToEntity(&m), nil
}

func (r *ProfileInterestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProfileInterest, error) {
	var models []*model.ProfileInterest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ProfileInterest, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ProfileInterestToEntity(m)
	}
	return entities, nil
}

func (r *ProfileInterestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ProfileInterest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
