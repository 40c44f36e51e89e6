package implementation

import (
	"context"
	"errors"

	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/mapper"
	"viwahaa-be/internal/model"
	"viwahaa-be/internal/repository/contract"
	"viwahaa-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AdminUserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdminUserMapper
}

func NewAdminUserRepository(db *gorm.DB) contract.AdminUserRepository {
	return &AdminUserRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdminUserMapper(),
	}
}

func (r *AdminUserRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AdminUserRepositoryImpl) Create(ctx context.Context, user *entity.AdminUser) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdminUserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminUser, error) {
	var m model.AdminUser
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AdminUserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AdminUser{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
