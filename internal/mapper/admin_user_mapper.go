package mapper

import (
	"viwahaa-be/internal/entity"
	"viwahaa-be/internal/model"
)

type AdminUserMapper struct{}

func NewAdminUserMapper() *AdminUserMapper {
	return &AdminUserMapper{}
}

func (m *AdminUserMapper) ToEntity(u *model.AdminUser) *entity.AdminUser {
	if u == nil {
		return nil
	}
	e := entity.AdminUser(*u)
	return &e
}

func (m *AdminUserMapper) ToModel(u *entity.AdminUser) *model.AdminUser {
	if u == nil {
		return nil
	}
	mod := model.AdminUser(*u)
	return &mod
}
