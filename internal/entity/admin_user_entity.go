package entity

import (
	"time"

	"github.com/google/uuid"
)

// Back-office accounts live in their own table; user_type_id 1 marks an admin.
const AdminUserType = 1

type AdminUser struct {
	Id           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	UserTypeId   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *AdminUser) IsAdmin() bool {
	return u.UserTypeId == AdminUserType
}
