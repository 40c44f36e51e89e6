package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminUser struct {
	Id           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name         string    `gorm:"type:varchar(150)"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null"`
	UserTypeId   int       `gorm:"not null;default:2"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (AdminUser) TableName() string {
	return "users"
}

func (u *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if u.Id == uuid.Nil {
		u.Id = uuid.New()
	}
	return nil
}
