package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookedPackage struct {
	Id            uuid.UUID  `gorm:"type:char(36);primaryKey"`
	CustomerId    uuid.UUID  `gorm:"type:char(36);not null;index"`
	Package       string     `gorm:"type:varchar(50);not null"`
	PayType       string     `gorm:"type:varchar(20);not null"`
	Amount        float64    `gorm:"not null"`
	InstallAmount float64    `gorm:"default:0"`
	Balance       float64    `gorm:"default:0"`
	Income        string     `gorm:"type:varchar(50)"`
	ReciptImg     string     `gorm:"type:varchar(255)"`
	ExpDate       *time.Time `gorm:"column:exp_date"`
	PackagePlan   string     `gorm:"type:varchar(50)"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`

	Customer *Customer `gorm:"foreignKey:CustomerId"`
}

func (BookedPackage) TableName() string {
	return "booked_packages"
}

func (b *BookedPackage) BeforeCreate(tx *gorm.DB) error {
	if b.Id == uuid.Nil {
		b.Id = uuid.New()
	}
	return nil
}
