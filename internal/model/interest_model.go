package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Interest rows land in the historically named intresteds table.
type Interest struct {
	Id        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Email     string    `gorm:"type:varchar(255)"`
	ContactNo string    `gorm:"type:varchar(30)"`
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Interest) TableName() string {
	return "intresteds"
}

func (i *Interest) BeforeCreate(tx *gorm.DB) error {
	if i.Id == uuid.Nil {
		i.Id = uuid.New()
	}
	return nil
}

type ProfileInterest struct {
	Id           uuid.UUID `gorm:"type:char(36);primaryKey"`
	CustomerName string    `gorm:"type:varchar(150);not null"`
	MemId        string    `gorm:"type:varchar(20)"`
	ProfileName  string    `gorm:"type:varchar(150)"`
	ProfileMemId string    `gorm:"type:varchar(20);index"`
	ContactNo    string    `gorm:"type:varchar(30)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (ProfileInterest) TableName() string {
	return "profile_intresteds"
}

func (p *ProfileInterest) BeforeCreate(tx *gorm.DB) error {
	if p.Id == uuid.Nil {
		p.Id = uuid.New()
	}
	return nil
}
