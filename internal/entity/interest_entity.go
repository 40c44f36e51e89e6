package entity

import (
	"time"

	"github.com/google/uuid"
)

// Interest is a public interest-form submission from the marketing site.
type Interest struct {
	Id        uuid.UUID
	Name      string
	Email     string
	ContactNo string
	Message   string
	CreatedAt time.Time
}

// ProfileInterest records a registered customer expressing interest in
// another member's profile.
type ProfileInterest struct {
	Id           uuid.UUID
	CustomerName string
	MemId        string
	ProfileName  string
	ProfileMemId string
	ContactNo    string
	CreatedAt    time.Time
}
