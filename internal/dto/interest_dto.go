package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateInterestRequest is the public landing-page enquiry form.
type CreateInterestRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	ContactNo string `json:"contact_no" validate:"required"`
	Message   string `json:"message"`
}

// CreateProfileInterestRequest records one customer's interest in another
// profile; the admin team follows up by phone.
type CreateProfileInterestRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
	MemId        string `json:"mem_id" validate:"required"`
	ProfileName  string `json:"profile_name" validate:"required"`
	ProfileMemId string `json:"profile_mem_id" validate:"required"`
	ContactNo    string `json:"contact_no"`
}

type InterestResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ContactNo string    `json:"contact_no"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileInterestResponse struct {
	Id           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	MemId        string    `json:"mem_id"`
	ProfileName  string    `json:"profile_name"`
	ProfileMemId string    `json:"profile_mem_id"`
	ContactNo    string    `json:"contact_no"`
	CreatedAt    time.Time `json:"created_at"`
}
