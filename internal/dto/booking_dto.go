package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CustomerId    string  `json:"customer_id" validate:"required,uuid"`
	Package       string  `json:"package" validate:"required"`
	PayType       string  `json:"pay_type" validate:"required,oneof=full installment"`
	InstallAmount float64 `json:"install_amount"`
	Income        string  `json:"income"`
	ReciptImg     string  `json:"recipt_img"`
	ExpDate       string  `json:"exp_date"`
	PackagePlan   string  `json:"package_plan"`
}

type ProcessPaymentRequest struct {
	Income string `json:"income"`
}

type UpdatePackagePlanRequest struct {
	PackagePlan string `json:"package_plan" validate:"required"`
}

type UpdateExpiryRequest struct {
	ExpDate string `json:"exp_date" validate:"required"`
}

type BookingResponse struct {
	Id            uuid.UUID  `json:"id"`
	CustomerId    uuid.UUID  `json:"customer_id"`
	Package       string     `json:"package"`
	PayType       string     `json:"pay_type"`
	Amount        float64    `json:"amount"`
	InstallAmount float64    `json:"install_amount"`
	Balance       float64    `json:"balance"`
	Income        string     `json:"income"`
	ReciptImg     string     `json:"recipt_img"`
	ExpDate       *time.Time `json:"exp_date,omitempty"`
	PackagePlan   string     `json:"package_plan"`
	CreatedAt     time.Time  `json:"created_at"`

	CustomerFirstName string `json:"first_name,omitempty"`
	CustomerLastName  string `json:"last_name,omitempty"`
	CustomerContactNo string `json:"contact_no,omitempty"`
	CustomerWhatsapp  string `json:"whatsapp_no,omitempty"`
}
