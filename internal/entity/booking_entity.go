package entity

import (
	"time"

	"github.com/google/uuid"
)

type PayType string

const (
	PayTypeFull        PayType = "full"
	PayTypeInstallment PayType = "installment"
)

// PackageAmounts is the bookable package catalog with fixed prices.
var PackageAmounts = map[string]float64{
	"Premium Plan":  30000,
	"Ultimate Plan": 120000,
}

// PackagePlans are the plan tiers an admin can assign to a booking.
var PackagePlans = []string{"Basic Plan", "Standard Plan", "Premium Plan", "Ultimate Plan"}

type Booking struct {
	Id            uuid.UUID
	CustomerId    uuid.UUID
	Package       string
	PayType       PayType
	Amount        float64
	InstallAmount float64
	Balance       float64
	Income        string
	ReciptImg     string
	ExpDate       *time.Time
	PackagePlan   string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined customer columns for admin listings.
	CustomerFirstName string
	CustomerLastName  string
	CustomerContactNo string
	CustomerWhatsapp  string
}
