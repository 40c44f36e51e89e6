package specification

import "gorm.io/gorm"

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByMemberId struct {
	MemberId string
}

func (s ByMemberId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("member_id = ?", s.MemberId)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByRoom scopes chat messages to a single room.
type ByRoom struct {
	RoomId string
}

func (s ByRoom) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("room_id = ?", s.RoomId)
}

// ForCustomer scopes bookings or interests to one customer.
type ForCustomer struct {
	CustomerId interface{}
}

func (s ForCustomer) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id = ?", s.CustomerId)
}
