package events

import (
	"context"
	"time"
)

// Audit event types published by the back office.
const (
	TypeProfileRegistered = "PROFILE_REGISTERED"
	TypeProfilePurged     = "PROFILE_PURGED"
	TypeProfileStatusSet  = "PROFILE_STATUS_SET"
	TypeBookingCreated    = "BOOKING_CREATED"
	TypePaymentProcessed  = "PAYMENT_PROCESSED"
	TypeInterestSubmitted = "INTEREST_SUBMITTED"
)

// Publisher is the bus the services emit audit events on.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Event is the contract every published event satisfies.
type Event interface {
	// EventType returns the event code, e.g. "BOOKING_CREATED".
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// New builds a BaseEvent stamped with the current time.
func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
}
