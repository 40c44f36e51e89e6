package entity

import "errors"

var (
	// ErrNotFound marks a lookup whose subject row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks a malformed inbound payload; nothing is persisted
	// or broadcast for such a request.
	ErrValidation = errors.New("validation failed")
)
