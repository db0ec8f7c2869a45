package domain

import "errors"

// Domain errors
var (
	// Event errors
	ErrEventNotFound   = errors.New("event not found")
	ErrEventFull       = errors.New("seats are fully booked")
	ErrAlreadyBooked   = errors.New("user has already booked this event")
	ErrMissingField    = errors.New("all fields are required")
	ErrInvalidCapacity = errors.New("capacity must be a positive integer")
	ErrImageRequired   = errors.New("image is required")

	// User errors
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailInUse      = errors.New("email already in use")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrWeakPassword    = errors.New("password does not meet strength requirements")
	ErrInvalidPassword = errors.New("invalid password")

	// Token errors
	ErrMissingToken = errors.New("access denied")
	ErrInvalidToken = errors.New("invalid token")

	// Outbox errors
	ErrMessageNotFound = errors.New("outbox message not found")
)
