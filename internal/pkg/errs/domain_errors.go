package errs

import "errors"

// Domain-specific sentinel errors shared by usecase layers and handlers
var (
	// Course errors
	ErrCourseNotFound = errors.New("course not found")

	// Slot / booking errors
	ErrSlotNotFound      = errors.New("slot not found")
	ErrSlotAlreadyBooked = errors.New("slot already booked")
	ErrBookingNotFound   = errors.New("booking not found")

	// Payment errors
	ErrPaymentVerificationFailed = errors.New("payment verification failed")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway unavailable")

	// Form errors
	ErrInvalidForm = errors.New("invalid registration form")

	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrVersionConflict    = errors.New("course version conflict")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
