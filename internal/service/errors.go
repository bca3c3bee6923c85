package service

import (
	"errors"

	"home_service_booking/internal/availability"
)

// Validation failures: reported to the user, nothing is mutated.
var (
	ErrMissingClientInfo   = errors.New("name, address and phone are required")
	ErrNoJobs              = errors.New("select at least one job type")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
	ErrDayUnavailable      = errors.New("day is not available for booking")
	ErrNoSlots             = errors.New("select at least one time slot")
	ErrUnknownSlot         = errors.New("unknown time slot")
	ErrSlotTaken           = errors.New("time slot already booked")
	ErrWrongStep           = errors.New("action not allowed at the current step")
	ErrInvalidStep         = errors.New("invalid step")
	ErrInvalidStatus       = errors.New("invalid status: must be pending, completed or not_completed")
	ErrInvalidCost         = errors.New("cost must not be negative")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrMissingCredentials  = errors.New("email and password are required")
)

// Admin account failures.
var (
	ErrRegistrationDisabled = errors.New("registration is disabled")
	ErrWrongRegistrationKey = errors.New("wrong registration key")
	ErrAlreadyRegistered    = errors.New("administrator already registered")
	ErrNotRegistered        = errors.New("administrator not registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")
)

// ErrStorage wraps every failure to load or persist the document.
var ErrStorage = errors.New("storage failure")

var validationErrors = []error{
	ErrMissingClientInfo,
	ErrNoJobs,
	ErrInvalidQuantity,
	ErrInvalidDate,
	ErrDayUnavailable,
	ErrNoSlots,
	ErrUnknownSlot,
	ErrSlotTaken,
	ErrWrongStep,
	ErrInvalidStep,
	ErrInvalidStatus,
	ErrInvalidCost,
	ErrMissingCredentials,
	availability.ErrUnknownJob,
	availability.ErrInsufficientCapacity,
}

// IsValidation reports whether err is a user-input failure rather than a storage one.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
