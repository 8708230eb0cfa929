package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrReservableNotFound    = errors.New("reservable resource not found")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrOperatorNotFound      = errors.New("operator not found")
	ErrInvalidReservableType = errors.New("invalid reservable type")

	// Slot validation errors
	ErrSlotAvailabilityMissing     = errors.New("slot availability does not exist")
	ErrSlotAlreadyReserved         = errors.New("slot is reserved")
	ErrSpaceDisabled               = errors.New("space is disabled")
	ErrAvailabilityFull            = errors.New("availability is complete")
	ErrSlotRestrictedToSubscribers = errors.New("slot is restricted for subscribers")

	// Pricing errors
	ErrRateCardExhausted = errors.New("rate card exhausted")
	ErrNegativePrice     = errors.New("price cannot be negative")

	// Operation errors
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
