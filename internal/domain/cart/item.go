package cart

import (
	"context"
	"errors"
	"fmt"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/credit"
	"booking-core/internal/domain/pricing"
	"booking-core/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrPlanDisabled      = errors.New("plan is disabled")
	ErrPlanGroupMismatch = errors.New("plan is reserved to another group")
	ErrPackDisabled      = errors.New("prepaid pack is disabled")
	ErrPackGroupMismatch = errors.New("prepaid pack is reserved to another group")
)

// Item is the capability shared by everything a cart can hold: a slot
// reservation, a subscription purchase, a prepaid pack purchase or a
// generic one-off line. Price must be pure; committing any consumption
// is the caller's concern.
type Item interface {
	Name() string
	Price(ctx context.Context) (pricing.Breakdown, error)
	// Validate checks the item against the rest of the cart. It returns
	// the first failure encountered, nil if the item is bookable.
	Validate(ctx context.Context, allItems []Item) error
}

// Reservable identifies the resource being booked. Disabled is only
// meaningful for spaces.
type Reservable struct {
	ID       uuid.UUID
	Name     string
	Kind     availability.Kind
	Disabled bool
}

// AvailabilityReader resolves an availability with its slots, tags and
// plan restrictions preloaded. A missing id yields (nil, nil).
type AvailabilityReader interface {
	FetchAvailability(ctx context.Context, id uuid.UUID) (*availability.Availability, error)
}

// OccupancyChecker reports whether a non-canceled reservation already
// holds the exact same slot range on the given resource instance.
type OccupancyChecker interface {
	SlotReserved(ctx context.Context, reservableID uuid.UUID, slot availability.Slot) (bool, error)
}

// RateCardSource returns the duration-tiered prices applicable to a
// (resource, group, plan) triple.
type RateCardSource interface {
	FetchRateCard(ctx context.Context, reservableID, groupID uuid.UUID, planID *uuid.UUID) ([]pricing.Price, error)
}

// Services bundles the collaborators cart items price and validate
// against. All of them are read-only.
type Services struct {
	Clock          clock.Clock
	Availabilities AvailabilityReader
	Occupancy      OccupancyChecker
	RateCards      RateCardSource
	Ledger         credit.Ledger
}

// Options are the platform switches influencing pricing.
type Options struct {
	// GroupSlotsByDay resolves one rate card per calendar day instead
	// of one for the whole slot set.
	GroupSlotsByDay bool
}

// SlotError ties a validation failure to the slot that triggered it,
// so the caller can highlight it.
type SlotError struct {
	Slot   availability.Slot
	Reason error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("slot %s: %s", e.Slot.ID, e.Reason)
}

func (e *SlotError) Unwrap() error {
	return e.Reason
}
