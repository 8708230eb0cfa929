package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// SlotElementRM is one priced slot of a quote, in requested order.
type SlotElementRM struct {
	StartAt    time.Time `json:"start_at"`
	PriceCents int64     `json:"price"`
	Promo      bool      `json:"promo"`
}

type ElementsRM struct {
	Slots []SlotElementRM `json:"slots"`
}

// QuoteRM is the price breakdown returned to the booking API layer and
// consumed by invoice-line generation.
type QuoteRM struct {
	ReservableID   uuid.UUID `json:"reservable_id"`
	ReservableName string    `json:"reservable_name"`
	AmountCents    int64     `json:"amount"`
	// Total before the coupon was applied; equals AmountCents when no
	// coupon was given.
	BeforeCouponCents int64      `json:"before_coupon"`
	Elements          ElementsRM `json:"elements"`
}
