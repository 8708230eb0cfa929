package pricing

import "time"

// SlotElement is one line of a price breakdown, emitted per slot in
// chronological input order. Promo is true whenever the applied rate
// differs from the hourly rate that would normally bill the slot.
type SlotElement struct {
	StartAt time.Time `json:"start_at"`
	Price   Money     `json:"price"`
	Promo   bool      `json:"promo"`
}

// Elements groups the per-slot lines of a breakdown.
type Elements struct {
	Slots []SlotElement `json:"slots"`
}

// Breakdown is the result of pricing a cart item: the total amount and
// one element per priced slot. Amount always equals the sum of the
// element prices.
type Breakdown struct {
	Amount   Money    `json:"amount"`
	Elements Elements `json:"elements"`
}

// SlotCharge carries everything needed to price one slot.
type SlotCharge struct {
	StartAt    time.Time
	Minutes    int
	Rate       Money // hourly rate resolved from the applicable tier
	Offered    bool
	Privileged bool
	HasCredits bool
	// IsDivision is true when the slot is a sub-part of a larger
	// availability billed proportionally by duration, false when the
	// whole availability is billed as a flat unit.
	IsDivision bool
}

// QuoteState is the running balance threaded through a pricing pass.
// PriceSlot never drives it negative.
type QuoteState struct {
	PrepaidMinutes int
}

// PriceSlot computes the price of a single slot and the balance left
// for the next one.
//
// Discounts apply in a fixed order: a remaining credit hour or a
// staff-offered slot waives the rate entirely, then prepaid pack
// minutes reduce the billable duration of whatever rate survived. A
// slot already free of charge consumes no prepaid minutes.
func PriceSlot(charge SlotCharge, state QuoteState) (QuoteState, SlotElement) {
	slotRate := charge.Rate
	if charge.HasCredits || (charge.Offered && charge.Privileged) {
		slotRate = NewMoney(0)
	}

	var price int64
	if charge.IsDivision {
		price = roundDiv(slotRate.Cents()*int64(charge.Minutes), minutesPerHour)
	} else {
		price = slotRate.Cents()
	}

	if price > 0 && state.PrepaidMinutes > 0 {
		consumed := charge.Minutes
		if consumed > state.PrepaidMinutes {
			consumed = state.PrepaidMinutes
		}
		price = roundDiv(slotRate.Cents()*int64(charge.Minutes-consumed), minutesPerHour)
		state.PrepaidMinutes -= consumed
	}

	return state, SlotElement{
		StartAt: charge.StartAt,
		Price:   NewMoney(price),
		Promo:   slotRate != charge.Rate,
	}
}

// RateCursor hands out hourly rates slot by slot, consuming the
// resolved allotments sequentially across a whole slot group.
type RateCursor struct {
	allotments []Allotment
}

func NewRateCursor(allotments []Allotment) *RateCursor {
	cloned := make([]Allotment, len(allotments))
	copy(cloned, allotments)
	return &RateCursor{allotments: cloned}
}

// RateFor picks the tier billing the next slot: the first allotment
// whose remaining minutes fit within the slot, or the head of the list
// when none does, and charges the slot's duration against it.
func (c *RateCursor) RateFor(slotMinutes int) Money {
	if len(c.allotments) == 0 {
		return NewMoney(0)
	}

	idx := 0
	for i, a := range c.allotments {
		if a.Minutes > 0 && a.Minutes <= slotMinutes {
			idx = i
			break
		}
	}

	rate := c.allotments[idx].Price.HourlyRate()
	c.allotments[idx].Minutes -= slotMinutes
	return rate
}
