package pricing

import "github.com/google/uuid"

// minutesPerHour is the billing granularity of the base tier.
const minutesPerHour = 60

// Price is one duration-tiered rate for a (resource, group, plan)
// triple. A duration of zero marks the base hourly rate.
type Price struct {
	ID              uuid.UUID
	GroupID         uuid.UUID
	PlanID          *uuid.UUID
	DurationMinutes int
	Amount          Money
}

// TierMinutes is the effective tier length: base rows (duration 0)
// cover one hour.
func (p Price) TierMinutes() int {
	if p.DurationMinutes <= 0 {
		return minutesPerHour
	}
	return p.DurationMinutes
}

// HourlyRate converts the tier amount to a rate in cents per hour.
func (p Price) HourlyRate() Money {
	return NewMoney(roundDiv(p.Amount.Cents()*minutesPerHour, int64(p.TierMinutes())))
}
