//go:build unit

package builder

import (
	"booking-core/internal/domain/pricing"

	"github.com/google/uuid"
)

// RateCardBuilder assembles the duration-tiered prices of one
// (resource, group, plan) triple, starting from a base hourly rate.
type RateCardBuilder struct {
	GroupID    uuid.UUID
	PlanID     *uuid.UUID
	BaseAmount int64
	tiers      []pricing.Price
}

func NewRateCardBuilder() *RateCardBuilder {
	return &RateCardBuilder{
		GroupID:    uuid.New(),
		BaseAmount: 1000,
	}
}

func (b *RateCardBuilder) WithBaseAmount(cents int64) *RateCardBuilder {
	b.BaseAmount = cents
	return b
}

func (b *RateCardBuilder) WithPlan(planID uuid.UUID) *RateCardBuilder {
	b.PlanID = &planID
	return b
}

// WithTier adds an extended price covering the given duration for the
// given amount.
func (b *RateCardBuilder) WithTier(minutes int, cents int64) *RateCardBuilder {
	b.tiers = append(b.tiers, pricing.Price{
		ID:              uuid.New(),
		GroupID:         b.GroupID,
		PlanID:          b.PlanID,
		DurationMinutes: minutes,
		Amount:          pricing.NewMoney(cents),
	})
	return b
}

func (b *RateCardBuilder) Build() []pricing.Price {
	card := []pricing.Price{{
		ID:              uuid.New(),
		GroupID:         b.GroupID,
		PlanID:          b.PlanID,
		DurationMinutes: 60,
		Amount:          pricing.NewMoney(b.BaseAmount),
	}}
	return append(card, b.tiers...)
}
