package cart

import (
	"context"

	"booking-core/internal/domain/pricing"
	"booking-core/internal/domain/user"

	"github.com/google/uuid"
)

// Plan is a subscription plan as the cart needs it: identity, billing
// interval, price and the customer group it is sold to.
type Plan struct {
	ID       uuid.UUID
	Name     string
	Interval user.PlanInterval
	Amount   pricing.Money
	GroupID  uuid.UUID
	Disabled bool
}

// Subscription is a plan purchase waiting in the cart. Its presence
// satisfies plan restrictions of sibling reservation items before the
// subscription itself is persisted.
type Subscription struct {
	plan     Plan
	customer *user.User
}

func NewSubscription(plan Plan, customer *user.User) *Subscription {
	return &Subscription{plan: plan, customer: customer}
}

func (s *Subscription) Name() string {
	return s.plan.Name
}

func (s *Subscription) PlanID() uuid.UUID {
	return s.plan.ID
}

func (s *Subscription) Plan() Plan {
	return s.plan
}

func (s *Subscription) Price(_ context.Context) (pricing.Breakdown, error) {
	return pricing.Breakdown{Amount: s.plan.Amount}, nil
}

func (s *Subscription) Validate(_ context.Context, _ []Item) error {
	if s.plan.Disabled {
		return ErrPlanDisabled
	}
	if s.plan.GroupID != s.customer.GroupID {
		return ErrPlanGroupMismatch
	}
	return nil
}
