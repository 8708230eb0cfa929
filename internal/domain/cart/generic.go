package cart

import (
	"context"

	"booking-core/internal/domain/pricing"
)

// Generic is a fixed-amount cart line with no booking semantics.
type Generic struct {
	name   string
	amount pricing.Money
}

func NewGeneric(name string, amount pricing.Money) *Generic {
	return &Generic{name: name, amount: amount}
}

func (g *Generic) Name() string {
	return g.name
}

func (g *Generic) Price(_ context.Context) (pricing.Breakdown, error) {
	return pricing.Breakdown{Amount: g.amount}, nil
}

func (g *Generic) Validate(_ context.Context, _ []Item) error {
	return nil
}
