package cart

import (
	"context"

	"booking-core/internal/domain/pricing"
	"booking-core/internal/domain/user"

	"github.com/google/uuid"
)

// Pack is a prepaid minute pack offer: a minute balance sold for a
// flat amount, scoped to one resource and one customer group.
type Pack struct {
	ID           uuid.UUID
	ReservableID uuid.UUID
	Minutes      int
	Amount       pricing.Money
	GroupID      uuid.UUID
	Disabled     bool
}

// PrepaidPack is a pack purchase waiting in the cart.
type PrepaidPack struct {
	pack     Pack
	customer *user.User
}

func NewPrepaidPack(pack Pack, customer *user.User) *PrepaidPack {
	return &PrepaidPack{pack: pack, customer: customer}
}

func (p *PrepaidPack) Name() string {
	return "prepaid pack"
}

func (p *PrepaidPack) Pack() Pack {
	return p.pack
}

func (p *PrepaidPack) Price(_ context.Context) (pricing.Breakdown, error) {
	return pricing.Breakdown{Amount: p.pack.Amount}, nil
}

func (p *PrepaidPack) Validate(_ context.Context, _ []Item) error {
	if p.pack.Disabled {
		return ErrPackDisabled
	}
	if p.pack.GroupID != p.customer.GroupID {
		return ErrPackGroupMismatch
	}
	return nil
}
