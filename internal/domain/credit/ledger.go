package credit

import (
	"context"
	"time"

	"booking-core/internal/domain/availability"

	"github.com/google/uuid"
)

// Ledger exposes the two finite free-time balances a pricing pass may
// read: plan-granted credit hours and prepaid pack minutes. Pricing
// only reads; consumption is committed separately, after the
// reservation is durably saved, so abandoned quotes never leak credit.
type Ledger interface {
	AvailableHours(ctx context.Context, customerID uuid.UUID, kind availability.Kind) (int, error)
	AvailablePrepaidMinutes(ctx context.Context, customerID, reservableID uuid.UUID) (int, error)
}

// Credit is a plan-granted allowance of free reservation hours per
// billing period for one resource kind.
type Credit struct {
	ID    uuid.UUID
	Kind  availability.Kind
	Hours int
}

// UserCredit tracks how many hours of a credit the customer has
// already burned this period.
type UserCredit struct {
	CreditID  uuid.UUID
	HoursUsed int
}

// HoursRemaining computes the free hours left on a credit. When the
// plan granting the credit is being bought in the same transaction,
// nothing has been used yet and the full allowance applies.
func HoursRemaining(c *Credit, used *UserCredit, newPlanBeingBought bool) int {
	if c == nil {
		return 0
	}
	hours := c.Hours
	if !newPlanBeingBought && used != nil {
		hours = c.Hours - used.HoursUsed
	}
	if hours < 0 {
		return 0
	}
	return hours
}

// PackOwnership is one purchased prepaid pack: a minute balance usable
// against a specific resource until consumed, or until the optional
// expiry passes.
type PackOwnership struct {
	ID          uuid.UUID
	Minutes     int
	MinutesUsed int
	ExpiresAt   *time.Time
}

func (p PackOwnership) Remaining() int {
	remaining := p.Minutes - p.MinutesUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (p PackOwnership) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}

// MinutesAvailable pools every non-expired pack into a single balance.
func MinutesAvailable(packs []PackOwnership, now time.Time) int {
	total := 0
	for _, p := range packs {
		if p.Expired(now) {
			continue
		}
		total += p.Remaining()
	}
	return total
}

// ConsumeMinutes debits a reservation's minutes from the packs, oldest
// first, and returns the updated packs together with how many minutes
// were actually consumed. Balances never go negative; once every pack
// is drained the overflow is simply billed.
func ConsumeMinutes(packs []PackOwnership, minutes int, now time.Time) ([]PackOwnership, int) {
	updated := make([]PackOwnership, len(packs))
	copy(updated, packs)

	consumed := 0
	for i := range updated {
		if minutes <= 0 {
			break
		}
		if updated[i].Expired(now) {
			continue
		}
		take := updated[i].Remaining()
		if take > minutes {
			take = minutes
		}
		updated[i].MinutesUsed += take
		minutes -= take
		consumed += take
	}
	return updated, consumed
}
