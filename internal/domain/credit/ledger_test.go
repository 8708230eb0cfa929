//go:build unit

package credit_test

import (
	"testing"
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/credit"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func TestHoursRemaining(t *testing.T) {
	c := &credit.Credit{ID: uuid.New(), Kind: availability.KindMachines, Hours: 5}

	t.Run("nil credit grants nothing", func(t *testing.T) {
		assert.Equal(t, 0, credit.HoursRemaining(nil, nil, false))
	})

	t.Run("unused credit grants the full allowance", func(t *testing.T) {
		assert.Equal(t, 5, credit.HoursRemaining(c, nil, false))
	})

	t.Run("usage is subtracted", func(t *testing.T) {
		used := &credit.UserCredit{CreditID: c.ID, HoursUsed: 3}
		assert.Equal(t, 2, credit.HoursRemaining(c, used, false))
	})

	t.Run("overconsumption clamps to zero", func(t *testing.T) {
		used := &credit.UserCredit{CreditID: c.ID, HoursUsed: 9}
		assert.Equal(t, 0, credit.HoursRemaining(c, used, false))
	})

	t.Run("buying the plan resets the allowance", func(t *testing.T) {
		used := &credit.UserCredit{CreditID: c.ID, HoursUsed: 3}
		assert.Equal(t, 5, credit.HoursRemaining(c, used, true))
	})
}

func TestPackOwnership(t *testing.T) {
	t.Run("remaining never goes negative", func(t *testing.T) {
		p := credit.PackOwnership{Minutes: 60, MinutesUsed: 90}
		assert.Equal(t, 0, p.Remaining())
	})

	t.Run("expiry is optional", func(t *testing.T) {
		assert.False(t, credit.PackOwnership{Minutes: 60}.Expired(now))

		past := now.Add(-time.Hour)
		assert.True(t, credit.PackOwnership{Minutes: 60, ExpiresAt: &past}.Expired(now))

		future := now.Add(time.Hour)
		assert.False(t, credit.PackOwnership{Minutes: 60, ExpiresAt: &future}.Expired(now))
	})
}

func TestMinutesAvailable(t *testing.T) {
	packs := []credit.PackOwnership{
		{Minutes: 120, MinutesUsed: 30},
		{Minutes: 60},
		{Minutes: 300, ExpiresAt: lo.ToPtr(now.Add(-time.Hour))},
	}

	assert.Equal(t, 150, credit.MinutesAvailable(packs, now))
}

func TestConsumeMinutes(t *testing.T) {
	t.Run("drains packs oldest first", func(t *testing.T) {
		packs := []credit.PackOwnership{
			{Minutes: 60, MinutesUsed: 30},
			{Minutes: 120},
		}

		updated, consumed := credit.ConsumeMinutes(packs, 90, now)
		assert.Equal(t, 90, consumed)
		assert.Equal(t, 60, updated[0].MinutesUsed)
		assert.Equal(t, 60, updated[1].MinutesUsed)

		// input packs stay untouched
		assert.Equal(t, 30, packs[0].MinutesUsed)
		assert.Equal(t, 0, packs[1].MinutesUsed)
	})

	t.Run("overflow is left to billing", func(t *testing.T) {
		packs := []credit.PackOwnership{{Minutes: 60}}

		updated, consumed := credit.ConsumeMinutes(packs, 200, now)
		assert.Equal(t, 60, consumed)
		assert.Equal(t, 60, updated[0].MinutesUsed)
	})

	t.Run("expired packs are skipped", func(t *testing.T) {
		packs := []credit.PackOwnership{
			{Minutes: 60, ExpiresAt: lo.ToPtr(now.Add(-time.Minute))},
			{Minutes: 60},
		}

		updated, consumed := credit.ConsumeMinutes(packs, 60, now)
		assert.Equal(t, 60, consumed)
		assert.Equal(t, 0, updated[0].MinutesUsed)
		assert.Equal(t, 60, updated[1].MinutesUsed)
	})
}
