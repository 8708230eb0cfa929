//go:build unit

package availability_test

import (
	"testing"
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/user"
	"booking-core/internal/pkg/clock"
	"booking-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var (
	now        = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	rangeStart = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(2027, 5, 1, 0, 0, 0, 0, time.UTC)
)

func newResolver(deadlineMinutes int) *availability.WindowResolver {
	return availability.NewWindowResolver(availability.VisibilityConfig{
		YearlyMonths:               12,
		OthersMonths:               3,
		ReservationDeadlineMinutes: deadlineMinutes,
	}, clock.NewMockClock(now))
}

func TestWindow(t *testing.T) {
	resolver := newResolver(0)

	t.Run("privileged viewers browse one month back and any point forward", func(t *testing.T) {
		admin := builder.NewUserBuilder().WithRole(user.RoleAdmin).Build()

		start, end := resolver.Window(admin, availability.KindMachines, rangeStart, rangeEnd)
		assert.Equal(t, now.Add(-30*24*time.Hour), start)
		assert.Equal(t, rangeEnd, end)
	})

	t.Run("members are boxed by the default horizon", func(t *testing.T) {
		member := builder.NewUserBuilder().Build()

		start, end := resolver.Window(member, availability.KindMachines, rangeStart, rangeEnd)
		assert.Equal(t, now, start)
		assert.Equal(t, now.AddDate(0, 3, 0), end)
	})

	t.Run("anonymous visitors get the default horizon too", func(t *testing.T) {
		_, end := resolver.Window(nil, availability.KindMachines, rangeStart, rangeEnd)
		assert.Equal(t, now.AddDate(0, 3, 0), end)
	})

	t.Run("yearly subscription extends the horizon", func(t *testing.T) {
		subscriber := builder.NewUserBuilder().
			WithSubscription(uuid.New(), user.IntervalYear, now.AddDate(1, 0, 0)).
			Build()

		_, end := resolver.Window(subscriber, availability.KindMachines, rangeStart, rangeEnd)
		assert.Equal(t, now.AddDate(0, 12, 0), end)
	})

	t.Run("an expired yearly subscription does not", func(t *testing.T) {
		subscriber := builder.NewUserBuilder().
			WithSubscription(uuid.New(), user.IntervalYear, now.Add(-time.Hour)).
			Build()

		_, end := resolver.Window(subscriber, availability.KindMachines, rangeStart, rangeEnd)
		assert.Equal(t, now.AddDate(0, 3, 0), end)
	})

	t.Run("trainings demand a completed training on top of the subscription", func(t *testing.T) {
		subscriber := builder.NewUserBuilder().
			WithSubscription(uuid.New(), user.IntervalYear, now.AddDate(1, 0, 0)).
			Build()

		_, end := resolver.Window(subscriber, availability.KindTraining, rangeStart, rangeEnd)
		assert.Equal(t, now.AddDate(0, 3, 0), end)

		trained := builder.NewUserBuilder().
			WithSubscription(uuid.New(), user.IntervalYear, now.AddDate(1, 0, 0)).
			WithCompletedTrainings(2).
			Build()

		_, end = resolver.Window(trained, availability.KindTraining, rangeStart, rangeEnd)
		assert.Equal(t, now.AddDate(0, 12, 0), end)
	})

	t.Run("reservation deadline pushes the window start", func(t *testing.T) {
		resolver := newResolver(1440)
		member := builder.NewUserBuilder().Build()

		start, _ := resolver.Window(member, availability.KindMachines, rangeStart, rangeEnd)
		assert.Equal(t, now.Add(24*time.Hour), start)
	})
}

func TestVisibleAvailabilities(t *testing.T) {
	resolver := newResolver(0)
	member := builder.NewUserBuilder().Build()
	admin := builder.NewUserBuilder().WithRole(user.RoleAdmin).Build()

	inWindow := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("kind mismatch is filtered out", func(t *testing.T) {
		records := []availability.Availability{
			builder.NewAvailabilityBuilder().WithStart(inWindow).WithKind(availability.KindSpace).Build(),
		}

		visible := resolver.VisibleAvailabilities(records, member, availability.KindMachines, rangeStart, rangeEnd)
		assert.Empty(t, visible)
	})

	t.Run("locked availabilities hide from members but not staff", func(t *testing.T) {
		records := []availability.Availability{
			builder.NewAvailabilityBuilder().WithStart(inWindow).WithLocked().Build(),
		}

		assert.Empty(t, resolver.VisibleAvailabilities(records, member, availability.KindMachines, rangeStart, rangeEnd))
		assert.Len(t, resolver.VisibleAvailabilities(records, admin, availability.KindMachines, rangeStart, rangeEnd), 1)
	})

	t.Run("tagged availabilities demand a shared tag", func(t *testing.T) {
		tag := uuid.New()
		records := []availability.Availability{
			builder.NewAvailabilityBuilder().WithStart(inWindow).WithTags(tag).Build(),
		}

		assert.Empty(t, resolver.VisibleAvailabilities(records, member, availability.KindMachines, rangeStart, rangeEnd))

		tagged := builder.NewUserBuilder().WithTags(tag, uuid.New()).Build()
		assert.Len(t, resolver.VisibleAvailabilities(records, tagged, availability.KindMachines, rangeStart, rangeEnd), 1)

		// staff see everything
		assert.Len(t, resolver.VisibleAvailabilities(records, admin, availability.KindMachines, rangeStart, rangeEnd), 1)
	})

	t.Run("slots outside the window are trimmed", func(t *testing.T) {
		// four hourly slots starting three months minus two hours from now:
		// only the first ends strictly before the horizon
		start := now.AddDate(0, 3, 0).Add(-2 * time.Hour)
		records := []availability.Availability{
			builder.NewAvailabilityBuilder().WithStart(start).WithSlots(4, 60).Build(),
		}

		visible := resolver.VisibleAvailabilities(records, member, availability.KindMachines, rangeStart, rangeEnd)
		assert.Len(t, visible, 1)
		assert.Len(t, visible[0].Slots, 1)
	})

	t.Run("availabilities left without visible slots disappear", func(t *testing.T) {
		past := now.AddDate(0, -2, 0)
		records := []availability.Availability{
			builder.NewAvailabilityBuilder().WithStart(past).Build(),
		}

		assert.Empty(t, resolver.VisibleAvailabilities(records, member, availability.KindMachines, rangeStart, rangeEnd))
	})

	t.Run("flattened slots keep chronological order", func(t *testing.T) {
		records := []availability.Availability{
			builder.NewAvailabilityBuilder().WithStart(inWindow).WithSlots(3, 60).Build(),
		}

		slots := resolver.VisibleSlots(records, member, availability.KindMachines, rangeStart, rangeEnd)
		assert.Len(t, slots, 3)
		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].StartAt.Before(slots[i].StartAt))
		}
	})
}
