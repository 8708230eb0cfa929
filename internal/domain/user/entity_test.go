//go:build unit

package user_test

import (
	"testing"
	"time"

	"booking-core/internal/domain/user"
	"booking-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func TestPrivileges(t *testing.T) {
	member := builder.NewUserBuilder().Build()
	manager := builder.NewUserBuilder().WithRole(user.RoleManager).Build()
	admin := builder.NewUserBuilder().WithRole(user.RoleAdmin).Build()

	t.Run("roles", func(t *testing.T) {
		assert.False(t, member.Privileged())
		assert.True(t, manager.Privileged())
		assert.True(t, admin.Privileged())

		var nobody *user.User
		assert.False(t, nobody.Privileged())
	})

	t.Run("privileged over", func(t *testing.T) {
		assert.True(t, admin.PrivilegedOver(member))
		assert.True(t, manager.PrivilegedOver(member))
		// a manager booking for themselves is a plain member
		assert.False(t, manager.PrivilegedOver(manager))
		assert.False(t, member.PrivilegedOver(member))
	})
}

func TestSubscription(t *testing.T) {
	planID := uuid.New()

	t.Run("active subscription exposes its plan", func(t *testing.T) {
		u := builder.NewUserBuilder().
			WithSubscription(planID, user.IntervalMonth, now.AddDate(0, 1, 0)).
			Build()

		got := u.SubscribedPlan(now)
		assert.NotNil(t, got)
		assert.Equal(t, planID, *got)
		assert.False(t, u.YearlySubscriber(now))
	})

	t.Run("expired subscription counts for nothing", func(t *testing.T) {
		u := builder.NewUserBuilder().
			WithSubscription(planID, user.IntervalYear, now.Add(-time.Minute)).
			Build()

		assert.Nil(t, u.SubscribedPlan(now))
		assert.False(t, u.YearlySubscriber(now))
	})

	t.Run("yearly subscriber", func(t *testing.T) {
		u := builder.NewUserBuilder().
			WithSubscription(planID, user.IntervalYear, now.AddDate(1, 0, 0)).
			Build()

		assert.True(t, u.YearlySubscriber(now))
	})

	t.Run("no subscription at all", func(t *testing.T) {
		u := builder.NewUserBuilder().Build()
		assert.Nil(t, u.SubscribedPlan(now))
		assert.False(t, u.YearlySubscriber(now))
	})
}

func TestNewRole(t *testing.T) {
	role, err := user.NewRole("manager")
	assert.NoError(t, err)
	assert.Equal(t, user.RoleManager, role)

	_, err = user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
