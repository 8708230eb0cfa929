//go:build unit

package cart_test

import (
	"context"
	"testing"

	"booking-core/internal/domain/cart"
	"booking-core/internal/domain/pricing"
	"booking-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionItem(t *testing.T) {
	ctx := context.Background()
	customer := builder.NewUserBuilder().Build()

	t.Run("prices the plan amount flat", func(t *testing.T) {
		plan := cart.Plan{ID: uuid.New(), Name: "premium", Amount: pricing.NewMoney(4500), GroupID: customer.GroupID}
		item := cart.NewSubscription(plan, customer)

		breakdown, err := item.Price(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4500), breakdown.Amount.Cents())
		assert.NoError(t, item.Validate(ctx, nil))
	})

	t.Run("disabled plan", func(t *testing.T) {
		plan := cart.Plan{ID: uuid.New(), GroupID: customer.GroupID, Disabled: true}
		item := cart.NewSubscription(plan, customer)
		assert.ErrorIs(t, item.Validate(ctx, nil), cart.ErrPlanDisabled)
	})

	t.Run("plan sold to another group", func(t *testing.T) {
		plan := cart.Plan{ID: uuid.New(), GroupID: uuid.New()}
		item := cart.NewSubscription(plan, customer)
		assert.ErrorIs(t, item.Validate(ctx, nil), cart.ErrPlanGroupMismatch)
	})
}

func TestPrepaidPackItem(t *testing.T) {
	ctx := context.Background()
	customer := builder.NewUserBuilder().Build()

	t.Run("prices the pack amount flat", func(t *testing.T) {
		pack := cart.Pack{ID: uuid.New(), Minutes: 600, Amount: pricing.NewMoney(9000), GroupID: customer.GroupID}
		item := cart.NewPrepaidPack(pack, customer)

		breakdown, err := item.Price(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(9000), breakdown.Amount.Cents())
		assert.NoError(t, item.Validate(ctx, nil))
	})

	t.Run("disabled pack", func(t *testing.T) {
		pack := cart.Pack{ID: uuid.New(), GroupID: customer.GroupID, Disabled: true}
		item := cart.NewPrepaidPack(pack, customer)
		assert.ErrorIs(t, item.Validate(ctx, nil), cart.ErrPackDisabled)
	})

	t.Run("pack sold to another group", func(t *testing.T) {
		pack := cart.Pack{ID: uuid.New(), GroupID: uuid.New()}
		item := cart.NewPrepaidPack(pack, customer)
		assert.ErrorIs(t, item.Validate(ctx, nil), cart.ErrPackGroupMismatch)
	})
}

func TestGenericItem(t *testing.T) {
	ctx := context.Background()
	item := cart.NewGeneric("statistics export", pricing.NewMoney(1500))

	breakdown, err := item.Price(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), breakdown.Amount.Cents())
	assert.Equal(t, "statistics export", item.Name())
	assert.NoError(t, item.Validate(ctx, nil))
}
