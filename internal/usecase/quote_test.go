//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/cart"
	"booking-core/internal/domain/pricing"
	"booking-core/internal/infra/metrics"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/config"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase"
	"booking-core/internal/usecase/readmodel"
	"booking-core/tests/common/builder"
	"booking-core/tests/mock/cartmock"
	"booking-core/tests/mock/creditmock"
	"booking-core/tests/mock/usecasemock"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type quoteFixture struct {
	users          *usecasemock.MockUserRepository
	reservables    *usecasemock.MockReservableRepository
	plans          *usecasemock.MockPlanRepository
	coupons        *usecasemock.MockCouponApplier
	availabilities *cartmock.MockAvailabilityReader
	occupancy      *cartmock.MockOccupancyChecker
	rateCards      *cartmock.MockRateCardSource
	ledger         *creditmock.MockLedger
	usecase        usecase.QuoteUseCase
}

func newQuoteFixture(t *testing.T, booking config.BookingConfig) *quoteFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &quoteFixture{
		users:          usecasemock.NewMockUserRepository(ctrl),
		reservables:    usecasemock.NewMockReservableRepository(ctrl),
		plans:          usecasemock.NewMockPlanRepository(ctrl),
		coupons:        usecasemock.NewMockCouponApplier(ctrl),
		availabilities: cartmock.NewMockAvailabilityReader(ctrl),
		occupancy:      cartmock.NewMockOccupancyChecker(ctrl),
		rateCards:      cartmock.NewMockRateCardSource(ctrl),
		ledger:         creditmock.NewMockLedger(ctrl),
	}

	services := cart.Services{
		Clock:          clock.NewMockClock(now),
		Availabilities: f.availabilities,
		Occupancy:      f.occupancy,
		RateCards:      f.rateCards,
		Ledger:         f.ledger,
	}
	collector := metrics.NewCollector(prometheus.NewRegistry())
	f.usecase = usecase.NewQuoteUseCase(f.users, f.reservables, f.plans, f.coupons, services, booking, collector)
	return f
}

func TestQuote(t *testing.T) {
	ctx := context.Background()

	customer := builder.NewUserBuilder().Build()
	reservable := cart.Reservable{ID: uuid.New(), Name: "laser cutter", Kind: availability.KindMachines}
	avail := builder.NewAvailabilityBuilder().Build()
	slot := avail.Slots[0]

	params := usecase.QuoteParams{
		CustomerID:   customer.ID,
		OperatorID:   customer.ID,
		Kind:         availability.KindMachines,
		ReservableID: reservable.ID,
		Slots: []usecase.SlotRequest{{
			ID:             slot.ID,
			AvailabilityID: slot.AvailabilityID,
			StartAt:        slot.StartAt,
			EndAt:          slot.EndAt,
		}},
	}

	expectHourlyQuote := func(f *quoteFixture) {
		card := builder.NewRateCardBuilder().WithBaseAmount(1000).Build()
		f.users.EXPECT().FindByID(gomock.Any(), customer.ID).Return(customer, nil).Times(2)
		f.reservables.EXPECT().FindReservable(gomock.Any(), availability.KindMachines, reservable.ID).Return(&reservable, nil)
		f.availabilities.EXPECT().FetchAvailability(gomock.Any(), avail.ID).Return(&avail, nil)
		f.occupancy.EXPECT().SlotReserved(gomock.Any(), reservable.ID, gomock.Any()).Return(false, nil)
		f.ledger.EXPECT().AvailablePrepaidMinutes(gomock.Any(), customer.ID, reservable.ID).Return(0, nil)
		f.ledger.EXPECT().AvailableHours(gomock.Any(), customer.ID, availability.KindMachines).Return(0, nil)
		f.rateCards.EXPECT().FetchRateCard(gomock.Any(), reservable.ID, customer.GroupID, gomock.Nil()).Return(card, nil)
	}

	t.Run("prices a valid hourly reservation", func(t *testing.T) {
		f := newQuoteFixture(t, config.BookingConfig{})
		expectHourlyQuote(f)

		quote, err := f.usecase.Quote(ctx, params)
		require.NoError(t, err)

		expected := &readmodel.QuoteRM{
			ReservableID:      reservable.ID,
			ReservableName:    "laser cutter",
			AmountCents:       1000,
			BeforeCouponCents: 1000,
			Elements: readmodel.ElementsRM{
				Slots: []readmodel.SlotElementRM{
					{StartAt: slot.StartAt, PriceCents: 1000, Promo: false},
				},
			},
		}
		if diff := cmp.Diff(expected, quote); diff != "" {
			t.Errorf("quote mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("applies the coupon to the total only", func(t *testing.T) {
		f := newQuoteFixture(t, config.BookingConfig{})
		expectHourlyQuote(f)
		f.coupons.EXPECT().
			Apply(gomock.Any(), pricing.NewMoney(1000), "WELCOME10", customer.ID).
			Return(pricing.NewMoney(900), nil)

		withCoupon := params
		withCoupon.CouponCode = lo.ToPtr("WELCOME10")

		quote, err := f.usecase.Quote(ctx, withCoupon)
		require.NoError(t, err)
		assert.Equal(t, int64(900), quote.AmountCents)
		assert.Equal(t, int64(1000), quote.BeforeCouponCents)
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newQuoteFixture(t, config.BookingConfig{})
		f.users.EXPECT().FindByID(gomock.Any(), customer.ID).Return(nil, errs.New("no rows"))

		_, err := f.usecase.Quote(ctx, params)
		assert.ErrorIs(t, err, errs.ErrCustomerNotFound)
	})

	t.Run("occupied slot fails validation", func(t *testing.T) {
		f := newQuoteFixture(t, config.BookingConfig{})
		f.users.EXPECT().FindByID(gomock.Any(), customer.ID).Return(customer, nil).Times(2)
		f.reservables.EXPECT().FindReservable(gomock.Any(), availability.KindMachines, reservable.ID).Return(&reservable, nil)
		f.availabilities.EXPECT().FetchAvailability(gomock.Any(), avail.ID).Return(&avail, nil)
		f.occupancy.EXPECT().SlotReserved(gomock.Any(), reservable.ID, gomock.Any()).Return(true, nil)

		_, err := f.usecase.Quote(ctx, params)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDomainValidationFailed)
		assert.ErrorIs(t, err, errs.ErrSlotAlreadyReserved)

		var slotErr *cart.SlotError
		assert.ErrorAs(t, err, &slotErr)
	})

	t.Run("pending plan joins the cart and is validated", func(t *testing.T) {
		f := newQuoteFixture(t, config.BookingConfig{})
		expectHourlyQuote(f)

		planID := uuid.New()
		plan := cart.Plan{ID: planID, Name: "premium", GroupID: customer.GroupID}
		f.plans.EXPECT().FindPlan(gomock.Any(), planID).Return(&plan, nil)

		withPlan := params
		withPlan.PendingPlanID = &planID

		_, err := f.usecase.Quote(ctx, withPlan)
		require.NoError(t, err)
	})

	t.Run("pending plan of another group fails validation", func(t *testing.T) {
		f := newQuoteFixture(t, config.BookingConfig{})
		f.users.EXPECT().FindByID(gomock.Any(), customer.ID).Return(customer, nil).Times(2)
		f.reservables.EXPECT().FindReservable(gomock.Any(), availability.KindMachines, reservable.ID).Return(&reservable, nil)
		f.availabilities.EXPECT().FetchAvailability(gomock.Any(), avail.ID).Return(&avail, nil)
		f.occupancy.EXPECT().SlotReserved(gomock.Any(), reservable.ID, gomock.Any()).Return(false, nil)

		planID := uuid.New()
		plan := cart.Plan{ID: planID, Name: "premium", GroupID: uuid.New()}
		f.plans.EXPECT().FindPlan(gomock.Any(), planID).Return(&plan, nil)

		withPlan := params
		withPlan.PendingPlanID = &planID

		_, err := f.usecase.Quote(ctx, withPlan)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDomainValidationFailed)
		assert.ErrorIs(t, err, cart.ErrPlanGroupMismatch)
	})
}
