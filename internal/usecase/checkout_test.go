//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/cart"
	"booking-core/internal/domain/credit"
	"booking-core/internal/infra"
	"booking-core/internal/infra/metrics"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase"
	"booking-core/internal/usecase/readmodel"
	"booking-core/tests/common/builder"
	"booking-core/tests/mock/cartmock"
	"booking-core/tests/mock/creditmock"
	"booking-core/tests/mock/usecasemock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type checkoutFixture struct {
	users          *usecasemock.MockUserRepository
	reservables    *usecasemock.MockReservableRepository
	plans          *usecasemock.MockPlanRepository
	reservations   *usecasemock.MockReservationWriter
	credits        *usecasemock.MockCreditWriter
	txm            *usecasemock.MockTxManager
	availabilities *cartmock.MockAvailabilityReader
	occupancy      *cartmock.MockOccupancyChecker
	rateCards      *cartmock.MockRateCardSource
	ledger         *creditmock.MockLedger
	usecase        usecase.CheckoutUseCase
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &checkoutFixture{
		users:          usecasemock.NewMockUserRepository(ctrl),
		reservables:    usecasemock.NewMockReservableRepository(ctrl),
		plans:          usecasemock.NewMockPlanRepository(ctrl),
		reservations:   usecasemock.NewMockReservationWriter(ctrl),
		credits:        usecasemock.NewMockCreditWriter(ctrl),
		txm:            usecasemock.NewMockTxManager(ctrl),
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
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.usecase = usecase.NewCheckoutUseCase(
		f.users, f.reservables, f.plans, f.reservations, f.credits,
		services, false, f.txm, clock.NewMockClock(now), collector, logger,
	)
	return f
}

// expectInTx makes the transaction manager run the callback with a nil
// transaction handle, as the repository mocks never touch it.
func (f *checkoutFixture) expectInTx() {
	f.txm.EXPECT().
		Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, pgx.Tx) error) error {
			return fn(ctx, nil)
		})
}

func TestCommit(t *testing.T) {
	ctx := context.Background()

	customer := builder.NewUserBuilder().Build()
	reservable := cart.Reservable{ID: uuid.New(), Name: "laser cutter", Kind: availability.KindMachines}
	avail := builder.NewAvailabilityBuilder().WithSlots(2, 60).Build()

	params := usecase.QuoteParams{
		CustomerID:   customer.ID,
		OperatorID:   customer.ID,
		Kind:         availability.KindMachines,
		ReservableID: reservable.ID,
	}
	slots := make([]availability.Slot, 0, len(avail.Slots))
	for _, s := range avail.Slots {
		params.Slots = append(params.Slots, usecase.SlotRequest{
			ID:             s.ID,
			AvailabilityID: s.AvailabilityID,
			StartAt:        s.StartAt,
			EndAt:          s.EndAt,
		})
		slots = append(slots, availability.Slot{
			ID:             s.ID,
			AvailabilityID: s.AvailabilityID,
			StartAt:        s.StartAt,
			EndAt:          s.EndAt,
		})
	}

	expectBuildAndQuote := func(f *checkoutFixture, creditHours, prepaidMinutes int) {
		card := builder.NewRateCardBuilder().WithBaseAmount(1000).Build()
		f.users.EXPECT().FindByID(gomock.Any(), customer.ID).Return(customer, nil).Times(2)
		f.reservables.EXPECT().FindReservable(gomock.Any(), availability.KindMachines, reservable.ID).Return(&reservable, nil)
		f.availabilities.EXPECT().FetchAvailability(gomock.Any(), avail.ID).Return(&avail, nil).Times(2)
		f.occupancy.EXPECT().SlotReserved(gomock.Any(), reservable.ID, gomock.Any()).Return(false, nil).Times(2)
		f.ledger.EXPECT().AvailablePrepaidMinutes(gomock.Any(), customer.ID, reservable.ID).Return(prepaidMinutes, nil)
		f.ledger.EXPECT().AvailableHours(gomock.Any(), customer.ID, availability.KindMachines).Return(creditHours, nil)
		f.rateCards.EXPECT().FetchRateCard(gomock.Any(), reservable.ID, customer.GroupID, gomock.Nil()).Return(card, nil)
	}

	t.Run("commits the reservation and debits capped balances", func(t *testing.T) {
		f := newCheckoutFixture(t)
		expectBuildAndQuote(f, 1, 90)

		pack := credit.PackOwnership{ID: uuid.New(), Minutes: 120, MinutesUsed: 30}
		created := &readmodel.ReservationRM{ID: uuid.New(), ReservableID: reservable.ID, CustomerID: customer.ID}

		f.expectInTx()
		f.reservations.EXPECT().LockSlot(gomock.Any(), gomock.Nil(), reservable.ID, slots[0]).Return(nil)
		f.reservations.EXPECT().LockSlot(gomock.Any(), gomock.Nil(), reservable.ID, slots[1]).Return(nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).Return(created, nil)

		// One credit hour against two slots debits a single hour, and a
		// 90-minute pack balance against 120 requested minutes drains the
		// pack without going negative.
		f.ledger.EXPECT().AvailableHours(gomock.Any(), customer.ID, availability.KindMachines).Return(1, nil)
		f.credits.EXPECT().DebitHours(gomock.Any(), gomock.Nil(), customer.ID, availability.KindMachines, 1).Return(nil)
		f.credits.EXPECT().FindPacks(gomock.Any(), customer.ID, reservable.ID).Return([]credit.PackOwnership{pack}, nil)
		drained := pack
		drained.MinutesUsed = 120
		f.credits.EXPECT().SavePacks(gomock.Any(), gomock.Nil(), customer.ID, []credit.PackOwnership{drained}).Return(nil)

		rm, err := f.usecase.Commit(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, created, rm)
	})

	t.Run("lost slot race fails with the reserved sentinel", func(t *testing.T) {
		f := newCheckoutFixture(t)
		expectBuildAndQuote(f, 0, 0)

		f.expectInTx()
		conflict := infra.WrapRepoErr("slot already reserved", nil, infra.KindConflict)
		f.reservations.EXPECT().LockSlot(gomock.Any(), gomock.Nil(), reservable.ID, slots[0]).Return(conflict)

		rm, err := f.usecase.Commit(ctx, params)
		require.Error(t, err)
		assert.Nil(t, rm)
		assert.ErrorIs(t, err, errs.ErrSlotAlreadyReserved)
	})

	t.Run("transaction failure surfaces as a database error", func(t *testing.T) {
		f := newCheckoutFixture(t)
		expectBuildAndQuote(f, 0, 0)

		f.txm.EXPECT().Within(gomock.Any(), gomock.Any()).Return(errs.New("connection refused"))

		rm, err := f.usecase.Commit(ctx, params)
		require.Error(t, err)
		assert.Nil(t, rm)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})

	t.Run("occupied slot never reaches the transaction", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.users.EXPECT().FindByID(gomock.Any(), customer.ID).Return(customer, nil).Times(2)
		f.reservables.EXPECT().FindReservable(gomock.Any(), availability.KindMachines, reservable.ID).Return(&reservable, nil)
		f.availabilities.EXPECT().FetchAvailability(gomock.Any(), avail.ID).Return(&avail, nil)
		f.occupancy.EXPECT().SlotReserved(gomock.Any(), reservable.ID, gomock.Any()).Return(true, nil)

		rm, err := f.usecase.Commit(ctx, params)
		require.Error(t, err)
		assert.Nil(t, rm)
		assert.ErrorIs(t, err, errs.ErrDomainValidationFailed)
		assert.ErrorIs(t, err, errs.ErrSlotAlreadyReserved)
	})
}
