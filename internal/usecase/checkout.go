package usecase

import (
	"context"
	"errors"
	"log/slog"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/cart"
	"booking-core/internal/domain/credit"
	"booking-core/internal/domain/pricing"
	"booking-core/internal/infra"
	"booking-core/internal/infra/metrics"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TxManager runs fn inside a single database transaction, committing
// when fn returns nil and rolling back otherwise.
type TxManager interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// ReservationWriter persists a validated reservation inside the commit
// transaction.
type ReservationWriter interface {
	// LockSlot re-checks machine-slot occupancy under a row lock, so
	// that of two concurrent commits for the same slot exactly one can
	// proceed. A lost race surfaces as an infra conflict error.
	LockSlot(ctx context.Context, tx pgx.Tx, reservableID uuid.UUID, slot availability.Slot) error
	Create(ctx context.Context, tx pgx.Tx, reservation *cart.Reservation, amount pricing.Money) (*readmodel.ReservationRM, error)
}

// CreditWriter debits the finite balances once the reservation is
// durably saved.
type CreditWriter interface {
	FindPacks(ctx context.Context, customerID, reservableID uuid.UUID) ([]credit.PackOwnership, error)
	SavePacks(ctx context.Context, tx pgx.Tx, customerID uuid.UUID, packs []credit.PackOwnership) error
	DebitHours(ctx context.Context, tx pgx.Tx, customerID uuid.UUID, kind availability.Kind, hours int) error
}

type CheckoutUseCase interface {
	Commit(ctx context.Context, params QuoteParams) (*readmodel.ReservationRM, error)
}

type checkoutUseCaseImpl struct {
	users        UserRepository
	reservables  ReservableRepository
	plans        PlanRepository
	reservations ReservationWriter
	credits      CreditWriter
	services     cart.Services
	booking      bookingOptions
	tx           TxManager
	clock        clock.Clock
	collector    *metrics.Collector
	logger       *slog.Logger
}

type bookingOptions struct {
	GroupSlotsByDay bool
}

func NewCheckoutUseCase(
	users UserRepository,
	reservables ReservableRepository,
	plans PlanRepository,
	reservations ReservationWriter,
	credits CreditWriter,
	services cart.Services,
	groupSlotsByDay bool,
	tx TxManager,
	clk clock.Clock,
	collector *metrics.Collector,
	logger *slog.Logger,
) CheckoutUseCase {
	return &checkoutUseCaseImpl{
		users:        users,
		reservables:  reservables,
		plans:        plans,
		reservations: reservations,
		credits:      credits,
		services:     services,
		booking:      bookingOptions{GroupSlotsByDay: groupSlotsByDay},
		tx:           tx,
		clock:        clk,
		collector:    collector,
		logger:       logger,
	}
}

// Commit turns a validated reservation request into a persistent
// reservation and debits the credit balances, all in one transaction.
// Pricing stays advisory until this point: a slot or credit consumed
// by a concurrent request between quote and commit fails the whole
// reservation here.
func (c *checkoutUseCaseImpl) Commit(ctx context.Context, params QuoteParams) (*readmodel.ReservationRM, error) {
	reservation, err := c.buildReservation(ctx, params)
	if err != nil {
		return nil, err
	}

	items := []cart.Item{reservation}
	if err := reservation.Validate(ctx, items); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	breakdown, err := reservation.Price(ctx)
	if err != nil {
		return nil, err
	}

	var reservationRM *readmodel.ReservationRM
	txErr := c.tx.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if reservation.Reservable().Kind == availability.KindMachines {
			for _, slot := range reservation.Slots() {
				if err := c.reservations.LockSlot(ctx, tx, reservation.Reservable().ID, slot); err != nil {
					if infra.IsKind(err, infra.KindConflict) {
						c.collector.CommitConflict()
						return errs.Mark(err, errs.ErrSlotAlreadyReserved)
					}
					return errs.Mark(err, errs.ErrDatabaseOperationFailed)
				}
			}
		}

		rm, err := c.reservations.Create(ctx, tx, reservation, breakdown.Amount)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		reservationRM = rm

		return c.debitBalances(ctx, tx, reservation)
	})
	if txErr != nil {
		// Begin and commit failures come back unmarked from the runner.
		if !errors.Is(txErr, errs.ErrSlotAlreadyReserved) && !errors.Is(txErr, errs.ErrDatabaseOperationFailed) {
			txErr = errs.Mark(txErr, errs.ErrDatabaseOperationFailed)
		}
		return nil, txErr
	}

	c.collector.ReservationCommitted()
	c.logger.Info("reservation committed",
		"reservation_id", reservationRM.ID,
		"reservable_id", reservationRM.ReservableID,
		"amount_cents", reservationRM.AmountCents,
	)
	return reservationRM, nil
}

// debitBalances consumes plan credit hours and prepaid pack minutes
// for the reservation being committed. Nothing is debited for quotes
// that never reach this point.
func (c *checkoutUseCaseImpl) debitBalances(ctx context.Context, tx pgx.Tx, reservation *cart.Reservation) error {
	customer := reservation.Customer()
	reservable := reservation.Reservable()

	if reservable.Kind == availability.KindMachines || reservable.Kind == availability.KindSpace {
		hoursAvailable, err := c.services.Ledger.AvailableHours(ctx, customer.ID, reservable.Kind)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		hours := len(reservation.Slots())
		if hoursAvailable < hours {
			hours = hoursAvailable
		}
		if hours > 0 {
			if err := c.credits.DebitHours(ctx, tx, customer.ID, reservable.Kind, hours); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
	}

	packs, err := c.credits.FindPacks(ctx, customer.ID, reservable.ID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	updated, consumed := credit.ConsumeMinutes(packs, reservation.TotalMinutes(), c.clock.Now())
	if consumed > 0 {
		if err := c.credits.SavePacks(ctx, tx, customer.ID, updated); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (c *checkoutUseCaseImpl) buildReservation(ctx context.Context, params QuoteParams) (*cart.Reservation, error) {
	customer, err := c.users.FindByID(ctx, params.CustomerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCustomerNotFound)
	}
	operator, err := c.users.FindByID(ctx, params.OperatorID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrOperatorNotFound)
	}
	reservable, err := c.reservables.FindReservable(ctx, params.Kind, params.ReservableID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrReservableNotFound)
	}

	slots := make([]availability.Slot, 0, len(params.Slots))
	for _, s := range params.Slots {
		slots = append(slots, availability.Slot{
			ID:             s.ID,
			AvailabilityID: s.AvailabilityID,
			StartAt:        s.StartAt,
			EndAt:          s.EndAt,
			Offered:        s.Offered,
		})
	}

	opts := cart.Options{GroupSlotsByDay: c.booking.GroupSlotsByDay}
	return cart.NewReservation(c.services, opts, customer, operator, *reservable, slots), nil
}
