package usecase

import (
	"context"
	"errors"
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/cart"
	"booking-core/internal/domain/pricing"
	"booking-core/internal/infra/metrics"
	"booking-core/internal/pkg/config"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ReservableRepository resolves the resource being booked.
type ReservableRepository interface {
	FindReservable(ctx context.Context, kind availability.Kind, id uuid.UUID) (*cart.Reservable, error)
}

// PlanRepository resolves subscription plans added to a cart.
type PlanRepository interface {
	FindPlan(ctx context.Context, id uuid.UUID) (*cart.Plan, error)
}

// CouponApplier reduces a total by an opaque coupon. The engine
// consumes it as a black box; code lookup and eligibility live
// elsewhere.
type CouponApplier interface {
	Apply(ctx context.Context, total pricing.Money, code string, customerID uuid.UUID) (pricing.Money, error)
}

// SlotRequest is one requested slot, as sent by the booking UI.
type SlotRequest struct {
	ID             uuid.UUID
	AvailabilityID uuid.UUID
	StartAt        time.Time
	EndAt          time.Time
	Offered        bool
}

// QuoteParams describes a reservation to price and validate.
type QuoteParams struct {
	CustomerID   uuid.UUID
	OperatorID   uuid.UUID
	Kind         availability.Kind
	ReservableID uuid.UUID
	Slots        []SlotRequest
	// PendingPlanID is the plan being purchased in the same cart, if
	// any; it satisfies subscriber-only restrictions before being saved.
	PendingPlanID *uuid.UUID
	CouponCode    *string
}

type QuoteUseCase interface {
	Quote(ctx context.Context, params QuoteParams) (*readmodel.QuoteRM, error)
}

type quoteUseCaseImpl struct {
	users       UserRepository
	reservables ReservableRepository
	plans       PlanRepository
	coupons     CouponApplier
	services    cart.Services
	booking     config.BookingConfig
	collector   *metrics.Collector
}

func NewQuoteUseCase(
	users UserRepository,
	reservables ReservableRepository,
	plans PlanRepository,
	coupons CouponApplier,
	services cart.Services,
	booking config.BookingConfig,
	collector *metrics.Collector,
) QuoteUseCase {
	return &quoteUseCaseImpl{
		users:       users,
		reservables: reservables,
		plans:       plans,
		coupons:     coupons,
		services:    services,
		booking:     booking,
		collector:   collector,
	}
}

// Quote validates the requested slot set and computes its price
// breakdown. It never mutates credit or prepaid balances: commit is a
// separate step.
func (q *quoteUseCaseImpl) Quote(ctx context.Context, params QuoteParams) (*readmodel.QuoteRM, error) {
	items, reservation, err := q.buildCart(ctx, params)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(ctx, items); err != nil {
			q.recordValidationFailure(err)
			return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
		}
	}

	breakdown, err := reservation.Price(ctx)
	if err != nil {
		return nil, err
	}

	total := breakdown.Amount
	if params.CouponCode != nil {
		total, err = q.coupons.Apply(ctx, total, *params.CouponCode, params.CustomerID)
		if err != nil {
			return nil, errs.Wrap(err, "failed to apply coupon")
		}
	}

	q.collector.QuoteComputed()
	return toQuoteRM(reservation, breakdown, total), nil
}

// buildCart loads the collaborating records and assembles the cart
// items for one reservation request.
func (q *quoteUseCaseImpl) buildCart(ctx context.Context, params QuoteParams) ([]cart.Item, *cart.Reservation, error) {
	customer, err := q.users.FindByID(ctx, params.CustomerID)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrCustomerNotFound)
	}
	operator, err := q.users.FindByID(ctx, params.OperatorID)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrOperatorNotFound)
	}
	reservable, err := q.reservables.FindReservable(ctx, params.Kind, params.ReservableID)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrReservableNotFound)
	}

	slots := lo.Map(params.Slots, func(s SlotRequest, _ int) availability.Slot {
		return availability.Slot{
			ID:             s.ID,
			AvailabilityID: s.AvailabilityID,
			StartAt:        s.StartAt,
			EndAt:          s.EndAt,
			Offered:        s.Offered,
		}
	})

	opts := cart.Options{GroupSlotsByDay: q.booking.ExtendedPricesInSameDay}
	reservation := cart.NewReservation(q.services, opts, customer, operator, *reservable, slots)
	items := []cart.Item{reservation}

	if params.PendingPlanID != nil {
		plan, err := q.plans.FindPlan(ctx, *params.PendingPlanID)
		if err != nil {
			return nil, nil, errs.Wrap(err, "failed to load pending plan")
		}
		items = append(items, cart.NewSubscription(*plan, customer))
	}

	return items, reservation, nil
}

func (q *quoteUseCaseImpl) recordValidationFailure(err error) {
	var slotErr *cart.SlotError
	if errors.As(err, &slotErr) {
		q.collector.ValidationFailed(slotErr.Reason.Error())
		return
	}
	q.collector.ValidationFailed(err.Error())
}

func toQuoteRM(reservation *cart.Reservation, breakdown pricing.Breakdown, total pricing.Money) *readmodel.QuoteRM {
	return &readmodel.QuoteRM{
		ReservableID:      reservation.Reservable().ID,
		ReservableName:    reservation.Name(),
		AmountCents:       total.Cents(),
		BeforeCouponCents: breakdown.Amount.Cents(),
		Elements: readmodel.ElementsRM{
			Slots: lo.Map(breakdown.Elements.Slots, func(e pricing.SlotElement, _ int) readmodel.SlotElementRM {
				return readmodel.SlotElementRM{
					StartAt:    e.StartAt,
					PriceCents: e.Price.Cents(),
					Promo:      e.Promo,
				}
			}),
		},
	}
}
