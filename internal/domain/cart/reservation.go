package cart

import (
	"context"
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/pricing"
	"booking-core/internal/domain/user"
	"booking-core/internal/pkg/errs"

	"github.com/google/uuid"
)

// Reservation is a slot reservation waiting in the cart. It stays
// transient during pricing and validation; persistence only happens
// once validation has succeeded.
type Reservation struct {
	services   Services
	opts       Options
	customer   *user.User
	operator   *user.User
	reservable Reservable
	slots      []availability.Slot
}

func NewReservation(services Services, opts Options, customer, operator *user.User, reservable Reservable, slots []availability.Slot) *Reservation {
	return &Reservation{
		services:   services,
		opts:       opts,
		customer:   customer,
		operator:   operator,
		reservable: reservable,
		slots:      slots,
	}
}

func (r *Reservation) Name() string {
	return r.reservable.Name
}

func (r *Reservation) Customer() *user.User       { return r.customer }
func (r *Reservation) Operator() *user.User       { return r.operator }
func (r *Reservation) Reservable() Reservable     { return r.reservable }
func (r *Reservation) Slots() []availability.Slot { return r.slots }

// TotalMinutes is the requested duration over all slots.
func (r *Reservation) TotalMinutes() int {
	total := 0
	for _, s := range r.slots {
		total += s.DurationMinutes()
	}
	return total
}

// Price computes the full breakdown for the requested slot set.
//
// Slots are optionally grouped by calendar day; each group resolves its
// own rate card for the group's total duration, and the resulting tier
// allotments are consumed sequentially across the group's slots. The
// first N slots of each group (N = available credit hours) are covered
// by plan credits, strictly in input order. The prepaid minute balance
// is folded left to right across every slot of the reservation.
func (r *Reservation) Price(ctx context.Context) (pricing.Breakdown, error) {
	if !r.reservable.Kind.IsValid() {
		return pricing.Breakdown{}, errs.Mark(
			errs.New("unknown reservable kind "+string(r.reservable.Kind)),
			errs.ErrInvalidReservableType,
		)
	}

	now := r.services.Clock.Now()
	isPrivileged := r.operator.PrivilegedOver(r.customer)
	planID := r.customer.SubscribedPlan(now)

	prepaidMinutes, err := r.services.Ledger.AvailablePrepaidMinutes(ctx, r.customer.ID, r.reservable.ID)
	if err != nil {
		return pricing.Breakdown{}, errs.Wrap(err, "failed to read prepaid balance")
	}

	hoursAvailable, err := r.creditHours(ctx)
	if err != nil {
		return pricing.Breakdown{}, errs.Wrap(err, "failed to read credit hours")
	}

	card, err := r.services.RateCards.FetchRateCard(ctx, r.reservable.ID, r.customer.GroupID, planID)
	if err != nil {
		return pricing.Breakdown{}, errs.Wrap(err, "failed to fetch rate card")
	}

	state := pricing.QuoteState{PrepaidMinutes: prepaidMinutes}
	amount := pricing.NewMoney(0)
	var elements []pricing.SlotElement

	for _, group := range r.groupedSlots() {
		total := 0
		for _, s := range group {
			total += s.DurationMinutes()
		}

		allotments, err := pricing.ResolveRateCard(card, total)
		if err != nil {
			return pricing.Breakdown{}, err
		}
		cursor := pricing.NewRateCursor(allotments)

		for index, slot := range group {
			charge := pricing.SlotCharge{
				StartAt:    slot.StartAt,
				Minutes:    slot.DurationMinutes(),
				Rate:       cursor.RateFor(slot.DurationMinutes()),
				Offered:    slot.Offered,
				Privileged: isPrivileged,
				HasCredits: index < hoursAvailable,
				IsDivision: r.reservable.Kind.BilledByDivision(),
			}

			var element pricing.SlotElement
			state, element = pricing.PriceSlot(charge, state)
			elements = append(elements, element)
			amount = amount.Add(element.Price)
		}
	}

	return pricing.Breakdown{
		Amount:   amount,
		Elements: pricing.Elements{Slots: elements},
	}, nil
}

// Validate checks every requested slot, stopping at the first failing
// one. A pending subscription elsewhere in the cart satisfies plan
// restrictions the customer's current subscription does not.
func (r *Reservation) Validate(ctx context.Context, allItems []Item) error {
	pendingPlanID := pendingSubscriptionPlan(allItems)
	now := r.services.Clock.Now()

	for _, slot := range r.slots {
		avail, err := r.services.Availabilities.FetchAvailability(ctx, slot.AvailabilityID)
		if err != nil {
			return errs.Wrap(err, "failed to fetch availability")
		}
		if avail == nil {
			return &SlotError{Slot: slot, Reason: errs.ErrSlotAvailabilityMissing}
		}

		if avail.Kind == availability.KindMachines {
			reserved, err := r.services.Occupancy.SlotReserved(ctx, r.reservable.ID, slot)
			if err != nil {
				return errs.Wrap(err, "failed to check slot occupancy")
			}
			if reserved {
				return &SlotError{Slot: slot, Reason: errs.ErrSlotAlreadyReserved}
			}
		} else if avail.Kind == availability.KindSpace && r.reservable.Disabled {
			return &SlotError{Slot: slot, Reason: errs.ErrSpaceDisabled}
		} else if avail.Full() {
			return &SlotError{Slot: slot, Reason: errs.ErrAvailabilityFull}
		}

		if !avail.Restricted() {
			continue
		}
		if r.satisfiesRestriction(avail, pendingPlanID, now) {
			continue
		}
		return &SlotError{Slot: slot, Reason: errs.ErrSlotRestrictedToSubscribers}
	}

	return nil
}

func (r *Reservation) satisfiesRestriction(avail *availability.Availability, pendingPlanID *uuid.UUID, now time.Time) bool {
	if planID := r.customer.SubscribedPlan(now); planID != nil && avail.AllowsPlan(*planID) {
		return true
	}
	if pendingPlanID != nil && avail.AllowsPlan(*pendingPlanID) {
		return true
	}
	if r.operator.Manager() && r.customer.ID != r.operator.ID {
		return true
	}
	return r.operator.Admin()
}

// creditHours reads the plan credit balance for resource kinds that
// grant hour credits. Trainings and events never do.
func (r *Reservation) creditHours(ctx context.Context) (int, error) {
	switch r.reservable.Kind {
	case availability.KindMachines, availability.KindSpace:
		return r.services.Ledger.AvailableHours(ctx, r.customer.ID, r.reservable.Kind)
	default:
		return 0, nil
	}
}

// groupedSlots splits the slots by calendar day when the option is on,
// preserving input order within and across groups.
func (r *Reservation) groupedSlots() [][]availability.Slot {
	if !r.opts.GroupSlotsByDay {
		return [][]availability.Slot{r.slots}
	}

	var order []string
	groups := make(map[string][]availability.Slot)
	for _, s := range r.slots {
		day := s.StartAt.Format("2006-01-02")
		if _, seen := groups[day]; !seen {
			order = append(order, day)
		}
		groups[day] = append(groups[day], s)
	}

	out := make([][]availability.Slot, 0, len(order))
	for _, day := range order {
		out = append(out, groups[day])
	}
	return out
}

// pendingSubscriptionPlan finds a subscription purchase elsewhere in
// the cart, if any.
func pendingSubscriptionPlan(items []Item) *uuid.UUID {
	for _, item := range items {
		if sub, ok := item.(*Subscription); ok {
			id := sub.PlanID()
			return &id
		}
	}
	return nil
}
