package availability

import (
	"time"

	"booking-core/internal/domain/user"
	"booking-core/internal/pkg/clock"

	"github.com/samber/lo"
)

// privilegedLookBack is how far into the past admins and managers can
// browse the calendar.
const privilegedLookBack = time.Hour * 24 * 30

// VisibilityConfig bounds what unprivileged viewers can see. Horizons
// are expressed in months from now, the deadline in minutes from now.
type VisibilityConfig struct {
	YearlyMonths               int
	OthersMonths               int
	ReservationDeadlineMinutes int
}

// WindowResolver computes which availabilities and slots are visible to
// a given viewer over a requested time range. It operates on already
// loaded records; fetching is the caller's concern.
type WindowResolver struct {
	cfg   VisibilityConfig
	clock clock.Clock
}

func NewWindowResolver(cfg VisibilityConfig, clk clock.Clock) *WindowResolver {
	return &WindowResolver{cfg: cfg, clock: clk}
}

// Window clamps the requested range to what the viewer is allowed to
// see for the given resource kind.
//
// Privileged viewers can browse from one month ago to any point in the
// future. Everyone else is boxed between the reservation deadline and
// the configured visibility horizon, which only yearly subscribers can
// extend. Trainings use a stricter rule: members must have completed at
// least one training (on top of the yearly subscription) to see
// trainings far ahead, so that a fresh rolling subscription cannot be
// used to book a first training in a distant future.
func (r *WindowResolver) Window(viewer *user.User, kind Kind, rangeStart, rangeEnd time.Time) (time.Time, time.Time) {
	now := r.clock.Now()

	if viewer.Privileged() {
		return maxTime(rangeStart, now.Add(-privilegedLookBack)), rangeEnd
	}

	horizon := now.AddDate(0, r.cfg.OthersMonths, 0)
	yearly := now.AddDate(0, r.cfg.YearlyMonths, 0)
	if viewer.YearlySubscriber(now) && kind != KindTraining {
		horizon = yearly
	}
	if r.showMoreTrainings(viewer, now) && kind == KindTraining {
		horizon = yearly
	}

	deadline := now.Add(time.Duration(r.cfg.ReservationDeadlineMinutes) * time.Minute)
	return maxTime(rangeStart, deadline), minTime(rangeEnd, horizon)
}

// showMoreTrainings: members must have validated at least one training
// and hold a valid yearly subscription to view trainings further in the
// future.
func (r *WindowResolver) showMoreTrainings(viewer *user.User, now time.Time) bool {
	return viewer != nil && viewer.CompletedTrainings > 0 && viewer.YearlySubscriber(now)
}

// VisibleAvailabilities filters the given records down to what the
// viewer may see within [rangeStart, rangeEnd), with slots trimmed to
// the resolved window.
func (r *WindowResolver) VisibleAvailabilities(records []Availability, viewer *user.User, kind Kind, rangeStart, rangeEnd time.Time) []Availability {
	windowStart, windowEnd := r.Window(viewer, kind, rangeStart, rangeEnd)
	if !windowStart.Before(windowEnd) {
		return nil
	}

	privileged := viewer.Privileged()

	visible := lo.Filter(records, func(a Availability, _ int) bool {
		if a.Kind != kind {
			return false
		}
		if a.StartAt.After(windowEnd) || a.EndAt.Before(windowStart) {
			return false
		}
		if !privileged {
			if a.Locked {
				return false
			}
			if !r.tagsMatch(a, viewer) {
				return false
			}
		}
		return true
	})

	out := make([]Availability, 0, len(visible))
	for _, a := range visible {
		a.Slots = lo.Filter(a.Slots, func(s Slot, _ int) bool {
			return s.StartAt.After(windowStart) && s.EndAt.Before(windowEnd)
		})
		if len(a.Slots) == 0 {
			continue
		}
		out = append(out, a)
	}
	return out
}

// VisibleSlots flattens the visible availabilities into their slots.
func (r *WindowResolver) VisibleSlots(records []Availability, viewer *user.User, kind Kind, rangeStart, rangeEnd time.Time) []Slot {
	visible := r.VisibleAvailabilities(records, viewer, kind, rangeStart, rangeEnd)
	return lo.FlatMap(visible, func(a Availability, _ int) []Slot {
		return a.Slots
	})
}

// tagsMatch: unprivileged viewers only see availabilities carrying no
// tags, or at least one tag they hold themselves.
func (r *WindowResolver) tagsMatch(a Availability, viewer *user.User) bool {
	if len(a.TagIDs) == 0 {
		return true
	}
	if viewer == nil {
		return false
	}
	return len(lo.Intersect(a.TagIDs, viewer.TagIDs)) > 0
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
