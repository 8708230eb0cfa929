package availability

import (
	"time"

	"github.com/google/uuid"
)

// Availability is a bookable calendar window for one resource,
// subdivided into slots. Plan restrictions and tags are carried as raw
// id sets; an empty set means unrestricted.
type Availability struct {
	ID               uuid.UUID
	Kind             Kind
	StartAt          time.Time
	EndAt            time.Time
	Slots            []Slot
	TagIDs           []uuid.UUID
	PlanIDs          []uuid.UUID
	Locked           bool
	NbTotalPlaces    int
	NbReservedPlaces int
}

// Full reports whether every place of the availability is taken.
// Availabilities without a place limit are never full.
func (a *Availability) Full() bool {
	return a.NbTotalPlaces > 0 && a.NbReservedPlaces >= a.NbTotalPlaces
}

// Restricted reports whether the availability is reserved to
// subscribers of specific plans.
func (a *Availability) Restricted() bool {
	return len(a.PlanIDs) > 0
}

func (a *Availability) AllowsPlan(planID uuid.UUID) bool {
	for _, id := range a.PlanIDs {
		if id == planID {
			return true
		}
	}
	return false
}

// Slot is the smallest reservable time unit within an availability.
type Slot struct {
	ID             uuid.UUID
	AvailabilityID uuid.UUID
	StartAt        time.Time
	EndAt          time.Time
	Offered        bool
	CanceledAt     *time.Time
}

func (s Slot) Canceled() bool {
	return s.CanceledAt != nil
}

func (s Slot) Duration() time.Duration {
	return s.EndAt.Sub(s.StartAt)
}

// DurationMinutes is the slot length in whole minutes.
func (s Slot) DurationMinutes() int {
	return int(s.Duration() / time.Minute)
}

func (s Slot) SameRange(start, end time.Time) bool {
	return s.StartAt.Equal(start) && s.EndAt.Equal(end)
}
