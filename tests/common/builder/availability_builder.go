//go:build unit

package builder

import (
	"time"

	"booking-core/internal/domain/availability"

	"github.com/google/uuid"
)

type AvailabilityBuilder struct {
	ID               uuid.UUID
	Kind             availability.Kind
	StartAt          time.Time
	SlotMinutes      int
	SlotCount        int
	TagIDs           []uuid.UUID
	PlanIDs          []uuid.UUID
	Locked           bool
	NbTotalPlaces    int
	NbReservedPlaces int
}

func NewAvailabilityBuilder() *AvailabilityBuilder {
	return &AvailabilityBuilder{
		ID:          uuid.New(),
		Kind:        availability.KindMachines,
		StartAt:     time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
		SlotMinutes: 60,
		SlotCount:   1,
	}
}

func (b *AvailabilityBuilder) With(mutate func(*AvailabilityBuilder)) *AvailabilityBuilder {
	mutate(b)
	return b
}

func (b *AvailabilityBuilder) WithKind(kind availability.Kind) *AvailabilityBuilder {
	b.Kind = kind
	return b
}

func (b *AvailabilityBuilder) WithStart(startAt time.Time) *AvailabilityBuilder {
	b.StartAt = startAt
	return b
}

func (b *AvailabilityBuilder) WithSlots(count, minutes int) *AvailabilityBuilder {
	b.SlotCount = count
	b.SlotMinutes = minutes
	return b
}

func (b *AvailabilityBuilder) WithTags(tagIDs ...uuid.UUID) *AvailabilityBuilder {
	b.TagIDs = tagIDs
	return b
}

func (b *AvailabilityBuilder) WithPlans(planIDs ...uuid.UUID) *AvailabilityBuilder {
	b.PlanIDs = planIDs
	return b
}

func (b *AvailabilityBuilder) WithLocked() *AvailabilityBuilder {
	b.Locked = true
	return b
}

func (b *AvailabilityBuilder) WithPlaces(total, reserved int) *AvailabilityBuilder {
	b.NbTotalPlaces = total
	b.NbReservedPlaces = reserved
	return b
}

func (b *AvailabilityBuilder) Build() availability.Availability {
	slotLen := time.Duration(b.SlotMinutes) * time.Minute
	slots := make([]availability.Slot, 0, b.SlotCount)
	for i := 0; i < b.SlotCount; i++ {
		start := b.StartAt.Add(time.Duration(i) * slotLen)
		slots = append(slots, availability.Slot{
			ID:             uuid.New(),
			AvailabilityID: b.ID,
			StartAt:        start,
			EndAt:          start.Add(slotLen),
		})
	}

	return availability.Availability{
		ID:               b.ID,
		Kind:             b.Kind,
		StartAt:          b.StartAt,
		EndAt:            b.StartAt.Add(time.Duration(b.SlotCount) * slotLen),
		Slots:            slots,
		TagIDs:           b.TagIDs,
		PlanIDs:          b.PlanIDs,
		Locked:           b.Locked,
		NbTotalPlaces:    b.NbTotalPlaces,
		NbReservedPlaces: b.NbReservedPlaces,
	}
}
