package usecase

import (
	"context"
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/user"
	"booking-core/internal/pkg/config"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// CalendarRepository loads availability records (slots and tags
// preloaded) for one resource kind, optionally narrowed to specific
// resources.
type CalendarRepository interface {
	FindForCalendar(ctx context.Context, kind availability.Kind, reservableIDs []uuid.UUID) ([]availability.Availability, error)
}

// UserRepository resolves platform accounts with their subscription,
// group and tags.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// IndexParams is one calendar query. A nil ViewerID means an anonymous
// visitor.
type IndexParams struct {
	ViewerID      *uuid.UUID
	Level         availability.Level
	RangeStart    time.Time
	RangeEnd      time.Time
	MachineIDs    []uuid.UUID
	SpaceIDs      []uuid.UUID
	TrainingIDs   []uuid.UUID
	IncludeEvents bool
}

type AvailabilityUseCase interface {
	Index(ctx context.Context, params IndexParams) (*readmodel.CalendarRM, error)
}

type availabilityUseCaseImpl struct {
	calendar CalendarRepository
	users    UserRepository
	resolver *availability.WindowResolver
	modules  config.ModulesConfig
}

func NewAvailabilityUseCase(
	calendar CalendarRepository,
	users UserRepository,
	resolver *availability.WindowResolver,
	modules config.ModulesConfig,
) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		calendar: calendar,
		users:    users,
		resolver: resolver,
		modules:  modules,
	}
}

// Index lists the slots (or whole availabilities) visible to the
// viewer over the requested range, one resource kind at a time, each
// kind gated by its feature switch.
func (a *availabilityUseCaseImpl) Index(ctx context.Context, params IndexParams) (*readmodel.CalendarRM, error) {
	viewer, err := a.resolveViewer(ctx, params.ViewerID)
	if err != nil {
		return nil, err
	}

	result := &readmodel.CalendarRM{}

	type kindQuery struct {
		kind    availability.Kind
		ids     []uuid.UUID
		enabled bool
	}
	queries := []kindQuery{
		{availability.KindTraining, params.TrainingIDs, a.modules.Trainings},
		{availability.KindEvent, nil, params.IncludeEvents && a.modules.EventsInCalendar},
		{availability.KindMachines, params.MachineIDs, a.modules.Machines},
		{availability.KindSpace, params.SpaceIDs, a.modules.Spaces},
	}

	for _, q := range queries {
		if !q.enabled {
			continue
		}
		records, err := a.calendar.FindForCalendar(ctx, q.kind, q.ids)
		if err != nil {
			return nil, errs.Wrap(err, "failed to load calendar for "+q.kind.String())
		}

		if params.Level == availability.LevelAvailability {
			visible := a.resolver.VisibleAvailabilities(records, viewer, q.kind, params.RangeStart, params.RangeEnd)
			result.Availabilities = append(result.Availabilities, lo.Map(visible, func(av availability.Availability, _ int) readmodel.AvailabilityRM {
				return toAvailabilityRM(av)
			})...)
		} else {
			visible := a.resolver.VisibleSlots(records, viewer, q.kind, params.RangeStart, params.RangeEnd)
			result.Slots = append(result.Slots, lo.Map(visible, func(s availability.Slot, _ int) readmodel.SlotRM {
				return toSlotRM(s, q.kind)
			})...)
		}
	}

	return result, nil
}

func (a *availabilityUseCaseImpl) resolveViewer(ctx context.Context, viewerID *uuid.UUID) (*user.User, error) {
	if viewerID == nil {
		return nil, nil
	}
	viewer, err := a.users.FindByID(ctx, *viewerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load viewer")
	}
	return viewer, nil
}

func toSlotRM(s availability.Slot, kind availability.Kind) readmodel.SlotRM {
	return readmodel.SlotRM{
		ID:             s.ID,
		AvailabilityID: s.AvailabilityID,
		Kind:           kind.String(),
		StartAt:        s.StartAt,
		EndAt:          s.EndAt,
		Offered:        s.Offered,
	}
}

func toAvailabilityRM(a availability.Availability) readmodel.AvailabilityRM {
	return readmodel.AvailabilityRM{
		ID:      a.ID,
		Kind:    a.Kind.String(),
		StartAt: a.StartAt,
		EndAt:   a.EndAt,
		Full:    a.Full(),
		TagIDs:  a.TagIDs,
		Slots: lo.Map(a.Slots, func(s availability.Slot, _ int) readmodel.SlotRM {
			return toSlotRM(s, a.Kind)
		}),
	}
}
