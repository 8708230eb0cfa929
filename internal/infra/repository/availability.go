package repository

import (
	"context"

	"booking-core/internal/domain/availability"
	"booking-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AvailabilityRepository struct {
	db *pgxpool.Pool
}

func NewAvailabilityRepository(db *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

const findAvailabilitiesQuery = `
SELECT a.id, a.available_type, a.start_at, a.end_at, a.locked,
       a.nb_total_places, a.nb_reserved_places
FROM availabilities a
WHERE a.available_type = $1
  AND (cardinality($2::uuid[]) = 0 OR a.id IN (
    SELECT ar.availability_id FROM availabilities_reservables ar
    WHERE ar.reservable_id = ANY($2)
  ))
ORDER BY a.start_at`

const findAvailabilityQuery = `
SELECT a.id, a.available_type, a.start_at, a.end_at, a.locked,
       a.nb_total_places, a.nb_reserved_places
FROM availabilities a
WHERE a.id = $1`

const findSlotsQuery = `
SELECT s.id, s.availability_id, s.start_at, s.end_at, s.offered, s.canceled_at
FROM slots s
WHERE s.availability_id = ANY($1)
ORDER BY s.start_at`

const findTagsQuery = `
SELECT availability_id, tag_id FROM availability_tags WHERE availability_id = ANY($1)`

const findPlansQuery = `
SELECT availability_id, plan_id FROM availability_plans WHERE availability_id = ANY($1)`

// FindForCalendar loads every availability of one kind, slots and tags
// preloaded, optionally narrowed to specific reservable resources.
func (r *AvailabilityRepository) FindForCalendar(ctx context.Context, kind availability.Kind, reservableIDs []uuid.UUID) ([]availability.Availability, error) {
	if reservableIDs == nil {
		reservableIDs = []uuid.UUID{}
	}
	rows, err := r.db.Query(ctx, findAvailabilitiesQuery, kind.String(), reservableIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query availabilities", err)
	}
	defer rows.Close()

	records, err := scanAvailabilities(rows)
	if err != nil {
		return nil, err
	}
	if err := r.preload(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

// FetchAvailability resolves one availability for slot validation. A
// missing id yields (nil, nil): the validator reports it as a
// user-facing failure, not a database error.
func (r *AvailabilityRepository) FetchAvailability(ctx context.Context, id uuid.UUID) (*availability.Availability, error) {
	rows, err := r.db.Query(ctx, findAvailabilityQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query availability", err)
	}
	defer rows.Close()

	records, err := scanAvailabilities(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	if err := r.preload(ctx, records); err != nil {
		return nil, err
	}
	return &records[0], nil
}

func scanAvailabilities(rows pgx.Rows) ([]availability.Availability, error) {
	var records []availability.Availability
	for rows.Next() {
		var (
			a    availability.Availability
			kind string
		)
		if err := rows.Scan(&a.ID, &kind, &a.StartAt, &a.EndAt, &a.Locked, &a.NbTotalPlaces, &a.NbReservedPlaces); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability", err)
		}
		a.Kind = availability.Kind(kind)
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availabilities", err)
	}
	return records, nil
}

// preload attaches slots, tags and plan restrictions to the records.
func (r *AvailabilityRepository) preload(ctx context.Context, records []availability.Availability) error {
	if len(records) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(records))
	index := make(map[uuid.UUID]*availability.Availability, len(records))
	for i := range records {
		ids[i] = records[i].ID
		index[records[i].ID] = &records[i]
	}

	rows, err := r.db.Query(ctx, findSlotsQuery, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to query slots", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s availability.Slot
		if err := rows.Scan(&s.ID, &s.AvailabilityID, &s.StartAt, &s.EndAt, &s.Offered, &s.CanceledAt); err != nil {
			return infra.WrapRepoErr("failed to scan slot", err)
		}
		if a, ok := index[s.AvailabilityID]; ok {
			a.Slots = append(a.Slots, s)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate slots", err)
	}

	if err := r.preloadIDs(ctx, findTagsQuery, ids, func(a *availability.Availability, id uuid.UUID) {
		a.TagIDs = append(a.TagIDs, id)
	}, index); err != nil {
		return err
	}
	return r.preloadIDs(ctx, findPlansQuery, ids, func(a *availability.Availability, id uuid.UUID) {
		a.PlanIDs = append(a.PlanIDs, id)
	}, index)
}

func (r *AvailabilityRepository) preloadIDs(
	ctx context.Context,
	query string,
	ids []uuid.UUID,
	attach func(*availability.Availability, uuid.UUID),
	index map[uuid.UUID]*availability.Availability,
) error {
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to query availability links", err)
	}
	defer rows.Close()
	for rows.Next() {
		var availabilityID, linkedID uuid.UUID
		if err := rows.Scan(&availabilityID, &linkedID); err != nil {
			return infra.WrapRepoErr("failed to scan availability link", err)
		}
		if a, ok := index[availabilityID]; ok {
			attach(a, linkedID)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate availability links", err)
	}
	return nil
}
