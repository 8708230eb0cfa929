package repository

import (
	"context"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/cart"
	"booking-core/internal/domain/pricing"
	"booking-core/internal/infra"
	"booking-core/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

const slotReservedQuery = `
SELECT EXISTS (
  SELECT 1
  FROM reservations r
  JOIN reservation_slots rs ON rs.reservation_id = r.id
  JOIN slots s ON s.id = rs.slot_id
  WHERE r.reservable_id = $1
    AND s.start_at = $2 AND s.end_at = $3
    AND s.canceled_at IS NULL
)`

const lockSlotQuery = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

const insertReservationQuery = `
INSERT INTO reservations (id, reservable_id, customer_id, operator_id, amount, created_at)
VALUES ($1, $2, $3, $4, $5, now())
RETURNING created_at`

const insertReservationSlotQuery = `
INSERT INTO reservation_slots (reservation_id, slot_id) VALUES ($1, $2)`

// SlotReserved reports whether a non-canceled reservation already
// holds the exact same range on the resource instance. Used by the
// validator during pricing; the authoritative check is LockSlot.
func (r *ReservationRepository) SlotReserved(ctx context.Context, reservableID uuid.UUID, slot availability.Slot) (bool, error) {
	var reserved bool
	err := r.db.QueryRow(ctx, slotReservedQuery, reservableID, slot.StartAt, slot.EndAt).Scan(&reserved)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot occupancy", err)
	}
	return reserved, nil
}

// LockSlot serializes concurrent commits on the same (resource, slot
// range) pair with a transaction-scoped advisory lock, then re-checks
// occupancy under it. The loser of a race observes the winner's rows
// and gets a conflict.
func (r *ReservationRepository) LockSlot(ctx context.Context, tx pgx.Tx, reservableID uuid.UUID, slot availability.Slot) error {
	key := reservableID.String() + "/" + slot.StartAt.UTC().String()
	if _, err := tx.Exec(ctx, lockSlotQuery, key); err != nil {
		return infra.WrapRepoErr("failed to acquire slot lock", err)
	}

	var reserved bool
	err := tx.QueryRow(ctx, slotReservedQuery, reservableID, slot.StartAt, slot.EndAt).Scan(&reserved)
	if err != nil {
		return infra.WrapRepoErr("failed to re-check slot occupancy", err)
	}
	if reserved {
		return infra.WrapRepoErr("slot already reserved", nil, infra.KindConflict)
	}
	return nil
}

func (r *ReservationRepository) Create(ctx context.Context, tx pgx.Tx, reservation *cart.Reservation, amount pricing.Money) (*readmodel.ReservationRM, error) {
	rm := &readmodel.ReservationRM{
		ID:             uuid.New(),
		ReservableID:   reservation.Reservable().ID,
		ReservableName: reservation.Reservable().Name,
		CustomerID:     reservation.Customer().ID,
		OperatorID:     reservation.Operator().ID,
		AmountCents:    amount.Cents(),
	}

	err := tx.QueryRow(ctx, insertReservationQuery,
		rm.ID, rm.ReservableID, rm.CustomerID, rm.OperatorID, rm.AmountCents,
	).Scan(&rm.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert reservation", err)
	}

	for _, slot := range reservation.Slots() {
		if _, err := tx.Exec(ctx, insertReservationSlotQuery, rm.ID, slot.ID); err != nil {
			return nil, infra.WrapRepoErr("failed to link reservation slot", err)
		}
		rm.Slots = append(rm.Slots, readmodel.SlotRM{
			ID:             slot.ID,
			AvailabilityID: slot.AvailabilityID,
			Kind:           reservation.Reservable().Kind.String(),
			StartAt:        slot.StartAt,
			EndAt:          slot.EndAt,
			Offered:        slot.Offered,
		})
	}

	return rm, nil
}
