package repository

import (
	"context"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/cart"
	"booking-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservableRepository struct {
	db *pgxpool.Pool
}

func NewReservableRepository(db *pgxpool.Pool) *ReservableRepository {
	return &ReservableRepository{db: db}
}

const findReservableQuery = `
SELECT r.id, r.name, r.kind, r.disabled
FROM reservables r
WHERE r.id = $1 AND r.kind = $2`

func (r *ReservableRepository) FindReservable(ctx context.Context, kind availability.Kind, id uuid.UUID) (*cart.Reservable, error) {
	var (
		reservable cart.Reservable
		kindValue  string
	)
	err := r.db.QueryRow(ctx, findReservableQuery, id, kind.String()).Scan(
		&reservable.ID, &reservable.Name, &kindValue, &reservable.Disabled,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("reservable not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservable", err)
	}
	reservable.Kind = availability.Kind(kindValue)
	return &reservable, nil
}
