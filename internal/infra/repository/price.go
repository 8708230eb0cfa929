package repository

import (
	"context"

	"booking-core/internal/domain/pricing"
	"booking-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PriceRepository struct {
	db *pgxpool.Pool
}

func NewPriceRepository(db *pgxpool.Pool) *PriceRepository {
	return &PriceRepository{db: db}
}

const findRateCardQuery = `
SELECT p.id, p.group_id, p.plan_id, p.duration, p.amount
FROM prices p
WHERE p.reservable_id = $1
  AND p.group_id = $2
  AND (p.plan_id = $3 OR (p.plan_id IS NULL AND $3::uuid IS NULL))
ORDER BY p.duration DESC`

// FetchRateCard returns the duration-tiered prices for a (resource,
// group, plan) triple, base row included.
func (r *PriceRepository) FetchRateCard(ctx context.Context, reservableID, groupID uuid.UUID, planID *uuid.UUID) ([]pricing.Price, error) {
	rows, err := r.db.Query(ctx, findRateCardQuery, reservableID, groupID, planID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query rate card", err)
	}
	defer rows.Close()

	var card []pricing.Price
	for rows.Next() {
		var (
			p      pricing.Price
			amount int64
		)
		if err := rows.Scan(&p.ID, &p.GroupID, &p.PlanID, &p.DurationMinutes, &amount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan price", err)
		}
		p.Amount = pricing.NewMoney(amount)
		card = append(card, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate prices", err)
	}
	return card, nil
}
