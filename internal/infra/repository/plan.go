package repository

import (
	"context"

	"booking-core/internal/domain/cart"
	"booking-core/internal/domain/pricing"
	"booking-core/internal/domain/user"
	"booking-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlanRepository struct {
	db *pgxpool.Pool
}

func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{db: db}
}

const findPlanQuery = `
SELECT p.id, p.name, p.plan_interval, p.amount, p.group_id, p.disabled
FROM plans p
WHERE p.id = $1`

func (r *PlanRepository) FindPlan(ctx context.Context, id uuid.UUID) (*cart.Plan, error) {
	var (
		plan     cart.Plan
		interval string
		amount   int64
	)
	err := r.db.QueryRow(ctx, findPlanQuery, id).Scan(
		&plan.ID, &plan.Name, &interval, &amount, &plan.GroupID, &plan.Disabled,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find plan", err)
	}
	plan.Interval = user.PlanInterval(interval)
	plan.Amount = pricing.NewMoney(amount)
	return &plan, nil
}
