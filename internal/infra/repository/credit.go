package repository

import (
	"context"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/credit"
	"booking-core/internal/infra"
	"booking-core/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CreditRepository implements both sides of the credit ledger: the
// read-only balances consumed by pricing, and the debits committed
// after a reservation is saved.
type CreditRepository struct {
	db    *pgxpool.Pool
	clock clock.Clock
}

func NewCreditRepository(db *pgxpool.Pool, clk clock.Clock) *CreditRepository {
	return &CreditRepository{db: db, clock: clk}
}

const findCreditQuery = `
SELECT c.id, c.kind, c.hours, uc.hours_used
FROM credits c
JOIN subscriptions s ON s.plan_id = c.plan_id AND s.user_id = $1 AND s.expired_at >= $3
LEFT JOIN user_credits uc ON uc.credit_id = c.id AND uc.user_id = $1
WHERE c.kind = $2`

const findPacksQuery = `
SELECT pp.id, pp.minutes, pp.minutes_used, pp.expires_at
FROM prepaid_packs pp
WHERE pp.user_id = $1 AND pp.reservable_id = $2
ORDER BY pp.created_at`

const updatePackQuery = `
UPDATE prepaid_packs SET minutes_used = $3 WHERE id = $2 AND user_id = $1`

const debitHoursQuery = `
INSERT INTO user_credits (user_id, credit_id, hours_used)
SELECT $1, c.id, $3 FROM credits c
JOIN subscriptions s ON s.plan_id = c.plan_id AND s.user_id = $1
WHERE c.kind = $2
ON CONFLICT (user_id, credit_id) DO UPDATE SET hours_used = user_credits.hours_used + $3`

// AvailableHours is the plan-granted free hours left this period for
// one resource kind.
func (r *CreditRepository) AvailableHours(ctx context.Context, customerID uuid.UUID, kind availability.Kind) (int, error) {
	var (
		c         credit.Credit
		kindValue string
		hoursUsed *int
	)
	err := r.db.QueryRow(ctx, findCreditQuery, customerID, kind.String(), r.clock.Now()).Scan(
		&c.ID, &kindValue, &c.Hours, &hoursUsed,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to query credit hours", err)
	}
	c.Kind = availability.Kind(kindValue)

	var used *credit.UserCredit
	if hoursUsed != nil {
		used = &credit.UserCredit{CreditID: c.ID, HoursUsed: *hoursUsed}
	}
	return credit.HoursRemaining(&c, used, false), nil
}

// AvailablePrepaidMinutes pools the customer's non-expired packs for
// one resource into a single minute balance.
func (r *CreditRepository) AvailablePrepaidMinutes(ctx context.Context, customerID, reservableID uuid.UUID) (int, error) {
	packs, err := r.FindPacks(ctx, customerID, reservableID)
	if err != nil {
		return 0, err
	}
	return credit.MinutesAvailable(packs, r.clock.Now()), nil
}

func (r *CreditRepository) FindPacks(ctx context.Context, customerID, reservableID uuid.UUID) ([]credit.PackOwnership, error) {
	rows, err := r.db.Query(ctx, findPacksQuery, customerID, reservableID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query prepaid packs", err)
	}
	defer rows.Close()

	var packs []credit.PackOwnership
	for rows.Next() {
		var p credit.PackOwnership
		if err := rows.Scan(&p.ID, &p.Minutes, &p.MinutesUsed, &p.ExpiresAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan prepaid pack", err)
		}
		packs = append(packs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate prepaid packs", err)
	}
	return packs, nil
}

func (r *CreditRepository) SavePacks(ctx context.Context, tx pgx.Tx, customerID uuid.UUID, packs []credit.PackOwnership) error {
	for _, p := range packs {
		if _, err := tx.Exec(ctx, updatePackQuery, customerID, p.ID, p.MinutesUsed); err != nil {
			return infra.WrapRepoErr("failed to update prepaid pack", err)
		}
	}
	return nil
}

func (r *CreditRepository) DebitHours(ctx context.Context, tx pgx.Tx, customerID uuid.UUID, kind availability.Kind, hours int) error {
	if _, err := tx.Exec(ctx, debitHoursQuery, customerID, kind.String(), hours); err != nil {
		return infra.WrapRepoErr("failed to debit credit hours", err)
	}
	return nil
}
