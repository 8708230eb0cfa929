package repository

import (
	"context"
	"errors"
	"time"

	"booking-core/internal/domain/pricing"
	"booking-core/internal/infra"
	"booking-core/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrCouponExpired = errors.New("coupon is expired")

// CouponRepository applies a coupon code to a total. The pricing
// engine consumes this as a black box; eligibility rules beyond
// expiry live with the coupon management service.
type CouponRepository struct {
	db    *pgxpool.Pool
	clock clock.Clock
}

func NewCouponRepository(db *pgxpool.Pool, clk clock.Clock) *CouponRepository {
	return &CouponRepository{db: db, clock: clk}
}

const findCouponQuery = `
SELECT c.percent_off, c.amount_off, c.valid_until
FROM coupons c
WHERE c.code = $1`

func (r *CouponRepository) Apply(ctx context.Context, total pricing.Money, code string, customerID uuid.UUID) (pricing.Money, error) {
	var (
		percentOff *int
		amountOff  *int64
		validUntil *time.Time
	)
	err := r.db.QueryRow(ctx, findCouponQuery, code).Scan(&percentOff, &amountOff, &validUntil)
	if err != nil {
		if err == pgx.ErrNoRows {
			return pricing.Money{}, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return pricing.Money{}, infra.WrapRepoErr("failed to find coupon", err)
	}
	if validUntil != nil && validUntil.Before(r.clock.Now()) {
		return pricing.Money{}, ErrCouponExpired
	}

	discounted := total.Cents()
	if amountOff != nil {
		discounted -= *amountOff
	}
	if percentOff != nil {
		discounted = discounted * int64(100-*percentOff) / 100
	}
	if discounted < 0 {
		discounted = 0
	}
	return pricing.NewMoney(discounted), nil
}
