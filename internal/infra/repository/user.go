package repository

import (
	"context"
	"time"

	"booking-core/internal/domain/user"
	"booking-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const findUserQuery = `
SELECT u.id, u.role, u.group_id, u.completed_trainings,
       s.plan_id, s.plan_interval, s.expired_at
FROM users u
LEFT JOIN subscriptions s ON s.user_id = u.id
WHERE u.id = $1`

const findUserTagsQuery = `
SELECT tag_id FROM user_tags WHERE user_id = $1`

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var (
		u            user.User
		role         string
		planID       *uuid.UUID
		planInterval *string
		expiredAt    *time.Time
	)
	err := r.db.QueryRow(ctx, findUserQuery, id).Scan(
		&u.ID, &role, &u.GroupID, &u.CompletedTrainings,
		&planID, &planInterval, &expiredAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	u.Role = user.Role(role)
	if planID != nil && planInterval != nil && expiredAt != nil {
		u.Subscription = &user.Subscription{
			PlanID:    *planID,
			Interval:  user.PlanInterval(*planInterval),
			ExpiredAt: *expiredAt,
		}
	}

	rows, err := r.db.Query(ctx, findUserTagsQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load user tags", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tagID uuid.UUID
		if err := rows.Scan(&tagID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user tag", err)
		}
		u.TagIDs = append(u.TagIDs, tagID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user tags", err)
	}

	return &u, nil
}
