//go:build unit

package builder

import (
	"time"

	"booking-core/internal/domain/user"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID                 uuid.UUID
	Role               user.Role
	GroupID            uuid.UUID
	TagIDs             []uuid.UUID
	Subscription       *user.Subscription
	CompletedTrainings int
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:      uuid.New(),
		Role:    user.RoleMember,
		GroupID: uuid.New(),
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) WithRole(role user.Role) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) WithGroup(groupID uuid.UUID) *UserBuilder {
	b.GroupID = groupID
	return b
}

func (b *UserBuilder) WithTags(tagIDs ...uuid.UUID) *UserBuilder {
	b.TagIDs = tagIDs
	return b
}

func (b *UserBuilder) WithSubscription(planID uuid.UUID, interval user.PlanInterval, expiredAt time.Time) *UserBuilder {
	b.Subscription = &user.Subscription{
		PlanID:    planID,
		Interval:  interval,
		ExpiredAt: expiredAt,
	}
	return b
}

func (b *UserBuilder) WithCompletedTrainings(n int) *UserBuilder {
	b.CompletedTrainings = n
	return b
}

func (b *UserBuilder) Build() *user.User {
	return &user.User{
		ID:                 b.ID,
		Role:               b.Role,
		GroupID:            b.GroupID,
		TagIDs:             b.TagIDs,
		Subscription:       b.Subscription,
		CompletedTrainings: b.CompletedTrainings,
	}
}
