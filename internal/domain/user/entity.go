package user

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is the active (or expired) plan held by a member.
type Subscription struct {
	PlanID    uuid.UUID
	Interval  PlanInterval
	ExpiredAt time.Time
}

func (s *Subscription) Active(now time.Time) bool {
	return s != nil && !s.ExpiredAt.Before(now)
}

func (s *Subscription) Yearly() bool {
	return s != nil && s.Interval == IntervalYear
}

// User is a platform account as seen by the booking engine: the role
// drives calendar visibility and operator privileges, the group drives
// rate card selection, the tags drive availability filtering.
type User struct {
	ID                 uuid.UUID
	Role               Role
	GroupID            uuid.UUID
	TagIDs             []uuid.UUID
	Subscription       *Subscription
	CompletedTrainings int
}

func (u *User) Admin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) Manager() bool {
	return u != nil && u.Role == RoleManager
}

// Privileged reports whether the user holds a staff role.
func (u *User) Privileged() bool {
	return u.Admin() || u.Manager()
}

// PrivilegedOver reports whether the user is an admin, or a manager
// operating on behalf of a different customer. Managers booking for
// themselves are treated as plain members.
func (u *User) PrivilegedOver(customer *User) bool {
	if u == nil || customer == nil {
		return false
	}
	return u.Privileged() && u.ID != customer.ID
}

// SubscribedPlan returns the plan of the user's still-active
// subscription, or nil.
func (u *User) SubscribedPlan(now time.Time) *uuid.UUID {
	if u == nil || !u.Subscription.Active(now) {
		return nil
	}
	id := u.Subscription.PlanID
	return &id
}

// YearlySubscriber reports whether the user holds a yearly, still
// active subscription.
func (u *User) YearlySubscriber(now time.Time) bool {
	return u != nil && u.Subscription.Active(now) && u.Subscription.Yearly()
}
