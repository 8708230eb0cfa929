package request

import (
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/usecase"

	"github.com/google/uuid"
)

type SlotRequest struct {
	ID             uuid.UUID `json:"id"`
	AvailabilityID uuid.UUID `json:"availability_id" binding:"required"`
	StartAt        time.Time `json:"start_at" binding:"required"`
	EndAt          time.Time `json:"end_at" binding:"required"`
	Offered        bool      `json:"offered"`
}

// QuoteRequest describes a reservation to price (and, on the commit
// endpoint, to persist).
type QuoteRequest struct {
	CustomerID    uuid.UUID     `json:"customer_id" binding:"required"`
	OperatorID    uuid.UUID     `json:"operator_id" binding:"required"`
	Kind          string        `json:"kind" binding:"required"`
	ReservableID  uuid.UUID     `json:"reservable_id" binding:"required"`
	Slots         []SlotRequest `json:"slots" binding:"required,min=1"`
	PendingPlanID *uuid.UUID    `json:"pending_plan_id"`
	CouponCode    *string       `json:"coupon_code"`
}

func (r QuoteRequest) ToParams() usecase.QuoteParams {
	slots := make([]usecase.SlotRequest, 0, len(r.Slots))
	for _, s := range r.Slots {
		slots = append(slots, usecase.SlotRequest{
			ID:             s.ID,
			AvailabilityID: s.AvailabilityID,
			StartAt:        s.StartAt,
			EndAt:          s.EndAt,
			Offered:        s.Offered,
		})
	}
	return usecase.QuoteParams{
		CustomerID:    r.CustomerID,
		OperatorID:    r.OperatorID,
		Kind:          availability.Kind(r.Kind),
		ReservableID:  r.ReservableID,
		Slots:         slots,
		PendingPlanID: r.PendingPlanID,
		CouponCode:    r.CouponCode,
	}
}
