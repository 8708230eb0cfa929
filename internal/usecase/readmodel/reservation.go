package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ReservationRM struct {
	ID             uuid.UUID `json:"id"`
	ReservableID   uuid.UUID `json:"reservable_id"`
	ReservableName string    `json:"reservable_name"`
	CustomerID     uuid.UUID `json:"customer_id"`
	OperatorID     uuid.UUID `json:"operator_id"`
	AmountCents    int64     `json:"amount"`
	Slots          []SlotRM  `json:"slots"`
	CreatedAt      time.Time `json:"created_at"`
}
