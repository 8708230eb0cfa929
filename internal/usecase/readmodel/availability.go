package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type SlotRM struct {
	ID             uuid.UUID `json:"id"`
	AvailabilityID uuid.UUID `json:"availability_id"`
	Kind           string    `json:"kind"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	Offered        bool      `json:"offered"`
}

type AvailabilityRM struct {
	ID      uuid.UUID   `json:"id"`
	Kind    string      `json:"kind"`
	StartAt time.Time   `json:"start_at"`
	EndAt   time.Time   `json:"end_at"`
	Full    bool        `json:"full"`
	TagIDs  []uuid.UUID `json:"tag_ids"`
	Slots   []SlotRM    `json:"slots"`
}

// CalendarRM is the result of a calendar query: slots at level "slot",
// whole availabilities at level "availability".
type CalendarRM struct {
	Slots          []SlotRM         `json:"slots,omitempty"`
	Availabilities []AvailabilityRM `json:"availabilities,omitempty"`
}
