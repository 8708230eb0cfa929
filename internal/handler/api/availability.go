package api

import (
	"net/http"
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/handler/httperr"
	"booking-core/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityUseCase: availabilityUseCase}
}

// Index lists the slots or availabilities visible to the viewer within
// a time range. The viewer is identified by query parameter; resolving
// it from an authenticated session is the API gateway's concern.
func (h *AvailabilityHandler) Index(c *gin.Context) {
	rangeStart, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid start parameter", nil)
		return
	}
	rangeEnd, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid end parameter", nil)
		return
	}

	params := usecase.IndexParams{
		Level:         availability.LevelSlot,
		RangeStart:    rangeStart,
		RangeEnd:      rangeEnd,
		MachineIDs:    parseIDList(c.QueryArray("machine_id")),
		SpaceIDs:      parseIDList(c.QueryArray("space_id")),
		TrainingIDs:   parseIDList(c.QueryArray("training_id")),
		IncludeEvents: c.Query("events") == "true",
	}
	if c.Query("level") == string(availability.LevelAvailability) {
		params.Level = availability.LevelAvailability
	}
	if viewer := c.Query("viewer_id"); viewer != "" {
		id, err := uuid.Parse(viewer)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid viewer_id parameter", nil)
			return
		}
		params.ViewerID = &id
	}

	calendar, err := h.availabilityUseCase.Index(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "failed to load calendar", nil)
		return
	}

	c.JSON(http.StatusOK, calendar)
}

func parseIDList(values []string) []uuid.UUID {
	var ids []uuid.UUID
	for _, v := range values {
		if id, err := uuid.Parse(v); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
