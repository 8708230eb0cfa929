package api

import (
	"errors"
	"net/http"

	"booking-core/internal/domain/cart"
	reqdto "booking-core/internal/handler/dto/request"
	"booking-core/internal/handler/httperr"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	quoteUseCase    usecase.QuoteUseCase
	checkoutUseCase usecase.CheckoutUseCase
}

func NewCartHandler(quoteUseCase usecase.QuoteUseCase, checkoutUseCase usecase.CheckoutUseCase) *CartHandler {
	return &CartHandler{
		quoteUseCase:    quoteUseCase,
		checkoutUseCase: checkoutUseCase,
	}
}

// Quote validates a reservation request and returns its price
// breakdown without persisting anything.
func (h *CartHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format", nil)
		return
	}

	quote, err := h.quoteUseCase.Quote(c.Request.Context(), req.ToParams())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// Commit persists a validated reservation and debits credit balances.
func (h *CartHandler) Commit(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request format", nil)
		return
	}

	reservation, err := h.checkoutUseCase.Commit(c.Request.Context(), req.ToParams())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

func (h *CartHandler) renderError(c *gin.Context, err error) {
	var slotErr *cart.SlotError
	if errors.As(err, &slotErr) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, slotErr.Reason.Error(), gin.H{
			"slot_id":  slotErr.Slot.ID,
			"start_at": slotErr.Slot.StartAt,
		})
		return
	}

	switch {
	case errors.Is(err, errs.ErrSlotAlreadyReserved):
		httperr.AbortWithError(c, http.StatusConflict, err, "slot is reserved", nil)
	case errors.Is(err, errs.ErrCustomerNotFound),
		errors.Is(err, errs.ErrOperatorNotFound),
		errors.Is(err, errs.ErrReservableNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "resource not found", nil)
	case errors.Is(err, errs.ErrInvalidReservableType):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid reservable type", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error", nil)
	}
}
