//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking-core/internal/domain/availability"
	"booking-core/internal/domain/cart"
	"booking-core/internal/handler/api"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/readmodel"
	"booking-core/tests/mock/usecasemock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQuote    *usecasemock.MockQuoteUseCase
	mockCheckout *usecasemock.MockCheckoutUseCase
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQuote = usecasemock.NewMockQuoteUseCase(s.mockCtrl)
	s.mockCheckout = usecasemock.NewMockCheckoutUseCase(s.mockCtrl)
	handler := api.NewCartHandler(s.mockQuote, s.mockCheckout)

	s.router.POST("/cart/quote", handler.Quote)
	s.router.POST("/reservations", handler.Commit)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) post(url string, body map[string]any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func validQuoteBody() map[string]any {
	return map[string]any{
		"customer_id":   uuid.New().String(),
		"operator_id":   uuid.New().String(),
		"kind":          "machines",
		"reservable_id": uuid.New().String(),
		"slots": []map[string]any{{
			"availability_id": uuid.New().String(),
			"start_at":        "2026-06-01T09:00:00Z",
			"end_at":          "2026-06-01T10:00:00Z",
		}},
	}
}

func (s *CartHandlerTestSuite) TestQuote() {
	s.Run("returns the price breakdown", func() {
		s.mockQuote.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(&readmodel.QuoteRM{
			ReservableID:      uuid.New(),
			ReservableName:    "laser cutter",
			AmountCents:       1000,
			BeforeCouponCents: 1000,
		}, nil)

		w := s.post("/cart/quote", validQuoteBody())
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "laser cutter")
	})

	s.Run("rejects a body without slots", func() {
		body := validQuoteBody()
		delete(body, "slots")

		w := s.post("/cart/quote", body)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("maps a missing customer to 404", func() {
		s.mockQuote.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrCustomerNotFound))

		w := s.post("/cart/quote", validQuoteBody())
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("maps a slot validation failure to 422 with the slot attached", func() {
		slot := availability.Slot{
			ID:      uuid.New(),
			StartAt: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
		}
		s.mockQuote.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, &cart.SlotError{Slot: slot, Reason: errs.ErrSlotRestrictedToSubscribers})

		w := s.post("/cart/quote", validQuoteBody())
		s.Equal(http.StatusUnprocessableEntity, w.Code)
		s.Contains(w.Body.String(), slot.ID.String())
	})
}

func (s *CartHandlerTestSuite) TestCommit() {
	s.Run("creates the reservation", func() {
		s.mockCheckout.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(&readmodel.ReservationRM{
			ID:          uuid.New(),
			AmountCents: 1000,
		}, nil)

		w := s.post("/reservations", validQuoteBody())
		s.Equal(http.StatusCreated, w.Code)
	})

	s.Run("maps a lost slot race to 409", func() {
		s.mockCheckout.EXPECT().Commit(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("slot taken"), errs.ErrSlotAlreadyReserved))

		w := s.post("/reservations", validQuoteBody())
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("unexpected failures stay opaque", func() {
		s.mockCheckout.EXPECT().Commit(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("connection refused"))

		w := s.post("/reservations", validQuoteBody())
		s.Equal(http.StatusInternalServerError, w.Code)
		s.NotContains(w.Body.String(), "connection refused")
	})
}
