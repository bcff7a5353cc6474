//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"cinema-booking/internal/domain/booking"
	"cinema-booking/internal/handler/api"
	resdto "cinema-booking/internal/handler/dto/response"
	"cinema-booking/internal/pkg/clock"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/pkg/errs"
	"cinema-booking/internal/usecase/queries"
	"cinema-booking/tests/common/httptest"
	commandsmock "cinema-booking/tests/mock/commands"
	queriesmock "cinema-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockSeats    *queriesmock.MockSeatQueries
	mockBookings *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	clock        *clock.MockClock
	cfg          config.BookingConfig
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockSeats = queriesmock.NewMockSeatQueries(s.mockCtrl)
	s.mockBookings = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC))
	s.cfg = config.BookingConfig{LeaseTTL: 10 * time.Minute, SweepThreshold: 2 * time.Minute, SweepInterval: time.Minute}
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockSeats, s.mockBookings, s.clock, s.cfg)

	s.router.GET("/shows/:id/seats", s.handler.GetAvailableSeats)
	s.router.POST("/shows/:id/seats/lock", s.handler.LockSeats)
	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
	s.router.POST("/bookings/:id/cancel", s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func sampleView(showID uuid.UUID, customerID *uuid.UUID) *queries.BookingView {
	name := "Sita Rai"
	email := "sita@example.com"
	v := &queries.BookingView{
		ID:          uuid.New(),
		CustomerID:  customerID,
		ShowID:      showID,
		MovieTitle:  "Interstellar",
		HallNo:      3,
		StartTime:   time.Date(2026, 8, 1, 20, 0, 0, 0, time.UTC),
		SeatNos:     []string{"A1", "A2"},
		BookingTime: time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC),
		Channel:     booking.ChannelOnline.String(),
		Status:      booking.StatusBooked.String(),
	}
	if customerID != nil {
		v.CustomerName = &name
		v.CustomerEmail = &email
	}
	return v
}

// ================================================================================
// GetAvailableSeats
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetAvailableSeats() {
	showID := uuid.New()

	s.Run("returns the snapshot", func() {
		s.SetupTest()
		seats := []queries.SeatView{
			{SeatNo: "A1", SeatType: "NORMAL", State: "FREE"},
			{SeatNo: "A2", SeatType: "PREMIUM", State: "LEASED"},
		}
		s.mockSeats.EXPECT().AvailableSeats(gomock.Any(), showID).Return(seats, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/shows/"+showID.String()+"/seats", nil)

		var resp resdto.SeatListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(showID, resp.ShowID)
		s.Len(resp.Seats, 2)
		s.Equal("A1", resp.Seats[0].SeatNo)
	})

	s.Run("invalid show id", func() {
		s.SetupTest()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/shows/not-a-uuid/seats", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid show ID")
	})

	s.Run("unexpected error collapses to 500", func() {
		s.SetupTest()
		s.mockSeats.EXPECT().AvailableSeats(gomock.Any(), showID).Return(nil, errs.New("boom"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/shows/"+showID.String()+"/seats", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// LockSeats
// ================================================================================

func (s *BookingHandlerTestSuite) TestLockSeats() {
	showID := uuid.New()
	url := "/shows/" + showID.String() + "/seats/lock"

	s.Run("lock succeeds with lease expiry", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().
			SoftLock(gomock.Any(), showID, []string{"A1", "A2"}, "holder-1").
			Return(nil)

		body := map[string]any{"seat_nos": []string{"A1", "A2"}, "holder": "holder-1"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var resp resdto.LockSeatsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("locked", resp.Status)
		s.Equal(s.clock.Now().Add(s.cfg.LeaseTTL), resp.ExpiresAt.UTC())
	})

	s.Run("missing holder rejected by binding", func() {
		s.SetupTest()
		body := map[string]any{"seat_nos": []string{"A1"}}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("no matching seats maps to conflict", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().
			SoftLock(gomock.Any(), showID, []string{"Z9"}, "holder-1").
			Return(errs.Mark(errs.New("no seats matched the request"), errs.ErrNoValidSeats))

		body := map[string]any{"seat_nos": []string{"Z9"}, "holder": "holder-1"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	showID := uuid.New()
	customerID := uuid.New()

	validBody := func() map[string]any {
		return map[string]any{
			"show_id":     showID.String(),
			"customer_id": customerID.String(),
			"seat_nos":    []string{"A1", "A2"},
			"channel":     "ONLINE",
		}
	}

	s.Run("booking created", func() {
		s.SetupTest()
		view := sampleView(showID, &customerID)
		s.mockCommands.EXPECT().
			BookSeats(gomock.Any(), &customerID, showID, []string{"A1", "A2"}, booking.ChannelOnline).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", validBody())

		var resp queries.BookingView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal([]string{"A1", "A2"}, resp.SeatNos)
		s.Equal("Interstellar", resp.MovieTitle)
	})

	s.Run("validation failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing show id", mutate: func(m map[string]any) { delete(m, "show_id") }},
			{name: "empty seat list", mutate: func(m map[string]any) { m["seat_nos"] = []string{} }},
			{name: "unknown channel", mutate: func(m map[string]any) { m["channel"] = "PHONE" }},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				body := validBody()
				tc.mutate(body)
				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body)
				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("domain errors map to statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{
				name:       "show not found",
				err:        errs.Mark(errs.New("show not found with ID x"), errs.ErrShowNotFound),
				expectCode: http.StatusNotFound,
				expectMsg:  "show not found",
			},
			{
				name:       "seat already booked",
				err:        errs.Mark(errs.New("seat A1 is already booked"), errs.ErrSeatAlreadyBooked),
				expectCode: http.StatusConflict,
				expectMsg:  "A1",
			},
			{
				name:       "seat temporarily locked",
				err:        errs.Mark(errs.New("seat A1 is temporarily locked, please refresh"), errs.ErrSeatTemporarilyLocked),
				expectCode: http.StatusConflict,
				expectMsg:  "temporarily locked",
			},
			{
				name:       "concurrency conflict",
				err:        errs.Mark(errs.New("conflict"), errs.ErrSeatConflict),
				expectCode: http.StatusConflict,
				expectMsg:  "no longer available",
			},
			{
				name:       "inactive customer",
				err:        errs.Mark(errs.New("customer account is deactivated"), errs.ErrCustomerInactive),
				expectCode: http.StatusConflict,
				expectMsg:  "deactivated",
			},
			{
				name:       "unexpected",
				err:        errs.Mark(errs.New("pool exhausted"), errs.ErrUnexpected),
				expectCode: http.StatusInternalServerError,
				expectMsg:  "Internal server error",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				s.mockCommands.EXPECT().
					BookSeats(gomock.Any(), gomock.Any(), showID, gomock.Any(), booking.ChannelOnline).
					Return(nil, tc.err)

				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", validBody())
				httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectMsg)
			})
		}
	})

	s.Run("conflict responses carry the retryable flag", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().
			BookSeats(gomock.Any(), gomock.Any(), showID, gomock.Any(), booking.ChannelOnline).
			Return(nil, errs.Mark(errs.New("conflict"), errs.ErrSeatConflict))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", validBody())
		s.Equal(http.StatusConflict, w.Code)
		s.Contains(w.Body.String(), `"retryable":true`)
	})
}

// ================================================================================
// GetBooking / CancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	showID := uuid.New()
	customerID := uuid.New()

	s.Run("returns the booking view", func() {
		s.SetupTest()
		view := sampleView(showID, &customerID)
		s.mockBookings.EXPECT().BookingByID(gomock.Any(), view.ID).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil)

		var resp queries.BookingView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
	})

	s.Run("unknown booking", func() {
		s.SetupTest()
		id := uuid.New()
		s.mockBookings.EXPECT().
			BookingByID(gomock.Any(), id).
			Return(nil, errs.Mark(errs.New("booking not found"), errs.ErrBookingNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("cancel with explicit actor and reason", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().
			CancelBooking(gomock.Any(), bookingID, booking.ActorStaff, "seat damage").
			Return(nil)

		body := map[string]any{"actor": "STAFF", "reason": "seat damage"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var resp resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("cancelled", resp.Status)
	})

	s.Run("cancel without body infers the actor downstream", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().
			CancelBooking(gomock.Any(), bookingID, booking.ActorUnknown, "").
			Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("already cancelled", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().
			CancelBooking(gomock.Any(), bookingID, booking.ActorUnknown, "").
			Return(errs.Mark(errs.New("booking is already cancelled"), errs.ErrBookingAlreadyCancelled))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already cancelled")
	})

	s.Run("invalid actor rejected by binding", func() {
		s.SetupTest()
		body := map[string]any{"actor": "INTRUDER"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}
