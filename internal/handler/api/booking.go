package api

import (
	"net/http"

	"cinema-booking/internal/domain/booking"
	reqdto "cinema-booking/internal/handler/dto/request"
	resdto "cinema-booking/internal/handler/dto/response"
	"cinema-booking/internal/handler/httperr"
	"cinema-booking/internal/pkg/clock"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/pkg/errs"
	"cinema-booking/internal/usecase/commands"
	"cinema-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	seatQueries     queries.SeatQueries
	bookingQueries  queries.BookingQueries
	clock           clock.Clock
	cfg             config.BookingConfig
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	seatQueries queries.SeatQueries,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
	cfg config.BookingConfig,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		seatQueries:     seatQueries,
		bookingQueries:  bookingQueries,
		clock:           clk,
		cfg:             cfg,
	}
}

// GetAvailableSeats returns the advisory availability snapshot of a show.
// The list is not a promise: any seat in it may be taken by the time a
// booking for it lands.
func (h *BookingHandler) GetAvailableSeats(c *gin.Context) {
	showID, ok := parseUUIDParam(c, "id", "Invalid show ID format")
	if !ok {
		return
	}

	seats, err := h.seatQueries.AvailableSeats(c.Request.Context(), showID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.SeatListResponse{ShowID: showID, Seats: seats})
}

// LockSeats stamps a best-effort lease on the requested seats. Already
// booked or already leased seats are silently skipped; the response only
// tells the caller when the lease they may have gained will lapse.
func (h *BookingHandler) LockSeats(c *gin.Context) {
	showID, ok := parseUUIDParam(c, "id", "Invalid show ID format")
	if !ok {
		return
	}

	var req reqdto.LockSeatsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", false)
		return
	}

	if err := h.bookingCommands.SoftLock(c.Request.Context(), showID, req.SeatNos, req.Holder); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.LockSeatsResponse{
		Status:    "locked",
		ExpiresAt: h.clock.Now().Add(h.cfg.LeaseTTL),
	})
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", false)
		return
	}

	view, err := h.bookingCommands.BookSeats(
		c.Request.Context(),
		req.CustomerID,
		req.ShowID,
		req.SeatNos,
		booking.Channel(req.Channel),
	)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID, ok := parseUUIDParam(c, "id", "Invalid booking ID format")
	if !ok {
		return
	}

	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", false)
			return
		}
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), bookingID, booking.Actor(req.Actor), req.Reason); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.CancelBookingResponse{Status: "cancelled"})
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, ok := parseUUIDParam(c, "id", "Invalid booking ID format")
	if !ok {
		return
	}

	view, err := h.bookingQueries.BookingByID(c.Request.Context(), bookingID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func parseUUIDParam(c *gin.Context, name, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, false)
		return uuid.Nil, false
	}
	return id, true
}

// respondDomainError maps the engine's error taxonomy onto HTTP statuses.
// Messages survive for 404/409 state errors because they are built for end
// users; everything unexpected collapses to a generic 500. Sentinels are
// attached with errs.Mark, so matching must use errs.Is.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrShowNotFound),
		errs.Is(err, errs.ErrCustomerNotFound),
		errs.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), false)
	case errs.Is(err, errs.ErrSeatConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, errs.ErrSeatConflict.Error(), true)
	case errs.Is(err, errs.ErrCustomerInactive),
		errs.Is(err, errs.ErrSeatAlreadyBooked),
		errs.Is(err, errs.ErrSeatTemporarilyLocked),
		errs.Is(err, errs.ErrNoValidSeats),
		errs.Is(err, errs.ErrBookingAlreadyCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), false)
	case errs.Is(err, errs.ErrInvalidShowSpec):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), false)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", false)
	}
}
