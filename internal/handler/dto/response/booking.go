package response

import (
	"time"

	"cinema-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// The queries views carry their own JSON shape; the response package only
// adds the thin envelopes the endpoints need on top of them.

type SeatListResponse struct {
	ShowID uuid.UUID          `json:"show_id"`
	Seats  []queries.SeatView `json:"seats"`
}

type LockSeatsResponse struct {
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CreateShowResponse struct {
	ID uuid.UUID `json:"id"`
}

type CancelBookingResponse struct {
	Status string `json:"status"`
}
