package queries

import (
	"time"

	"github.com/google/uuid"
)

type SeatView struct {
	SeatNo      string     `json:"seat_no"`
	SeatType    string     `json:"seat_type"`
	State       string     `json:"state"`
	LeaseHolder *string    `json:"lease_holder,omitempty"`
	LeasedAt    *time.Time `json:"leased_at,omitempty"`
}

type BookingView struct {
	ID                 uuid.UUID  `json:"id"`
	CustomerID         *uuid.UUID `json:"customer_id,omitempty"`
	CustomerName       *string    `json:"customer_name,omitempty"`
	CustomerEmail      *string    `json:"customer_email,omitempty"`
	ShowID             uuid.UUID  `json:"show_id"`
	MovieTitle         string     `json:"movie_title"`
	HallNo             int        `json:"hall_no"`
	StartTime          time.Time  `json:"start_time"`
	SeatNos            []string   `json:"seat_nos"`
	BookingTime        time.Time  `json:"booking_time"`
	Channel            string     `json:"channel"`
	Status             string     `json:"status"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy        *string    `json:"cancelled_by,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
}
