package request

import (
	"github.com/google/uuid"
)

type LockSeatsRequest struct {
	SeatNos []string `json:"seat_nos" binding:"required,min=1,dive,required"`
	Holder  string   `json:"holder" binding:"required"`
}

type CreateBookingRequest struct {
	ShowID     uuid.UUID  `json:"show_id" binding:"required"`
	CustomerID *uuid.UUID `json:"customer_id"`
	SeatNos    []string   `json:"seat_nos" binding:"required,min=1,dive,required"`
	Channel    string     `json:"channel" binding:"required,oneof=ONLINE BOX_OFFICE"`
}

type CancelBookingRequest struct {
	// Actor is optional; when absent the engine infers CUSTOMER or SYSTEM
	// from the booking itself.
	Actor  string `json:"actor" binding:"omitempty,oneof=CUSTOMER STAFF SYSTEM"`
	Reason string `json:"reason"`
}
