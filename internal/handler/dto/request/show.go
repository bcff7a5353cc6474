package request

import (
	"time"
)

type SeatSpec struct {
	No   string `json:"no" binding:"required"`
	Type string `json:"type" binding:"required,oneof=NORMAL PREMIUM"`
}

type CreateShowRequest struct {
	MovieTitle string     `json:"movie_title" binding:"required"`
	HallNo     int        `json:"hall_no" binding:"required,min=1"`
	StartTime  time.Time  `json:"start_time" binding:"required"`
	PriceCents int64      `json:"price_cents" binding:"required,min=0"`
	Seats      []SeatSpec `json:"seats" binding:"required,min=1,dive"`
}
