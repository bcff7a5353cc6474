package shared

import (
	"time"

	"github.com/google/uuid"
)

// Snapshots returned by the external collaborator lookups.

type CustomerSnapshot struct {
	ID     uuid.UUID
	Name   string
	Email  string
	Active bool
}

type ShowSnapshot struct {
	ID         uuid.UUID
	MovieTitle string
	HallNo     int
	StartTime  time.Time
	PriceCents int64
}
