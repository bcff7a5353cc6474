package show

import (
	"errors"
	"time"

	"cinema-booking/internal/domain/seat"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("movie title must not be empty")
	ErrInvalidHall     = errors.New("hall number must be positive")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrEmptySeatMap    = errors.New("seat map must not be empty")
	ErrDuplicateSeatNo = errors.New("duplicate seat number in seat map")
)

// Show owns its seat map; the map is fixed at creation and seats are never
// deleted while the show exists.
type Show struct {
	id         uuid.UUID
	movieTitle string
	hallNo     int
	startTime  time.Time
	priceCents int64
}

type SeatSpec struct {
	No   string
	Type seat.Type
}

func NewShow(movieTitle string, hallNo int, startTime time.Time, priceCents int64) (*Show, error) {
	if movieTitle == "" {
		return nil, ErrEmptyTitle
	}
	if hallNo <= 0 {
		return nil, ErrInvalidHall
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Show{
		id:         uuid.New(),
		movieTitle: movieTitle,
		hallNo:     hallNo,
		startTime:  startTime,
		priceCents: priceCents,
	}, nil
}

func Reconstruct(id uuid.UUID, movieTitle string, hallNo int, startTime time.Time, priceCents int64) *Show {
	return &Show{
		id:         id,
		movieTitle: movieTitle,
		hallNo:     hallNo,
		startTime:  startTime,
		priceCents: priceCents,
	}
}

// BuildSeatMap materializes the immutable seat map for a new show.
func (s *Show) BuildSeatMap(specs []SeatSpec) ([]*seat.Seat, error) {
	if len(specs) == 0 {
		return nil, ErrEmptySeatMap
	}
	seen := make(map[string]struct{}, len(specs))
	seats := make([]*seat.Seat, 0, len(specs))
	for _, spec := range specs {
		if _, dup := seen[spec.No]; dup {
			return nil, ErrDuplicateSeatNo
		}
		seen[spec.No] = struct{}{}

		st, err := seat.NewSeat(s.id, spec.No, spec.Type)
		if err != nil {
			return nil, err
		}
		seats = append(seats, st)
	}
	return seats, nil
}

func (s *Show) ID() uuid.UUID        { return s.id }
func (s *Show) MovieTitle() string   { return s.movieTitle }
func (s *Show) HallNo() int          { return s.hallNo }
func (s *Show) StartTime() time.Time { return s.startTime }
func (s *Show) PriceCents() int64    { return s.priceCents }
