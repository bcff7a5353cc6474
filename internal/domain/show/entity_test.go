//go:build unit

package show_test

import (
	"testing"
	"time"

	"cinema-booking/internal/domain/seat"
	"cinema-booking/internal/domain/show"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShow(t *testing.T) {
	startTime := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		s, err := show.NewShow("Interstellar", 3, startTime, 150000)
		require.NoError(t, err)

		assert.Equal(t, "Interstellar", s.MovieTitle())
		assert.Equal(t, 3, s.HallNo())
		assert.Equal(t, startTime, s.StartTime())
		assert.Equal(t, int64(150000), s.PriceCents())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name       string
			title      string
			hallNo     int
			priceCents int64
			errIs      error
		}{
			{name: "empty title", title: "", hallNo: 1, priceCents: 100, errIs: show.ErrEmptyTitle},
			{name: "zero hall", title: "Dune", hallNo: 0, priceCents: 100, errIs: show.ErrInvalidHall},
			{name: "negative hall", title: "Dune", hallNo: -1, priceCents: 100, errIs: show.ErrInvalidHall},
			{name: "negative price", title: "Dune", hallNo: 1, priceCents: -1, errIs: show.ErrNegativePrice},
			{name: "free show is fine", title: "Dune", hallNo: 1, priceCents: 0},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := show.NewShow(tc.title, tc.hallNo, startTime, tc.priceCents)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestBuildSeatMap(t *testing.T) {
	startTime := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)

	newShow := func(t *testing.T) *show.Show {
		t.Helper()
		s, err := show.NewShow("Interstellar", 3, startTime, 150000)
		require.NoError(t, err)
		return s
	}

	t.Run("materializes all seats free", func(t *testing.T) {
		s := newShow(t)
		seats, err := s.BuildSeatMap([]show.SeatSpec{
			{No: "A1", Type: seat.TypeNormal},
			{No: "A2", Type: seat.TypeNormal},
			{No: "P1", Type: seat.TypePremium},
		})
		require.NoError(t, err)
		require.Len(t, seats, 3)

		for _, st := range seats {
			assert.Equal(t, s.ID(), st.ShowID())
			assert.Equal(t, seat.StateFree, st.State())
		}
		assert.Equal(t, seat.TypePremium, seats[2].SeatType())
	})

	t.Run("empty seat map rejected", func(t *testing.T) {
		_, err := newShow(t).BuildSeatMap(nil)
		assert.ErrorIs(t, err, show.ErrEmptySeatMap)
	})

	t.Run("duplicate seat number rejected", func(t *testing.T) {
		_, err := newShow(t).BuildSeatMap([]show.SeatSpec{
			{No: "A1", Type: seat.TypeNormal},
			{No: "A1", Type: seat.TypePremium},
		})
		assert.ErrorIs(t, err, show.ErrDuplicateSeatNo)
	})
}
