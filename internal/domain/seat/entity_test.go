//go:build unit

package seat_test

import (
	"testing"
	"time"

	"cinema-booking/internal/domain/seat"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const leaseTTL = 10 * time.Minute

func newFreeSeat(t *testing.T) *seat.Seat {
	t.Helper()
	s, err := seat.NewSeat(uuid.New(), "A1", seat.TypeNormal)
	require.NoError(t, err)
	return s
}

func TestNewSeat(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		s, err := seat.NewSeat(uuid.New(), "A1", seat.TypePremium)
		require.NoError(t, err)

		assert.Equal(t, "A1", s.SeatNo())
		assert.Equal(t, seat.TypePremium, s.SeatType())
		assert.Equal(t, seat.StateFree, s.State())
		assert.Nil(t, s.LeaseHolder())
		assert.Nil(t, s.BookedAt())
	})

	t.Run("empty seat number", func(t *testing.T) {
		_, err := seat.NewSeat(uuid.New(), "", seat.TypeNormal)
		assert.ErrorIs(t, err, seat.ErrInvalidSeatNo)
	})

	t.Run("invalid seat type", func(t *testing.T) {
		_, err := seat.NewSeat(uuid.New(), "A1", seat.Type("RECLINER"))
		assert.ErrorIs(t, err, seat.ErrInvalidType)
	})
}

func TestSeatBook(t *testing.T) {
	now := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)

	t.Run("free seat books", func(t *testing.T) {
		s := newFreeSeat(t)

		require.NoError(t, s.Book("alice", now, leaseTTL))
		assert.Equal(t, seat.StateBooked, s.State())
		require.NotNil(t, s.BookedAt())
		assert.Equal(t, now, *s.BookedAt())
	})

	t.Run("booked seat rejects second booking", func(t *testing.T) {
		s := newFreeSeat(t)
		require.NoError(t, s.Book("alice", now, leaseTTL))

		err := s.Book("bob", now.Add(time.Minute), leaseTTL)
		assert.ErrorIs(t, err, seat.ErrAlreadyBooked)
		assert.Equal(t, seat.StateBooked, s.State())
	})

	t.Run("fresh lease by another holder blocks booking", func(t *testing.T) {
		s := newFreeSeat(t)
		s.Lease("alice", now)

		err := s.Book("bob", now.Add(time.Minute), leaseTTL)
		assert.ErrorIs(t, err, seat.ErrLeaseHeld)
		assert.Equal(t, seat.StateLeased, s.State())
	})

	t.Run("own lease does not block booking", func(t *testing.T) {
		s := newFreeSeat(t)
		s.Lease("alice", now)

		require.NoError(t, s.Book("alice", now.Add(time.Minute), leaseTTL))
		assert.Equal(t, seat.StateBooked, s.State())
	})

	t.Run("expired lease does not block booking", func(t *testing.T) {
		s := newFreeSeat(t)
		s.Lease("alice", now)

		require.NoError(t, s.Book("bob", now.Add(leaseTTL+time.Second), leaseTTL))
		assert.Equal(t, seat.StateBooked, s.State())
	})

	t.Run("lease expiry boundary still blocks", func(t *testing.T) {
		s := newFreeSeat(t)
		s.Lease("alice", now)

		// one instant before expiry the lease is still fresh
		err := s.Book("bob", now.Add(leaseTTL-time.Nanosecond), leaseTTL)
		assert.ErrorIs(t, err, seat.ErrLeaseHeld)
	})
}

func TestSeatLease(t *testing.T) {
	now := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)

	t.Run("lease stamps holder and timestamp", func(t *testing.T) {
		s := newFreeSeat(t)
		s.Lease("alice", now)

		assert.Equal(t, seat.StateLeased, s.State())
		require.NotNil(t, s.LeaseHolder())
		assert.Equal(t, "alice", *s.LeaseHolder())
		assert.True(t, s.LeaseFresh(now.Add(time.Minute), leaseTTL))
	})

	t.Run("lease on booked seat is silently skipped", func(t *testing.T) {
		s := newFreeSeat(t)
		require.NoError(t, s.Book("alice", now, leaseTTL))

		s.Lease("bob", now.Add(time.Minute))
		assert.Equal(t, seat.StateBooked, s.State())
		assert.Equal(t, "alice", *s.LeaseHolder())
	})

	t.Run("re-lease overwrites previous holder", func(t *testing.T) {
		s := newFreeSeat(t)
		s.Lease("alice", now)
		s.Lease("bob", now.Add(time.Minute))

		assert.Equal(t, "bob", *s.LeaseHolder())
	})
}

func TestSeatAvailable(t *testing.T) {
	now := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)

	t.Run("free seat is available", func(t *testing.T) {
		s := newFreeSeat(t)
		assert.True(t, s.Available(now, leaseTTL))
	})

	t.Run("booked seat is never available", func(t *testing.T) {
		s := newFreeSeat(t)
		require.NoError(t, s.Book("alice", now, leaseTTL))
		assert.False(t, s.Available(now.Add(24*time.Hour), leaseTTL))
	})

	t.Run("freshly leased seat is unavailable", func(t *testing.T) {
		s := newFreeSeat(t)
		s.Lease("alice", now)
		assert.False(t, s.Available(now.Add(time.Minute), leaseTTL))
	})

	t.Run("stale lease makes seat available again", func(t *testing.T) {
		s := newFreeSeat(t)
		s.Lease("alice", now)
		assert.True(t, s.Available(now.Add(leaseTTL+time.Second), leaseTTL))
	})
}

func TestSeatRelease(t *testing.T) {
	now := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)

	t.Run("release returns booked seat to free", func(t *testing.T) {
		s := newFreeSeat(t)
		require.NoError(t, s.Book("alice", now, leaseTTL))

		require.NoError(t, s.Release())
		assert.Equal(t, seat.StateFree, s.State())
		assert.Nil(t, s.LeaseHolder())
		assert.Nil(t, s.LeasedAt())
		assert.Nil(t, s.BookedAt())
	})

	t.Run("release on non-booked seat errors", func(t *testing.T) {
		s := newFreeSeat(t)
		assert.ErrorIs(t, s.Release(), seat.ErrNotBooked)

		s.Lease("alice", now)
		assert.ErrorIs(t, s.Release(), seat.ErrNotBooked)
	})
}

func TestSeatClearLease(t *testing.T) {
	now := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)

	t.Run("clears a leased seat", func(t *testing.T) {
		s := newFreeSeat(t)
		s.Lease("alice", now)

		assert.True(t, s.ClearLease())
		assert.Equal(t, seat.StateFree, s.State())
		assert.Nil(t, s.LeaseHolder())
	})

	t.Run("never touches a booked seat", func(t *testing.T) {
		s := newFreeSeat(t)
		require.NoError(t, s.Book("alice", now, leaseTTL))

		assert.False(t, s.ClearLease())
		assert.Equal(t, seat.StateBooked, s.State())
	})

	t.Run("no-op on a free seat", func(t *testing.T) {
		s := newFreeSeat(t)
		assert.False(t, s.ClearLease())
	})
}
