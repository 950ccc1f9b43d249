package hotel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRoom_BookAndIsFree verifies booking flips a free slot to occupied exactly once.
func TestRoom_BookAndIsFree(t *testing.T) {
	t.Parallel()

	room := NewRoom(4)
	require.Equal(t, 4, room.Number())
	require.True(t, room.IsFree(10))

	require.NoError(t, room.Book(10, "fred"))
	require.False(t, room.IsFree(10))

	// Same slot again: fails, state unchanged.
	err := room.Book(10, "bob")
	require.ErrorIs(t, err, ErrAlreadyBooked)

	reservations := room.Reservations()
	require.Len(t, reservations, 1)
	require.Equal(t, "fred", reservations[0].Occupant)

	// Other slots stay free.
	require.True(t, room.IsFree(11))
}

// TestRoom_ReservationsOrderedByWeek ensures listing is ascending by week regardless of booking order.
func TestRoom_ReservationsOrderedByWeek(t *testing.T) {
	t.Parallel()

	room := NewRoom(0)
	require.NoError(t, room.Book(30, "carl"))
	require.NoError(t, room.Book(5, "dora"))
	require.NoError(t, room.Book(17, "eve"))

	reservations := room.Reservations()
	require.Len(t, reservations, 3)
	require.Equal(t, []int{5, 17, 30}, []int{reservations[0].Week, reservations[1].Week, reservations[2].Week})

	for _, r := range reservations {
		require.Equal(t, 0, r.RoomNumber)
	}
}

// TestReservationString covers both bound and queued renderings.
func TestReservationString(t *testing.T) {
	t.Parallel()

	bound := Reservation{
		RoomNumber: 2,
		Week:       7,
		Occupant:   "fred",
	}
	require.Equal(t, "room 2, week 7, fred", bound.String())

	queued := Reservation{
		RoomNumber: UnassignedRoom,
		Week:       7,
		Occupant:   "fred",
	}
	require.Contains(t, queued.String(), "awaiting a room")
}
