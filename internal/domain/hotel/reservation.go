package hotel

import "fmt"

// UnassignedRoom is the room number of a reservation that is waiting in the
// overflow queue and has not been bound to a room yet.
const UnassignedRoom = -1

// Reservation is an immutable snapshot of one booking. It is a reporting
// value and is never mutated after creation.
type Reservation struct {
	// RoomNumber is the room the reservation is bound to,
	// or UnassignedRoom for queued reservations.
	RoomNumber int
	// Week is the booked week, in [0, WeeksInYear).
	Week int
	// Occupant is the name the reservation was made for.
	Occupant string
}

// String renders the reservation for session output and audit records.
func (r Reservation) String() string {
	if r.RoomNumber == UnassignedRoom {
		return fmt.Sprintf("week %d for %s (awaiting a room)", r.Week, r.Occupant)
	}

	return fmt.Sprintf("room %d, week %d, %s", r.RoomNumber, r.Week, r.Occupant)
}
