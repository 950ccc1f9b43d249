package hotel

// WeeksInYear is the number of weekly slots every room has.
const WeeksInYear = 52

// Room owns the per-week occupancy of a single room. A week slot holds at
// most one occupant name; the empty string marks a free slot.
//
// Week arguments must lie in [0, WeeksInYear). Out-of-range access is a
// caller bug, not a domain error, and panics via the slot array.
type Room struct {
	// number is the stable room identity, equal to the room's position
	// in the hotel's collection.
	number int
	// weeks holds one occupant name per week of the year.
	weeks [WeeksInYear]string
}

// NewRoom creates an empty room with the provided number.
func NewRoom(number int) *Room {
	return &Room{
		number: number,
	}
}

// Number returns the stable room identity.
func (r *Room) Number() int {
	return r.number
}

// IsFree reports whether no occupant is recorded for the week.
func (r *Room) IsFree(week int) bool {
	return r.weeks[week] == ""
}

// Book records the occupant for the week. If the week is already occupied it
// fails with ErrAlreadyBooked and leaves the room unchanged.
func (r *Room) Book(week int, occupant string) error {
	if !r.IsFree(week) {
		return ErrAlreadyBooked
	}

	r.weeks[week] = occupant

	return nil
}

// Reservations produces one Reservation per occupied week, ordered by
// increasing week number. Pure read.
func (r *Room) Reservations() []Reservation {
	var reservations []Reservation

	for week, occupant := range r.weeks {
		if occupant == "" {
			continue
		}

		reservations = append(reservations, Reservation{
			RoomNumber: r.number,
			Week:       week,
			Occupant:   occupant,
		})
	}

	return reservations
}
