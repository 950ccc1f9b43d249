package hotel

// Hotel owns a fixed collection of rooms and finds and books free ones.
// Room numbers match their indices in the collection; membership never
// changes after construction.
//
// Hotel itself is not safe for concurrent use. Callers that accept
// overlapping allocation attempts must serialize them (booking.Chain does).
type Hotel struct {
	// rooms is the fixed room collection, index == room number.
	rooms []*Room
}

// New creates a hotel with roomCount empty rooms numbered from zero.
func New(roomCount int) (*Hotel, error) {
	if roomCount <= 0 {
		return nil, errRoomCountInvalid
	}

	rooms := make([]*Room, roomCount)
	for i := range rooms {
		rooms[i] = NewRoom(i)
	}

	return &Hotel{
		rooms: rooms,
	}, nil
}

// RoomCount returns the number of rooms the hotel manages.
func (h *Hotel) RoomCount() int {
	return len(h.rooms)
}

// FindFreeRoom scans rooms in ascending room-number order and returns the
// first room free for the week. The boolean is false when every room is
// occupied for that week. Pure read; the lowest free room number always wins.
func (h *Hotel) FindFreeRoom(week int) (*Room, bool) {
	for _, room := range h.rooms {
		if room.IsFree(week) {
			return room, true
		}
	}

	return nil, false
}

// Allocate books the first free room for the week and returns it. When no
// room is free it fails with ErrNoRoomAvailable and no room state changes.
func (h *Hotel) Allocate(week int, occupant string) (*Room, error) {
	room, ok := h.FindFreeRoom(week)
	if !ok {
		return nil, ErrNoRoomAvailable
	}

	if err := room.Book(week, occupant); err != nil {
		// FindFreeRoom just confirmed the slot free, so this is a defect.
		return nil, err
	}

	return room, nil
}

// AllReservations concatenates every room's reservations, room order
// ascending, week order ascending within a room.
func (h *Hotel) AllReservations() []Reservation {
	var reservations []Reservation

	for _, room := range h.rooms {
		reservations = append(reservations, room.Reservations()...)
	}

	return reservations
}
