package hotel

import "errors"

var (
	// ErrAlreadyBooked indicates an attempt to book a room-week that is
	// already occupied. The allocator only books rooms it has confirmed
	// free, so seeing this error through the allocation path is a defect.
	ErrAlreadyBooked = errors.New("room is already booked for that week")

	// ErrNoRoomAvailable indicates that no free room exists for the
	// requested week.
	ErrNoRoomAvailable = errors.New("no room available")

	// errRoomCountInvalid is returned when a hotel is created with a
	// non-positive number of rooms.
	errRoomCountInvalid = errors.New("room count must be positive")
)
