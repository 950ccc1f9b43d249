package booking

import (
	"context"

	"github.com/okuznetsov/hotel-desk/internal/domain/hotel"
)

// Result is the outcome of one allocation attempt. A queued outcome is a
// success with a distinguishing payload, not a failure: the reservation is
// recorded in the overflow queue with an unassigned room number.
type Result struct {
	// Reservation describes what was booked or queued.
	Reservation hotel.Reservation
	// Queued is true when no room was free and the request went to the
	// overflow queue instead.
	Queued bool
}

// Allocator is the single operation all chain layers implement and wrap.
type Allocator interface {
	Allocate(ctx context.Context, week int, occupant string) (Result, error)
}

// coreAllocator adapts the hotel's allocation to the Allocator interface.
// It is the innermost layer of the chain.
type coreAllocator struct {
	// hotel owns the room collection.
	hotel *hotel.Hotel
}

// Allocate books the first free room for the week or fails with
// hotel.ErrNoRoomAvailable.
func (a coreAllocator) Allocate(_ context.Context, week int, occupant string) (Result, error) {
	room, err := a.hotel.Allocate(week, occupant)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Reservation: hotel.Reservation{
			RoomNumber: room.Number(),
			Week:       week,
			Occupant:   occupant,
		},
	}, nil
}
