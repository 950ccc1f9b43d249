package booking

import (
	"context"
	"errors"

	"github.com/okuznetsov/hotel-desk/internal/domain/hotel"
)

// OverflowQueue converts the allocator's "no room available" failure into a
// queued outcome: the request is appended to the pending sequence exactly
// once and the call succeeds with Result.Queued set. Any other failure, and
// every success, passes through unchanged.
//
// The pending sequence is append-only and insertion-ordered; reservation
// cancellation does not exist, so entries are never removed.
type OverflowQueue struct {
	// next is the wrapped operation.
	next Allocator
	// pending holds queued reservations in arrival order.
	pending []hotel.Reservation
}

// NewOverflowQueue wraps next with overflow handling.
func NewOverflowQueue(next Allocator) *OverflowQueue {
	return &OverflowQueue{
		next: next,
	}
}

// Allocate delegates and absorbs hotel.ErrNoRoomAvailable.
func (q *OverflowQueue) Allocate(ctx context.Context, week int, occupant string) (Result, error) {
	result, err := q.next.Allocate(ctx, week, occupant)
	if err == nil {
		return result, nil
	}

	if !errors.Is(err, hotel.ErrNoRoomAvailable) {
		return Result{}, err
	}

	reservation := hotel.Reservation{
		RoomNumber: hotel.UnassignedRoom,
		Week:       week,
		Occupant:   occupant,
	}
	q.pending = append(q.pending, reservation)

	return Result{
		Reservation: reservation,
		Queued:      true,
	}, nil
}

// Pending returns a copy of the queued reservations in arrival order.
// Callers that allow overlapping allocation attempts must hold the chain's
// lock around this read (Chain.Pending does).
func (q *OverflowQueue) Pending() []hotel.Reservation {
	out := make([]hotel.Reservation, len(q.pending))
	copy(out, q.pending)

	return out
}
