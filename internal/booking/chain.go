package booking

import (
	"context"
	"sync"

	"github.com/okuznetsov/hotel-desk/internal/audit"
	"github.com/okuznetsov/hotel-desk/internal/auth"
	"github.com/okuznetsov/hotel-desk/internal/domain/hotel"
)

// Chain is the composed allocation operation the desk exposes to callers.
// It wires the layers in their fixed order and serializes calls with one
// mutex held for the duration of a single attempt, so overlapping callers
// cannot double-book a room-week or duplicate an overflow entry. The same
// lock guards the read paths.
type Chain struct {
	// mu serializes allocation attempts and state reads.
	mu sync.Mutex
	// hotel owns room state, read for reservation listings.
	hotel *hotel.Hotel
	// overflow is retained for listing queued reservations.
	overflow *OverflowQueue
	// op is the outermost layer of the composed operation.
	op Allocator
}

// NewChain composes AuditLogger(Authorizer(OverflowQueue(core))) over the
// provided hotel. The ordering is load-bearing; no other wiring preserves
// the contract that denied callers leave no trace in room or queue state
// while still appearing on the audit trail.
func NewChain(h *hotel.Hotel, capability auth.Capability, sink audit.Sink) *Chain {
	overflow := NewOverflowQueue(coreAllocator{hotel: h})
	guard := NewAuthorizer(overflow, capability)

	return &Chain{
		hotel:    h,
		overflow: overflow,
		op:       NewAuditLogger(guard, sink),
	}
}

// Allocate runs one attempt through the full chain.
func (c *Chain) Allocate(ctx context.Context, week int, occupant string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.op.Allocate(ctx, week, occupant)
}

// Reservations lists every bound reservation, room order ascending, week
// order ascending within a room.
func (c *Chain) Reservations() []hotel.Reservation {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hotel.AllReservations()
}

// Pending lists the overflow-queued reservations in arrival order.
func (c *Chain) Pending() []hotel.Reservation {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.overflow.Pending()
}

// RoomCount returns the number of rooms behind the chain.
func (c *Chain) RoomCount() int {
	return c.hotel.RoomCount()
}
