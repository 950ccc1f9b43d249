// Package hotel contains the core domain types for room allocation.
//
// It defines Room (per-week occupancy of one room), Reservation (an immutable
// booking snapshot) and Hotel (the fixed room collection with the allocation
// scan). The package knows nothing about authorization, overflow queueing or
// audit logging; those behaviors wrap the allocation operation in
// internal/booking.
package hotel
