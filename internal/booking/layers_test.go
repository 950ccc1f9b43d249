package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okuznetsov/hotel-desk/internal/audit"
	"github.com/okuznetsov/hotel-desk/internal/auth"
	"github.com/okuznetsov/hotel-desk/internal/domain/hotel"
)

var errSinkBroken = errors.New("sink broken")

// fakeAllocator is a scripted inner layer that counts how often it is invoked.
type fakeAllocator struct {
	// result is returned on every call.
	result Result
	// err is returned on every call.
	err error
	// calls counts invocations.
	calls int
}

// Allocate returns the scripted outcome.
func (f *fakeAllocator) Allocate(context.Context, int, string) (Result, error) {
	f.calls++

	return f.result, f.err
}

// staticCapability grants the booking privilege to listed names.
type staticCapability map[string]bool

// MayBook reports the scripted privilege.
func (c staticCapability) MayBook(p auth.Principal) bool { return c[p.Name] }

// failingSink rejects every append.
type failingSink struct{}

// Append always fails.
func (failingSink) Append(string) error { return errSinkBroken }

// TestAuthorizer_DeniesWithoutTouchingNext ensures a rejected call
// short-circuits before the wrapped operation runs.
func TestAuthorizer_DeniesWithoutTouchingNext(t *testing.T) {
	t.Parallel()

	next := new(fakeAllocator)
	guard := NewAuthorizer(next, staticCapability{"anna": true})

	// No principal on the context.
	_, err := guard.Allocate(context.Background(), 0, "fred")
	require.ErrorIs(t, err, auth.ErrNotAuthorized)
	require.Zero(t, next.calls)

	// Principal without the privilege.
	ctx := auth.WithPrincipal(context.Background(), auth.Principal{Name: "guest"})

	_, err = guard.Allocate(ctx, 0, "fred")
	require.ErrorIs(t, err, auth.ErrNotAuthorized)
	require.Zero(t, next.calls)
}

// TestAuthorizer_DelegatesVerbatim ensures authorized calls pass results and
// failures through unchanged.
func TestAuthorizer_DelegatesVerbatim(t *testing.T) {
	t.Parallel()

	ctx := auth.WithPrincipal(context.Background(), auth.Principal{Name: "anna"})

	next := &fakeAllocator{
		result: Result{
			Reservation: hotel.Reservation{RoomNumber: 1, Week: 5, Occupant: "fred"},
		},
	}
	guard := NewAuthorizer(next, staticCapability{"anna": true})

	result, err := guard.Allocate(ctx, 5, "fred")
	require.NoError(t, err)
	require.Equal(t, next.result, result)
	require.Equal(t, 1, next.calls)

	next.err = hotel.ErrNoRoomAvailable

	_, err = guard.Allocate(ctx, 5, "fred")
	require.ErrorIs(t, err, hotel.ErrNoRoomAvailable)
}

// TestOverflowQueue_AbsorbsNoRoom verifies the conversion of the allocator
// failure into a queued success, exactly one entry per attempt.
func TestOverflowQueue_AbsorbsNoRoom(t *testing.T) {
	t.Parallel()

	next := &fakeAllocator{err: hotel.ErrNoRoomAvailable}
	queue := NewOverflowQueue(next)

	result, err := queue.Allocate(context.Background(), 7, "carl")
	require.NoError(t, err)
	require.True(t, result.Queued)
	require.Equal(t, hotel.UnassignedRoom, result.Reservation.RoomNumber)
	require.Equal(t, 7, result.Reservation.Week)

	pending := queue.Pending()
	require.Len(t, pending, 1)
	require.Equal(t, "carl", pending[0].Occupant)

	// A second attempt queues a second entry, never a duplicate of the first.
	_, err = queue.Allocate(context.Background(), 7, "dora")
	require.NoError(t, err)
	require.Len(t, queue.Pending(), 2)
}

// TestOverflowQueue_PassesThroughOtherOutcomes ensures successes and foreign
// failures do not touch the queue.
func TestOverflowQueue_PassesThroughOtherOutcomes(t *testing.T) {
	t.Parallel()

	next := &fakeAllocator{
		result: Result{
			Reservation: hotel.Reservation{RoomNumber: 0, Week: 3, Occupant: "fred"},
		},
	}
	queue := NewOverflowQueue(next)

	result, err := queue.Allocate(context.Background(), 3, "fred")
	require.NoError(t, err)
	require.False(t, result.Queued)
	require.Empty(t, queue.Pending())

	next.err = hotel.ErrAlreadyBooked

	_, err = queue.Allocate(context.Background(), 3, "fred")
	require.ErrorIs(t, err, hotel.ErrAlreadyBooked)
	require.Empty(t, queue.Pending())
}

// TestAuditLogger_RecordsEachOutcome checks one record per attempt for the
// booked, queued and denied outcomes.
func TestAuditLogger_RecordsEachOutcome(t *testing.T) {
	t.Parallel()

	ctx := auth.WithPrincipal(context.Background(), auth.Principal{Name: "anna"})

	// Booked.
	next := &fakeAllocator{
		result: Result{
			Reservation: hotel.Reservation{RoomNumber: 2, Week: 9, Occupant: "fred"},
		},
	}
	sink := audit.NewMemorySink()
	logger := NewAuditLogger(next, sink)

	_, err := logger.Allocate(ctx, 9, "fred")
	require.NoError(t, err)

	// Queued.
	next.result = Result{
		Reservation: hotel.Reservation{RoomNumber: hotel.UnassignedRoom, Week: 9, Occupant: "bob"},
		Queued:      true,
	}

	_, err = logger.Allocate(ctx, 9, "bob")
	require.NoError(t, err)

	// Denied.
	next.result = Result{}
	next.err = auth.ErrNotAuthorized

	_, err = logger.Allocate(ctx, 9, "eve")
	require.ErrorIs(t, err, auth.ErrNotAuthorized)

	records := sink.Records()
	require.Len(t, records, 3)
	require.Contains(t, records[0], "booked")
	require.Contains(t, records[0], "room 2")
	require.Contains(t, records[0], "anna")
	require.Contains(t, records[1], "queued")
	require.Contains(t, records[1], "bob")
	require.Contains(t, records[2], "denied")
	require.Contains(t, records[2], "eve")
}

// TestAuditLogger_UnexpectedFailurePassesUnrecorded ensures failures outside
// the taxonomy are neither recorded nor disturbed.
func TestAuditLogger_UnexpectedFailurePassesUnrecorded(t *testing.T) {
	t.Parallel()

	next := &fakeAllocator{err: hotel.ErrAlreadyBooked}
	sink := audit.NewMemorySink()
	logger := NewAuditLogger(next, sink)

	_, err := logger.Allocate(context.Background(), 1, "fred")
	require.ErrorIs(t, err, hotel.ErrAlreadyBooked)
	require.Empty(t, sink.Records())
}

// TestAuditLogger_SinkFailureSurfaces ensures a broken trail turns the call
// into a failure instead of silently losing the record.
func TestAuditLogger_SinkFailureSurfaces(t *testing.T) {
	t.Parallel()

	next := &fakeAllocator{
		result: Result{
			Reservation: hotel.Reservation{RoomNumber: 0, Week: 0, Occupant: "fred"},
		},
	}
	logger := NewAuditLogger(next, failingSink{})

	_, err := logger.Allocate(context.Background(), 0, "fred")
	require.ErrorIs(t, err, errSinkBroken)

	// On the denial path both failures are reported.
	next.err = auth.ErrNotAuthorized

	_, err = logger.Allocate(context.Background(), 0, "fred")
	require.ErrorIs(t, err, auth.ErrNotAuthorized)
	require.ErrorIs(t, err, errSinkBroken)
}
