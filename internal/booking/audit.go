package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/okuznetsov/hotel-desk/internal/audit"
	"github.com/okuznetsov/hotel-desk/internal/auth"
)

// AuditLogger records every allocation attempt on the audit trail: confirmed
// bookings, queued overflows and authorization denials. The record for a call
// is appended before the call's result is returned, so the trail never lags
// behind what callers have observed.
//
// A denial is observed, recorded, and re-raised; the trail entry does not
// swallow the failure. Failures outside the modeled taxonomy pass through
// unrecorded, since they are defects rather than business outcomes.
type AuditLogger struct {
	// next is the wrapped operation.
	next Allocator
	// sink receives one record per attempt.
	sink audit.Sink
}

// NewAuditLogger wraps next with audit trail recording.
func NewAuditLogger(next Allocator, sink audit.Sink) *AuditLogger {
	return &AuditLogger{
		next: next,
		sink: sink,
	}
}

// Allocate delegates and appends the record matching the outcome. Since the
// trail is the desk's one durability requirement, a failed append surfaces as
// an error instead of being swallowed.
func (l *AuditLogger) Allocate(ctx context.Context, week int, occupant string) (Result, error) {
	result, err := l.next.Allocate(ctx, week, occupant)
	caller := callerName(ctx)

	switch {
	case errors.Is(err, auth.ErrNotAuthorized):
		record := fmt.Sprintf("denied: caller %s may not book (week %d, occupant %s)", caller, week, occupant)
		if appendErr := l.sink.Append(record); appendErr != nil {
			return Result{}, errors.Join(err, appendErr)
		}

		return Result{}, err
	case err != nil:
		return Result{}, err
	case result.Queued:
		record := fmt.Sprintf("queued: no room free for week %d, occupant %s queued by caller %s", week, occupant, caller)
		if appendErr := l.sink.Append(record); appendErr != nil {
			return Result{}, appendErr
		}

		return result, nil
	default:
		record := fmt.Sprintf("booked: room %d for week %d, occupant %s, caller %s",
			result.Reservation.RoomNumber, week, occupant, caller)
		if appendErr := l.sink.Append(record); appendErr != nil {
			return Result{}, appendErr
		}

		return result, nil
	}
}

// callerName extracts the principal name for trail records.
func callerName(ctx context.Context) string {
	if p, ok := auth.PrincipalFromContext(ctx); ok {
		return p.Name
	}

	return "<unknown>"
}
