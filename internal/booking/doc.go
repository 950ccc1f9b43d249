// Package booking composes the room allocation operation with its three
// wrapping behaviors: authorization, overflow queueing and audit logging.
//
// Every layer implements the Allocator interface and holds a reference to the
// next layer, so each one can inspect the call, short-circuit, delegate, and
// react to the delegate's result or failure. The order is a contract, not an
// accident, and Chain is the only constructor that wires it:
//
//	AuditLogger(Authorizer(OverflowQueue(core)))
//
// Authorization runs before any allocation attempt, so denied callers never
// touch room or queue state. Overflow handling runs inside authorization, so
// only authorized attempts can queue, and before audit logging, so the trail
// records the final queued outcome rather than the allocator's raw failure.
// Audit logging is outermost, so denials are recorded too.
package booking
