package booking

import (
	"context"
	"fmt"

	"github.com/okuznetsov/hotel-desk/internal/auth"
)

// Authorizer rejects allocation attempts from callers lacking the booking
// privilege. A rejected call never reaches the wrapped operation, so neither
// room state nor the overflow queue can change. Authorized calls delegate
// unchanged and their result or failure propagates verbatim.
type Authorizer struct {
	// next is the wrapped operation.
	next Allocator
	// capability resolves the booking privilege per call.
	capability auth.Capability
}

// NewAuthorizer wraps next with the authorization guard.
func NewAuthorizer(next Allocator, capability auth.Capability) *Authorizer {
	return &Authorizer{
		next:       next,
		capability: capability,
	}
}

// Allocate enforces the booking privilege before delegating. A context
// without a principal is treated the same as a principal without the
// privilege: auth.ErrNotAuthorized, wrapped with the caller name when known.
func (g *Authorizer) Allocate(ctx context.Context, week int, occupant string) (Result, error) {
	p, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		return Result{}, auth.ErrNotAuthorized
	}

	if !g.capability.MayBook(p) {
		return Result{}, fmt.Errorf("caller %q: %w", p.Name, auth.ErrNotAuthorized)
	}

	return g.next.Allocate(ctx, week, occupant)
}
