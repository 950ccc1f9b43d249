package auth

import "context"

// principalContextKey is the context key type for storing the principal.
type principalContextKey struct{}

// WithPrincipal returns a derived context carrying the principal.
// The booking chain's guard reads it back on every allocation attempt.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext extracts the principal established at login.
// The boolean is false when the context carries none.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(Principal)

	return p, ok
}
