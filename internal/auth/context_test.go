package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPrincipalContext verifies carriage and absence of the principal.
func TestPrincipalContext(t *testing.T) {
	t.Parallel()

	_, ok := PrincipalFromContext(context.Background())
	require.False(t, ok)

	ctx := WithPrincipal(context.Background(), Principal{Name: "anna"})

	p, ok := PrincipalFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, "anna", p.Name)
}

// TestNewSession ensures sessions get distinct identifiers.
func TestNewSession(t *testing.T) {
	t.Parallel()

	first := NewSession(Principal{Name: "anna"})
	second := NewSession(Principal{Name: "anna"})

	require.NotEmpty(t, first.ID)
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, "anna", first.Principal.Name)
	require.False(t, first.StartedAt.IsZero())
}
