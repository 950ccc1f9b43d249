package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Principal is the authenticated identity under which desk operations run.
type Principal struct {
	// Name is the registry name the principal logged in with.
	Name string
}

// Capability answers whether a principal holds the booking privilege.
// It is resolved per call, not cached in the principal.
type Capability interface {
	MayBook(p Principal) bool
}

// ErrNotAuthorized indicates the caller lacks the booking privilege. It is
// the only failure that crosses the composed booking operation's boundary.
var ErrNotAuthorized = errors.New("not authorized to book rooms")

// Session ties a logged-in principal to a unique identifier used to
// correlate audit trail lines and application logs.
type Session struct {
	// ID is the unique session identifier.
	ID string
	// Principal is the identity the session was opened for.
	Principal Principal
	// StartedAt is when the login completed.
	StartedAt time.Time
}

// NewSession opens a session for the principal with a fresh identifier.
func NewSession(p Principal) Session {
	return Session{
		ID:        uuid.NewString(),
		Principal: p,
		StartedAt: time.Now(),
	}
}
