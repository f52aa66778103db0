package session

import (
	"context"
	"errors"
	"time"
)

// TTL is how long an idle session survives.
const TTL = 24 * time.Hour

// ErrNotFound indicates the session does not exist or has expired.
var ErrNotFound = errors.New("session: not found")

// Session is the server-side state behind one session cookie. Email is
// empty while the client is anonymous; it holds only a weak reference to
// the user, which is re-resolved against the database on every
// authenticated action.
type Session struct {
	ID    string
	Email string
}

// Anonymous reports whether no identity is attached to the session.
func (s *Session) Anonymous() bool {
	return s.Email == ""
}

// Store maps an opaque session ID to an identity plus pending flash
// messages. Flashes are one-shot: PopFlashes drains them.
type Store interface {
	Create(ctx context.Context) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	SetIdentity(ctx context.Context, id, email string) error
	ClearIdentity(ctx context.Context, id string) error
	AddFlash(ctx context.Context, id, message string) error
	PopFlashes(ctx context.Context, id string) ([]string, error)
	Destroy(ctx context.Context, id string) error
}
