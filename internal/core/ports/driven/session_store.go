package driven

import (
	"context"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
)

// SessionStore persists login sessions. Implementations expire sessions on
// their own schedule (Redis TTL, Postgres WHERE clause); callers still
// check Session.IsExpired.
type SessionStore interface {
	// Save stores a session
	Save(ctx context.Context, session *domain.Session) error

	// Get retrieves a session by ID, ErrNotFound if missing or expired
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Delete removes a session; deleting an absent session is not an error
	Delete(ctx context.Context, id string) error

	// DeleteByUser removes all sessions for a user
	DeleteByUser(ctx context.Context, userID string) error
}
