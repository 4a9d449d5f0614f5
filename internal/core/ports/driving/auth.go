package driving

import (
	"context"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
)

// AuthService is the session gate: it issues sessions after OAuth login
// and resolves session tokens to an AuthContext on every request.
type AuthService interface {
	// IssueSession creates a session for a resolved user and returns the
	// signed token to place in the session cookie
	IssueSession(ctx context.Context, user *domain.User) (*domain.Session, string, error)

	// ValidateToken validates a session token and returns the auth context
	ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error)

	// CurrentUser returns the public profile for an authenticated user
	CurrentUser(ctx context.Context, auth *domain.AuthContext) (*domain.UserSummary, error)

	// Logout invalidates the session carried by the token
	Logout(ctx context.Context, token string) error
}
