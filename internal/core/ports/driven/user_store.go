package driven

import (
	"context"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
)

// UserStore persists account records
type UserStore interface {
	// Save creates or updates a user
	Save(ctx context.Context, user *domain.User) error

	// Get retrieves a user by ID, ErrNotFound if missing
	Get(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by (lower-cased) email, ErrNotFound if missing
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateLastLogin updates the last login timestamp
	UpdateLastLogin(ctx context.Context, id string) error
}
