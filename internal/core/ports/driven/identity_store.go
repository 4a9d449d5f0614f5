package driven

import (
	"context"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
)

// IdentityStore persists provider links for users.
// The store enforces uniqueness per (provider, provider user id) pair.
type IdentityStore interface {
	// Save creates or updates an identity link
	Save(ctx context.Context, identity *domain.Identity) error

	// GetByProvider retrieves an identity by provider and the provider's
	// user id, ErrNotFound if no link exists
	GetByProvider(ctx context.Context, provider domain.Provider, providerUserID string) (*domain.Identity, error)

	// ListByUser lists all identities linked to a user
	ListByUser(ctx context.Context, userID string) ([]*domain.Identity, error)
}
