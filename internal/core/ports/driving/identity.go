package driving

import (
	"context"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
)

// IdentityService maps OAuth callback profiles to user records
type IdentityService interface {
	// Resolve returns the user for a provider profile, creating a new
	// account or attaching the provider id to an email-matching account
	// as needed. Any store error propagates as an authentication failure.
	Resolve(ctx context.Context, profile *domain.ProviderProfile) (*domain.User, error)
}
