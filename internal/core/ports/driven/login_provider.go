package driven

import (
	"context"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
)

// LoginProvider wraps one OAuth identity provider's authorization-code flow
type LoginProvider interface {
	// Name returns the provider this handler serves
	Name() domain.Provider

	// AuthURL returns the provider URL to redirect the user to.
	// The state parameter is echoed back on the callback for CSRF checks.
	AuthURL(state string) string

	// Exchange trades an authorization code for the provider's user profile
	Exchange(ctx context.Context, code string) (*domain.ProviderProfile, error)
}

// LoginProviderRegistry resolves configured providers by name
type LoginProviderRegistry interface {
	// Get returns the provider handler, or nil when the provider is
	// unknown or not configured
	Get(provider domain.Provider) LoginProvider
}
