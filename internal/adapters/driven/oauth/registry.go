package oauth

import (
	"github.com/custodia-labs/snapseek-core/internal/core/domain"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driven"
)

// Ensure Registry implements LoginProviderRegistry
var _ driven.LoginProviderRegistry = (*Registry)(nil)

// Registry holds the login providers that have credentials configured
type Registry struct {
	providers map[domain.Provider]driven.LoginProvider
}

// NewRegistry builds a registry from per-provider configs. Providers
// without credentials are left out, so Get returns nil for them.
func NewRegistry(google, facebook, github Config) *Registry {
	r := &Registry{providers: make(map[domain.Provider]driven.LoginProvider)}

	if google.Configured() {
		r.register(NewGoogleProvider(google))
	}
	if facebook.Configured() {
		r.register(NewFacebookProvider(facebook))
	}
	if github.Configured() {
		r.register(NewGitHubProvider(github))
	}

	return r
}

func (r *Registry) register(p driven.LoginProvider) {
	r.providers[p.Name()] = p
}

// Get returns the handler for a provider, or nil when it is unknown or
// not configured
func (r *Registry) Get(provider domain.Provider) driven.LoginProvider {
	return r.providers[provider]
}

// Names lists the configured providers
func (r *Registry) Names() []domain.Provider {
	names := make([]domain.Provider, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}
