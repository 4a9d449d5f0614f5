package mocks

import (
	"context"
	"sync"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
)

// MockIdentityStore is a mock implementation of IdentityStore for testing
type MockIdentityStore struct {
	mu         sync.RWMutex
	identities map[string]*domain.Identity // keyed by provider + "/" + provider user id

	// SaveErr, when set, is returned by Save
	SaveErr error
}

// NewMockIdentityStore creates a new MockIdentityStore
func NewMockIdentityStore() *MockIdentityStore {
	return &MockIdentityStore{
		identities: make(map[string]*domain.Identity),
	}
}

func identityKey(provider domain.Provider, providerUserID string) string {
	return string(provider) + "/" + providerUserID
}

func (m *MockIdentityStore) Save(ctx context.Context, identity *domain.Identity) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *identity
	m.identities[identityKey(identity.Provider, identity.ProviderUserID)] = &cp
	return nil
}

func (m *MockIdentityStore) GetByProvider(ctx context.Context, provider domain.Provider, providerUserID string) (*domain.Identity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	identity, ok := m.identities[identityKey(provider, providerUserID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *identity
	return &cp, nil
}

func (m *MockIdentityStore) ListByUser(ctx context.Context, userID string) ([]*domain.Identity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Identity
	for _, identity := range m.identities {
		if identity.UserID == userID {
			cp := *identity
			result = append(result, &cp)
		}
	}
	return result, nil
}

// Count returns the number of stored identities
func (m *MockIdentityStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.identities)
}
