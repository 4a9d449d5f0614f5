package mocks

import (
	"context"
	"sync"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
)

// MockImageProvider is a mock implementation of ImageProvider for testing
type MockImageProvider struct {
	mu    sync.Mutex
	calls []string

	// Page is returned on success
	Page *domain.ImagePage

	// Err, when set, is returned instead of Page
	Err error
}

// NewMockImageProvider creates a new MockImageProvider
func NewMockImageProvider() *MockImageProvider {
	return &MockImageProvider{}
}

func (m *MockImageProvider) Search(ctx context.Context, term string, page, perPage int) (*domain.ImagePage, error) {
	m.mu.Lock()
	m.calls = append(m.calls, term)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if m.Page != nil {
		return m.Page, nil
	}
	return &domain.ImagePage{}, nil
}

// Calls returns the terms searched so far
func (m *MockImageProvider) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
