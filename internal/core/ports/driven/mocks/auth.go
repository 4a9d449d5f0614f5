package mocks

import (
	"encoding/json"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
)

// MockAuthAdapter is a mock implementation of AuthAdapter for testing.
// Tokens are plain JSON claims, no signing.
type MockAuthAdapter struct{}

// NewMockAuthAdapter creates a new MockAuthAdapter
func NewMockAuthAdapter() *MockAuthAdapter {
	return &MockAuthAdapter{}
}

func (m *MockAuthAdapter) GenerateToken(claims *domain.TokenClaims) (string, error) {
	data, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (m *MockAuthAdapter) ParseToken(token string) (*domain.TokenClaims, error) {
	var claims domain.TokenClaims
	if err := json.Unmarshal([]byte(token), &claims); err != nil {
		return nil, domain.ErrTokenInvalid
	}
	return &claims, nil
}
