package driven

import "github.com/custodia-labs/snapseek-core/internal/core/domain"

// AuthAdapter signs and verifies session tokens
type AuthAdapter interface {
	// GenerateToken creates a signed token from domain claims
	GenerateToken(claims *domain.TokenClaims) (string, error)

	// ParseToken validates a token and extracts domain claims
	ParseToken(token string) (*domain.TokenClaims, error)
}
