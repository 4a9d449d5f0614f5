package auth

import (
	"testing"
	"time"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
)

func TestNewAdapter(t *testing.T) {
	adapter := NewAdapter("test-secret")
	if adapter == nil {
		t.Fatal("expected non-nil adapter")
	}
	if string(adapter.secret) != "test-secret" {
		t.Error("expected signing secret to be set")
	}
}

func testClaims() *domain.TokenClaims {
	now := time.Now()
	return &domain.TokenClaims{
		UserID:    "user-123",
		Email:     "alice@example.com",
		Name:      "Alice",
		SessionID: "session-abc",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(24 * time.Hour).Unix(),
	}
}

func TestGenerateToken(t *testing.T) {
	adapter := NewAdapter("secret")

	token, err := adapter.GenerateToken(testClaims())
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if token == "" {
		t.Error("expected non-empty token")
	}
}

func TestParseToken_RoundTrip(t *testing.T) {
	adapter := NewAdapter("secret")
	claims := testClaims()

	token, err := adapter.GenerateToken(claims)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsed, err := adapter.ParseToken(token)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}

	if parsed.UserID != claims.UserID {
		t.Errorf("expected user ID %q, got %q", claims.UserID, parsed.UserID)
	}
	if parsed.Email != claims.Email {
		t.Errorf("expected email %q, got %q", claims.Email, parsed.Email)
	}
	if parsed.Name != claims.Name {
		t.Errorf("expected name %q, got %q", claims.Name, parsed.Name)
	}
	if parsed.SessionID != claims.SessionID {
		t.Errorf("expected session ID %q, got %q", claims.SessionID, parsed.SessionID)
	}
	if parsed.ExpiresAt != claims.ExpiresAt {
		t.Errorf("expected expiry %d, got %d", claims.ExpiresAt, parsed.ExpiresAt)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	adapter := NewAdapter("secret")

	if _, err := adapter.ParseToken("not-a-jwt"); err != domain.ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	signer := NewAdapter("secret-one")
	verifier := NewAdapter("secret-two")

	token, err := signer.GenerateToken(testClaims())
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := verifier.ParseToken(token); err != domain.ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	adapter := NewAdapter("secret")
	claims := testClaims()
	claims.IssuedAt = time.Now().Add(-48 * time.Hour).Unix()
	claims.ExpiresAt = time.Now().Add(-24 * time.Hour).Unix()

	token, err := adapter.GenerateToken(claims)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := adapter.ParseToken(token); err != domain.ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}
