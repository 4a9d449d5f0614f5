package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driven"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driving"
)

// Ensure authService implements AuthService
var _ driving.AuthService = (*authService)(nil)

// authService implements the AuthService interface
type authService struct {
	userStore    driven.UserStore
	sessionStore driven.SessionStore
	authAdapter  driven.AuthAdapter
	sessionTTL   time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userStore driven.UserStore,
	sessionStore driven.SessionStore,
	authAdapter driven.AuthAdapter,
) driving.AuthService {
	return &authService{
		userStore:    userStore,
		sessionStore: sessionStore,
		authAdapter:  authAdapter,
		sessionTTL:   24 * time.Hour,
	}
}

// IssueSession creates a session for a resolved user and returns the
// signed token placed in the session cookie
func (s *authService) IssueSession(ctx context.Context, user *domain.User) (*domain.Session, string, error) {
	if user == nil || user.ID == "" {
		return nil, "", domain.ErrInvalidInput
	}

	sessionID := generateID()
	expiresAt := time.Now().Add(s.sessionTTL)

	claims := &domain.TokenClaims{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		SessionID: sessionID,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: expiresAt.Unix(),
	}

	token, err := s.authAdapter.GenerateToken(claims)
	if err != nil {
		return nil, "", err
	}

	session := &domain.Session{
		ID:        sessionID,
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	if err := s.sessionStore.Save(ctx, session); err != nil {
		return nil, "", err
	}

	return session, token, nil
}

// ValidateToken validates a session token and returns the auth context
func (s *authService) ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error) {
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}

	claims, err := s.authAdapter.ParseToken(token)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	if time.Now().Unix() > claims.ExpiresAt {
		return nil, domain.ErrTokenExpired
	}

	// Verify the session still exists (logout invalidates it server-side)
	session, err := s.sessionStore.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}
	if session.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	return &domain.AuthContext{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Name:      claims.Name,
		SessionID: claims.SessionID,
	}, nil
}

// CurrentUser returns the public profile for an authenticated user
func (s *authService) CurrentUser(ctx context.Context, auth *domain.AuthContext) (*domain.UserSummary, error) {
	if auth == nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.userStore.Get(ctx, auth.UserID)
	if err != nil {
		return nil, err
	}
	return user.ToSummary(), nil
}

// Logout invalidates the session carried by the token
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := s.authAdapter.ParseToken(token)
	if err != nil {
		return nil // Already invalid, nothing to do
	}

	return s.sessionStore.Delete(ctx, claims.SessionID)
}

// generateID returns a 128-bit random url-safe identifier
func generateID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
