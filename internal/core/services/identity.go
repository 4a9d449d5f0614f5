package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driven"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driving"
)

// Ensure identityService implements IdentityService
var _ driving.IdentityService = (*identityService)(nil)

// identityService implements the IdentityService interface
type identityService struct {
	userStore     driven.UserStore
	identityStore driven.IdentityStore
}

// NewIdentityService creates a new IdentityService
func NewIdentityService(userStore driven.UserStore, identityStore driven.IdentityStore) driving.IdentityService {
	return &identityService{
		userStore:     userStore,
		identityStore: identityStore,
	}
}

// Resolve maps a provider profile to a user record. The same algorithm
// applies to every provider:
//
//  1. An identity already exists for (provider, provider id): touch last
//     login and return its user.
//  2. A user exists with the profile's email: attach this provider's id
//     to that user instead of creating a duplicate.
//  3. Otherwise create a new user plus its first identity.
//
// Store errors propagate to the caller, which treats them as an
// authentication failure. No retries.
func (s *identityService) Resolve(ctx context.Context, profile *domain.ProviderProfile) (*domain.User, error) {
	if profile == nil || !profile.Provider.Valid() || profile.ID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()

	// Step 1: known identity
	identity, err := s.identityStore.GetByProvider(ctx, profile.Provider, profile.ID)
	if err == nil {
		user, err := s.userStore.Get(ctx, identity.UserID)
		if err != nil {
			return nil, err
		}
		if err := s.userStore.UpdateLastLogin(ctx, user.ID); err != nil {
			return nil, err
		}
		// Refresh the stored provider token on every login
		identity.AccessToken = profile.AccessToken
		if err := s.identityStore.Save(ctx, identity); err != nil {
			return nil, err
		}
		user.LastLoginAt = now
		return user, nil
	}
	if err != domain.ErrNotFound {
		return nil, err
	}

	email := profile.ResolvedEmail()

	// Step 2: merge by email
	user, err := s.userStore.GetByEmail(ctx, email)
	if err == nil {
		if err := s.attachIdentity(ctx, user.ID, profile, now); err != nil {
			return nil, err
		}
		if err := s.userStore.UpdateLastLogin(ctx, user.ID); err != nil {
			return nil, err
		}
		user.LastLoginAt = now
		return user, nil
	}
	if err != domain.ErrNotFound {
		return nil, err
	}

	// Step 3: new account
	user = &domain.User{
		ID:           uuid.NewString(),
		Name:         profile.Name,
		Email:        email,
		ProfilePhoto: profile.PhotoURL,
		CreatedAt:    now,
		LastLoginAt:  now,
	}
	if err := s.userStore.Save(ctx, user); err != nil {
		return nil, err
	}
	if err := s.attachIdentity(ctx, user.ID, profile, now); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *identityService) attachIdentity(ctx context.Context, userID string, profile *domain.ProviderProfile, now time.Time) error {
	return s.identityStore.Save(ctx, &domain.Identity{
		ID:             uuid.NewString(),
		UserID:         userID,
		Provider:       profile.Provider,
		ProviderUserID: profile.ID,
		AccessToken:    profile.AccessToken,
		CreatedAt:      now,
	})
}
