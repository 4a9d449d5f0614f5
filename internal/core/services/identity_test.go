package services

import (
	"context"
	"errors"
	"testing"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driven/mocks"
)

func newTestIdentityService() (*mocks.MockUserStore, *mocks.MockIdentityStore, *identityService) {
	userStore := mocks.NewMockUserStore()
	identityStore := mocks.NewMockIdentityStore()
	svc := NewIdentityService(userStore, identityStore).(*identityService)
	return userStore, identityStore, svc
}

func googleProfile() *domain.ProviderProfile {
	return &domain.ProviderProfile{
		Provider:    domain.ProviderGoogle,
		ID:          "g-123",
		Name:        "Alice",
		Email:       "alice@example.com",
		PhotoURL:    "https://example.com/alice.png",
		AccessToken: "tok-google",
	}
}

func TestIdentityService_Resolve_CreatesNewUser(t *testing.T) {
	userStore, identityStore, svc := newTestIdentityService()

	user, err := svc.Resolve(context.Background(), googleProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.ID == "" {
		t.Error("expected a generated user ID")
	}
	if user.Name != "Alice" || user.Email != "alice@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}
	if userStore.Count() != 1 {
		t.Errorf("expected 1 user, got %d", userStore.Count())
	}

	identity, err := identityStore.GetByProvider(context.Background(), domain.ProviderGoogle, "g-123")
	if err != nil {
		t.Fatalf("expected identity to be created: %v", err)
	}
	if identity.UserID != user.ID {
		t.Errorf("identity linked to %s, want %s", identity.UserID, user.ID)
	}
	if identity.AccessToken != "tok-google" {
		t.Errorf("expected provider token to be stored, got %q", identity.AccessToken)
	}
}

func TestIdentityService_Resolve_IdempotentPerProviderID(t *testing.T) {
	userStore, identityStore, svc := newTestIdentityService()

	first, err := svc.Resolve(context.Background(), googleProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := svc.Resolve(context.Background(), googleProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("repeated login created a second user: %s vs %s", first.ID, second.ID)
	}
	if userStore.Count() != 1 {
		t.Errorf("expected 1 user after repeated login, got %d", userStore.Count())
	}
	if identityStore.Count() != 1 {
		t.Errorf("expected 1 identity after repeated login, got %d", identityStore.Count())
	}
}

func TestIdentityService_Resolve_MergesByEmail(t *testing.T) {
	userStore, identityStore, svc := newTestIdentityService()

	viaGoogle, err := svc.Resolve(context.Background(), googleProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same email arrives later via GitHub
	viaGitHub, err := svc.Resolve(context.Background(), &domain.ProviderProfile{
		Provider: domain.ProviderGitHub,
		ID:       "gh-777",
		Name:     "alice-gh",
		Email:    "Alice@Example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if viaGitHub.ID != viaGoogle.ID {
		t.Errorf("expected accounts to merge, got %s and %s", viaGoogle.ID, viaGitHub.ID)
	}
	if userStore.Count() != 1 {
		t.Errorf("expected 1 user after merge, got %d", userStore.Count())
	}

	identities, _ := identityStore.ListByUser(context.Background(), viaGoogle.ID)
	if len(identities) != 2 {
		t.Fatalf("expected 2 linked identities, got %d", len(identities))
	}
}

func TestIdentityService_Resolve_MissingEmailDoesNotMergeStrangers(t *testing.T) {
	userStore, _, svc := newTestIdentityService()

	// Two GitHub users, both with hidden emails
	a, err := svc.Resolve(context.Background(), &domain.ProviderProfile{
		Provider: domain.ProviderGitHub, ID: "gh-1", Name: "hidden-a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := svc.Resolve(context.Background(), &domain.ProviderProfile{
		Provider: domain.ProviderGitHub, ID: "gh-2", Name: "hidden-b",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.ID == b.ID {
		t.Error("users without emails must not merge into one account")
	}
	if userStore.Count() != 2 {
		t.Errorf("expected 2 users, got %d", userStore.Count())
	}
}

func TestIdentityService_Resolve_InvalidProfile(t *testing.T) {
	_, _, svc := newTestIdentityService()

	tests := []struct {
		name    string
		profile *domain.ProviderProfile
	}{
		{"nil profile", nil},
		{"unknown provider", &domain.ProviderProfile{Provider: "myspace", ID: "x"}},
		{"missing provider id", &domain.ProviderProfile{Provider: domain.ProviderGoogle}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Resolve(context.Background(), tt.profile); err != domain.ErrInvalidInput {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestIdentityService_Resolve_StoreErrorPropagates(t *testing.T) {
	userStore, _, svc := newTestIdentityService()
	userStore.SaveErr = errors.New("connection reset")

	if _, err := svc.Resolve(context.Background(), googleProfile()); err == nil {
		t.Fatal("expected store error to propagate as an auth failure")
	}
}
