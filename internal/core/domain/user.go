package domain

import (
	"fmt"
	"strings"
	"time"
)

// Provider identifies a supported OAuth identity provider
type Provider string

const (
	ProviderGoogle   Provider = "google"
	ProviderFacebook Provider = "facebook"
	ProviderGitHub   Provider = "github"
)

// Providers lists all supported providers in display order
var Providers = []Provider{ProviderGoogle, ProviderFacebook, ProviderGitHub}

// Valid reports whether p is a supported provider
func (p Provider) Valid() bool {
	switch p {
	case ProviderGoogle, ProviderFacebook, ProviderGitHub:
		return true
	}
	return false
}

// User represents an account created through OAuth login.
// Users are never deleted; repeated logins only touch LastLoginAt
// and possibly link additional provider identities.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ProfilePhoto string    `json:"profile_photo,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	LastLoginAt  time.Time `json:"last_login_at"`
}

// UserSummary provides the public view of a user returned by the API
type UserSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
}

// ToSummary converts a User to UserSummary
func (u *User) ToSummary() *UserSummary {
	return &UserSummary{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		ProfilePhoto: u.ProfilePhoto,
	}
}

// Identity links a User to one external provider account.
// Invariant: at most one Identity per (provider, provider user id) pair.
type Identity struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Provider       Provider  `json:"provider"`
	ProviderUserID string    `json:"provider_user_id"`
	AccessToken    string    `json:"-"` // plaintext in memory, encrypted at rest
	CreatedAt      time.Time `json:"created_at"`
}

// ProviderProfile is the normalized profile a provider returns after a
// successful OAuth exchange.
type ProviderProfile struct {
	Provider    Provider
	ID          string // provider's stable user id
	Name        string
	Email       string // may be empty (GitHub with a hidden email)
	PhotoURL    string
	AccessToken string
}

// ResolvedEmail returns the profile email lower-cased, or a synthesized
// placeholder unique to the provider id's namespace when the provider did
// not supply one. The placeholder keeps email-merge lookups from colliding
// across users that hide their address.
func (p *ProviderProfile) ResolvedEmail() string {
	if p.Email != "" {
		return strings.ToLower(strings.TrimSpace(p.Email))
	}
	return fmt.Sprintf("%s@users.noreply.%s.local", p.ID, p.Provider)
}
