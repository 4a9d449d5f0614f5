package oauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driven"
)

// Ensure GoogleProvider implements LoginProvider
var _ driven.LoginProvider = (*GoogleProvider)(nil)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleUser is the portion of the userinfo response we care about
type googleUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// GoogleProvider handles the Google authorization-code flow
type GoogleProvider struct {
	config  *oauth2.Config
	userURL string
}

// NewGoogleProvider creates a Google login provider
func NewGoogleProvider(cfg Config) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		userURL: googleUserInfoURL,
	}
}

// Name returns the provider this handler serves
func (p *GoogleProvider) Name() domain.Provider {
	return domain.ProviderGoogle
}

// AuthURL returns the Google consent URL for the given CSRF state
func (p *GoogleProvider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the authorization code for the Google user profile
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*domain.ProviderProfile, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth: exchanging google code: %w", err)
	}

	var gu googleUser
	if err := getJSON(ctx, p.config.Client(ctx, token), p.userURL, &gu); err != nil {
		return nil, err
	}
	if gu.ID == "" {
		return nil, fmt.Errorf("oauth: google returned an invalid user")
	}

	return &domain.ProviderProfile{
		Provider:    domain.ProviderGoogle,
		ID:          gu.ID,
		Name:        gu.Name,
		Email:       gu.Email,
		PhotoURL:    gu.Picture,
		AccessToken: token.AccessToken,
	}, nil
}
