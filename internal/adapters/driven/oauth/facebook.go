package oauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driven"
)

// Ensure FacebookProvider implements LoginProvider
var _ driven.LoginProvider = (*FacebookProvider)(nil)

const facebookUserInfoURL = "https://graph.facebook.com/me?fields=id,name,email,picture.width(200)"

// facebookUser is the portion of the Graph API response we care about
type facebookUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

// FacebookProvider handles the Facebook authorization-code flow
type FacebookProvider struct {
	config  *oauth2.Config
	userURL string
}

// NewFacebookProvider creates a Facebook login provider
func NewFacebookProvider(cfg Config) *FacebookProvider {
	return &FacebookProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       []string{"email"},
			Endpoint:     facebook.Endpoint,
		},
		userURL: facebookUserInfoURL,
	}
}

// Name returns the provider this handler serves
func (p *FacebookProvider) Name() domain.Provider {
	return domain.ProviderFacebook
}

// AuthURL returns the Facebook consent URL for the given CSRF state
func (p *FacebookProvider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the authorization code for the Facebook user profile
func (p *FacebookProvider) Exchange(ctx context.Context, code string) (*domain.ProviderProfile, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth: exchanging facebook code: %w", err)
	}

	var fu facebookUser
	if err := getJSON(ctx, p.config.Client(ctx, token), p.userURL, &fu); err != nil {
		return nil, err
	}
	if fu.ID == "" {
		return nil, fmt.Errorf("oauth: facebook returned an invalid user")
	}

	return &domain.ProviderProfile{
		Provider:    domain.ProviderFacebook,
		ID:          fu.ID,
		Name:        fu.Name,
		Email:       fu.Email,
		PhotoURL:    fu.Picture.Data.URL,
		AccessToken: token.AccessToken,
	}, nil
}
