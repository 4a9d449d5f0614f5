package oauth

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driven"
)

// Ensure GitHubProvider implements LoginProvider
var _ driven.LoginProvider = (*GitHubProvider)(nil)

const githubAPIBase = "https://api.github.com"

// githubUser is the portion of the /user response we care about.
// GitHub's numeric ID is stable; the login is not.
type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type githubEmail struct {
	Email   string `json:"email"`
	Primary bool   `json:"primary"`
}

// GitHubProvider handles the GitHub authorization-code flow
type GitHubProvider struct {
	config  *oauth2.Config
	apiBase string
}

// NewGitHubProvider creates a GitHub login provider
func NewGitHubProvider(cfg Config) *GitHubProvider {
	return &GitHubProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     github.Endpoint,
		},
		apiBase: githubAPIBase,
	}
}

// Name returns the provider this handler serves
func (p *GitHubProvider) Name() domain.Provider {
	return domain.ProviderGitHub
}

// AuthURL returns the GitHub consent URL for the given CSRF state
func (p *GitHubProvider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the authorization code for the GitHub user profile.
// Users who hide their email on the profile still expose it via
// /user/emails under the user:email scope.
func (p *GitHubProvider) Exchange(ctx context.Context, code string) (*domain.ProviderProfile, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth: exchanging github code: %w", err)
	}

	client := p.config.Client(ctx, token)

	var gu githubUser
	if err := getJSON(ctx, client, p.apiBase+"/user", &gu); err != nil {
		return nil, err
	}
	if gu.ID == 0 {
		return nil, fmt.Errorf("oauth: github returned an invalid user")
	}

	email := gu.Email
	if email == "" {
		var emails []githubEmail
		// Best effort: a profile without any visible email still works
		if err := getJSON(ctx, client, p.apiBase+"/user/emails", &emails); err == nil {
			for _, e := range emails {
				if e.Primary {
					email = e.Email
					break
				}
			}
		}
	}

	name := gu.Name
	if name == "" {
		name = gu.Login
	}

	return &domain.ProviderProfile{
		Provider:    domain.ProviderGitHub,
		ID:          strconv.FormatInt(gu.ID, 10),
		Name:        name,
		Email:       email,
		PhotoURL:    gu.AvatarURL,
		AccessToken: token.AccessToken,
	}, nil
}
