// Package oauth implements the LoginProvider port for Google, Facebook and
// GitHub using golang.org/x/oauth2's authorization-code flow.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Config holds the OAuth app credentials for one provider
type Config struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Configured reports whether the provider has credentials set
func (c Config) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// getJSON fetches a provider API endpoint with the token-bearing client and
// decodes the JSON response into out.
func getJSON(ctx context.Context, client *http.Client, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("oauth: calling provider API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("oauth: provider API returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
