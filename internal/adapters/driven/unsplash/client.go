// Package unsplash implements the ImageProvider port against the Unsplash
// search API.
package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driven"
)

// Ensure Client implements ImageProvider
var _ driven.ImageProvider = (*Client)(nil)

const (
	defaultBaseURL = "https://api.unsplash.com"
	requestTimeout = 10 * time.Second
)

// searchResponse mirrors the wire shape of GET /search/photos.
// Unsplash returns far more fields; we only decode what we serve.
type searchResponse struct {
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	Results    []struct {
		ID             string `json:"id"`
		Width          int    `json:"width"`
		Height         int    `json:"height"`
		Likes          int    `json:"likes"`
		Description    string `json:"description"`
		AltDescription string `json:"alt_description"`
		URLs           struct {
			Thumb   string `json:"thumb"`
			Small   string `json:"small"`
			Regular string `json:"regular"`
			Full    string `json:"full"`
		} `json:"urls"`
		User struct {
			Name         string `json:"name"`
			Username     string `json:"username"`
			ProfileImage struct {
				Small string `json:"small"`
			} `json:"profile_image"`
		} `json:"user"`
	} `json:"results"`
}

// Client calls the Unsplash REST API with a Client-ID access key
type Client struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
	sanitizer  *bluemonday.Policy
}

// Option customizes the client
type Option func(*Client)

// WithBaseURL overrides the API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient creates an Unsplash client authenticated with accessKey
func NewClient(accessKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		accessKey:  accessKey,
		httpClient: &http.Client{Timeout: requestTimeout},
		// Descriptions are photographer-authored free text that we
		// re-serve to browsers; strip any markup they carry.
		sanitizer: bluemonday.StrictPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search fetches one page of photo results for a term
func (c *Client) Search(ctx context.Context, term string, page, perPage int) (*domain.ImagePage, error) {
	q := url.Values{}
	q.Set("query", term)
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search/photos?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("unsplash: building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.ProviderError{StatusCode: resp.StatusCode}
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("unsplash: decoding response: %w", err)
	}

	pageOut := &domain.ImagePage{
		Total:      body.Total,
		TotalPages: body.TotalPages,
		Results:    make([]domain.Image, 0, len(body.Results)),
	}
	for _, r := range body.Results {
		pageOut.Results = append(pageOut.Results, domain.Image{
			ID:             r.ID,
			Width:          r.Width,
			Height:         r.Height,
			Likes:          r.Likes,
			Description:    c.sanitizer.Sanitize(r.Description),
			AltDescription: c.sanitizer.Sanitize(r.AltDescription),
			URLs: domain.ImageURLs{
				Thumb:   r.URLs.Thumb,
				Small:   r.URLs.Small,
				Regular: r.URLs.Regular,
				Full:    r.URLs.Full,
			},
			User: domain.ImageCredit{
				Name:         r.User.Name,
				Username:     r.User.Username,
				ProfileImage: r.User.ProfileImage.Small,
			},
		})
	}

	return pageOut, nil
}
