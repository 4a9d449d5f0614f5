package domain

import (
	"strings"
	"time"
)

const (
	// ResultsPerPage is the fixed page size requested from the image provider
	ResultsPerPage = 20

	// RecentHistoryLimit caps the records returned by recent-history reads
	RecentHistoryLimit = 20

	// TopSearchesLimit caps the global trending-terms ranking
	TopSearchesLimit = 5
)

// NormalizeTerm trims and lower-cases a raw search term. The normalized
// form is the one persisted, so equal terms group correctly when trends
// are aggregated.
func NormalizeTerm(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// SearchRecord is one persisted search. It is created before the provider
// call (so intent survives provider failure) and its ResultCount is updated
// exactly once after a successful call. A record stuck at ResultCount 0 is
// accepted evidence of an attempted search, not an error state.
type SearchRecord struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Term        string    `json:"term"`
	CreatedAt   time.Time `json:"created_at"`
	ResultCount int       `json:"result_count"`
}

// HistoryEntry is the API projection of a SearchRecord
type HistoryEntry struct {
	ID          string    `json:"id"`
	Term        string    `json:"term"`
	Timestamp   time.Time `json:"timestamp"`
	ResultCount int       `json:"resultCount"`
}

// ToHistoryEntry converts a SearchRecord to its API projection
func (r *SearchRecord) ToHistoryEntry() HistoryEntry {
	return HistoryEntry{
		ID:          r.ID,
		Term:        r.Term,
		Timestamp:   r.CreatedAt,
		ResultCount: r.ResultCount,
	}
}

// TrendingTerm is one entry of the global top-searches ranking
type TrendingTerm struct {
	Term         string    `json:"term"`
	Count        int       `json:"count"`
	LastSearched time.Time `json:"lastSearched"`
}

// ImageURLs holds the provider's renditions of one image
type ImageURLs struct {
	Thumb   string `json:"thumb"`
	Small   string `json:"small"`
	Regular string `json:"regular"`
	Full    string `json:"full"`
}

// ImageCredit identifies the photographer behind an image
type ImageCredit struct {
	Name         string `json:"name"`
	Username     string `json:"username"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Image is one normalized image result
type Image struct {
	ID             string      `json:"id"`
	URLs           ImageURLs   `json:"urls"`
	AltDescription string      `json:"altDescription,omitempty"`
	Description    string      `json:"description,omitempty"`
	User           ImageCredit `json:"user"`
	Likes          int         `json:"likes"`
	Width          int         `json:"width"`
	Height         int         `json:"height"`
}

// ImagePage is one page of provider results plus the provider's totals
type ImagePage struct {
	Total      int     `json:"total"`
	TotalPages int     `json:"totalPages"`
	Results    []Image `json:"results"`
}

// SearchResult is the full response of one executed search
type SearchResult struct {
	Term       string  `json:"term"`
	Total      int     `json:"total"`
	TotalPages int     `json:"totalPages"`
	Results    []Image `json:"results"`
}
