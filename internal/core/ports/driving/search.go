package driving

import (
	"context"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
)

// SearchService executes image searches on behalf of authenticated users
type SearchService interface {
	// Search validates and normalizes rawTerm, records the search, queries
	// the image provider, and returns normalized results.
	// ErrTermRequired for blank terms; provider failures leave the history
	// record at result count 0.
	Search(ctx context.Context, auth *domain.AuthContext, rawTerm string) (*domain.SearchResult, error)
}
