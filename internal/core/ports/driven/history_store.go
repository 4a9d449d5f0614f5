package driven

import (
	"context"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
)

// SearchHistoryStore persists one record per executed search.
// Records are created before the provider call and receive exactly one
// result-count update afterwards; they are never deleted.
type SearchHistoryStore interface {
	// Create persists a new search record
	Create(ctx context.Context, record *domain.SearchRecord) error

	// UpdateResultCount sets the result count of one record,
	// ErrNotFound if the record does not exist
	UpdateResultCount(ctx context.Context, id string, count int) error

	// ListByUser returns a user's records newest first, capped at limit
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.SearchRecord, error)

	// TopTerms aggregates all users' records by term: occurrence count
	// descending, most-recent timestamp descending, capped at limit
	TopTerms(ctx context.Context, limit int) ([]domain.TrendingTerm, error)
}
