package driving

import (
	"context"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
)

// HistoryService provides read-only reporting over search history
type HistoryService interface {
	// Recent returns the calling user's searches, newest first, capped
	// at domain.RecentHistoryLimit
	Recent(ctx context.Context, auth *domain.AuthContext) ([]domain.HistoryEntry, error)

	// TopSearches returns the global term ranking: occurrence count
	// descending, most-recent timestamp descending, capped at
	// domain.TopSearchesLimit
	TopSearches(ctx context.Context) ([]domain.TrendingTerm, error)
}
