package services

import (
	"context"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driven"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driving"
)

// Ensure historyService implements HistoryService
var _ driving.HistoryService = (*historyService)(nil)

// historyService implements the HistoryService interface.
// Both operations are pure reads; the aggregation itself lives in the
// store as a single grouped query.
type historyService struct {
	historyStore driven.SearchHistoryStore
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(historyStore driven.SearchHistoryStore) driving.HistoryService {
	return &historyService{historyStore: historyStore}
}

// Recent returns the calling user's searches, newest first
func (s *historyService) Recent(ctx context.Context, auth *domain.AuthContext) ([]domain.HistoryEntry, error) {
	if auth == nil {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.historyStore.ListByUser(ctx, auth.UserID, domain.RecentHistoryLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.HistoryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, rec.ToHistoryEntry())
	}
	return entries, nil
}

// TopSearches returns the global term ranking
func (s *historyService) TopSearches(ctx context.Context) ([]domain.TrendingTerm, error) {
	terms, err := s.historyStore.TopTerms(ctx, domain.TopSearchesLimit)
	if err != nil {
		return nil, err
	}
	if terms == nil {
		terms = []domain.TrendingTerm{}
	}
	return terms, nil
}
