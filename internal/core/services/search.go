package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driven"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driving"
)

// Ensure searchService implements SearchService
var _ driving.SearchService = (*searchService)(nil)

// searchService implements the SearchService interface
type searchService struct {
	historyStore  driven.SearchHistoryStore
	imageProvider driven.ImageProvider
	logger        *slog.Logger
}

// NewSearchService creates a new SearchService
func NewSearchService(
	historyStore driven.SearchHistoryStore,
	imageProvider driven.ImageProvider,
	logger *slog.Logger,
) driving.SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &searchService{
		historyStore:  historyStore,
		imageProvider: imageProvider,
		logger:        logger,
	}
}

// Search executes one image search. Ordering matters here:
//
//  1. Reject blank terms before any side effect.
//  2. Persist a history record with result count 0, so a record of
//     intent survives provider failure.
//  3. Call the provider, single attempt, one page of fixed size.
//  4. On success, update the record's count once and return the page.
//
// The create and the count update are not transactional with the provider
// call; a record left at count 0 after a failure is kept, not rolled back.
func (s *searchService) Search(ctx context.Context, auth *domain.AuthContext, rawTerm string) (*domain.SearchResult, error) {
	if auth == nil {
		return nil, domain.ErrUnauthorized
	}

	term := domain.NormalizeTerm(rawTerm)
	if term == "" {
		return nil, domain.ErrTermRequired
	}

	record := &domain.SearchRecord{
		ID:        uuid.NewString(),
		UserID:    auth.UserID,
		Term:      term,
		CreatedAt: time.Now(),
	}
	if err := s.historyStore.Create(ctx, record); err != nil {
		return nil, err
	}

	page, err := s.imageProvider.Search(ctx, term, 1, domain.ResultsPerPage)
	if err != nil {
		s.logger.Warn("image provider call failed",
			"term", term, "user_id", auth.UserID, "error", err)
		return nil, err
	}

	if err := s.historyStore.UpdateResultCount(ctx, record.ID, len(page.Results)); err != nil {
		// The search itself succeeded; log and return results anyway
		s.logger.Warn("failed to update search record count",
			"record_id", record.ID, "error", err)
	}

	s.logger.Info("search completed",
		"term", term, "user_id", auth.UserID, "results", len(page.Results))

	return &domain.SearchResult{
		Term:       term,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		Results:    page.Results,
	}, nil
}
