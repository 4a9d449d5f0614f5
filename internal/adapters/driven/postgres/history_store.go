package postgres

import (
	"context"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.SearchHistoryStore = (*SearchHistoryStore)(nil)

// SearchHistoryStore implements driven.SearchHistoryStore using PostgreSQL
type SearchHistoryStore struct {
	db *DB
}

// NewSearchHistoryStore creates a new SearchHistoryStore
func NewSearchHistoryStore(db *DB) *SearchHistoryStore {
	return &SearchHistoryStore{db: db}
}

// Create persists a new search record
func (s *SearchHistoryStore) Create(ctx context.Context, record *domain.SearchRecord) error {
	query := `
		INSERT INTO search_history (id, user_id, term, created_at, result_count)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.Term,
		record.CreatedAt,
		record.ResultCount,
	)
	return err
}

// UpdateResultCount sets the result count of one record
func (s *SearchHistoryStore) UpdateResultCount(ctx context.Context, id string, count int) error {
	query := `UPDATE search_history SET result_count = $1 WHERE id = $2`
	result, err := s.db.ExecContext(ctx, query, count, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// ListByUser returns a user's records newest first, capped at limit
func (s *SearchHistoryStore) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.SearchRecord, error) {
	query := `
		SELECT id, user_id, term, created_at, result_count
		FROM search_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.SearchRecord
	for rows.Next() {
		var rec domain.SearchRecord
		err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Term,
			&rec.CreatedAt,
			&rec.ResultCount,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// TopTerms aggregates all users' records into the global term ranking.
// One grouped query: occurrence count descending, most-recent search
// descending as the tie breaker.
func (s *SearchHistoryStore) TopTerms(ctx context.Context, limit int) ([]domain.TrendingTerm, error) {
	query := `
		SELECT term, COUNT(*) AS search_count, MAX(created_at) AS last_searched
		FROM search_history
		GROUP BY term
		ORDER BY search_count DESC, last_searched DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []domain.TrendingTerm
	for rows.Next() {
		var t domain.TrendingTerm
		if err := rows.Scan(&t.Term, &t.Count, &t.LastSearched); err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return terms, nil
}
