package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
)

// MockSearchHistoryStore is a mock implementation of SearchHistoryStore
// for testing. It reproduces the real stores' ordering semantics so
// service tests exercise the documented contracts.
type MockSearchHistoryStore struct {
	mu      sync.RWMutex
	records []*domain.SearchRecord

	// CreateErr, when set, is returned by Create
	CreateErr error

	// UpdateErr, when set, is returned by UpdateResultCount
	UpdateErr error

	// ReadErr, when set, is returned by ListByUser and TopTerms
	ReadErr error
}

// NewMockSearchHistoryStore creates a new MockSearchHistoryStore
func NewMockSearchHistoryStore() *MockSearchHistoryStore {
	return &MockSearchHistoryStore{}
}

func (m *MockSearchHistoryStore) Create(ctx context.Context, record *domain.SearchRecord) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *record
	m.records = append(m.records, &cp)
	return nil
}

func (m *MockSearchHistoryStore) UpdateResultCount(ctx context.Context, id string, count int) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range m.records {
		if rec.ID == id {
			rec.ResultCount = count
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *MockSearchHistoryStore) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.SearchRecord, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*domain.SearchRecord
	for _, rec := range m.records {
		if rec.UserID == userID {
			cp := *rec
			result = append(result, &cp)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockSearchHistoryStore) TopTerms(ctx context.Context, limit int) ([]domain.TrendingTerm, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	byTerm := make(map[string]*domain.TrendingTerm)
	for _, rec := range m.records {
		t, ok := byTerm[rec.Term]
		if !ok {
			byTerm[rec.Term] = &domain.TrendingTerm{Term: rec.Term, Count: 1, LastSearched: rec.CreatedAt}
			continue
		}
		t.Count++
		if rec.CreatedAt.After(t.LastSearched) {
			t.LastSearched = rec.CreatedAt
		}
	}

	var result []domain.TrendingTerm
	for _, t := range byTerm {
		result = append(result, *t)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].LastSearched.After(result[j].LastSearched)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// All returns every stored record
func (m *MockSearchHistoryStore) All() []*domain.SearchRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.SearchRecord, 0, len(m.records))
	for _, rec := range m.records {
		cp := *rec
		result = append(result, &cp)
	}
	return result
}
