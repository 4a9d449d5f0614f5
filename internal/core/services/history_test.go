package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
	"github.com/custodia-labs/snapseek-core/internal/core/ports/driven/mocks"
)

func seedRecord(t *testing.T, store *mocks.MockSearchHistoryStore, userID, term string, at time.Time) {
	t.Helper()
	err := store.Create(context.Background(), &domain.SearchRecord{
		ID:        fmt.Sprintf("%s-%s-%d", userID, term, at.UnixNano()),
		UserID:    userID,
		Term:      term,
		CreatedAt: at,
	})
	require.NoError(t, err)
}

func TestHistoryService_Recent(t *testing.T) {
	store := mocks.NewMockSearchHistoryStore()
	svc := NewHistoryService(store)
	base := time.Now()

	seedRecord(t, store, "user-1", "cats", base.Add(-2*time.Minute))
	seedRecord(t, store, "user-1", "dogs", base.Add(-1*time.Minute))
	seedRecord(t, store, "user-2", "other", base)

	entries, err := svc.Recent(context.Background(), &domain.AuthContext{UserID: "user-1"})
	require.NoError(t, err)

	// Caller's records only, newest first
	require.Len(t, entries, 2)
	assert.Equal(t, "dogs", entries[0].Term)
	assert.Equal(t, "cats", entries[1].Term)
}

func TestHistoryService_Recent_Cap(t *testing.T) {
	store := mocks.NewMockSearchHistoryStore()
	svc := NewHistoryService(store)
	base := time.Now()

	for i := 0; i < domain.RecentHistoryLimit+10; i++ {
		seedRecord(t, store, "user-1", fmt.Sprintf("term-%d", i), base.Add(time.Duration(i)*time.Second))
	}

	entries, err := svc.Recent(context.Background(), &domain.AuthContext{UserID: "user-1"})
	require.NoError(t, err)
	assert.Len(t, entries, domain.RecentHistoryLimit)
	assert.Equal(t, fmt.Sprintf("term-%d", domain.RecentHistoryLimit+9), entries[0].Term)
}

func TestHistoryService_Recent_Unauthenticated(t *testing.T) {
	svc := NewHistoryService(mocks.NewMockSearchHistoryStore())

	_, err := svc.Recent(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestHistoryService_TopSearches(t *testing.T) {
	store := mocks.NewMockSearchHistoryStore()
	svc := NewHistoryService(store)
	base := time.Now()

	// cats x3, dogs x2, birds x2 (more recent than dogs), plus singles
	seedRecord(t, store, "user-1", "cats", base.Add(-5*time.Minute))
	seedRecord(t, store, "user-2", "cats", base.Add(-4*time.Minute))
	seedRecord(t, store, "user-1", "cats", base.Add(-3*time.Minute))
	seedRecord(t, store, "user-1", "dogs", base.Add(-10*time.Minute))
	seedRecord(t, store, "user-2", "dogs", base.Add(-9*time.Minute))
	seedRecord(t, store, "user-1", "birds", base.Add(-2*time.Minute))
	seedRecord(t, store, "user-2", "birds", base.Add(-1*time.Minute))
	seedRecord(t, store, "user-1", "fish", base.Add(-8*time.Minute))
	seedRecord(t, store, "user-2", "mice", base.Add(-7*time.Minute))
	seedRecord(t, store, "user-1", "ants", base.Add(-6*time.Minute))

	terms, err := svc.TopSearches(context.Background())
	require.NoError(t, err)

	// Never more than 5 entries
	require.Len(t, terms, domain.TopSearchesLimit)

	// Count descending, tie broken by most-recent timestamp
	assert.Equal(t, "cats", terms[0].Term)
	assert.Equal(t, 3, terms[0].Count)
	assert.Equal(t, "birds", terms[1].Term, "tie on count resolved by recency")
	assert.Equal(t, "dogs", terms[2].Term)

	for i := 1; i < len(terms); i++ {
		assert.GreaterOrEqual(t, terms[i-1].Count, terms[i].Count)
	}
}

func TestHistoryService_TopSearches_Empty(t *testing.T) {
	svc := NewHistoryService(mocks.NewMockSearchHistoryStore())

	terms, err := svc.TopSearches(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, terms)
	assert.Empty(t, terms)
}
