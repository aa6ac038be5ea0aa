package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentforgood/sahayak-go/pkg/domain"
	"github.com/agentforgood/sahayak-go/pkg/history"
	sqliteStore "github.com/agentforgood/sahayak-go/pkg/history/sqlite"
)

func setupStore(t *testing.T) *sqliteStore.Store {
	t.Helper()

	store, err := sqliteStore.NewStore(&sqliteStore.Config{
		DBPath: filepath.Join(t.TempDir(), "test_history.db"),
	})
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func record(id int64, userID, query string, d domain.Domain, createdAt time.Time) *history.Record {
	return &history.Record{
		ID:        id,
		UserID:    userID,
		Query:     query,
		Domain:    d,
		Answer:    "answer for " + query,
		Model:     "gemini-2.0-flash",
		CreatedAt: createdAt,
	}
}

func TestSaveAndRecentByUser(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, record(1, "user_001", "first", domain.Health, base)))
	require.NoError(t, store.Save(ctx, record(2, "user_001", "second", domain.Education, base.Add(time.Minute))))
	require.NoError(t, store.Save(ctx, record(3, "user_002", "unrelated", domain.Other, base)))

	records, err := store.RecentByUser(ctx, "user_001", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, "second", records[0].Query)
	assert.Equal(t, domain.Education, records[0].Domain)
	assert.Equal(t, "first", records[1].Query)
	assert.Equal(t, "answer for first", records[1].Answer)
	assert.Equal(t, "gemini-2.0-flash", records[1].Model)
}

func TestRecentByUserLimit(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := int64(1); i <= 5; i++ {
		require.NoError(t, store.Save(ctx,
			record(i, "user_001", "q", domain.Other, base.Add(time.Duration(i)*time.Second))))
	}

	records, err := store.RecentByUser(ctx, "user_001", 3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, int64(5), records[0].ID)
}

func TestRecentByUserTieBreak(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	// Equal timestamps fall back to ID order, newest insert first.
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, record(10, "user_001", "older", domain.Other, at)))
	require.NoError(t, store.Save(ctx, record(20, "user_001", "newer", domain.Other, at)))

	records, err := store.RecentByUser(ctx, "user_001", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(20), records[0].ID)
}

func TestRecentByUserEmpty(t *testing.T) {
	store := setupStore(t)

	records, err := store.RecentByUser(context.Background(), "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCountByDomain(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, record(1, "a", "q1", domain.Health, base)))
	require.NoError(t, store.Save(ctx, record(2, "b", "q2", domain.Health, base)))
	require.NoError(t, store.Save(ctx, record(3, "a", "q3", domain.GovernmentScheme, base)))

	counts, err := store.CountByDomain(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, counts[domain.Health])
	assert.Equal(t, 1, counts[domain.GovernmentScheme])
	assert.Zero(t, counts[domain.Education])
}

func TestSaveDuplicateID(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, record(1, "a", "q", domain.Other, at)))

	// The ID is the primary key; reusing one fails.
	err := store.Save(ctx, record(1, "a", "q again", domain.Other, at))
	assert.Error(t, err)
}

func TestCustomTableName(t *testing.T) {
	store, err := sqliteStore.NewStore(&sqliteStore.Config{
		DBPath:    filepath.Join(t.TempDir(), "test_history.db"),
		TableName: "assistant_log",
	})
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, record(1, "a", "q", domain.Other, at)))

	records, err := store.RecentByUser(ctx, "a", 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
