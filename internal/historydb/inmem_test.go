package historydb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore_CreateAssignsID(t *testing.T) {
	store := NewInMemoryStore()
	rec, err := store.History().Create(context.Background(), ParseRecord{Source: "local x = 1", Accepted: true})
	require.NoError(t, err)
	assert.NotEqual(t, rec.ID.String(), "")
}

func TestInMemoryStore_GetByID_RoundTrips(t *testing.T) {
	store := NewInMemoryStore()
	created, err := store.History().Create(context.Background(), ParseRecord{Source: "return 1", Accepted: true})
	require.NoError(t, err)

	got, err := store.History().GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestInMemoryStore_GetByID_NotFound(t *testing.T) {
	store := NewInMemoryStore()
	id, err := uuid.NewRandom()
	require.NoError(t, err)
	_, err = store.History().GetByID(context.Background(), id)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestInMemoryStore_GetAll_OrderedMostRecentFirst(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	older := time.Now().Add(-time.Hour)
	newer := time.Now()

	_, err := store.History().Create(ctx, ParseRecord{Source: "a", SubmittedAt: older})
	require.NoError(t, err)
	_, err = store.History().Create(ctx, ParseRecord{Source: "b", SubmittedAt: newer})
	require.NoError(t, err)

	all, err := store.History().GetAll(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].Source)
	assert.Equal(t, "a", all[1].Source)
}

func TestInMemoryStore_GetAll_FiltersByNotBefore(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()
	older := time.Now().Add(-time.Hour)
	newer := time.Now()
	cutoff := time.Now().Add(-time.Minute)

	_, err := store.History().Create(ctx, ParseRecord{Source: "a", SubmittedAt: older})
	require.NoError(t, err)
	_, err = store.History().Create(ctx, ParseRecord{Source: "b", SubmittedAt: newer})
	require.NoError(t, err)

	all, err := store.History().GetAll(ctx, &cutoff, nil)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].Source)
}

