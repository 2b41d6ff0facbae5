package classifstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/allermind/verdict/internal/domain/classification"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()
	result := classification.Result{UserID: userID, GroupID: 2, GroupName: "Mild-Moderate Allergic Group"}

	require.NoError(t, store.SaveResult(context.Background(), result, time.Minute))

	got, ok, err := store.GetResult(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, got.GroupID)
}

func TestMemoryStoreMiss(t *testing.T) {
	store := NewMemoryStore()
	_, ok, err := store.GetResult(context.Background(), uuid.New())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()
	result := classification.Result{UserID: userID, GroupID: 1}

	require.NoError(t, store.SaveResult(context.Background(), result, time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	_, ok, err := store.GetResult(context.Background(), userID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreZeroTTLNeverExpires(t *testing.T) {
	store := NewMemoryStore()
	userID := uuid.New()

	require.NoError(t, store.SaveResult(context.Background(), classification.Result{UserID: userID}, 0))

	_, ok, err := store.GetResult(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, ok)
}
