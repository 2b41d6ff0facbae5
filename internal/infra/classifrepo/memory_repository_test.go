package classifrepo

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/allermind/verdict/internal/domain/classification"
)

func TestMemoryRepositoryRoundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	userID := uuid.New()
	profile := classification.Profile{
		Age:       classification.Age(28),
		Gender:    classification.GenderFemale,
		Diagnosis: classification.DiagnosisMildModerate,
	}

	require.NoError(t, repo.SaveProfile(context.Background(), userID, profile))

	got, found, err := repo.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, profile, got)
}

func TestMemoryRepositoryMiss(t *testing.T) {
	repo := NewMemoryRepository()
	_, found, err := repo.GetProfile(context.Background(), uuid.New())
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryRepositoryOverwrite(t *testing.T) {
	repo := NewMemoryRepository()
	userID := uuid.New()

	require.NoError(t, repo.SaveProfile(context.Background(), userID, classification.Profile{Age: classification.Age(10)}))
	require.NoError(t, repo.SaveProfile(context.Background(), userID, classification.Profile{Age: classification.Age(11)}))

	got, found, err := repo.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, classification.Age(11), got.Age)
}
