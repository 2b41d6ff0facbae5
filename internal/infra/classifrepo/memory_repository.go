package classifrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/allermind/verdict/internal/domain/classification"
)

// MemoryRepository keeps profiles in process memory for tests/dev.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]classification.Profile
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{profiles: make(map[uuid.UUID]classification.Profile)}
}

// SaveProfile implements classification.Repository.
func (r *MemoryRepository) SaveProfile(_ context.Context, userID uuid.UUID, profile classification.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[userID] = profile
	return nil
}

// GetProfile implements classification.Repository.
func (r *MemoryRepository) GetProfile(_ context.Context, userID uuid.UUID) (classification.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.profiles[userID]
	return profile, ok, nil
}

var _ classification.Repository = (*MemoryRepository)(nil)
