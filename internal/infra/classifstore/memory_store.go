package classifstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/allermind/verdict/internal/domain/classification"
)

type cachedResult struct {
	payload   classification.Result
	expiresAt time.Time
}

// MemoryStore is an in-memory classification cache for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	results map[uuid.UUID]cachedResult
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{results: make(map[uuid.UUID]cachedResult)}
}

// GetResult implements classification.Store.
func (s *MemoryStore) GetResult(_ context.Context, userID uuid.UUID) (classification.Result, bool, error) {
	s.mu.RLock()
	record, ok := s.results[userID]
	s.mu.RUnlock()
	if !ok {
		return classification.Result{}, false, nil
	}
	if hasExpired(record.expiresAt) {
		s.mu.Lock()
		delete(s.results, userID)
		s.mu.Unlock()
		return classification.Result{}, false, nil
	}
	return record.payload, true, nil
}

// SaveResult caches the result with optional TTL.
func (s *MemoryStore) SaveResult(_ context.Context, result classification.Result, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.results[result.UserID] = cachedResult{payload: result, expiresAt: exp}
	return nil
}

func hasExpired(expiresAt time.Time) bool {
	return !expiresAt.IsZero() && time.Now().After(expiresAt)
}

var _ classification.Store = (*MemoryStore)(nil)
