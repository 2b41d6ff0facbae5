package classifstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/valkey-io/valkey-go"

	"github.com/allermind/verdict/internal/domain/classification"
)

// ValkeyStore caches classification results in a Valkey-compatible
// database so repeat verdict requests skip the profile recompute.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "classification"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// GetResult implements classification.Store.
func (s *ValkeyStore) GetResult(ctx context.Context, userID uuid.UUID) (classification.Result, bool, error) {
	cmd := s.client.B().Get().Key(s.key(userID)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return classification.Result{}, false, nil
		}
		return classification.Result{}, false, err
	}
	var result classification.Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return classification.Result{}, false, err
	}
	return result, true, nil
}

// SaveResult caches the result with optional TTL.
func (s *ValkeyStore) SaveResult(ctx context.Context, result classification.Result, ttl time.Duration) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	if ttl > 0 {
		cmd := s.client.B().Set().Key(s.key(result.UserID)).Value(string(payload)).Ex(ttl).Build()
		return s.client.Do(ctx, cmd).Error()
	}
	cmd := s.client.B().Set().Key(s.key(result.UserID)).Value(string(payload)).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) key(userID uuid.UUID) string {
	return s.prefix + ":result:" + userID.String()
}

var _ classification.Store = (*ValkeyStore)(nil)
