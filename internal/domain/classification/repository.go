package classification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository persists user profiles so classifications can be re-run
// on later queries.
type Repository interface {
	SaveProfile(ctx context.Context, userID uuid.UUID, profile Profile) error
	GetProfile(ctx context.Context, userID uuid.UUID) (Profile, bool, error)
}

// Store caches classification results keyed by user id.
type Store interface {
	GetResult(ctx context.Context, userID uuid.UUID) (Result, bool, error)
	SaveResult(ctx context.Context, result Result, ttl time.Duration) error
}
