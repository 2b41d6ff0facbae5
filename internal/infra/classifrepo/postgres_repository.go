package classifrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/allermind/verdict/internal/domain/classification"
)

// PostgresRepository persists user profiles in Postgres. The profile
// body is stored as JSONB; classification is recomputed on read.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// SaveProfile upserts the profile row for the user.
func (r *PostgresRepository) SaveProfile(ctx context.Context, userID uuid.UUID, profile classification.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO user_profiles (user_id, profile, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE
		SET profile = EXCLUDED.profile, updated_at = now()
	`, userID, payload)
	return err
}

// GetProfile fetches the stored profile for the user.
func (r *PostgresRepository) GetProfile(ctx context.Context, userID uuid.UUID) (classification.Profile, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT profile
		FROM user_profiles
		WHERE user_id = $1
		LIMIT 1
	`, userID)
	if err != nil {
		return classification.Profile{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return classification.Profile{}, false, rows.Err()
	}
	var payload []byte
	if err := rows.Scan(&payload); err != nil {
		return classification.Profile{}, false, err
	}
	var profile classification.Profile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return classification.Profile{}, false, fmt.Errorf("decode profile: %w", err)
	}
	return profile, true, rows.Err()
}

var _ classification.Repository = (*PostgresRepository)(nil)
