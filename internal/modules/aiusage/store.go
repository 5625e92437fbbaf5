package aiusage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore handles ai_usage persistence.
type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

// UseToken atomically checks the monthly quota and deducts one call.
// The counter is reset to DefaultTokens when last_reset_month is behind
// the current month. Zero rows updated means the quota is exhausted or
// the renter is absent.
func (s *PGStore) UseToken(ctx context.Context, renterID int64) error {
	now := time.Now().UTC().Format(monthKey)

	tag, err := s.db.Exec(ctx, `
		UPDATE ai_usage SET
			tokens_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE tokens_remaining - 1 END,
			last_reset_month = $1
		WHERE renter_id = $3 AND (last_reset_month < $1 OR tokens_remaining > 0)
	`, now, DefaultTokens, renterID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientTokens
	}
	return nil
}

// EnsureRenter inserts a fresh allowance row for renterID. An existing row
// is left untouched (ON CONFLICT DO NOTHING).
func (s *PGStore) EnsureRenter(ctx context.Context, renterID int64) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO ai_usage (renter_id, tokens_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (renter_id) DO NOTHING
	`, renterID, DefaultTokens, time.Now().UTC().Format(monthKey))
	return err
}
