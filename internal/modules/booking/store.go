// README: Reservation store backed by PostgreSQL.
package booking

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rentgo/internal/types"
)

type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) InsertReservation(ctx context.Context, r *Reservation) error {
	addons, err := json.Marshal(r.AddOns)
	if err != nil {
		return err
	}
	extras, err := json.Marshal(r.Extras)
	if err != nil {
		return err
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO reservations (
			vehicle_id, renter_id, start_date, end_date,
			addons, total_amount, currency, extras, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		r.VehicleID, r.RenterID, r.Range.Start, r.Range.End,
		addons, r.TotalCost.Amount, r.TotalCost.Currency, extras, string(r.Status), r.CreatedAt,
	)
	return row.Scan(&r.ID)
}

func (s *PGStore) GetReservation(ctx context.Context, id int64) (*Reservation, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, vehicle_id, renter_id, start_date, end_date,
		       addons, total_amount, currency, extras, status, created_at, cancelled_at
		FROM reservations
		WHERE id = $1`, id,
	)
	r, err := scanReservation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return r, err
}

func (s *PGStore) ListReservations(ctx context.Context, vehicleID int64) ([]*Reservation, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, vehicle_id, renter_id, start_date, end_date,
		       addons, total_amount, currency, extras, status, created_at, cancelled_at
		FROM reservations
		WHERE vehicle_id = $1
		ORDER BY start_date`, vehicleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PGStore) UpdateReservation(ctx context.Context, r *Reservation) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE reservations
		SET status = $1, cancelled_at = $2
		WHERE id = $3`,
		string(r.Status), r.CancelledAt, r.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) DeleteReservation(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*Reservation, error) {
	var (
		r      Reservation
		addons []byte
		extras []byte
	)
	err := row.Scan(&r.ID, &r.VehicleID, &r.RenterID, &r.Range.Start, &r.Range.End,
		&addons, &r.TotalCost.Amount, &r.TotalCost.Currency, &extras, &r.Status, &r.CreatedAt, &r.CancelledAt)
	if err != nil {
		return nil, err
	}
	if len(addons) > 0 {
		if err := json.Unmarshal(addons, &r.AddOns); err != nil {
			return nil, err
		}
	}
	if len(extras) > 0 {
		if err := json.Unmarshal(extras, &r.Extras); err != nil {
			return nil, err
		}
	}
	// Stored dates come back as timestamps; normalize to calendar dates.
	r.Range = types.NewDateRange(r.Range.Start, r.Range.End)
	return &r, nil
}
