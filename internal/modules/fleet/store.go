// README: Vehicle store backed by PostgreSQL; tagged payloads stored as JSONB.
package fleet

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) InsertVehicle(ctx context.Context, v *Vehicle) error {
	details, err := json.Marshal(v.Details)
	if err != nil {
		return err
	}
	model, err := json.Marshal(v.Pricing)
	if err != nil {
		return err
	}
	occupant, err := marshalOccupant(v.Occupant)
	if err != nil {
		return err
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO vehicles (partner_id, name, category, details, pricing, status, occupant)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		v.PartnerID, v.Name, string(v.Category), details, model, string(v.Status), occupant,
	)
	return row.Scan(&v.ID, &v.CreatedAt)
}

func (s *PGStore) GetVehicle(ctx context.Context, id int64) (*Vehicle, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, partner_id, name, category, details, pricing, status, occupant, created_at
		FROM vehicles
		WHERE id = $1`, id,
	)
	v, err := scanVehicle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return v, err
}

func (s *PGStore) ListVehicles(ctx context.Context) ([]*Vehicle, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, partner_id, name, category, details, pricing, status, occupant, created_at
		FROM vehicles
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *PGStore) UpdateVehicle(ctx context.Context, v *Vehicle) error {
	details, err := json.Marshal(v.Details)
	if err != nil {
		return err
	}
	model, err := json.Marshal(v.Pricing)
	if err != nil {
		return err
	}
	occupant, err := marshalOccupant(v.Occupant)
	if err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE vehicles
		SET name = $1, category = $2, details = $3, pricing = $4, status = $5, occupant = $6
		WHERE id = $7`,
		v.Name, string(v.Category), details, model, string(v.Status), occupant, v.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (*Vehicle, error) {
	var (
		v        Vehicle
		details  []byte
		model    []byte
		occupant []byte
	)
	err := row.Scan(&v.ID, &v.PartnerID, &v.Name, &v.Category, &details, &model, &occupant, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(details, &v.Details); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(model, &v.Pricing); err != nil {
		return nil, err
	}
	if len(occupant) > 0 {
		var o Occupant
		if err := json.Unmarshal(occupant, &o); err != nil {
			return nil, err
		}
		v.Occupant = &o
	}
	return &v, nil
}

func marshalOccupant(o *Occupant) ([]byte, error) {
	if o == nil {
		return nil, nil
	}
	return json.Marshal(o)
}
