package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"fund-selector/domain"
)

const createProfilesTable = `
CREATE TABLE IF NOT EXISTS profiles (
	id          TEXT PRIMARY KEY,
	created_at  TIMESTAMPTZ NOT NULL,
	horizon     TEXT NOT NULL,
	final_risk  TEXT NOT NULL,
	payload     JSONB NOT NULL
)`

const insertProfile = `
INSERT INTO profiles (id, created_at, horizon, final_risk, payload)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload`

const selectProfile = `SELECT payload FROM profiles WHERE id = $1`

// pgQuerier is the subset of *pgxpool.Pool the repository needs.
type pgQuerier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type ProfileRepositoryPostgres struct {
	db   pgQuerier
	pool *pgxpool.Pool
}

// NewProfileRepositoryPostgres connects to dsn and makes sure the profiles table exists.
func NewProfileRepositoryPostgres(ctx context.Context, dsn string) (*ProfileRepositoryPostgres, error) {
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	r := &ProfileRepositoryPostgres{db: pool, pool: pool}
	if err := r.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return r, nil
}

func newProfileRepositoryPostgres(db pgQuerier) *ProfileRepositoryPostgres {
	return &ProfileRepositoryPostgres{db: db}
}

func (r *ProfileRepositoryPostgres) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createProfilesTable); err != nil {
		return fmt.Errorf("failed to create profiles table: %w", err)
	}
	return nil
}

func (r *ProfileRepositoryPostgres) Save(ctx context.Context, profile domain.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	_, err = r.db.Exec(ctx, insertProfile,
		profile.ID, profile.CreatedAt, profile.Horizon.String(), profile.FinalRisk.String(), payload)
	if err != nil {
		return fmt.Errorf("failed to insert profile %s: %w", profile.ID, err)
	}
	return nil
}

func (r *ProfileRepositoryPostgres) Get(ctx context.Context, id string) (domain.Profile, error) {
	var payload []byte
	if err := r.db.QueryRow(ctx, selectProfile, id).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, fmt.Errorf("failed to load profile %s: %w", id, err)
	}
	var p domain.Profile
	if err := json.Unmarshal(payload, &p); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to decode profile %s: %w", id, err)
	}
	return p, nil
}

func (r *ProfileRepositoryPostgres) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}
