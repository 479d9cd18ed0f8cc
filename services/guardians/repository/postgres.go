package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/shesafe/internal/pkg/models"
)

// guardianNamespace is the kv_store namespace of guardian sets
const guardianNamespace = "guardians"

// PostgresGuardianRepo stores guardian sets in the kv_store table
type PostgresGuardianRepo struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewPostgresGuardianRepo creates a PostgreSQL-backed guardian repository
func NewPostgresGuardianRepo(db *sqlx.DB) *PostgresGuardianRepo {
	return &PostgresGuardianRepo{db: db, now: models.Now}
}

// Load reads the owner's guardian set
func (r *PostgresGuardianRepo) Load(ctx context.Context, ownerID string) (*models.GuardianSet, error) {
	query := `
		SELECT value
		FROM kv_store
		WHERE namespace = $1 AND key = $2
	`

	var raw []byte
	if err := r.db.QueryRowxContext(ctx, query, guardianNamespace, ownerID).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NewGuardianSet(), nil
		}
		return nil, &models.StorageError{Op: "load guardians", Err: err}
	}

	set, err := models.DecodeGuardianSet(raw)
	if err != nil {
		return nil, &models.StorageError{Op: "load guardians", Err: err}
	}
	return set, nil
}

// Save upserts the owner's guardian set
func (r *PostgresGuardianRepo) Save(ctx context.Context, ownerID string, set *models.GuardianSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return &models.StorageError{Op: "save guardians", Err: err}
	}

	query := `
		INSERT INTO kv_store (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (namespace, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, guardianNamespace, ownerID, data, r.now()); err != nil {
		return &models.StorageError{Op: "save guardians", Err: err}
	}
	return nil
}
