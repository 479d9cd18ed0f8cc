package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/shesafe/internal/pkg/models"
)

// OwnerRepo implements owners.OwnerRepo on PostgreSQL
type OwnerRepo struct {
	db *sqlx.DB
}

// NewOwnerRepository creates a new owner repository
func NewOwnerRepository(db *sqlx.DB) *OwnerRepo {
	return &OwnerRepo{db: db}
}

// CreateOwner inserts a new owner. A taken phone number is a ConflictError.
func (r *OwnerRepo) CreateOwner(ctx context.Context, owner *models.Owner) error {
	query := `
		INSERT INTO owners (id, name, phone, pin_hash, created_at, updated_at)
		VALUES (:id, :name, :phone, :pin_hash, :created_at, :updated_at)
		ON CONFLICT (phone) DO NOTHING
	`

	result, err := r.db.NamedExecContext(ctx, query, owner)
	if err != nil {
		return &models.StorageError{Op: "create owner", Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &models.StorageError{Op: "create owner", Err: err}
	}
	if affected == 0 {
		return &models.ConflictError{Reason: "phone number is already registered"}
	}
	return nil
}

// GetOwnerByPhone retrieves an owner by normalized phone number
func (r *OwnerRepo) GetOwnerByPhone(ctx context.Context, phone string) (*models.Owner, error) {
	return r.getOwner(ctx, "phone", phone)
}

// GetOwnerByID retrieves an owner by id
func (r *OwnerRepo) GetOwnerByID(ctx context.Context, id string) (*models.Owner, error) {
	return r.getOwner(ctx, "id", id)
}

func (r *OwnerRepo) getOwner(ctx context.Context, column, value string) (*models.Owner, error) {
	query := fmt.Sprintf(`
		SELECT id, name, phone, pin_hash, created_at, updated_at
		FROM owners
		WHERE %s = $1
	`, column)

	var owner models.Owner
	if err := r.db.GetContext(ctx, &owner, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &models.NotFoundError{Resource: "owner", ID: value}
		}
		return nil, &models.StorageError{Op: "get owner", Err: err}
	}
	return &owner, nil
}
