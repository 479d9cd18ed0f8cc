package owners

import (
	"context"

	"github.com/piresc/shesafe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/shesafe/services/owners OwnerRepo

// OwnerRepo persists owner accounts
type OwnerRepo interface {
	CreateOwner(ctx context.Context, owner *models.Owner) error
	GetOwnerByPhone(ctx context.Context, phone string) (*models.Owner, error)
	GetOwnerByID(ctx context.Context, id string) (*models.Owner, error)
}
