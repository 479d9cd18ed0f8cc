package owners

import (
	"context"

	"github.com/piresc/shesafe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/shesafe/services/owners OwnerUC

// OwnerUC handles owner accounts and token issuance
type OwnerUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetOwner(ctx context.Context, id string) (*models.Owner, error)
}
