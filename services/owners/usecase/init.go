package usecase

import (
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/services/owners"
	"golang.org/x/crypto/bcrypt"
)

// OwnerUC implements owners.OwnerUC
type OwnerUC struct {
	ownerRepo  owners.OwnerRepo
	cfg        *models.Config
	bcryptCost int
}

// NewOwnerUC creates a new owner usecase instance
func NewOwnerUC(ownerRepo owners.OwnerRepo, cfg *models.Config) *OwnerUC {
	return &OwnerUC{
		ownerRepo:  ownerRepo,
		cfg:        cfg,
		bcryptCost: bcrypt.DefaultCost,
	}
}
