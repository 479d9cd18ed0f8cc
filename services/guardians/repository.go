package guardians

import (
	"context"

	"github.com/piresc/shesafe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/shesafe/services/guardians GuardianRepo

// GuardianRepo loads and saves an owner's full guardian set.
// A missing record loads as an empty set.
type GuardianRepo interface {
	Load(ctx context.Context, ownerID string) (*models.GuardianSet, error)
	Save(ctx context.Context, ownerID string, set *models.GuardianSet) error
}
