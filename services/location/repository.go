package location

import (
	"context"
	"time"

	"github.com/piresc/shesafe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/shesafe/services/location LocationRepo

// LocationRepo keeps the latest shared fix of active sessions and the
// share tokens pointing at them
type LocationRepo interface {
	SaveShareToken(ctx context.Context, token, ownerID string, ttl time.Duration) error
	GetOwnerByToken(ctx context.Context, token string) (string, error)
	SaveSharedPosition(ctx context.Context, ownerID string, shared *models.SharedLocation) error
	GetSharedPosition(ctx context.Context, ownerID string) (*models.SharedLocation, error)
	ClearSession(ctx context.Context, ownerID, token string) error
}
