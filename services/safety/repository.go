package safety

import (
	"context"
	"time"

	"github.com/piresc/shesafe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/shesafe/services/safety SafetyRepo

// SafetyRepo caches danger-zone alerts per place cell.
// A cache miss is a NotFoundError.
type SafetyRepo interface {
	GetDangerAlerts(ctx context.Context, cell string) ([]models.DangerZoneAlert, error)
	SaveDangerAlerts(ctx context.Context, cell string, alerts []models.DangerZoneAlert, ttl time.Duration) error
}
