package safety

import (
	"context"

	"github.com/piresc/shesafe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/shesafe/services/safety SafetyUC

// SafetyUC runs the AI analysis flows. Provider failures degrade to
// fallback results and are never returned as errors; only validation
// errors are.
type SafetyUC interface {
	GetDangerZoneAlerts(ctx context.Context, req *models.DangerZoneRequest) (*models.DangerZoneResponse, error)
	AnalyzeDistressContext(ctx context.Context, req *models.DistressRequest) (*models.DistressResponse, error)
}
