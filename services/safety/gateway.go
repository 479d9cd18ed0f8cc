package safety

import (
	"context"
	"errors"

	"github.com/piresc/shesafe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/shesafe/services/safety AnalysisGW

// ErrNoOutput is returned when the model produced an empty answer
var ErrNoOutput = errors.New("model returned no output")

// AudioSample is a decoded audio clip plus the context sent with it
type AudioSample struct {
	MIMEType     string
	Data         []byte
	PlaceName    string
	MovementData string
}

// AnalysisGW asks the generative model for structured answers
type AnalysisGW interface {
	DangerZoneAlerts(ctx context.Context, place string) ([]models.DangerZoneAlert, error)
	AnalyzeText(ctx context.Context, situation string) (*models.DistressResponse, error)
	AnalyzeAudio(ctx context.Context, sample *AudioSample) (*models.DistressResponse, error)
}
