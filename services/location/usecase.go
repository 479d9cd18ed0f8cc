package location

import (
	"context"

	"github.com/piresc/shesafe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/shesafe/services/location LocationUC

// LocationUC manages the location-sharing session of each owner
type LocationUC interface {
	Start(ctx context.Context, ownerID string, selection *models.ShareSelection) (*models.SessionSnapshot, error)
	Stop(ctx context.Context, ownerID string) (*models.SessionSnapshot, error)
	Status(ctx context.Context, ownerID string) (*models.SessionSnapshot, error)
	CopyLink(ctx context.Context, ownerID string) (string, error)
	DispatchViaExternalChannel(ctx context.Context, ownerID string, channel models.ShareChannel, message string) (*models.ShareIntent, error)
	ResolveShareToken(ctx context.Context, token string) (*models.SharedLocation, error)
	IngestFix(ctx context.Context, ownerID string, fix *models.DeviceFix) error
}
