package location

import (
	"context"

	"github.com/piresc/shesafe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/shesafe/services/location LocationGW,GuardianDirectory,DeviceNotifier

// LocationGW publishes session events and queues share-link messages
type LocationGW interface {
	PublishSessionStarted(ctx context.Context, event *models.SessionEvent) error
	PublishPositionUpdate(ctx context.Context, event *models.SessionEvent) error
	PublishSessionStopped(ctx context.Context, event *models.SessionEvent) error
	QueueShareLink(ctx context.Context, ownerID string, guardian *models.Guardian, body string) error
}

// GuardianDirectory is the part of the guardian directory a session reads
type GuardianDirectory interface {
	EligibleForSharing(ctx context.Context, ownerID string) ([]models.Guardian, error)
}

// DeviceNotifier pushes fire-and-forget events to the owner's device
type DeviceNotifier interface {
	NotifyClient(ownerID string, event string, data interface{})
}
