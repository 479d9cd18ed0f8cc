package location

import (
	"context"
	"time"

	"github.com/piresc/shesafe/internal/pkg/models"
)

// PositionSource is the device position feed of an owner
type PositionSource interface {
	// CurrentPosition requests a single fix, bounded by timeout
	CurrentPosition(ctx context.Context, ownerID string, timeout time.Duration) (*models.Position, error)
	// Watch subscribes to continuous updates until the subscription is cancelled
	Watch(ctx context.Context, ownerID string) (Subscription, error)
	// Ingest feeds a fix or an acquisition error reported by the device
	Ingest(ctx context.Context, ownerID string, fix *models.DeviceFix) error
}

// Subscription is a live position feed. Updates is closed after Cancel.
type Subscription interface {
	Updates() <-chan models.PositionEvent
	Cancel()
}
