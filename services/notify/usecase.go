package notify

import (
	"context"

	"github.com/piresc/shesafe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/shesafe/services/notify NotifyUC

// NotifyUC delivers queued notifications
type NotifyUC interface {
	Deliver(ctx context.Context, notification *models.Notification) error
}
