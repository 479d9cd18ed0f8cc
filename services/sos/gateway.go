package sos

import (
	"context"

	"github.com/piresc/shesafe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/shesafe/services/sos SOSGW,GuardianDirectory

// SOSGW queues alert SMS and announces triggered alerts
type SOSGW interface {
	QueueAlert(ctx context.Context, alert *models.SOSAlert, guardian *models.Guardian) error
	PublishTriggered(ctx context.Context, alert *models.SOSAlert) error
}

// GuardianDirectory lists the guardians an alert may go to
type GuardianDirectory interface {
	EligibleForSharing(ctx context.Context, ownerID string) ([]models.Guardian, error)
}
