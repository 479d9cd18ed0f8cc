package guardians

import (
	"context"

	"github.com/piresc/shesafe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/shesafe/services/guardians GuardianGW

// GuardianGW dispatches consent invitations
type GuardianGW interface {
	SendConsentInvite(ctx context.Context, ownerID string, guardian *models.Guardian) error
}
