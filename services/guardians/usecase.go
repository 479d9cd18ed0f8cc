package guardians

import (
	"context"

	"github.com/piresc/shesafe/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/shesafe/services/guardians GuardianUC

// GuardianUC is the guardian directory of one owner plus the consent and
// presence updates reported by guardians' clients
type GuardianUC interface {
	// directory
	ListGuardians(ctx context.Context, ownerID string) ([]models.Guardian, error)
	AddGuardian(ctx context.Context, ownerID string, input *models.GuardianInput) (*models.Guardian, error)
	QuickAddGuardian(ctx context.Context, ownerID string, input *models.GuardianInput) (*models.Guardian, error)
	UpdateGuardian(ctx context.Context, ownerID, id string, input *models.GuardianInput) (*models.Guardian, error)
	RemoveGuardian(ctx context.Context, ownerID, id string) error
	ResendInvite(ctx context.Context, ownerID, id string) (*models.Guardian, error)
	EligibleForSharing(ctx context.Context, ownerID string) ([]models.Guardian, error)

	// guardian-side events
	RecordPresence(ctx context.Context, event *models.PresenceEvent) error
	RespondToInvite(ctx context.Context, event *models.ConsentResponseEvent) error
	AcknowledgeSOS(ctx context.Context, event *models.SOSAckEvent) error

	// session and alert bookkeeping
	MarkLocationReceived(ctx context.Context, ownerID string, guardianIDs []string) error
	ResetSOSAcknowledgements(ctx context.Context, ownerID string, guardianIDs []string) error
}
