package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
	nsqpkg "github.com/piresc/shesafe/internal/pkg/nsq"
)

// inviteTemplate is the SMS body of a consent invitation
const inviteTemplate = "Hi %s, you have been added as a SheSafe guardian. " +
	"Open the SheSafe guardian app to accept or decline sharing location and SOS alerts."

// NotificationGW queues guardian notifications on NSQ
type NotificationGW struct {
	publisher nsqpkg.Publisher
	topic     string
}

// NewNotificationGW creates a gateway publishing to topic
func NewNotificationGW(publisher nsqpkg.Publisher, topic string) *NotificationGW {
	return &NotificationGW{publisher: publisher, topic: topic}
}

// SendConsentInvite queues the invitation SMS for guardian
func (g *NotificationGW) SendConsentInvite(ctx context.Context, ownerID string, guardian *models.Guardian) error {
	notification := models.Notification{
		ID:         uuid.NewString(),
		Kind:       models.NotificationConsentInvite,
		OwnerID:    ownerID,
		GuardianID: guardian.ID,
		To:         guardian.Phone,
		Body:       fmt.Sprintf(inviteTemplate, guardian.Name),
		CreatedAt:  models.Now(),
	}

	if err := g.publisher.Publish(g.topic, notification); err != nil {
		return fmt.Errorf("failed to queue consent invite: %w", err)
	}

	logger.DebugCtx(ctx, "Consent invite queued",
		logger.String("owner_id", ownerID),
		logger.String("guardian_id", guardian.ID),
		logger.String("notification_id", notification.ID))
	return nil
}
