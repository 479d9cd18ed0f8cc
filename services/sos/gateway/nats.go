package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/shesafe/internal/pkg/constants"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/shesafe/internal/pkg/nsq"
)

// streamPublisher publishes to JetStream with a de-duplication id
type streamPublisher interface {
	PublishJSON(ctx context.Context, subject, msgID string, v interface{}) error
}

// SOSGW publishes SOS events to NATS and alert SMS to NSQ
type SOSGW struct {
	events    streamPublisher
	publisher nsqpkg.Publisher
	topic     string
}

// NewSOSGW creates a new SOS gateway
func NewSOSGW(events streamPublisher, publisher nsqpkg.Publisher, topic string) *SOSGW {
	return &SOSGW{events: events, publisher: publisher, topic: topic}
}

// QueueAlert queues the alert message as an SMS to guardian
func (g *SOSGW) QueueAlert(ctx context.Context, alert *models.SOSAlert, guardian *models.Guardian) error {
	notification := models.Notification{
		ID:         uuid.NewString(),
		Kind:       models.NotificationSOSAlert,
		OwnerID:    alert.OwnerID,
		GuardianID: guardian.ID,
		To:         guardian.Phone,
		Body:       alert.Message,
		CreatedAt:  models.Now(),
	}

	if err := g.publisher.Publish(g.topic, notification); err != nil {
		return fmt.Errorf("failed to queue sos alert: %w", err)
	}

	logger.DebugCtx(ctx, "SOS alert queued",
		logger.String("alert_id", alert.ID),
		logger.String("guardian_id", guardian.ID),
		logger.String("notification_id", notification.ID))
	return nil
}

// PublishTriggered announces the alert on safety.sos.triggered
func (g *SOSGW) PublishTriggered(ctx context.Context, alert *models.SOSAlert) error {
	subject := constants.SubjectSOSTriggered
	err := newrelic.WithSegment(ctx, "nats.publish."+subject, func() error {
		return g.events.PublishJSON(ctx, subject, subject+":"+alert.ID, alert)
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}
