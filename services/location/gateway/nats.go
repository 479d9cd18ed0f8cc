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

// LocationGW publishes session events to NATS and share-link SMS to NSQ
type LocationGW struct {
	events    streamPublisher
	publisher nsqpkg.Publisher
	topic     string
}

// NewLocationGW creates a new location gateway
func NewLocationGW(events streamPublisher, publisher nsqpkg.Publisher, topic string) *LocationGW {
	return &LocationGW{events: events, publisher: publisher, topic: topic}
}

// PublishSessionStarted announces a newly active session
func (g *LocationGW) PublishSessionStarted(ctx context.Context, event *models.SessionEvent) error {
	return g.publish(ctx, constants.SubjectSessionStarted, event)
}

// PublishPositionUpdate announces a new fix of an active session
func (g *LocationGW) PublishPositionUpdate(ctx context.Context, event *models.SessionEvent) error {
	return g.publish(ctx, constants.SubjectSessionPosition, event)
}

// PublishSessionStopped announces the end of a session
func (g *LocationGW) PublishSessionStopped(ctx context.Context, event *models.SessionEvent) error {
	return g.publish(ctx, constants.SubjectSessionStopped, event)
}

func (g *LocationGW) publish(ctx context.Context, subject string, event *models.SessionEvent) error {
	msgID := fmt.Sprintf("%s:%s:%d", subject, event.SessionID, event.At.UnixNano())
	err := newrelic.WithSegment(ctx, "nats.publish."+subject, func() error {
		return g.events.PublishJSON(ctx, subject, msgID, event)
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}

// QueueShareLink queues the share message as an SMS to guardian
func (g *LocationGW) QueueShareLink(ctx context.Context, ownerID string, guardian *models.Guardian, body string) error {
	notification := models.Notification{
		ID:         uuid.NewString(),
		Kind:       models.NotificationShareLink,
		OwnerID:    ownerID,
		GuardianID: guardian.ID,
		To:         guardian.Phone,
		Body:       body,
		CreatedAt:  models.Now(),
	}

	if err := g.publisher.Publish(g.topic, notification); err != nil {
		return fmt.Errorf("failed to queue share link: %w", err)
	}

	logger.DebugCtx(ctx, "Share link queued",
		logger.String("owner_id", ownerID),
		logger.String("guardian_id", guardian.ID),
		logger.String("notification_id", notification.ID))
	return nil
}
