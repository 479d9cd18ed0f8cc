package nsq

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
	nsqpkg "github.com/piresc/shesafe/internal/pkg/nsq"
	"github.com/piresc/shesafe/services/notify"
)

// deliveryTimeout bounds one delivery including its retries
const deliveryTimeout = 30 * time.Second

// NotificationHandler consumes the notification topic
type NotificationHandler struct {
	notifyUC notify.NotifyUC
}

// NewNotificationHandler creates a new notification consumer handler
func NewNotificationHandler(notifyUC notify.NotifyUC) *NotificationHandler {
	return &NotificationHandler{notifyUC: notifyUC}
}

// HandleMessage delivers one queued notification. Malformed or
// undeliverable messages are dropped; other failures requeue.
func (h *NotificationHandler) HandleMessage(body []byte) error {
	var notification models.Notification
	if err := nsqpkg.UnmarshalMessage(body, &notification); err != nil {
		logger.Error("Dropping malformed notification", logger.Err(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	err := h.notifyUC.Deliver(ctx, &notification)
	if errors.Is(err, models.ErrValidation) {
		logger.Warn("Dropping undeliverable notification",
			logger.String("notification_id", notification.ID),
			logger.String("kind", string(notification.Kind)),
			logger.Err(err))
		return nil
	}
	return err
}
