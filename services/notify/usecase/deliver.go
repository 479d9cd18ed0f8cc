package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/internal/utils"
)

// maxSMSBody is the longest body the SMS API accepts (10 segments)
const maxSMSBody = 1600

// Deliver sends notification as an SMS. Undeliverable notifications
// return a ValidationError so the consumer drops them.
func (uc *NotifyUC) Deliver(ctx context.Context, notification *models.Notification) error {
	if notification == nil {
		return models.NewValidationError("body", "notification is required")
	}

	to := utils.NormalizePhone(notification.To)
	if to == "" || !utils.IsValidPhoneNumber(to) {
		return models.NewValidationError("to", "recipient phone number is invalid")
	}
	body := strings.TrimSpace(notification.Body)
	if body == "" {
		return models.NewValidationError("body", "message body is empty")
	}

	sid, err := uc.smsGW.SendSMS(ctx, to, utils.Truncate(body, maxSMSBody))
	if err != nil {
		return fmt.Errorf("failed to deliver %s notification %s: %w", notification.Kind, notification.ID, err)
	}

	logger.InfoCtx(ctx, "Notification delivered",
		logger.String("notification_id", notification.ID),
		logger.String("kind", string(notification.Kind)),
		logger.String("owner_id", notification.OwnerID),
		logger.String("to", utils.MaskPhoneNumber(to)),
		logger.String("message_sid", sid))
	return nil
}
