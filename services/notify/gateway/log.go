package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/utils"
)

// LogGW stands in for the SMS API when sending is disabled
type LogGW struct{}

// SendSMS logs the message instead of sending it
func (LogGW) SendSMS(ctx context.Context, to, body string) (string, error) {
	sid := "log-" + uuid.NewString()
	logger.InfoCtx(ctx, "SMS sending disabled, message logged",
		logger.String("to", utils.MaskPhoneNumber(to)),
		logger.String("body", body),
		logger.String("message_sid", sid))
	return sid, nil
}
