package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/internal/utils"
)

const (
	defaultShareMessage = "I'm sharing my live location with you via SheSafe:"
	maxShareMessage     = 500

	whatsAppIntentURL = "https://wa.me/?text="
	smsIntentURL      = "sms:?&body="
)

// CopyLink returns the current shareable link
func (uc *LocationUC) CopyLink(ctx context.Context, ownerID string) (string, error) {
	link, _, err := uc.currentLink(ownerID)
	return link, err
}

func (uc *LocationUC) currentLink(ownerID string) (string, []string, error) {
	s := uc.lookup(ownerID)
	if s == nil {
		return "", nil, &models.NoLinkError{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != models.SessionActive || s.link == "" {
		return "", nil, &models.NoLinkError{}
	}
	return s.link, append([]string{}, s.guardianIDs...), nil
}

// DispatchViaExternalChannel builds the intent that opens WhatsApp or the SMS
// composer with the link. SMS additionally queues the link to the session's
// guardians; queueing failures come back as warnings.
func (uc *LocationUC) DispatchViaExternalChannel(ctx context.Context, ownerID string, channel models.ShareChannel, message string) (*models.ShareIntent, error) {
	if channel != models.ChannelWhatsApp && channel != models.ChannelSMS {
		return nil, models.NewValidationError("channel", "must be whatsapp or sms")
	}

	link, guardianIDs, err := uc.currentLink(ownerID)
	if err != nil {
		return nil, err
	}

	text := composeShareMessage(message, link)
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	intent := &models.ShareIntent{Channel: channel, Message: text}

	switch channel {
	case models.ChannelWhatsApp:
		intent.URL = whatsAppIntentURL + escaped
	case models.ChannelSMS:
		intent.URL = smsIntentURL + escaped
		intent.Warnings = uc.queueShareLinks(ctx, ownerID, guardianIDs, text)
	}
	return intent, nil
}

func composeShareMessage(message, link string) string {
	message = utils.Truncate(utils.SanitizeString(message), maxShareMessage)
	if message == "" {
		message = defaultShareMessage
	}
	return message + " " + link
}

func (uc *LocationUC) queueShareLinks(ctx context.Context, ownerID string, guardianIDs []string, body string) []string {
	if len(guardianIDs) == 0 {
		return nil
	}

	eligible, err := uc.guardians.EligibleForSharing(ctx, ownerID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load guardians for share SMS", logger.String("owner_id", ownerID), logger.Err(err))
		return []string{fmt.Sprintf("could not load guardians: %v", err)}
	}

	var warnings []string
	for _, id := range guardianIDs {
		idx := -1
		for i := range eligible {
			if eligible[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			warnings = append(warnings, fmt.Sprintf("guardian %s is no longer eligible", id))
			continue
		}

		guardian := eligible[idx]
		if err := uc.locationGW.QueueShareLink(ctx, ownerID, &guardian, body); err != nil {
			logger.WarnCtx(ctx, "Failed to queue share SMS",
				logger.String("owner_id", ownerID),
				logger.String("guardian_id", id),
				logger.Err(err))
			warnings = append(warnings, fmt.Sprintf("failed to queue SMS to %s", guardian.Name))
		}
	}
	return warnings
}

// ResolveShareToken returns the latest shared fix behind a public token
func (uc *LocationUC) ResolveShareToken(ctx context.Context, token string) (*models.SharedLocation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, &models.NotFoundError{Resource: "share token", ID: token}
	}

	ownerID, err := uc.locationRepo.GetOwnerByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	shared, err := uc.locationRepo.GetSharedPosition(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !shared.ExpiresAt.IsZero() && !uc.now().Before(shared.ExpiresAt) {
		return nil, &models.NotFoundError{Resource: "share token", ID: token}
	}
	return shared, nil
}

// IngestFix feeds a fix posted over HTTP into the owner's position feed
func (uc *LocationUC) IngestFix(ctx context.Context, ownerID string, fix *models.DeviceFix) error {
	if err := validateFix(fix); err != nil {
		return err
	}
	return uc.source.Ingest(ctx, ownerID, fix)
}
