package usecase

import (
	"context"

	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
)

// RecordPresence applies an online/offline report from a guardian's client
func (uc *GuardianUC) RecordPresence(ctx context.Context, event *models.PresenceEvent) error {
	at := event.At
	if at.IsZero() {
		at = uc.now()
	}

	_, err := uc.mutate(ctx, event.OwnerID, "presence", func(set *models.GuardianSet) error {
		i := set.IndexOf(event.GuardianID)
		if i < 0 {
			return &models.NotFoundError{Resource: "guardian", ID: event.GuardianID}
		}

		g := &set.Guardians[i]
		if event.Online {
			g.OnlineStatus = models.OnlineStatusOnline
		} else {
			g.OnlineStatus = models.OnlineStatusOffline
		}
		g.LastActive = &at
		return nil
	})
	return err
}

// RespondToInvite records a guardian's answer to a pending invitation
func (uc *GuardianUC) RespondToInvite(ctx context.Context, event *models.ConsentResponseEvent) error {
	status := models.ConsentDeclined
	if event.Accepted {
		status = models.ConsentAccepted
	}

	_, err := uc.mutate(ctx, event.OwnerID, "consent", func(set *models.GuardianSet) error {
		i := set.IndexOf(event.GuardianID)
		if i < 0 {
			return &models.NotFoundError{Resource: "guardian", ID: event.GuardianID}
		}

		g := &set.Guardians[i]
		if g.ConsentStatus != models.ConsentPending {
			return &models.ConflictError{Reason: "guardian has no pending invitation"}
		}
		g.ConsentStatus = status
		g.UpdatedAt = uc.now()
		return nil
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Guardian answered consent invitation",
		logger.String("owner_id", event.OwnerID),
		logger.String("guardian_id", event.GuardianID),
		logger.String("consent_status", string(status)))
	return nil
}

// AcknowledgeSOS marks that a guardian has seen the latest SOS alert
func (uc *GuardianUC) AcknowledgeSOS(ctx context.Context, event *models.SOSAckEvent) error {
	_, err := uc.mutate(ctx, event.OwnerID, "sos_ack", func(set *models.GuardianSet) error {
		i := set.IndexOf(event.GuardianID)
		if i < 0 {
			return &models.NotFoundError{Resource: "guardian", ID: event.GuardianID}
		}
		if set.Guardians[i].SOSResponseAcknowledged {
			return errNoChange
		}
		set.Guardians[i].SOSResponseAcknowledged = true
		return nil
	})
	return err
}

// MarkLocationReceived flags the guardians a session is shared with.
// Unknown ids are ignored.
func (uc *GuardianUC) MarkLocationReceived(ctx context.Context, ownerID string, guardianIDs []string) error {
	return uc.setFlag(ctx, ownerID, "location_received", guardianIDs, func(g *models.Guardian) bool {
		if g.LocationReceived {
			return false
		}
		g.LocationReceived = true
		return true
	})
}

// ResetSOSAcknowledgements clears the acknowledgement of guardians notified
// by a new SOS alert
func (uc *GuardianUC) ResetSOSAcknowledgements(ctx context.Context, ownerID string, guardianIDs []string) error {
	return uc.setFlag(ctx, ownerID, "sos_reset", guardianIDs, func(g *models.Guardian) bool {
		if !g.SOSResponseAcknowledged {
			return false
		}
		g.SOSResponseAcknowledged = false
		return true
	})
}

func (uc *GuardianUC) setFlag(ctx context.Context, ownerID, op string, guardianIDs []string, apply func(g *models.Guardian) bool) error {
	if len(guardianIDs) == 0 {
		return nil
	}

	_, err := uc.mutate(ctx, ownerID, op, func(set *models.GuardianSet) error {
		changed := false
		for _, id := range guardianIDs {
			if i := set.IndexOf(id); i >= 0 && apply(&set.Guardians[i]) {
				changed = true
			}
		}
		if !changed {
			return errNoChange
		}
		return nil
	})
	return err
}
