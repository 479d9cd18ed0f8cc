package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
	nrpkg "github.com/piresc/shesafe/internal/pkg/newrelic"
	"github.com/piresc/shesafe/internal/utils"
	"golang.org/x/sync/errgroup"
)

const maxAudioRef = 500

// Trigger alerts every eligible guardian in priority order. Enqueue
// failures are recorded on the alert and never abort the rest.
func (uc *SOSUC) Trigger(ctx context.Context, ownerID string, req *models.SOSRequest) (*models.SOSAlert, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	audioRef := strings.TrimSpace(req.AudioRef)
	alert := &models.SOSAlert{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Position: models.Position{
			Latitude:   req.Latitude,
			Longitude:  req.Longitude,
			CapturedAt: uc.now(),
		},
		AudioRef:               audioRef,
		Silent:                 req.Silent,
		Message:                composeMessage(req.Latitude, req.Longitude, audioRef),
		Notified:               []models.SOSRecipient{},
		SirenRequested:         !req.Silent,
		EmergencyCallRequested: true,
		CreatedAt:              uc.now(),
	}

	recipients, err := nrpkg.WithSegmentAndReturn(ctx, "SOS.LoadGuardians", func() ([]models.Guardian, error) {
		return uc.guardians.EligibleForSharing(ctx, ownerID)
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to load guardians for SOS",
			logger.String("owner_id", ownerID),
			logger.String("alert_id", alert.ID),
			logger.Err(err))
		alert.Warnings = append(alert.Warnings, "guardians could not be loaded; no alerts were queued")
	}
	sort.SliceStable(recipients, func(i, j int) bool {
		return recipients[i].Priority < recipients[j].Priority
	})

	uc.fanOut(ctx, alert, recipients)

	if err := uc.sosGW.PublishTriggered(ctx, alert); err != nil {
		logger.WarnCtx(ctx, "Failed to publish SOS event",
			logger.String("alert_id", alert.ID),
			logger.Err(err))
		alert.Warnings = append(alert.Warnings, "alert event could not be published")
	}

	logger.InfoCtx(ctx, "SOS triggered",
		logger.String("owner_id", ownerID),
		logger.String("alert_id", alert.ID),
		logger.Bool("silent", req.Silent),
		logger.Int("notified", len(alert.Notified)),
		logger.Int("failed", len(alert.Failed)))
	return alert, nil
}

// fanOut queues one alert per guardian concurrently and sorts the
// outcomes back into priority order
func (uc *SOSUC) fanOut(ctx context.Context, alert *models.SOSAlert, recipients []models.Guardian) {
	results := make([]error, len(recipients))

	var g errgroup.Group
	g.SetLimit(maxConcurrentAlerts)
	for i := range recipients {
		g.Go(func() error {
			results[i] = uc.sosGW.QueueAlert(ctx, alert, &recipients[i])
			return nil
		})
	}
	_ = g.Wait()

	for i, guardian := range recipients {
		recipient := models.SOSRecipient{
			GuardianID: guardian.ID,
			Name:       guardian.Name,
			Priority:   guardian.Priority,
		}
		if results[i] != nil {
			logger.WarnCtx(ctx, "Failed to queue SOS alert",
				logger.String("alert_id", alert.ID),
				logger.String("guardian_id", guardian.ID),
				logger.Err(results[i]))
			recipient.Error = results[i].Error()
			alert.Failed = append(alert.Failed, recipient)
			continue
		}
		alert.Notified = append(alert.Notified, recipient)
	}
}

func validateRequest(req *models.SOSRequest) error {
	if req == nil {
		return models.NewValidationError("body", "request body is required")
	}
	if !utils.ValidCoordinates(req.Latitude, req.Longitude) {
		return models.NewValidationError("latitude", "coordinates out of range")
	}
	if utils.RuneLen(strings.TrimSpace(req.AudioRef)) > maxAudioRef {
		return models.NewValidationError("audio_ref", fmt.Sprintf("must be at most %d characters", maxAudioRef))
	}
	return nil
}

func composeMessage(lat, lon float64, audioRef string) string {
	if audioRef == "" {
		audioRef = "none"
	}
	return fmt.Sprintf("Emergency! Current location: %s, %s. Audio: %s",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
		audioRef)
}
