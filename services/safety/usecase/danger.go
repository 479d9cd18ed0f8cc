package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
)

const dangerFallbackNotice = "Could not fetch alerts. Please try again later."

// GetDangerZoneAlerts returns alerts near a named place or a coordinate
// pair, served from the cache when a recent answer exists
func (uc *SafetyUC) GetDangerZoneAlerts(ctx context.Context, req *models.DangerZoneRequest) (*models.DangerZoneResponse, error) {
	target, err := validateDangerRequest(req)
	if err != nil {
		return nil, err
	}

	cached, err := uc.safetyRepo.GetDangerAlerts(ctx, target.cell)
	switch {
	case err == nil:
		return &models.DangerZoneResponse{Alerts: cached, Cached: true}, nil
	case !errors.Is(err, models.ErrNotFound):
		logger.WarnCtx(ctx, "Danger alert cache unavailable",
			logger.String("cell", target.cell),
			logger.Err(err))
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	alerts, err := uc.analysisGW.DangerZoneAlerts(callCtx, target.place)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		logger.WarnCtx(ctx, "Danger zone analysis failed",
			logger.String("cell", target.cell),
			logger.Err(err))
		return &models.DangerZoneResponse{Alerts: []models.DangerZoneAlert{}, Notice: dangerFallbackNotice}, nil
	}

	alerts = keepKnownSeverities(alerts)
	if err := uc.safetyRepo.SaveDangerAlerts(ctx, target.cell, alerts, uc.cacheTTL); err != nil {
		logger.WarnCtx(ctx, "Failed to cache danger alerts",
			logger.String("cell", target.cell),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Danger zone alerts retrieved",
		logger.String("cell", target.cell),
		logger.Int("alerts", len(alerts)))
	return &models.DangerZoneResponse{Alerts: alerts}, nil
}

// keepKnownSeverities drops alerts whose severity is not low, medium or high
func keepKnownSeverities(alerts []models.DangerZoneAlert) []models.DangerZoneAlert {
	kept := make([]models.DangerZoneAlert, 0, len(alerts))
	for _, a := range alerts {
		a.Severity = models.Severity(strings.ToLower(strings.TrimSpace(string(a.Severity))))
		if !a.Severity.Valid() {
			continue
		}
		a.Location = strings.TrimSpace(a.Location)
		a.Description = strings.TrimSpace(a.Description)
		kept = append(kept, a)
	}
	return kept
}
