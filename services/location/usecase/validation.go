package usecase

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/internal/utils"
)

// maxCustomMinutes caps custom durations at one week
const maxCustomMinutes = 7 * 24 * 60

// validateSelection checks the guardian selection and returns the session
// length in minutes together with the de-duplicated guardian ids
func validateSelection(selection *models.ShareSelection) (int, []string, error) {
	if selection == nil {
		return 0, nil, models.NewValidationError("body", "selection is required")
	}

	ids := make([]string, 0, len(selection.GuardianIDs))
	for _, id := range selection.GuardianIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return 0, nil, models.NewValidationError("guardian_ids", "guardian id must not be empty")
		}
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	if len(ids) > models.MaxSessionGuardians {
		return 0, nil, models.NewValidationError("guardian_ids",
			fmt.Sprintf("at most %d guardians can be selected", models.MaxSessionGuardians))
	}

	if selection.Duration == "custom" {
		if selection.CustomMinutes <= 0 {
			return 0, nil, models.NewValidationError("custom_minutes", "must be a positive number of minutes")
		}
		if selection.CustomMinutes > maxCustomMinutes {
			return 0, nil, models.NewValidationError("custom_minutes",
				fmt.Sprintf("must be at most %d minutes", maxCustomMinutes))
		}
		return selection.CustomMinutes, ids, nil
	}

	minutes, err := strconv.Atoi(selection.Duration)
	if err != nil || !slices.Contains(models.DurationPresets, minutes) {
		return 0, nil, models.NewValidationError("duration", "must be one of 30, 60, 120, 240 or custom")
	}
	return minutes, ids, nil
}

// validateFix accepts either a coordinate pair or a known error code
func validateFix(fix *models.DeviceFix) error {
	if fix == nil {
		return models.NewValidationError("body", "fix is required")
	}
	if fix.ErrorCode != "" {
		if !fix.ErrorCode.Valid() {
			return models.NewValidationError("error_code", "unknown position error code")
		}
		return nil
	}
	if fix.Latitude == nil || fix.Longitude == nil {
		return models.NewValidationError("latitude", "latitude and longitude are required")
	}
	if !utils.ValidCoordinates(*fix.Latitude, *fix.Longitude) {
		return models.NewValidationError("latitude", "coordinates out of range")
	}
	return nil
}
