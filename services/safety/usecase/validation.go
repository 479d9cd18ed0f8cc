package usecase

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/internal/utils"
	"github.com/piresc/shesafe/services/safety"
)

const (
	maxLocationName     = 200
	minSituationText    = 5
	maxSituationText    = 1000
	maxContextField     = 100
	maxAudioBytes       = 10 << 20
	dangerCellPrecision = 6
)

// dangerTarget is a validated danger-zone query
type dangerTarget struct {
	cell  string // cache key suffix
	place string // what the model is asked about
}

func validateDangerRequest(req *models.DangerZoneRequest) (*dangerTarget, error) {
	if req == nil {
		return nil, models.NewValidationError("body", "request body is required")
	}

	name := strings.TrimSpace(req.LocationName)
	hasCoords := req.Latitude != nil || req.Longitude != nil

	switch {
	case name != "" && hasCoords:
		return nil, models.NewValidationError("location_name", "provide either a location name or coordinates, not both")
	case name != "":
		if utils.RuneLen(name) > maxLocationName {
			return nil, models.NewValidationError("location_name", fmt.Sprintf("must be at most %d characters", maxLocationName))
		}
		return &dangerTarget{
			cell:  "name:" + strings.Join(strings.Fields(strings.ToLower(name)), " "),
			place: name,
		}, nil
	case hasCoords:
		if req.Latitude == nil || req.Longitude == nil {
			return nil, models.NewValidationError("latitude", "latitude and longitude must be provided together")
		}
		lat, lon := *req.Latitude, *req.Longitude
		if !utils.ValidCoordinates(lat, lon) {
			return nil, models.NewValidationError("latitude", "coordinates out of range")
		}
		return &dangerTarget{
			cell: "gh:" + utils.EncodeCoordinates(lat, lon, dangerCellPrecision),
			place: fmt.Sprintf("latitude %s, longitude %s",
				strconv.FormatFloat(lat, 'f', -1, 64), strconv.FormatFloat(lon, 'f', -1, 64)),
		}, nil
	default:
		return nil, models.NewValidationError("location_name", "a location name or coordinates are required")
	}
}

// validateDistressRequest returns either the trimmed situation text or
// a decoded audio sample
func validateDistressRequest(req *models.DistressRequest) (string, *safety.AudioSample, error) {
	if req == nil {
		return "", nil, models.NewValidationError("body", "request body is required")
	}

	text := strings.TrimSpace(req.SituationText)
	if req.IsAudio() {
		if text != "" {
			return "", nil, models.NewValidationError("situation_text", "provide either a situation description or an audio sample, not both")
		}
		sample, err := validateAudio(req)
		return "", sample, err
	}

	n := utils.RuneLen(text)
	if n < minSituationText {
		return "", nil, models.NewValidationError("situation_text",
			fmt.Sprintf("please describe your situation in a bit more detail (minimum %d characters)", minSituationText))
	}
	if n > maxSituationText {
		return "", nil, models.NewValidationError("situation_text",
			fmt.Sprintf("description is too long (maximum %d characters)", maxSituationText))
	}
	return text, nil, nil
}

func validateAudio(req *models.DistressRequest) (*safety.AudioSample, error) {
	mimeType, data, err := parseAudioDataURI(req.AudioDataURI)
	if err != nil {
		return nil, err
	}

	place := strings.TrimSpace(req.PlaceName)
	if err := checkContextField("place_name", place); err != nil {
		return nil, err
	}
	movement := strings.TrimSpace(req.MovementData)
	if err := checkContextField("movement_data", movement); err != nil {
		return nil, err
	}

	return &safety.AudioSample{
		MIMEType:     mimeType,
		Data:         data,
		PlaceName:    place,
		MovementData: movement,
	}, nil
}

func checkContextField(field, value string) error {
	n := utils.RuneLen(value)
	if n == 0 {
		return models.NewValidationError(field, "is required")
	}
	if n > maxContextField {
		return models.NewValidationError(field, fmt.Sprintf("must be at most %d characters", maxContextField))
	}
	return nil
}

// parseAudioDataURI accepts data:audio/<type>[;params];base64,<payload>
func parseAudioDataURI(uri string) (string, []byte, error) {
	invalid := func(reason string) (string, []byte, error) {
		return "", nil, models.NewValidationError("audio_data_uri", reason)
	}

	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "data:")
	if !ok {
		return invalid("must be a data URI")
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return invalid("must be a data URI")
	}

	params := strings.Split(header, ";")
	if params[len(params)-1] != "base64" {
		return invalid("must be base64 encoded")
	}
	mimeType := strings.ToLower(strings.TrimSpace(params[0]))
	if !strings.HasPrefix(mimeType, "audio/") || len(mimeType) == len("audio/") {
		return invalid("must have an audio MIME type")
	}

	if base64.StdEncoding.DecodedLen(len(payload)) > maxAudioBytes {
		return invalid("audio sample is too large")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return invalid("payload is not valid base64")
	}
	if len(data) == 0 {
		return invalid("audio payload is empty")
	}
	return mimeType, data, nil
}
