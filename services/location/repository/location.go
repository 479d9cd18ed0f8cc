package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/shesafe/internal/pkg/constants"
	"github.com/piresc/shesafe/internal/pkg/database"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/services/location"
)

type locationRepo struct {
	redisClient *database.RedisClient
}

// NewLocationRepository creates a Redis-backed location repository
func NewLocationRepository(redisClient *database.RedisClient) location.LocationRepo {
	return &locationRepo{redisClient: redisClient}
}

// SaveShareToken maps token to the owner until the session would expire
func (r *locationRepo) SaveShareToken(ctx context.Context, token, ownerID string, ttl time.Duration) error {
	if err := r.redisClient.Set(ctx, fmt.Sprintf(constants.KeyShareToken, token), ownerID, ttl); err != nil {
		return &models.StorageError{Op: "save share token", Err: err}
	}
	return nil
}

// GetOwnerByToken resolves a share token; unknown or expired tokens are NotFound
func (r *locationRepo) GetOwnerByToken(ctx context.Context, token string) (string, error) {
	ownerID, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyShareToken, token))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", &models.NotFoundError{Resource: "share token", ID: token}
		}
		return "", &models.StorageError{Op: "get share token", Err: err}
	}
	return ownerID, nil
}

// SaveSharedPosition stores the latest fix as a hash expiring with the
// session and indexes the owner in the active-session geo set
func (r *locationRepo) SaveSharedPosition(ctx context.Context, ownerID string, shared *models.SharedLocation) error {
	locationKey := fmt.Sprintf(constants.KeySessionLocation, ownerID)
	locationData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(shared.Position.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(shared.Position.Longitude, 'f', -1, 64),
		constants.FieldAccuracy:  strconv.FormatFloat(shared.Position.AccuracyMeters, 'f', -1, 64),
		constants.FieldTimestamp: shared.Position.CapturedAt.UTC().Format(time.RFC3339Nano),
		constants.FieldGeohash:   shared.Geohash,
		constants.FieldExpiresAt: shared.ExpiresAt.UTC().Format(time.RFC3339Nano),
	}

	err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, locationKey, locationData)
		if !shared.ExpiresAt.IsZero() {
			pipe.ExpireAt(ctx, locationKey, shared.ExpiresAt)
		}
		pipe.GeoAdd(ctx, constants.KeySessionGeo, &redis.GeoLocation{
			Longitude: shared.Position.Longitude,
			Latitude:  shared.Position.Latitude,
			Name:      ownerID,
		})
		return nil
	})
	if err != nil {
		return &models.StorageError{Op: "save shared position", Err: err}
	}
	return nil
}

// GetSharedPosition returns the latest fix stored for the owner
func (r *locationRepo) GetSharedPosition(ctx context.Context, ownerID string) (*models.SharedLocation, error) {
	fields, err := r.redisClient.HGetAll(ctx, fmt.Sprintf(constants.KeySessionLocation, ownerID))
	if err != nil {
		return nil, &models.StorageError{Op: "get shared position", Err: err}
	}
	if len(fields) == 0 {
		return nil, &models.NotFoundError{Resource: "shared location", ID: ownerID}
	}

	shared, err := parseSharedLocation(fields)
	if err != nil {
		return nil, &models.StorageError{Op: "get shared position", Err: err}
	}
	return shared, nil
}

func parseSharedLocation(fields map[string]string) (*models.SharedLocation, error) {
	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	var accuracy float64
	if raw := fields[constants.FieldAccuracy]; raw != "" {
		if accuracy, err = strconv.ParseFloat(raw, 64); err != nil {
			return nil, fmt.Errorf("invalid accuracy: %w", err)
		}
	}

	captured, err := time.Parse(time.RFC3339Nano, fields[constants.FieldTimestamp])
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	var expires time.Time
	if raw := fields[constants.FieldExpiresAt]; raw != "" {
		if expires, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			return nil, fmt.Errorf("invalid expiry: %w", err)
		}
	}

	return &models.SharedLocation{
		Position: models.Position{
			Latitude:       lat,
			Longitude:      lng,
			AccuracyMeters: accuracy,
			CapturedAt:     captured,
		},
		Geohash:   fields[constants.FieldGeohash],
		ExpiresAt: expires,
	}, nil
}

// ClearSession removes the token, the stored fix and the geo entry
func (r *locationRepo) ClearSession(ctx context.Context, ownerID, token string) error {
	err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, fmt.Sprintf(constants.KeySessionLocation, ownerID))
		if token != "" {
			pipe.Del(ctx, fmt.Sprintf(constants.KeyShareToken, token))
		}
		pipe.ZRem(ctx, constants.KeySessionGeo, ownerID)
		return nil
	})
	if err != nil {
		return &models.StorageError{Op: "clear session", Err: err}
	}
	return nil
}
