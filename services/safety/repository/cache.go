package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/shesafe/internal/pkg/constants"
	"github.com/piresc/shesafe/internal/pkg/database"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/services/safety"
)

// dangerCache implements safety.SafetyRepo on Redis strings
type dangerCache struct {
	redisClient *database.RedisClient
}

// NewSafetyRepository creates a Redis-backed danger alert cache
func NewSafetyRepository(redisClient *database.RedisClient) safety.SafetyRepo {
	return &dangerCache{redisClient: redisClient}
}

// GetDangerAlerts returns the cached alerts for cell
func (r *dangerCache) GetDangerAlerts(ctx context.Context, cell string) ([]models.DangerZoneAlert, error) {
	raw, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyDangerAlerts, cell))
	if errors.Is(err, redis.Nil) {
		return nil, &models.NotFoundError{Resource: "danger alerts", ID: cell}
	}
	if err != nil {
		return nil, &models.StorageError{Op: "get danger alerts", Err: err}
	}

	var alerts []models.DangerZoneAlert
	if err := json.Unmarshal([]byte(raw), &alerts); err != nil {
		return nil, &models.StorageError{Op: "decode danger alerts", Err: err}
	}
	return alerts, nil
}

// SaveDangerAlerts caches alerts for cell until ttl elapses
func (r *dangerCache) SaveDangerAlerts(ctx context.Context, cell string, alerts []models.DangerZoneAlert, ttl time.Duration) error {
	if alerts == nil {
		alerts = []models.DangerZoneAlert{}
	}
	data, err := json.Marshal(alerts)
	if err != nil {
		return fmt.Errorf("failed to marshal danger alerts: %w", err)
	}

	if err := r.redisClient.Set(ctx, fmt.Sprintf(constants.KeyDangerAlerts, cell), string(data), ttl); err != nil {
		return &models.StorageError{Op: "save danger alerts", Err: err}
	}
	return nil
}
