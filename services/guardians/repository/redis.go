package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/shesafe/internal/pkg/constants"
	"github.com/piresc/shesafe/internal/pkg/database"
	"github.com/piresc/shesafe/internal/pkg/models"
)

// RedisGuardianRepo stores each owner's guardian set as one JSON string
type RedisGuardianRepo struct {
	redisClient *database.RedisClient
}

// NewRedisGuardianRepo creates a Redis-backed guardian repository
func NewRedisGuardianRepo(redisClient *database.RedisClient) *RedisGuardianRepo {
	return &RedisGuardianRepo{redisClient: redisClient}
}

// Load reads the owner's guardian set
func (r *RedisGuardianRepo) Load(ctx context.Context, ownerID string) (*models.GuardianSet, error) {
	raw, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyGuardianSet, ownerID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.NewGuardianSet(), nil
		}
		return nil, &models.StorageError{Op: "load guardians", Err: err}
	}

	set, err := models.DecodeGuardianSet([]byte(raw))
	if err != nil {
		return nil, &models.StorageError{Op: "load guardians", Err: err}
	}
	return set, nil
}

// Save replaces the owner's guardian set
func (r *RedisGuardianRepo) Save(ctx context.Context, ownerID string, set *models.GuardianSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return &models.StorageError{Op: "save guardians", Err: err}
	}

	if err := r.redisClient.Set(ctx, fmt.Sprintf(constants.KeyGuardianSet, ownerID), data, 0); err != nil {
		return &models.StorageError{Op: "save guardians", Err: err}
	}
	return nil
}
