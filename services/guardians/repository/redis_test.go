package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/go-cmp/cmp"
	"github.com/piresc/shesafe/internal/pkg/database"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisRepo(t *testing.T) (*RedisGuardianRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisGuardianRepo(&database.RedisClient{Client: client}), mr
}

func sampleSet() *models.GuardianSet {
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	return &models.GuardianSet{
		Version: models.GuardianSetVersion,
		Guardians: []models.Guardian{
			{
				ID:            "g-1",
				Name:          "Ibu",
				Phone:         "+6281100000001",
				Relation:      "Mother",
				Priority:      1,
				ConsentStatus: models.ConsentAccepted,
				OnlineStatus:  models.OnlineStatusUnknown,
				CreatedAt:     created,
				UpdatedAt:     created,
			},
			{
				ID:            "g-2",
				Name:          "Rina",
				Phone:         "+6281100000002",
				Relation:      "Friend",
				Priority:      3,
				ConsentStatus: models.ConsentPending,
				OnlineStatus:  models.OnlineStatusUnknown,
				CreatedAt:     created,
				UpdatedAt:     created,
			},
		},
	}
}

func TestRedisGuardianRepo_RoundTrip(t *testing.T) {
	// Arrange
	repo, mr := setupRedisRepo(t)
	ctx := context.Background()
	want := sampleSet()

	// Act
	require.NoError(t, repo.Save(ctx, "owner-1", want))
	got, err := repo.Load(ctx, "owner-1")

	// Assert
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("guardian set mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, mr.Exists("guardians:owner-1"))
	assert.False(t, mr.Exists("guardians:owner-2"))
}

func TestRedisGuardianRepo_LoadMissingIsEmpty(t *testing.T) {
	repo, _ := setupRedisRepo(t)

	set, err := repo.Load(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Equal(t, models.GuardianSetVersion, set.Version)
	assert.Empty(t, set.Guardians)
}

func TestRedisGuardianRepo_LoadLegacyArray(t *testing.T) {
	repo, mr := setupRedisRepo(t)
	require.NoError(t, mr.Set("guardians:owner-1", `[{"id":"g-1","name":"Ibu","consent_status":"Not Sent"}]`))

	set, err := repo.Load(context.Background(), "owner-1")

	require.NoError(t, err)
	require.Len(t, set.Guardians, 1)
	assert.Equal(t, models.ConsentNotSent, set.Guardians[0].ConsentStatus)
	assert.Equal(t, models.GuardianSetVersion, set.Version)
}

func TestRedisGuardianRepo_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(mr *miniredis.Miniredis)
		run   func(repo *RedisGuardianRepo) error
	}{
		{
			name:  "corrupt record",
			setup: func(mr *miniredis.Miniredis) { _ = mr.Set("guardians:owner-1", "{not json") },
			run: func(repo *RedisGuardianRepo) error {
				_, err := repo.Load(context.Background(), "owner-1")
				return err
			},
		},
		{
			name:  "load while redis is down",
			setup: func(mr *miniredis.Miniredis) { mr.Close() },
			run: func(repo *RedisGuardianRepo) error {
				_, err := repo.Load(context.Background(), "owner-1")
				return err
			},
		},
		{
			name:  "save while redis is down",
			setup: func(mr *miniredis.Miniredis) { mr.Close() },
			run: func(repo *RedisGuardianRepo) error {
				return repo.Save(context.Background(), "owner-1", sampleSet())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mr := setupRedisRepo(t)
			tt.setup(mr)

			err := tt.run(repo)

			assert.ErrorIs(t, err, models.ErrStorage)
		})
	}
}
