package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}
	ctx := context.Background()

	mock.ExpectSet("guardians:owner-1", "[]", time.Hour).SetVal("OK")

	err := client.Set(ctx, "guardians:owner-1", "[]", time.Hour)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Set_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}
	ctx := context.Background()

	mock.ExpectSet("guardians:owner-1", "[]", time.Duration(0)).SetErr(errors.New("readonly"))

	err := client.Set(ctx, "guardians:owner-1", "[]", 0)

	assert.EqualError(t, err, "readonly")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Get(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock redismock.ClientMock)
		want    string
		wantNil bool
	}{
		{
			name: "existing key",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("location:token:abc").SetVal("owner-1")
			},
			want: "owner-1",
		},
		{
			name: "missing key",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("location:token:abc").RedisNil()
			},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			db, mock := redismock.NewClientMock()
			client := &RedisClient{Client: db}
			tt.setup(mock)

			// Act
			got, err := client.Get(context.Background(), "location:token:abc")

			// Assert
			if tt.wantNil {
				assert.ErrorIs(t, err, redis.Nil)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectDel("a", "b").SetVal(2)

	err := client.Delete(context.Background(), "a", "b")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_HGetAll(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectHGetAll("location:session:s1").SetVal(map[string]string{"lat": "1.5", "lng": "2.5"})

	got, err := client.HGetAll(context.Background(), "location:session:s1")

	require.NoError(t, err)
	assert.Equal(t, "1.5", got["lat"])
	assert.Equal(t, "2.5", got["lng"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Expire(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectExpire("location:session:s1", 30*time.Minute).SetVal(true)

	err := client.Expire(context.Background(), "location:session:s1", 30*time.Minute)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoAdd(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectGeoAdd("location:geo", &redis.GeoLocation{
		Name:      "session-1",
		Longitude: 106.8456,
		Latitude:  -6.2088,
	}).SetVal(1)

	err := client.GeoAdd(context.Background(), "location:geo", 106.8456, -6.2088, "session-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoRemove(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectZRem("location:geo", "session-1").SetVal(1)

	err := client.GeoRemove(context.Background(), "location:geo", "session-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoRadius(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	query := &redis.GeoRadiusQuery{
		Radius:    1,
		Unit:      "km",
		WithCoord: true,
		WithDist:  true,
		Sort:      "ASC",
	}
	mock.ExpectGeoRadius("location:geo", 106.8456, -6.2088, query).SetVal([]redis.GeoLocation{
		{Name: "session-1", Longitude: 106.8456, Latitude: -6.2088, Dist: 0},
	})

	got, err := client.GeoRadius(context.Background(), "location:geo", 106.8456, -6.2088, 1, "km")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "session-1", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GetClient(t *testing.T) {
	db, _ := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	assert.Same(t, db, client.GetClient())
}
