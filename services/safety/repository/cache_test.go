package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/piresc/shesafe/internal/pkg/database"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDangerAlerts(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock redismock.ClientMock)
		want    []models.DangerZoneAlert
		wantErr error
	}{
		{
			name: "hit",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("safety:danger:gh:qqguyg").
					SetVal(`[{"location":"Main St","description":"Theft","severity":"high"}]`)
			},
			want: []models.DangerZoneAlert{{Location: "Main St", Description: "Theft", Severity: models.SeverityHigh}},
		},
		{
			name: "miss",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("safety:danger:gh:qqguyg").RedisNil()
			},
			wantErr: models.ErrNotFound,
		},
		{
			name: "redis error",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("safety:danger:gh:qqguyg").SetErr(errors.New("connection refused"))
			},
			wantErr: models.ErrStorage,
		},
		{
			name: "corrupt entry",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("safety:danger:gh:qqguyg").SetVal("{")
			},
			wantErr: models.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			db, mock := redismock.NewClientMock()
			repo := NewSafetyRepository(&database.RedisClient{Client: db})
			tt.setup(mock)

			// Act
			got, err := repo.GetDangerAlerts(context.Background(), "gh:qqguyg")

			// Assert
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSaveDangerAlerts(t *testing.T) {
	tests := []struct {
		name    string
		alerts  []models.DangerZoneAlert
		value   string
		err     error
		wantErr error
	}{
		{
			name:   "alerts",
			alerts: []models.DangerZoneAlert{{Location: "Main St", Description: "Theft", Severity: models.SeverityLow}},
			value:  `[{"location":"Main St","description":"Theft","severity":"low"}]`,
		},
		{
			name:  "nil is cached as empty list",
			value: `[]`,
		},
		{
			name:    "redis error",
			value:   `[]`,
			err:     errors.New("readonly"),
			wantErr: models.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			db, mock := redismock.NewClientMock()
			repo := NewSafetyRepository(&database.RedisClient{Client: db})
			expect := mock.ExpectSet("safety:danger:name:central park", tt.value, 10*time.Minute)
			if tt.err != nil {
				expect.SetErr(tt.err)
			} else {
				expect.SetVal("OK")
			}

			// Act
			err := repo.SaveDangerAlerts(context.Background(), "name:central park", tt.alerts, 10*time.Minute)

			// Assert
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
