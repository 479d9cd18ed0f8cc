package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/piresc/shesafe/services/sos/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 21, 30, 0, 0, time.UTC)

type testDeps struct {
	gw  *mocks.MockSOSGW
	dir *mocks.MockGuardianDirectory
}

func setupSOSUC(t *testing.T) (*SOSUC, *testDeps) {
	ctrl := gomock.NewController(t)
	deps := &testDeps{
		gw:  mocks.NewMockSOSGW(ctrl),
		dir: mocks.NewMockGuardianDirectory(ctrl),
	}
	uc := NewSOSUC(deps.gw, deps.dir)
	uc.now = func() time.Time { return fixedNow }
	return uc, deps
}

func guardian(id string, priority models.Priority) models.Guardian {
	return models.Guardian{ID: id, Name: "Guardian " + id, Phone: "+62812000" + id, Priority: priority, ConsentStatus: models.ConsentAccepted}
}

func recipientIDs(list []models.SOSRecipient) []string {
	ids := make([]string, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.GuardianID)
	}
	return ids
}

func TestTrigger_Validation(t *testing.T) {
	tests := []struct {
		name      string
		req       *models.SOSRequest
		wantField string
	}{
		{name: "nil body", req: nil, wantField: "body"},
		{name: "latitude out of range", req: &models.SOSRequest{Latitude: 91, Longitude: 0}, wantField: "latitude"},
		{name: "longitude out of range", req: &models.SOSRequest{Latitude: 0, Longitude: -181}, wantField: "latitude"},
		{name: "not a number", req: &models.SOSRequest{Latitude: math.NaN(), Longitude: 0}, wantField: "latitude"},
		{name: "audio ref too long", req: &models.SOSRequest{Latitude: 1, Longitude: 1, AudioRef: strings.Repeat("a", 501)}, wantField: "audio_ref"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			uc, _ := setupSOSUC(t)

			// Act
			alert, err := uc.Trigger(context.Background(), "owner-1", tt.req)

			// Assert
			assert.Nil(t, alert)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestTrigger_PriorityOrder(t *testing.T) {
	// Arrange
	uc, deps := setupSOSUC(t)
	deps.dir.EXPECT().EligibleForSharing(gomock.Any(), "owner-1").Return([]models.Guardian{
		guardian("1", 3), guardian("2", 1), guardian("3", 5), guardian("4", 1), guardian("5", 3),
	}, nil)
	deps.gw.EXPECT().QueueAlert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(5)
	deps.gw.EXPECT().PublishTriggered(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.SOSAlert) error {
			assert.Len(t, alert.Notified, 5)
			return nil
		})

	// Act
	alert, err := uc.Trigger(context.Background(), "owner-1", &models.SOSRequest{Latitude: -6.2, Longitude: 106.8, AudioRef: "clip-42.webm"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "4", "1", "5", "3"}, recipientIDs(alert.Notified))
	assert.Empty(t, alert.Failed)
	assert.Equal(t, "Emergency! Current location: -6.2, 106.8. Audio: clip-42.webm", alert.Message)
	assert.True(t, alert.SirenRequested)
	assert.True(t, alert.EmergencyCallRequested)
	assert.Equal(t, fixedNow, alert.CreatedAt)
	assert.NotEmpty(t, alert.ID)
}

func TestTrigger_Silent(t *testing.T) {
	// Arrange
	uc, deps := setupSOSUC(t)
	deps.dir.EXPECT().EligibleForSharing(gomock.Any(), "owner-1").Return(nil, nil)
	deps.gw.EXPECT().PublishTriggered(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	alert, err := uc.Trigger(context.Background(), "owner-1", &models.SOSRequest{Latitude: 1.5, Longitude: 2, Silent: true})

	// Assert: zero guardians is not an error
	require.NoError(t, err)
	assert.False(t, alert.SirenRequested)
	assert.True(t, alert.EmergencyCallRequested)
	assert.Equal(t, "Emergency! Current location: 1.5, 2. Audio: none", alert.Message)
	assert.NotNil(t, alert.Notified)
	assert.Empty(t, alert.Notified)
}

func TestTrigger_PartialFailure(t *testing.T) {
	// Arrange
	uc, deps := setupSOSUC(t)
	deps.dir.EXPECT().EligibleForSharing(gomock.Any(), "owner-1").Return([]models.Guardian{
		guardian("1", 1), guardian("2", 2), guardian("3", 3),
	}, nil)
	deps.gw.EXPECT().QueueAlert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.SOSAlert, g *models.Guardian) error {
			if g.ID == "2" {
				return errors.New("nsqd down")
			}
			return nil
		}).Times(3)
	deps.gw.EXPECT().PublishTriggered(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	alert, err := uc.Trigger(context.Background(), "owner-1", &models.SOSRequest{Latitude: 1, Longitude: 1})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, recipientIDs(alert.Notified))
	require.Len(t, alert.Failed, 1)
	assert.Equal(t, "2", alert.Failed[0].GuardianID)
	assert.Equal(t, "nsqd down", alert.Failed[0].Error)
}

func TestTrigger_DegradedDependencies(t *testing.T) {
	// Arrange
	uc, deps := setupSOSUC(t)
	deps.dir.EXPECT().EligibleForSharing(gomock.Any(), "owner-1").
		Return(nil, &models.StorageError{Op: "load guardians", Err: errors.New("redis down")})
	deps.gw.EXPECT().PublishTriggered(gomock.Any(), gomock.Any()).Return(errors.New("no responders"))

	// Act
	alert, err := uc.Trigger(context.Background(), "owner-1", &models.SOSRequest{Latitude: 1, Longitude: 1})

	// Assert: the alert is still returned so the device can call emergency services
	require.NoError(t, err)
	assert.True(t, alert.EmergencyCallRequested)
	assert.Equal(t, []string{
		"guardians could not be loaded; no alerts were queued",
		"alert event could not be published",
	}, alert.Warnings)
}
