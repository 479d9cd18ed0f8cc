package nats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/shesafe/internal/pkg/constants"
	"github.com/piresc/shesafe/internal/pkg/models"
	natspkg "github.com/piresc/shesafe/internal/pkg/nats"
	"github.com/piresc/shesafe/services/guardians/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, v interface{}) []byte {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestHandlePresence(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		ucErr   error
		wantErr bool
	}{
		{name: "applied", data: []byte(`{"owner_id":"owner-1","guardian_id":"g-1","online":true}`)},
		{name: "unknown guardian is acknowledged", data: []byte(`{"owner_id":"owner-1","guardian_id":"x"}`), ucErr: &models.NotFoundError{Resource: "guardian"}},
		{name: "storage failure surfaces", data: []byte(`{"owner_id":"owner-1","guardian_id":"g-1"}`), ucErr: &models.StorageError{Op: "save", Err: errors.New("down")}, wantErr: true},
		{name: "malformed payload", data: []byte(`{`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctrl := gomock.NewController(t)
			mockUC := mocks.NewMockGuardianUC(ctrl)
			h := NewNatsHandler(mockUC, nil, "SHESAFE")
			if json.Valid(tt.data) {
				mockUC.EXPECT().RecordPresence(gomock.Any(), gomock.Any()).Return(tt.ucErr)
			}

			// Act
			err := h.handlePresence(context.Background(), constants.SubjectGuardianPresence, tt.data)

			// Assert
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHandleConsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockGuardianUC(ctrl)
	h := NewNatsHandler(mockUC, nil, "SHESAFE")

	mockUC.EXPECT().RespondToInvite(gomock.Any(), &models.ConsentResponseEvent{
		OwnerID: "owner-1", GuardianID: "g-1", Accepted: true,
	}).Return(&models.ConflictError{Reason: "guardian has no pending invitation"})

	err := h.handleConsent(context.Background(), constants.SubjectGuardianConsent,
		[]byte(`{"owner_id":"owner-1","guardian_id":"g-1","accepted":true}`))

	assert.NoError(t, err)
}

func TestHandleSOSAck(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockGuardianUC(ctrl)
	h := NewNatsHandler(mockUC, nil, "SHESAFE")

	mockUC.EXPECT().AcknowledgeSOS(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event *models.SOSAckEvent) error {
			assert.Equal(t, "alert-1", event.AlertID)
			return nil
		})

	err := h.handleSOSAck(context.Background(), constants.SubjectGuardianSOSAck,
		[]byte(`{"owner_id":"owner-1","guardian_id":"g-1","alert_id":"alert-1"}`))

	assert.NoError(t, err)
}

func TestHandleSOSTriggered(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockGuardianUC(ctrl)
	h := NewNatsHandler(mockUC, nil, "SHESAFE")

	alert := models.SOSAlert{
		ID:      "alert-1",
		OwnerID: "owner-1",
		Notified: []models.SOSRecipient{
			{GuardianID: "g-2"}, {GuardianID: "g-1"},
		},
	}
	mockUC.EXPECT().ResetSOSAcknowledgements(gomock.Any(), "owner-1", []string{"g-2", "g-1"}).Return(nil)

	assert.NoError(t, h.handleSOSTriggered(context.Background(), constants.SubjectSOSTriggered, mustJSON(t, alert)))
	// malformed payloads are dropped without reaching the usecase
	assert.NoError(t, h.handleSOSTriggered(context.Background(), constants.SubjectSOSTriggered, []byte("nope")))
}

func TestConsumers_EndToEnd(t *testing.T) {
	// Arrange
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = t.TempDir()
	srv := natsserver.RunServer(&opts)
	defer srv.Shutdown()

	client, err := natspkg.NewClient(srv.ClientURL())
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	stream := natspkg.NewStreamConfigBuilder("SHESAFE").
		WithSubjects(constants.StreamSubjects...).
		WithStorage(jetstream.MemoryStorage).
		Build()
	require.NoError(t, client.EnsureStream(ctx, stream))

	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockGuardianUC(ctrl)

	presence := make(chan struct{}, 1)
	marked := make(chan []string, 1)
	mockUC.EXPECT().RecordPresence(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *models.PresenceEvent) error {
			presence <- struct{}{}
			return nil
		})
	mockUC.EXPECT().MarkLocationReceived(gomock.Any(), "owner-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, ids []string) error {
			marked <- ids
			return nil
		})

	h := NewNatsHandler(mockUC, client, "SHESAFE")
	require.NoError(t, h.InitNATSConsumers(ctx))
	defer h.Stop()

	// Act
	require.NoError(t, client.Publish(constants.SubjectGuardianPresence,
		mustJSON(t, models.PresenceEvent{OwnerID: "owner-1", GuardianID: "g-1", Online: true})))
	require.NoError(t, client.PublishJSON(ctx, constants.SubjectSessionStarted, "session-1",
		models.SessionEvent{SessionID: "session-1", OwnerID: "owner-1", GuardianIDs: []string{"g-1", "g-2"}}))

	// Assert
	select {
	case <-presence:
	case <-time.After(5 * time.Second):
		t.Fatal("presence event not handled")
	}
	select {
	case ids := <-marked:
		assert.Equal(t, []string{"g-1", "g-2"}, ids)
	case <-time.After(5 * time.Second):
		t.Fatal("session started event not handled")
	}
}
