package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(repo *memoryRepo, guardians ...models.Guardian) {
	repo.sets["owner-1"] = &models.GuardianSet{Version: models.GuardianSetVersion, Guardians: guardians}
}

func TestRecordPresence(t *testing.T) {
	// Arrange
	uc, repo, _ := newDirectory(t)
	seed(repo, models.Guardian{ID: "g-1", OnlineStatus: models.OnlineStatusUnknown})
	seenAt := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	// Act
	err := uc.RecordPresence(context.Background(), &models.PresenceEvent{
		OwnerID: "owner-1", GuardianID: "g-1", Online: true, At: seenAt,
	})

	// Assert
	require.NoError(t, err)
	set, _ := repo.Load(context.Background(), "owner-1")
	assert.Equal(t, models.OnlineStatusOnline, set.Guardians[0].OnlineStatus)
	require.NotNil(t, set.Guardians[0].LastActive)
	assert.Equal(t, seenAt, *set.Guardians[0].LastActive)

	require.NoError(t, uc.RecordPresence(context.Background(), &models.PresenceEvent{
		OwnerID: "owner-1", GuardianID: "g-1", Online: false,
	}))
	set, _ = repo.Load(context.Background(), "owner-1")
	assert.Equal(t, models.OnlineStatusOffline, set.Guardians[0].OnlineStatus)
	assert.Equal(t, fixedNow, *set.Guardians[0].LastActive)
}

func TestRecordPresence_UnknownGuardian(t *testing.T) {
	uc, _, _ := newDirectory(t)

	err := uc.RecordPresence(context.Background(), &models.PresenceEvent{OwnerID: "owner-1", GuardianID: "ghost"})

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRespondToInvite(t *testing.T) {
	tests := []struct {
		name     string
		start    models.ConsentStatus
		accepted bool
		want     models.ConsentStatus
		wantErr  error
	}{
		{"pending accepted", models.ConsentPending, true, models.ConsentAccepted, nil},
		{"pending declined", models.ConsentPending, false, models.ConsentDeclined, nil},
		{"not sent has nothing to answer", models.ConsentNotSent, true, models.ConsentNotSent, models.ErrConflict},
		{"already accepted", models.ConsentAccepted, false, models.ConsentAccepted, models.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _ := newDirectory(t)
			seed(repo, models.Guardian{ID: "g-1", ConsentStatus: tt.start})

			err := uc.RespondToInvite(context.Background(), &models.ConsentResponseEvent{
				OwnerID: "owner-1", GuardianID: "g-1", Accepted: tt.accepted,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			set, _ := repo.Load(context.Background(), "owner-1")
			assert.Equal(t, tt.want, set.Guardians[0].ConsentStatus)
		})
	}
}

func TestAcknowledgeSOS(t *testing.T) {
	uc, repo, _ := newDirectory(t)
	seed(repo, models.Guardian{ID: "g-1"}, models.Guardian{ID: "g-2"})

	require.NoError(t, uc.AcknowledgeSOS(context.Background(), &models.SOSAckEvent{OwnerID: "owner-1", GuardianID: "g-2"}))
	// a duplicate ack does not write again
	require.NoError(t, uc.AcknowledgeSOS(context.Background(), &models.SOSAckEvent{OwnerID: "owner-1", GuardianID: "g-2"}))

	set, _ := repo.Load(context.Background(), "owner-1")
	assert.False(t, set.Guardians[0].SOSResponseAcknowledged)
	assert.True(t, set.Guardians[1].SOSResponseAcknowledged)
	assert.Equal(t, 1, repo.saves)
}

func TestMarkLocationReceived(t *testing.T) {
	uc, repo, _ := newDirectory(t)
	seed(repo, models.Guardian{ID: "g-1"}, models.Guardian{ID: "g-2"}, models.Guardian{ID: "g-3"})

	err := uc.MarkLocationReceived(context.Background(), "owner-1", []string{"g-1", "g-3", "removed-meanwhile"})

	require.NoError(t, err)
	set, _ := repo.Load(context.Background(), "owner-1")
	assert.True(t, set.Guardians[0].LocationReceived)
	assert.False(t, set.Guardians[1].LocationReceived)
	assert.True(t, set.Guardians[2].LocationReceived)
}

func TestResetSOSAcknowledgements(t *testing.T) {
	uc, repo, _ := newDirectory(t)
	seed(repo,
		models.Guardian{ID: "g-1", SOSResponseAcknowledged: true},
		models.Guardian{ID: "g-2", SOSResponseAcknowledged: true})

	require.NoError(t, uc.ResetSOSAcknowledgements(context.Background(), "owner-1", []string{"g-1"}))

	set, _ := repo.Load(context.Background(), "owner-1")
	assert.False(t, set.Guardians[0].SOSResponseAcknowledged)
	assert.True(t, set.Guardians[1].SOSResponseAcknowledged)
}

func TestSetFlag_NothingToDo(t *testing.T) {
	uc, repo, _ := newDirectory(t)
	seed(repo, models.Guardian{ID: "g-1", LocationReceived: true})

	require.NoError(t, uc.MarkLocationReceived(context.Background(), "owner-1", nil))
	require.NoError(t, uc.MarkLocationReceived(context.Background(), "owner-1", []string{"g-1"}))

	assert.Zero(t, repo.saves)
}
