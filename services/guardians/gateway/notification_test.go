package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/piresc/shesafe/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	topic    string
	messages []interface{}
	err      error
}

func (p *capturePublisher) Publish(topic string, message interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.topic = topic
	p.messages = append(p.messages, message)
	return nil
}

func TestSendConsentInvite(t *testing.T) {
	// Arrange
	pub := &capturePublisher{}
	gw := NewNotificationGW(pub, "shesafe.notifications")
	guardian := &models.Guardian{ID: "g-1", Name: "Rina", Phone: "+6281100000002"}

	// Act
	err := gw.SendConsentInvite(context.Background(), "owner-1", guardian)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "shesafe.notifications", pub.topic)
	require.Len(t, pub.messages, 1)

	n, ok := pub.messages[0].(models.Notification)
	require.True(t, ok)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, models.NotificationConsentInvite, n.Kind)
	assert.Equal(t, "owner-1", n.OwnerID)
	assert.Equal(t, "g-1", n.GuardianID)
	assert.Equal(t, "+6281100000002", n.To)
	assert.Contains(t, n.Body, "Hi Rina")
}

func TestSendConsentInvite_PublishError(t *testing.T) {
	gw := NewNotificationGW(&capturePublisher{err: errors.New("nsqd gone")}, "shesafe.notifications")

	err := gw.SendConsentInvite(context.Background(), "owner-1", &models.Guardian{ID: "g-1"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nsqd gone")
}
