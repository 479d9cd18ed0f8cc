package nats

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runJetStreamServer(t *testing.T) string {
	t.Helper()
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = t.TempDir()

	srv := natsserver.RunServer(&opts)
	t.Cleanup(srv.Shutdown)
	return srv.ClientURL()
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(runJetStreamServer(t))
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func TestNewClient_InvalidAddress(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "empty", url: ""},
		{name: "unreachable", url: "nats://127.0.0.1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.url)

			assert.Error(t, err)
			assert.Nil(t, client)
			assert.Contains(t, err.Error(), "failed to connect to NATS server")
		})
	}
}

func TestClient_PublishJSON_DeduplicatesByMsgID(t *testing.T) {
	// Arrange
	client := newTestClient(t)
	ctx := context.Background()
	stream := NewStreamConfigBuilder("TEST").
		WithSubjects("location.session.>").
		WithStorage(jetstream.MemoryStorage).
		Build()
	require.NoError(t, client.EnsureStream(ctx, stream))

	// Act
	require.NoError(t, client.PublishJSON(ctx, "location.session.started", "s1", map[string]string{"id": "s1"}))
	require.NoError(t, client.PublishJSON(ctx, "location.session.started", "s1", map[string]string{"id": "s1"}))

	// Assert
	s, err := client.JetStream().Stream(ctx, "TEST")
	require.NoError(t, err)
	info, err := s.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), info.State.Msgs)
}

func TestJetStreamConsumer_AcksAndRedelivers(t *testing.T) {
	// Arrange
	client := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, client.EnsureStream(ctx, NewStreamConfigBuilder("TEST").
		WithSubjects("safety.sos.>").
		WithStorage(jetstream.MemoryStorage).
		Build()))

	var calls atomic.Int32
	done := make(chan string, 1)
	cfg := NewConsumerConfigBuilder("TEST", "test-consumer").
		WithSubjects("safety.sos.triggered").
		WithAckWait(time.Second).
		Build()

	consumer, err := NewJetStreamConsumer(ctx, client, cfg, func(_ context.Context, subject string, data []byte) error {
		if calls.Add(1) == 1 {
			return errors.New("transient")
		}
		done <- string(data)
		return nil
	})
	require.NoError(t, err)
	defer consumer.Stop()

	// Act
	require.NoError(t, client.PublishJSON(ctx, "safety.sos.triggered", "", "alert"))

	// Assert
	select {
	case got := <-done:
		assert.Equal(t, `"alert"`, got)
		assert.GreaterOrEqual(t, calls.Load(), int32(2))
	case <-time.After(5 * time.Second):
		t.Fatal("message was not redelivered")
	}
}

func TestQueueConsumer_ReceivesCoreMessages(t *testing.T) {
	client := newTestClient(t)
	received := make(chan []byte, 1)

	consumer, err := NewQueueConsumer(client, "guardians.presence", "q", func(_ context.Context, _ string, data []byte) error {
		received <- data
		return nil
	})
	require.NoError(t, err)
	defer consumer.Stop()
	require.NoError(t, client.GetConn().Flush())

	require.NoError(t, client.Publish("guardians.presence", []byte("hello")))

	select {
	case got := <-received:
		assert.Equal(t, "hello", string(got))
	case <-time.After(2 * time.Second):
		t.Fatal("message not received")
	}
	assert.True(t, client.IsConnected())
}
