package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/piresc/shesafe/internal/pkg/constants"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/models"
	natspkg "github.com/piresc/shesafe/internal/pkg/nats"
	"github.com/piresc/shesafe/services/guardians"
)

// NatsHandler consumes guardian-side events and the session and SOS events
// that update guardian bookkeeping
type NatsHandler struct {
	guardianUC guardians.GuardianUC
	client     *natspkg.Client
	streamName string
	consumers  []*natspkg.Consumer
}

// NewNatsHandler creates a new NATS handler
func NewNatsHandler(guardianUC guardians.GuardianUC, client *natspkg.Client, streamName string) *NatsHandler {
	return &NatsHandler{
		guardianUC: guardianUC,
		client:     client,
		streamName: streamName,
	}
}

// InitNATSConsumers starts every consumer. On failure the ones already
// started are stopped.
func (h *NatsHandler) InitNATSConsumers(ctx context.Context) error {
	queue := []struct {
		subject string
		handler natspkg.MessageHandler
	}{
		{constants.SubjectGuardianPresence, h.handlePresence},
		{constants.SubjectGuardianConsent, h.handleConsent},
		{constants.SubjectGuardianSOSAck, h.handleSOSAck},
	}
	for _, q := range queue {
		consumer, err := natspkg.NewQueueConsumer(h.client, q.subject, constants.QueueGroupGuardians, q.handler)
		if err != nil {
			h.Stop()
			return fmt.Errorf("failed to subscribe to %s: %w", q.subject, err)
		}
		h.consumers = append(h.consumers, consumer)
	}

	durable := []struct {
		name    string
		subject string
		handler natspkg.MessageHandler
	}{
		{"guardians-session-started", constants.SubjectSessionStarted, h.handleSessionStarted},
		{"guardians-sos-triggered", constants.SubjectSOSTriggered, h.handleSOSTriggered},
	}
	for _, d := range durable {
		config := natspkg.NewConsumerConfigBuilder(h.streamName, d.name).
			WithSubjects(d.subject).
			Build()
		consumer, err := natspkg.NewJetStreamConsumer(ctx, h.client, config, d.handler)
		if err != nil {
			h.Stop()
			return err
		}
		h.consumers = append(h.consumers, consumer)
	}

	logger.Info("Guardian NATS consumers started", logger.Int("consumers", len(h.consumers)))
	return nil
}

// Stop stops every consumer
func (h *NatsHandler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
	h.consumers = nil
}

func (h *NatsHandler) handlePresence(ctx context.Context, subject string, data []byte) error {
	var event models.PresenceEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal presence event: %w", err)
	}
	return settle(subject, h.guardianUC.RecordPresence(ctx, &event))
}

func (h *NatsHandler) handleConsent(ctx context.Context, subject string, data []byte) error {
	var event models.ConsentResponseEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal consent event: %w", err)
	}
	return settle(subject, h.guardianUC.RespondToInvite(ctx, &event))
}

func (h *NatsHandler) handleSOSAck(ctx context.Context, subject string, data []byte) error {
	var event models.SOSAckEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal sos ack event: %w", err)
	}
	return settle(subject, h.guardianUC.AcknowledgeSOS(ctx, &event))
}

// handleSessionStarted flags the guardians a session was shared with.
// Undecodable payloads are dropped rather than redelivered.
func (h *NatsHandler) handleSessionStarted(ctx context.Context, subject string, data []byte) error {
	var event models.SessionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.Error("Dropping malformed session event", logger.String("subject", subject), logger.Err(err))
		return nil
	}
	return settle(subject, h.guardianUC.MarkLocationReceived(ctx, event.OwnerID, event.GuardianIDs))
}

// handleSOSTriggered clears stale acknowledgements of the notified guardians
func (h *NatsHandler) handleSOSTriggered(ctx context.Context, subject string, data []byte) error {
	var alert models.SOSAlert
	if err := json.Unmarshal(data, &alert); err != nil {
		logger.Error("Dropping malformed sos event", logger.String("subject", subject), logger.Err(err))
		return nil
	}

	ids := make([]string, 0, len(alert.Notified))
	for _, r := range alert.Notified {
		ids = append(ids, r.GuardianID)
	}
	return settle(subject, h.guardianUC.ResetSOSAcknowledgements(ctx, alert.OwnerID, ids))
}

// settle keeps storage failures as errors so JetStream redelivers them.
// Domain rejections are logged and acknowledged.
func settle(subject string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrConflict) {
		logger.Warn("Ignoring guardian event",
			logger.String("subject", subject),
			logger.Err(err))
		return nil
	}
	return err
}
