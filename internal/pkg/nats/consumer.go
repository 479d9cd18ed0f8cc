package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/shesafe/internal/pkg/logger"
)

// MessageHandler processes a single message body received on subject
type MessageHandler func(ctx context.Context, subject string, data []byte) error

// Consumer is either a core queue subscription or a durable JetStream consumer
type Consumer struct {
	subscription *nats.Subscription
	consumeCtx   jetstream.ConsumeContext
	cancel       context.CancelFunc
}

// NewQueueConsumer subscribes to a core NATS subject inside a queue group.
// Handler errors are logged; core NATS has no redelivery.
func NewQueueConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := client.QueueSubscribe(subject, queueGroup, func(msg *nats.Msg) {
		if err := handler(ctx, msg.Subject, msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", msg.Subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	})
	if err != nil {
		cancel()
		return nil, err
	}

	return &Consumer{subscription: sub, cancel: cancel}, nil
}

// NewJetStreamConsumer creates (or updates) a durable consumer and starts
// pushing messages to handler. Messages are acked on success and nacked for
// redelivery on error.
func NewJetStreamConsumer(ctx context.Context, client *Client, config ConsumerConfig, handler MessageHandler) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	cons, err := client.js.CreateOrUpdateConsumer(ctx, config.StreamName, config.toJetStream())
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer %s: %w", config.ConsumerName, err)
	}

	handlerCtx, cancel := context.WithCancel(context.Background())
	consumeCtx, err := cons.Consume(func(msg jetstream.Msg) {
		if err := handler(handlerCtx, msg.Subject(), msg.Data()); err != nil {
			logger.Error("Error processing JetStream message",
				logger.String("subject", msg.Subject()),
				logger.String("consumer", config.ConsumerName),
				logger.Err(err))

			if nakErr := msg.Nak(); nakErr != nil {
				logger.Error("Failed to NAK message", logger.Err(nakErr))
			}
			return
		}

		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.Err(ackErr))
		}
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}

	return &Consumer{consumeCtx: consumeCtx, cancel: cancel}, nil
}

// Stop unsubscribes and releases the consumer
func (c *Consumer) Stop() {
	if c.consumeCtx != nil {
		c.consumeCtx.Stop()
	}
	if c.subscription != nil {
		_ = c.subscription.Unsubscribe()
	}
	if c.cancel != nil {
		c.cancel()
	}
}
