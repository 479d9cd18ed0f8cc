package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Client wraps a NATS connection and its JetStream context
type Client struct {
	conn *nats.Conn
	js   jetstream.JetStream
}

// PublishOptions configures a JetStream publish
type PublishOptions struct {
	Subject string
	Data    []byte
	MsgID   string
	Timeout time.Duration
}

// NewClient connects to NATS and creates a JetStream context
func NewClient(url string) (*Client, error) {
	if url == "" {
		return nil, errors.New("failed to connect to NATS server: empty url")
	}

	conn, err := nats.Connect(url,
		nats.Name("shesafe"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Client{conn: conn, js: js}, nil
}

// GetConn returns the underlying NATS connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// JetStream returns the JetStream context
func (c *Client) JetStream() jetstream.JetStream {
	return c.js
}

// EnsureStream creates the stream or updates it to match cfg
func (c *Client) EnsureStream(ctx context.Context, cfg StreamConfig) error {
	_, err := c.js.CreateOrUpdateStream(ctx, cfg.toJetStream())
	if err != nil {
		return fmt.Errorf("failed to ensure stream %s: %w", cfg.Name, err)
	}
	return nil
}

// Publish sends a core NATS message to the subject
func (c *Client) Publish(subject string, data []byte) error {
	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// PublishWithOptions publishes to JetStream and waits for the stream ack.
// A non-empty MsgID enables server-side de-duplication.
func (c *Client) PublishWithOptions(ctx context.Context, opts PublishOptions) error {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var pubOpts []jetstream.PublishOpt
	if opts.MsgID != "" {
		pubOpts = append(pubOpts, jetstream.WithMsgID(opts.MsgID))
	}

	if _, err := c.js.Publish(ctx, opts.Subject, opts.Data, pubOpts...); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", opts.Subject, err)
	}
	return nil
}

// PublishJSON marshals v and publishes it to JetStream
func (c *Client) PublishJSON(ctx context.Context, subject, msgID string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return c.PublishWithOptions(ctx, PublishOptions{
		Subject: subject,
		Data:    data,
		MsgID:   msgID,
		Timeout: 5 * time.Second,
	})
}

// Subscribe subscribes to a subject and returns a subscription
func (c *Client) Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error) {
	sub, err := c.conn.Subscribe(subject, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}
	return sub, nil
}

// QueueSubscribe subscribes to a subject within a queue group
func (c *Client) QueueSubscribe(subject, queue string, handler nats.MsgHandler) (*nats.Subscription, error) {
	sub, err := c.conn.QueueSubscribe(subject, queue, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to queue subscribe to subject: %w", err)
	}
	return sub, nil
}

// IsConnected reports the connection state
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

// Close drains and closes the NATS connection
func (c *Client) Close() {
	if c.conn != nil {
		_ = c.conn.Drain()
		c.conn.Close()
	}
}
