package nats

import (
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

// StreamConfig describes a JetStream stream
type StreamConfig struct {
	Name     string
	Subjects []string
	Storage  jetstream.StorageType
	MaxAge   time.Duration
	MaxMsgs  int64
	Replicas int
}

func (s StreamConfig) toJetStream() jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:       s.Name,
		Subjects:   s.Subjects,
		Retention:  jetstream.LimitsPolicy,
		Storage:    s.Storage,
		MaxAge:     s.MaxAge,
		MaxMsgs:    s.MaxMsgs,
		Replicas:   s.Replicas,
		Discard:    jetstream.DiscardOld,
		Duplicates: 2 * time.Minute,
	}
}

// ConsumerConfig describes a durable JetStream consumer
type ConsumerConfig struct {
	StreamName     string
	ConsumerName   string
	FilterSubjects []string
	AckWait        time.Duration
	MaxDeliver     int
	DeliverPolicy  jetstream.DeliverPolicy
}

func (c ConsumerConfig) toJetStream() jetstream.ConsumerConfig {
	return jetstream.ConsumerConfig{
		Durable:        c.ConsumerName,
		FilterSubjects: c.FilterSubjects,
		AckPolicy:      jetstream.AckExplicitPolicy,
		AckWait:        c.AckWait,
		MaxDeliver:     c.MaxDeliver,
		DeliverPolicy:  c.DeliverPolicy,
		ReplayPolicy:   jetstream.ReplayInstantPolicy,
	}
}

// StreamConfigBuilder helps build stream configurations
type StreamConfigBuilder struct {
	config StreamConfig
}

// NewStreamConfigBuilder starts from file storage with a 24h retention window
func NewStreamConfigBuilder(name string) *StreamConfigBuilder {
	return &StreamConfigBuilder{
		config: StreamConfig{
			Name:     name,
			Storage:  jetstream.FileStorage,
			MaxAge:   24 * time.Hour,
			MaxMsgs:  1000000,
			Replicas: 1,
		},
	}
}

// WithSubjects sets the subjects for the stream
func (b *StreamConfigBuilder) WithSubjects(subjects ...string) *StreamConfigBuilder {
	b.config.Subjects = subjects
	return b
}

// WithStorage sets the storage type
func (b *StreamConfigBuilder) WithStorage(storage jetstream.StorageType) *StreamConfigBuilder {
	b.config.Storage = storage
	return b
}

// WithMaxAge sets the maximum age for messages
func (b *StreamConfigBuilder) WithMaxAge(maxAge time.Duration) *StreamConfigBuilder {
	b.config.MaxAge = maxAge
	return b
}

// Build returns the stream configuration
func (b *StreamConfigBuilder) Build() StreamConfig {
	return b.config
}

// ConsumerConfigBuilder helps build consumer configurations
type ConsumerConfigBuilder struct {
	config ConsumerConfig
}

// NewConsumerConfigBuilder creates a durable consumer that only sees new messages
func NewConsumerConfigBuilder(streamName, consumerName string) *ConsumerConfigBuilder {
	return &ConsumerConfigBuilder{
		config: ConsumerConfig{
			StreamName:    streamName,
			ConsumerName:  consumerName,
			AckWait:       30 * time.Second,
			MaxDeliver:    3,
			DeliverPolicy: jetstream.DeliverNewPolicy,
		},
	}
}

// WithSubjects sets the filter subjects
func (b *ConsumerConfigBuilder) WithSubjects(subjects ...string) *ConsumerConfigBuilder {
	b.config.FilterSubjects = subjects
	return b
}

// WithAckWait sets the acknowledgment wait time
func (b *ConsumerConfigBuilder) WithAckWait(ackWait time.Duration) *ConsumerConfigBuilder {
	b.config.AckWait = ackWait
	return b
}

// WithMaxDeliver sets the maximum delivery attempts
func (b *ConsumerConfigBuilder) WithMaxDeliver(maxDeliver int) *ConsumerConfigBuilder {
	b.config.MaxDeliver = maxDeliver
	return b
}

// WithDeliverPolicy sets the deliver policy
func (b *ConsumerConfigBuilder) WithDeliverPolicy(policy jetstream.DeliverPolicy) *ConsumerConfigBuilder {
	b.config.DeliverPolicy = policy
	return b
}

// Build returns the consumer configuration
func (b *ConsumerConfigBuilder) Build() ConsumerConfig {
	return b.config
}
