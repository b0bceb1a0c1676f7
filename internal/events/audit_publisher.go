package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/logger"
)

// PushAuditEvent records one price-push attempt. The remote write is
// destructive, so the audit trail is the only history of what was sent.
type PushAuditEvent struct {
	PropertyID  string    `json:"property_id"`
	RoomID      string    `json:"room_id"`
	ChannelID   string    `json:"channel_id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	MinNights   int       `json:"min_nights"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	AttemptedAt time.Time `json:"attempted_at"`
}

// AuditPublisher emits push audit events. Publishing is fire-and-forget
// relative to calculation: a failed publish never affects computed prices.
type AuditPublisher interface {
	PublishPushResult(ctx context.Context, event *PushAuditEvent)
	Close()
}

// KafkaAuditPublisher publishes audit events to a Kafka topic
type KafkaAuditPublisher struct {
	client *kgo.Client
	topic  string
}

// NewKafkaAuditPublisher connects to Kafka and returns a publisher
func NewKafkaAuditPublisher(brokers []string, clientID, topic string) (*KafkaAuditPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ClientID(clientID),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}
	return &KafkaAuditPublisher{client: client, topic: topic}, nil
}

// PublishPushResult produces one audit record, keyed by property so one
// property's pushes stay ordered. Errors are logged, never returned.
func (p *KafkaAuditPublisher) PublishPushResult(ctx context.Context, event *PushAuditEvent) {
	value, err := json.Marshal(event)
	if err != nil {
		logger.ErrorCtx(ctx, "failed to encode push audit event", zap.Error(err))
		return
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.PropertyID),
		Value: value,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			logger.Error("failed to publish push audit event",
				zap.String("property_id", event.PropertyID),
				zap.String("channel_id", event.ChannelID),
				zap.Error(err),
			)
		}
	})
}

// Close flushes pending records and closes the client
func (p *KafkaAuditPublisher) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = p.client.Flush(ctx)
	p.client.Close()
}

// NoOpAuditPublisher drops events; used in tests and when Kafka is disabled
type NoOpAuditPublisher struct{}

// NewNoOpAuditPublisher creates a new no-op publisher
func NewNoOpAuditPublisher() *NoOpAuditPublisher {
	return &NoOpAuditPublisher{}
}

// PublishPushResult drops the event
func (p *NoOpAuditPublisher) PublishPushResult(ctx context.Context, event *PushAuditEvent) {}

// Close is a no-op
func (p *NoOpAuditPublisher) Close() {}
