// Package events publishes order lifecycle events to Kafka. Publishing is
// best-effort: a failed publish is logged by the caller, never escalated.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/shopeasy/shopeasy-commerce-service/internal/config"
	"github.com/shopeasy/shopeasy-commerce-service/internal/models"
)

// EventType identifies the kind of order event.
type EventType string

const (
	EventTypeOrderPlaced EventType = "order.placed"
)

// OrderEvent is the payload written to the orders topic.
type OrderEvent struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	OrderID   string          `json:"order_id"`
	UserID    int64           `json:"user_id"`
	Total     string          `json:"total"`
	Lines     json.RawMessage `json:"lines"`
	Timestamp time.Time       `json:"timestamp"`
}

// Publisher emits order events.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, userID int64, order models.Order) error
	Close() error
}

// KafkaPublisher publishes order events through a kafka-go writer.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a Kafka-backed publisher for the orders topic.
func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.OrdersTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaPublisher{writer: writer, logger: logger}
}

// PublishOrderPlaced emits an order.placed event keyed by order id.
func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, userID int64, order models.Order) error {
	lines, err := json.Marshal(order.Lines)
	if err != nil {
		return err
	}

	event := OrderEvent{
		ID:        uuid.NewString(),
		Type:      EventTypeOrderPlaced,
		OrderID:   order.OrderID,
		UserID:    userID,
		Total:     order.Total.String(),
		Lines:     lines,
		Timestamp: time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.OrderID),
		Value: value,
	}); err != nil {
		p.logger.Error("failed to publish order event",
			"order_id", order.OrderID,
			"type", event.Type,
			"error", err,
		)
		return err
	}

	p.logger.Debug("order event published", "order_id", order.OrderID, "type", event.Type)
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events. Used when order events are disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderPlaced(context.Context, int64, models.Order) error { return nil }
func (NoopPublisher) Close() error                                                  { return nil }
