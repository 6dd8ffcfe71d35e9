// Package events publishes fire-and-forget domain events for completed
// trip computations. Publishing happens strictly after the pure scheduling
// computation finishes; a publish failure never changes the computed
// result. Publish is synchronous: it returns once the write completes or
// fails.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/draymaster/services/hos-trip-planner/internal/logger"
)

// TripPlanned is the topic a completed trip computation is published to.
const TripPlanned = "trips.trip.planned"

// Event is a domain event envelope.
type Event struct {
	ID     string      `json:"id"`
	Type   string      `json:"type"`
	Source string      `json:"source"`
	Time   time.Time   `json:"time"`
	Data   interface{} `json:"data"`
}

// NewEvent creates a new event with a generated ID and UTC timestamp.
func NewEvent(eventType, source string, data interface{}) *Event {
	return &Event{
		ID:     uuid.New().String(),
		Type:   eventType,
		Source: source,
		Time:   time.Now().UTC(),
		Data:   data,
	}
}

// Producer publishes events to Kafka.
type Producer struct {
	writer *kafka.Writer
	logger *logger.Logger
}

// NewProducer creates a Kafka producer for the given brokers.
func NewProducer(brokers []string, log *logger.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}

	return &Producer{writer: writer, logger: log}
}

// Publish publishes an event to a topic.
func (p *Producer) Publish(ctx context.Context, topic string, event *Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(event.ID),
		Value: data,
		Time:  event.Time,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "source", Value: []byte(event.Source)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Errorw("Failed to publish event", "topic", topic, "event_type", event.Type, "error", err)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debugw("Event published", "topic", topic, "event_id", event.ID, "event_type", event.Type)
	return nil
}

// Close closes the producer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
