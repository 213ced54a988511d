// Package events publishes domain events (votes, admin changes) for downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	VoteCast         = "vote.cast"
	VoteRetracted    = "vote.retracted"
	CategoryCreated  = "category.created"
	CategoryUpdated  = "category.updated"
	CategoryDeleted  = "category.deleted"
	ContentUpdated   = "content.updated"
	RoleChanged      = "role.changed"
	VotingConfigured = "voting.configured"
)

type Event struct {
	Type       string         `json:"type"`
	Key        string         `json:"key"`
	ActorID    string         `json:"actor_id,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// New stamps an event with the current time.
func New(eventType, key, actorID string, payload map[string]any) Event {
	return Event{
		Type:       eventType,
		Key:        key,
		ActorID:    actorID,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher delivers events. Publishing is best-effort: callers log failures
// and never fail a request because of them.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// LogPublisher writes events to the structured log.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, e Event) error {
	p.logger.Info("domain_event",
		"type", e.Type,
		"key", e.Key,
		"actor_id", e.ActorID,
		"payload", e.Payload,
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }

// KafkaPublisher writes JSON events to a topic, keyed so one aggregate stays on one partition.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
			BatchTimeout:           50 * time.Millisecond,
			WriteTimeout:           5 * time.Second,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", e.Type, err)
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.Key),
		Value: value,
		Time:  e.OccurredAt,
	}); err != nil {
		return fmt.Errorf("publish event %s: %w", e.Type, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
