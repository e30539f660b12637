// Package events publishes session lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// Event types emitted by the session service.
const (
	TypeSessionStarted   = "session.started"
	TypeSessionCompleted = "session.completed"
)

// SessionStarted is emitted after a session is persisted.
type SessionStarted struct {
	SessionID      string    `json:"session_id"`
	MRIPatternID   string    `json:"mri_pattern_id"`
	SoundProfileID string    `json:"sound_profile_id"`
	VolumeLevel    float64   `json:"volume_level"`
	StartTime      time.Time `json:"start_time"`
}

// SessionCompleted is emitted after a session completion is applied.
type SessionCompleted struct {
	SessionID     string    `json:"session_id"`
	ComfortRating *int      `json:"comfort_rating"`
	EndTime       time.Time `json:"end_time"`
}

// Publisher delivers lifecycle events. Delivery is best effort; callers
// log failures and never fail the originating request on them.
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload any) error
	Close() error
}

// KafkaPublisher writes events to a single topic, creating the writer
// lazily on first publish.
type KafkaPublisher struct {
	brokers []string
	topic   string

	mu     sync.Mutex
	writer *kafka.Writer
}

// NewKafkaPublisher creates a KafkaPublisher for the given topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{brokers: brokers, topic: topic}
}

// Publish encodes payload as JSON and writes it keyed by key, with the
// event type carried as a message header.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType, key string, payload any) error {
	msg, err := buildMessage(eventType, key, payload)
	if err != nil {
		return err
	}
	return p.lazyWriter().WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) lazyWriter() *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		p.writer = &kafka.Writer{
			Addr:         kafka.TCP(p.brokers...),
			Topic:        p.topic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		}
	}
	return p.writer
}

// Close releases the writer.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		return nil
	}
	err := p.writer.Close()
	p.writer = nil
	return err
}

func buildMessage(eventType, key string, payload any) (kafka.Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(key),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}, nil
}

// NopPublisher discards events. Used when no brokers are configured.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(ctx context.Context, eventType, key string, payload any) error {
	return nil
}

// Close implements Publisher.
func (NopPublisher) Close() error { return nil }
