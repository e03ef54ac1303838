package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/brianmuthui/portfolio-api/internal/config"
)

const (
	TopicBlobCleanup   = "blob.cleanup"
	TopicContactEvents = "contact.events"
)

// BlobCleanupPayload is a durable delete intent for a blob whose destroy
// call failed (or was deferred). The worker retries it.
type BlobCleanupPayload struct {
	URL         string    `json:"url"`
	PublicID    string    `json:"public_id"`
	Attempts    int       `json:"attempts"`
	RequestedAt time.Time `json:"requested_at"`
}

type ContactEventPayload struct {
	MessageID  uuid.UUID `json:"message_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	ReceivedAt time.Time `json:"received_at"`
}

type KafkaProducerClient struct {
	BlobCleanupWriter   *kafka.Writer
	ContactEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	cleanupWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicBlobCleanup,
		Balancer: &kafka.LeastBytes{},
	}

	contactWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContactEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		BlobCleanupWriter:   cleanupWriter,
		ContactEventsWriter: contactWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishBlobCleanup(ctx context.Context, payload BlobCleanupPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal blob cleanup payload: %w", err)
	}
	return c.BlobCleanupWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.PublicID),
		Value: value,
	})
}

func (c *KafkaProducerClient) PublishContactEvent(ctx context.Context, payload ContactEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal contact event payload: %w", err)
	}
	return c.ContactEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.MessageID.String()),
		Value: value,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.BlobCleanupWriter != nil {
		c.BlobCleanupWriter.Close()
	}
	if c.ContactEventsWriter != nil {
		c.ContactEventsWriter.Close()
	}
}
