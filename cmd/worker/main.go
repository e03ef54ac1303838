package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/brianmuthui/portfolio-api/adapters/event"
	"github.com/brianmuthui/portfolio-api/adapters/media_storage"
	mediaUC "github.com/brianmuthui/portfolio-api/internal/application/usecase/media"
	"github.com/brianmuthui/portfolio-api/internal/config"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

func main() {

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Portfolio Worker...")

	// Cloudinary Uploader
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Kafka Producer (requeueing failed cleanups)
	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Worker Use Case
	processCleanupUC := mediaUC.NewProcessCleanupUseCase(uploader, kafkaClient, appLogger)

	// Kafka Consumers
	cleanupConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicBlobCleanup,
		GroupID:  "blob-cleanup-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer cleanupConsumer.Close()

	contactConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContactEvents,
		GroupID:  "contact-notifier-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer contactConsumer.Close()

	ctx := context.Background()

	go consumeContactEvents(ctx, contactConsumer, appLogger)

	appLogger.Info("Worker listening", zap.String("topic", event.TopicBlobCleanup))
	for {
		msg, err := cleanupConsumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var payload event.BlobCleanupPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("Failed to unmarshal cleanup intent, skipping", err)
			commitMessage(cleanupConsumer, msg, appLogger)
			continue
		}

		if err := processCleanupUC.Execute(ctx, payload); err != nil {
			appLogger.Error("Failed to process cleanup intent", err,
				zap.String("public_id", payload.PublicID))
			continue
		}

		commitMessage(cleanupConsumer, msg, appLogger)
	}
}

// consumeContactEvents surfaces new visitor messages in the worker log.
// The messages themselves are already durable in Postgres; this stream is
// the notification channel.
func consumeContactEvents(ctx context.Context, consumer *kafka.Reader, appLogger logger.Logger) {
	appLogger.Info("Worker listening", zap.String("topic", event.TopicContactEvents))
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var payload event.ContactEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("Failed to unmarshal contact event, skipping", err)
			commitMessage(consumer, msg, appLogger)
			continue
		}

		appLogger.Info("New contact message received",
			zap.String("message_id", payload.MessageID.String()),
			zap.String("from", payload.Email),
			zap.String("subject", payload.Subject))

		commitMessage(consumer, msg, appLogger)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, appLogger logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		appLogger.Error("Failed to commit message", err)
	}
}
