package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brianmuthui/portfolio-api/adapters/event"
	"github.com/brianmuthui/portfolio-api/internal/domain/contact"
	"github.com/brianmuthui/portfolio-api/pkg/apperror"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

type EventPublisher interface {
	PublishContactEvent(ctx context.Context, payload event.ContactEventPayload) error
}

type ContactUseCase struct {
	repo      contact.Repository
	publisher EventPublisher
	logger    logger.Logger
}

func NewContactUseCase(repo contact.Repository, pub EventPublisher, log logger.Logger) *ContactUseCase {
	return &ContactUseCase{repo: repo, publisher: pub, logger: log}
}

type SubmitInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Submit stores a visitor message and emits a notification event. The
// event is fire-and-forget; the message is already durable when it fails.
func (uc *ContactUseCase) Submit(ctx context.Context, input SubmitInput) (*contact.Message, error) {
	msg := &contact.Message{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := msg.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("contact message validation failed", err)
	}

	if err := uc.repo.Save(ctx, msg); err != nil {
		return nil, err
	}

	go func() {
		payload := event.ContactEventPayload{
			MessageID:  msg.ID,
			Name:       msg.Name,
			Email:      msg.Email,
			Subject:    msg.Subject,
			ReceivedAt: msg.CreatedAt,
		}
		if err := uc.publisher.PublishContactEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish contact event", err, zap.String("message_id", msg.ID.String()))
		}
	}()

	return msg, nil
}

func (uc *ContactUseCase) ListMessages(ctx context.Context, page, limit int) ([]*contact.Message, error) {
	if limit <= 0 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit
	return uc.repo.List(ctx, limit, offset)
}
