package contact

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianmuthui/portfolio-api/adapters/event"
	"github.com/brianmuthui/portfolio-api/internal/domain/contact"
	"github.com/brianmuthui/portfolio-api/pkg/apperror"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

type memContactRepo struct {
	mu    sync.Mutex
	saved []*contact.Message
}

func (r *memContactRepo) Save(ctx context.Context, msg *contact.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, msg)
	return nil
}

func (r *memContactRepo) List(ctx context.Context, limit, offset int) ([]*contact.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if offset >= len(r.saved) {
		return []*contact.Message{}, nil
	}
	end := offset + limit
	if end > len(r.saved) {
		end = len(r.saved)
	}
	return r.saved[offset:end], nil
}

type recordingPublisher struct {
	mu        sync.Mutex
	published []event.ContactEventPayload
	done      chan struct{}
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{done: make(chan struct{}, 1)}
}

func (p *recordingPublisher) PublishContactEvent(ctx context.Context, payload event.ContactEventPayload) error {
	p.mu.Lock()
	p.published = append(p.published, payload)
	p.mu.Unlock()
	p.done <- struct{}{}
	return nil
}

func TestSubmit_SavesAndPublishes(t *testing.T) {
	repo := &memContactRepo{}
	pub := newRecordingPublisher()
	uc := NewContactUseCase(repo, pub, logger.NewZapLogger("development"))

	msg, err := uc.Submit(context.Background(), SubmitInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Nice site",
	})

	require.NoError(t, err)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, msg.ID, repo.saved[0].ID)

	select {
	case <-pub.done:
	case <-time.After(2 * time.Second):
		t.Fatal("contact event was never published")
	}
	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.published, 1)
	assert.Equal(t, msg.ID, pub.published[0].MessageID)
}

func TestSubmit_RejectsInvalidEmail(t *testing.T) {
	repo := &memContactRepo{}
	uc := NewContactUseCase(repo, newRecordingPublisher(), logger.NewZapLogger("development"))

	_, err := uc.Submit(context.Background(), SubmitInput{
		Name:    "Visitor",
		Email:   "not-an-address",
		Message: "hi",
	})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.ErrorIs(t, appErr.BaseError, apperror.ErrInvalidInput)
	assert.Empty(t, repo.saved, "an invalid message never reaches the store")
}

func TestListMessages_DefaultsPaging(t *testing.T) {
	repo := &memContactRepo{}
	uc := NewContactUseCase(repo, newRecordingPublisher(), logger.NewZapLogger("development"))

	for i := 0; i < 3; i++ {
		_, err := uc.Submit(context.Background(), SubmitInput{
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Message: "hello again",
		})
		require.NoError(t, err)
	}

	msgs, err := uc.ListMessages(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, msgs, 3)
}
