package contact

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Message is a visitor-submitted contact message. Unowned: the public side
// only writes, the admin side only reads.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *Message) Validate() error {
	if m.Name == "" || m.Message == "" {
		return errors.New("name and message are required")
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return errors.New("a valid email address is required")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, msg *Message) error
	List(ctx context.Context, limit, offset int) ([]*Message, error)
}
