package experience

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Position    string    `json:"position"`
	Company     string    `json:"company"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var ErrNotFound = errors.New("experience entry not found")

func (e *Experience) EntityID() uuid.UUID { return e.ID }

func (e *Experience) Validate() error {
	if e.Position == "" && e.Company == "" {
		return errors.New("position or company is required")
	}
	return nil
}

type Repository interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*Experience, error)
	// ListAll backs the public page of this single-owner site.
	ListAll(ctx context.Context) ([]*Experience, error)
	Insert(ctx context.Context, ownerID uuid.UUID, item *Experience) (*Experience, error)
	Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, item *Experience) (*Experience, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}
