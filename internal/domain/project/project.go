package project

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	// Technologies keeps the submitted order; duplicates are allowed.
	Technologies []string  `json:"technologies"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var ErrNotFound = errors.New("project not found")

func (p *Project) EntityID() uuid.UUID { return p.ID }

func (p *Project) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

type Repository interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*Project, error)
	// ListAll backs the public page of this single-owner site.
	ListAll(ctx context.Context) ([]*Project, error)
	Insert(ctx context.Context, ownerID uuid.UUID, item *Project) (*Project, error)
	Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, item *Project) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}
