package skill

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Category groups skill names under a heading ("Languages", "Tooling", ...).
type Category struct {
	ID       uuid.UUID `json:"id"`
	OwnerID  uuid.UUID `json:"owner_id"`
	Category string    `json:"category"`
	// SkillList keeps the submitted order; uniqueness is not enforced.
	SkillList []string  `json:"skill_list"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var ErrNotFound = errors.New("skill category not found")

func (c *Category) EntityID() uuid.UUID { return c.ID }

func (c *Category) Validate() error {
	if c.Category == "" {
		return errors.New("category name is required")
	}
	return nil
}

type Repository interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*Category, error)
	// ListAll backs the public page of this single-owner site.
	ListAll(ctx context.Context) ([]*Category, error)
	Insert(ctx context.Context, ownerID uuid.UUID, item *Category) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, item *Category) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}
