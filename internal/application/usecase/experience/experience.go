package experience

import (
	"context"

	"github.com/google/uuid"

	"github.com/brianmuthui/portfolio-api/internal/application/usecase/site"
	"github.com/brianmuthui/portfolio-api/internal/application/worklist"
	"github.com/brianmuthui/portfolio-api/internal/domain/experience"
	"github.com/brianmuthui/portfolio-api/pkg/apperror"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

type ExperienceUseCase struct {
	repo        experience.Repository
	invalidator site.Invalidator
	logger      logger.Logger
}

func NewExperienceUseCase(repo experience.Repository, inv site.Invalidator, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{repo: repo, invalidator: inv, logger: log}
}

func (uc *ExperienceUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	return uc.repo.List(ctx, ownerID)
}

type ExperienceInput struct {
	Position    string
	Company     string
	Duration    string
	Description string
}

func (in ExperienceInput) toDomain() *experience.Experience {
	return &experience.Experience{
		Position:    in.Position,
		Company:     in.Company,
		Duration:    in.Duration,
		Description: in.Description,
	}
}

func (uc *ExperienceUseCase) Create(ctx context.Context, ownerID uuid.UUID, in ExperienceInput) (*experience.Experience, error) {
	item := in.toDomain()
	if err := item.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("experience validation failed", err)
	}

	created, err := uc.repo.Insert(ctx, ownerID, item)
	if err != nil {
		return nil, err
	}
	uc.invalidator.Invalidate(ctx)
	return created, nil
}

func (uc *ExperienceUseCase) Update(ctx context.Context, id, ownerID uuid.UUID, in ExperienceInput) (*experience.Experience, error) {
	item := in.toDomain()
	if err := item.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("experience validation failed", err)
	}

	updated, err := uc.repo.Update(ctx, id, ownerID, item)
	if err != nil {
		return nil, err
	}
	uc.invalidator.Invalidate(ctx)
	return updated, nil
}

// Delete is immediate, never batched with Sync: the admin UI removes a
// persisted row the moment its delete button is confirmed.
func (uc *ExperienceUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	uc.invalidator.Invalidate(ctx)
	return nil
}

// SyncItem is one entry of a client's working list. A nil ID marks a
// pending entry (insert); a set ID marks a persisted one (update).
type SyncItem struct {
	ID    *uuid.UUID
	Input ExperienceInput
}

type SyncOutput struct {
	Items  []*experience.Experience
	Result worklist.SaveResult
}

// Sync reconciles the submitted working list in one Save pass and returns
// the canonical reloaded list. A non-nil error alongside a populated output
// means a partial failure: some entries were written, the rest were not,
// and Items reflects what the store now holds.
func (uc *ExperienceUseCase) Sync(ctx context.Context, ownerID uuid.UUID, items []SyncItem) (*SyncOutput, error) {
	wl := worklist.New[*experience.Experience](uc.repo, ownerID)
	for _, it := range items {
		if it.ID == nil {
			wl.Add(it.Input.toDomain())
		} else {
			wl.Restore(*it.ID, it.Input.toDomain())
		}
	}

	res, err := wl.Save(ctx)
	uc.invalidator.Invalidate(ctx)

	return &SyncOutput{Items: wl.Items(), Result: res}, err
}
