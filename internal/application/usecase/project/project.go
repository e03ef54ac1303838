package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/brianmuthui/portfolio-api/internal/application/usecase/site"
	"github.com/brianmuthui/portfolio-api/internal/application/worklist"
	"github.com/brianmuthui/portfolio-api/internal/domain/project"
	"github.com/brianmuthui/portfolio-api/pkg/apperror"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

type ProjectUseCase struct {
	repo        project.Repository
	invalidator site.Invalidator
	logger      logger.Logger
}

func NewProjectUseCase(repo project.Repository, inv site.Invalidator, log logger.Logger) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, invalidator: inv, logger: log}
}

func (uc *ProjectUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	return uc.repo.List(ctx, ownerID)
}

type ProjectInput struct {
	Title        string
	Description  string
	ImageURL     string
	Technologies []string
}

func (in ProjectInput) toDomain() *project.Project {
	technologies := in.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return &project.Project{
		Title:        in.Title,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		Technologies: technologies,
	}
}

func (uc *ProjectUseCase) Create(ctx context.Context, ownerID uuid.UUID, in ProjectInput) (*project.Project, error) {
	item := in.toDomain()
	if err := item.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}

	created, err := uc.repo.Insert(ctx, ownerID, item)
	if err != nil {
		return nil, err
	}
	uc.invalidator.Invalidate(ctx)
	return created, nil
}

func (uc *ProjectUseCase) Update(ctx context.Context, id, ownerID uuid.UUID, in ProjectInput) (*project.Project, error) {
	item := in.toDomain()
	if err := item.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("project validation failed", err)
	}

	updated, err := uc.repo.Update(ctx, id, ownerID, item)
	if err != nil {
		return nil, err
	}
	uc.invalidator.Invalidate(ctx)
	return updated, nil
}

func (uc *ProjectUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	uc.invalidator.Invalidate(ctx)
	return nil
}

type SyncItem struct {
	ID    *uuid.UUID
	Input ProjectInput
}

type SyncOutput struct {
	Items  []*project.Project
	Result worklist.SaveResult
}

// Sync mirrors the experience variant: one insert per pending entry, one
// update per persisted entry, canonical reload at the end.
func (uc *ProjectUseCase) Sync(ctx context.Context, ownerID uuid.UUID, items []SyncItem) (*SyncOutput, error) {
	wl := worklist.New[*project.Project](uc.repo, ownerID)
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
