package skill

import (
	"context"

	"github.com/google/uuid"

	"github.com/brianmuthui/portfolio-api/internal/application/usecase/site"
	"github.com/brianmuthui/portfolio-api/internal/application/worklist"
	"github.com/brianmuthui/portfolio-api/internal/domain/skill"
	"github.com/brianmuthui/portfolio-api/pkg/apperror"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

type SkillUseCase struct {
	repo        skill.Repository
	invalidator site.Invalidator
	logger      logger.Logger
}

func NewSkillUseCase(repo skill.Repository, inv site.Invalidator, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{repo: repo, invalidator: inv, logger: log}
}

func (uc *SkillUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*skill.Category, error) {
	return uc.repo.List(ctx, ownerID)
}

type CategoryInput struct {
	Category  string
	SkillList []string
}

func (in CategoryInput) toDomain() *skill.Category {
	skillList := in.SkillList
	if skillList == nil {
		skillList = []string{}
	}
	return &skill.Category{
		Category:  in.Category,
		SkillList: skillList,
	}
}

func (uc *SkillUseCase) Create(ctx context.Context, ownerID uuid.UUID, in CategoryInput) (*skill.Category, error) {
	item := in.toDomain()
	if err := item.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill category validation failed", err)
	}

	created, err := uc.repo.Insert(ctx, ownerID, item)
	if err != nil {
		return nil, err
	}
	uc.invalidator.Invalidate(ctx)
	return created, nil
}

func (uc *SkillUseCase) Update(ctx context.Context, id, ownerID uuid.UUID, in CategoryInput) (*skill.Category, error) {
	item := in.toDomain()
	if err := item.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill category validation failed", err)
	}

	updated, err := uc.repo.Update(ctx, id, ownerID, item)
	if err != nil {
		return nil, err
	}
	uc.invalidator.Invalidate(ctx)
	return updated, nil
}

func (uc *SkillUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	uc.invalidator.Invalidate(ctx)
	return nil
}

type SyncItem struct {
	ID    *uuid.UUID
	Input CategoryInput
}

type SyncOutput struct {
	Items  []*skill.Category
	Result worklist.SaveResult
}

func (uc *SkillUseCase) Sync(ctx context.Context, ownerID uuid.UUID, items []SyncItem) (*SyncOutput, error) {
	wl := worklist.New[*skill.Category](uc.repo, ownerID)
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
