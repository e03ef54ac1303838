package site

import (
	"context"

	"github.com/brianmuthui/portfolio-api/internal/domain/experience"
	"github.com/brianmuthui/portfolio-api/internal/domain/profile"
	"github.com/brianmuthui/portfolio-api/internal/domain/project"
	"github.com/brianmuthui/portfolio-api/internal/domain/skill"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

// View is everything the public page renders in one payload.
type View struct {
	Profile    *profile.Profile         `json:"profile"`
	Experience []*experience.Experience `json:"experience"`
	Projects   []*project.Project       `json:"projects"`
	Skills     []*skill.Category        `json:"skills"`
}

// ViewCache holds an assembled View for a short TTL. Implementations must
// treat every failure as a miss; the cache is an optimization, never a
// source of truth.
type ViewCache interface {
	Get(ctx context.Context) (*View, bool)
	Set(ctx context.Context, v *View)
	Invalidate(ctx context.Context)
}

// Invalidator is the slice of ViewCache the admin write paths need.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

type ViewUseCase struct {
	profileRepo    profile.Repository
	experienceRepo experience.Repository
	projectRepo    project.Repository
	skillRepo      skill.Repository
	cache          ViewCache
	logger         logger.Logger
}

func NewViewUseCase(
	profileRepo profile.Repository,
	experienceRepo experience.Repository,
	projectRepo project.Repository,
	skillRepo skill.Repository,
	cache ViewCache,
	log logger.Logger,
) *ViewUseCase {
	return &ViewUseCase{
		profileRepo:    profileRepo,
		experienceRepo: experienceRepo,
		projectRepo:    projectRepo,
		skillRepo:      skillRepo,
		cache:          cache,
		logger:         log,
	}
}

// Execute assembles the public read model. Each section is fetched
// independently and degrades to its empty container on store failure, so
// the public page always renders.
func (uc *ViewUseCase) Execute(ctx context.Context) *View {
	if v, ok := uc.cache.Get(ctx); ok {
		return v
	}

	v := &View{
		Experience: []*experience.Experience{},
		Projects:   []*project.Project{},
		Skills:     []*skill.Category{},
	}

	if p, err := uc.profileRepo.GetFirst(ctx); err != nil {
		uc.logger.Error("Public view: fetching profile failed", err)
	} else {
		v.Profile = p
	}

	if exps, err := uc.experienceRepo.ListAll(ctx); err != nil {
		uc.logger.Error("Public view: fetching experience failed", err)
	} else {
		v.Experience = exps
	}

	if projects, err := uc.projectRepo.ListAll(ctx); err != nil {
		uc.logger.Error("Public view: fetching projects failed", err)
	} else {
		v.Projects = projects
	}

	if skills, err := uc.skillRepo.ListAll(ctx); err != nil {
		uc.logger.Error("Public view: fetching skills failed", err)
	} else {
		v.Skills = skills
	}

	uc.cache.Set(ctx, v)
	return v
}
