package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brianmuthui/portfolio-api/internal/application/usecase/site"
	"github.com/brianmuthui/portfolio-api/internal/domain/profile"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	invalidator site.Invalidator
}

func NewProfileUseCase(repo profile.Repository, inv site.Invalidator) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		invalidator: inv,
	}
}

type GetProfileInput struct {
	OwnerID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &GetProfileOutput{Profile: p}, nil
}

type UpdateProfileInput struct {
	OwnerID uuid.UUID
	Update  profile.Update
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteUpdateProfile applies a partial update to the singleton profile
// row. Untouched fields keep their stored values.
func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	p, err := uc.profileRepo.Update(ctx, input.OwnerID, input.Update)
	if err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}

	uc.invalidator.Invalidate(ctx)
	return &UpdateProfileOutput{Profile: p}, nil
}
