package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Profile is the single owner-scoped record behind the About, Contact and
// Resume sections. The row is seeded out-of-band (scripts/seed_owner.go);
// the API only reads and updates it.
type Profile struct {
	OwnerID           uuid.UUID `json:"owner_id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	AboutText         string    `json:"about_text"`
	Whatsapp          string    `json:"whatsapp"`
	GithubURL         string    `json:"github_url"`
	LinkedinURL       string    `json:"linkedin_url"`
	TwitterURL        string    `json:"twitter_url"`
	ProfilePictureURL string    `json:"profile_picture_url"`
	ResumeURL         *string   `json:"resume_url"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Update carries a partial profile change. Nil fields leave the stored
// column untouched; ResumeURL distinguishes "not submitted" (nil pointer)
// from "clear the resume" (pointer to nil).
type Update struct {
	Name              *string
	Email             *string
	AboutText         *string
	Whatsapp          *string
	GithubURL         *string
	LinkedinURL       *string
	TwitterURL        *string
	ProfilePictureURL *string
	ResumeURL         **string
}

func (u Update) Empty() bool {
	return u.Name == nil && u.Email == nil && u.AboutText == nil &&
		u.Whatsapp == nil && u.GithubURL == nil && u.LinkedinURL == nil &&
		u.TwitterURL == nil && u.ProfilePictureURL == nil && u.ResumeURL == nil
}

type Repository interface {
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	// GetFirst returns the portfolio owner's profile for the public page,
	// or nil when no profile row exists yet.
	GetFirst(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, ownerID uuid.UUID, upd Update) (*Profile, error)
}
