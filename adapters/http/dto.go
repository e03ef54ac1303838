package http

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	experienceUC "github.com/brianmuthui/portfolio-api/internal/application/usecase/experience"
	projectUC "github.com/brianmuthui/portfolio-api/internal/application/usecase/project"
	skillUC "github.com/brianmuthui/portfolio-api/internal/application/usecase/skill"
	"github.com/brianmuthui/portfolio-api/internal/domain/contact"
	"github.com/brianmuthui/portfolio-api/internal/domain/experience"
	"github.com/brianmuthui/portfolio-api/internal/domain/profile"
	"github.com/brianmuthui/portfolio-api/internal/domain/project"
	"github.com/brianmuthui/portfolio-api/internal/domain/skill"
)

// Profile DTOs

type ProfileDTO struct {
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

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		Name:              p.Name,
		Email:             p.Email,
		AboutText:         p.AboutText,
		Whatsapp:          p.Whatsapp,
		GithubURL:         p.GithubURL,
		LinkedinURL:       p.LinkedinURL,
		TwitterURL:        p.TwitterURL,
		ProfilePictureURL: p.ProfilePictureURL,
		ResumeURL:         p.ResumeURL,
		UpdatedAt:         p.UpdatedAt,
	}
}

// UpdateProfileRequest carries a partial update: absent fields stay
// untouched. resume_url additionally distinguishes null (clear) from
// absent via the double pointer mapping in ToDomainUpdate.
type UpdateProfileRequest struct {
	Name              *string          `json:"name"`
	Email             *string          `json:"email"`
	AboutText         *string          `json:"about_text"`
	Whatsapp          *string          `json:"whatsapp"`
	GithubURL         *string          `json:"github_url"`
	LinkedinURL       *string          `json:"linkedin_url"`
	TwitterURL        *string          `json:"twitter_url"`
	ProfilePictureURL *string          `json:"profile_picture_url"`
	ResumeURL         OptionalNullable `json:"resume_url"`
}

// OptionalNullable tracks the difference between a JSON field that was
// absent and one that was explicitly null.
type OptionalNullable struct {
	Set   bool
	Value *string
}

func (o *OptionalNullable) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

func (req *UpdateProfileRequest) ToDomainUpdate() profile.Update {
	upd := profile.Update{
		Name:              req.Name,
		Email:             req.Email,
		AboutText:         req.AboutText,
		Whatsapp:          req.Whatsapp,
		GithubURL:         req.GithubURL,
		LinkedinURL:       req.LinkedinURL,
		TwitterURL:        req.TwitterURL,
		ProfilePictureURL: req.ProfilePictureURL,
	}
	if req.ResumeURL.Set {
		upd.ResumeURL = &req.ResumeURL.Value
	}
	return upd
}

// Experience DTOs

type ExperienceDTO struct {
	ID          uuid.UUID `json:"id"`
	Position    string    `json:"position"`
	Company     string    `json:"company"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToExperienceDTO(e *experience.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:          e.ID,
		Position:    e.Position,
		Company:     e.Company,
		Duration:    e.Duration,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToExperienceDTOs(items []*experience.Experience) []ExperienceDTO {
	dtos := make([]ExperienceDTO, len(items))
	for i, e := range items {
		dtos[i] = ToExperienceDTO(e)
	}
	return dtos
}

type ExperienceRequest struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

func (r ExperienceRequest) ToInput() experienceUC.ExperienceInput {
	return experienceUC.ExperienceInput{
		Position:    r.Position,
		Company:     r.Company,
		Duration:    r.Duration,
		Description: r.Description,
	}
}

// SyncExperienceRequest is a client's whole working list. Entries without
// an id are pending and will be inserted; entries with an id are updated.
type SyncExperienceRequest struct {
	Items []struct {
		ID *uuid.UUID `json:"id"`
		ExperienceRequest
	} `json:"items"`
}

func (r SyncExperienceRequest) ToSyncItems() []experienceUC.SyncItem {
	items := make([]experienceUC.SyncItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = experienceUC.SyncItem{ID: it.ID, Input: it.ToInput()}
	}
	return items
}

// Project DTOs

type ProjectDTO struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	Technologies []string  `json:"technologies"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		Technologies: p.Technologies,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func ToProjectDTOs(items []*project.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(items))
	for i, p := range items {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}

type ProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	Technologies []string `json:"technologies"`
}

func (r ProjectRequest) ToInput() projectUC.ProjectInput {
	return projectUC.ProjectInput{
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Technologies: r.Technologies,
	}
}

type SyncProjectsRequest struct {
	Items []struct {
		ID *uuid.UUID `json:"id"`
		ProjectRequest
	} `json:"items"`
}

func (r SyncProjectsRequest) ToSyncItems() []projectUC.SyncItem {
	items := make([]projectUC.SyncItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = projectUC.SyncItem{ID: it.ID, Input: it.ToInput()}
	}
	return items
}

// Skill DTOs

type SkillCategoryDTO struct {
	ID        uuid.UUID `json:"id"`
	Category  string    `json:"category"`
	SkillList []string  `json:"skill_list"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToSkillCategoryDTO(c *skill.Category) SkillCategoryDTO {
	return SkillCategoryDTO{
		ID:        c.ID,
		Category:  c.Category,
		SkillList: c.SkillList,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ToSkillCategoryDTOs(items []*skill.Category) []SkillCategoryDTO {
	dtos := make([]SkillCategoryDTO, len(items))
	for i, c := range items {
		dtos[i] = ToSkillCategoryDTO(c)
	}
	return dtos
}

type SkillCategoryRequest struct {
	Category  string   `json:"category"`
	SkillList []string `json:"skill_list"`
}

func (r SkillCategoryRequest) ToInput() skillUC.CategoryInput {
	return skillUC.CategoryInput{
		Category:  r.Category,
		SkillList: r.SkillList,
	}
}

type SyncSkillsRequest struct {
	Items []struct {
		ID *uuid.UUID `json:"id"`
		SkillCategoryRequest
	} `json:"items"`
}

func (r SyncSkillsRequest) ToSyncItems() []skillUC.SyncItem {
	items := make([]skillUC.SyncItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = skillUC.SyncItem{ID: it.ID, Input: it.ToInput()}
	}
	return items
}

// Contact DTOs

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type ContactMessageDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func ToContactMessageDTO(m *contact.Message) ContactMessageDTO {
	return ContactMessageDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
