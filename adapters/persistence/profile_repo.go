package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brianmuthui/portfolio-api/internal/domain/profile"
	"github.com/brianmuthui/portfolio-api/pkg/apperror"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

var psqlProfile = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const profileColumns = `owner_id, name, email, about_text, whatsapp, github_url, linkedin_url, twitter_url, profile_picture_url, resume_url, updated_at`

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := row.Scan(
		&p.OwnerID,
		&p.Name,
		&p.Email,
		&p.AboutText,
		&p.Whatsapp,
		&p.GithubURL,
		&p.LinkedinURL,
		&p.TwitterURL,
		&p.ProfilePictureURL,
		&p.ResumeURL,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE owner_id = $1
	`
	p, err := scanProfile(r.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NewNotFound("profile", ownerID.String())
	}
	return p, nil
}

// GetFirst serves the public page: a single-owner product, so the oldest
// profile row is the portfolio owner. A missing row is not an error.
func (r *postgresProfileRepo) GetFirst(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		ORDER BY updated_at ASC
		LIMIT 1
	`
	return scanProfile(r.db.QueryRow(ctx, query))
}

func (r *postgresProfileRepo) Update(ctx context.Context, ownerID uuid.UUID, upd profile.Update) (*profile.Profile, error) {
	if upd.Empty() {
		return r.GetByOwnerID(ctx, ownerID)
	}

	builder := psqlProfile.Update("profiles").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"owner_id": ownerID}).
		Suffix("RETURNING " + profileColumns)

	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
	}
	if upd.Email != nil {
		builder = builder.Set("email", *upd.Email)
	}
	if upd.AboutText != nil {
		builder = builder.Set("about_text", *upd.AboutText)
	}
	if upd.Whatsapp != nil {
		builder = builder.Set("whatsapp", *upd.Whatsapp)
	}
	if upd.GithubURL != nil {
		builder = builder.Set("github_url", *upd.GithubURL)
	}
	if upd.LinkedinURL != nil {
		builder = builder.Set("linkedin_url", *upd.LinkedinURL)
	}
	if upd.TwitterURL != nil {
		builder = builder.Set("twitter_url", *upd.TwitterURL)
	}
	if upd.ProfilePictureURL != nil {
		builder = builder.Set("profile_picture_url", *upd.ProfilePictureURL)
	}
	if upd.ResumeURL != nil {
		builder = builder.Set("resume_url", *upd.ResumeURL)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build profile update query", err)
	}

	p, err := scanProfile(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NewNotFound("profile", ownerID.String())
	}
	return p, nil
}
