package persistence

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/brianmuthui/portfolio-api/internal/domain/project"
	"github.com/brianmuthui/portfolio-api/pkg/apperror"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

var psqlProject = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const projectColumns = `id, owner_id, title, description, image_url, technologies, created_at, updated_at`

func scanProject(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}
	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.ImageURL,
		&p.Technologies,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrNotFound
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return p, nil
}

func scanProjects(rows pgx.Rows) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) List(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	builder := psqlProject.Select(projectColumns).
		From("projects").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects by owner", err)
	}
	return scanProjects(rows)
}

func (r *postgresProjectRepo) ListAll(ctx context.Context) ([]*project.Project, error) {
	builder := psqlProject.Select(projectColumns).
		From("projects").
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list all projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query all projects", err)
	}
	return scanProjects(rows)
}

func (r *postgresProjectRepo) Insert(ctx context.Context, ownerID uuid.UUID, item *project.Project) (*project.Project, error) {
	now := time.Now().UTC()
	query := `
		INSERT INTO projects (id, owner_id, title, description, image_url, technologies, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + projectColumns

	row := r.db.QueryRow(ctx, query,
		uuid.New(), ownerID, item.Title, item.Description,
		item.ImageURL, item.Technologies, now, now,
	)
	p, err := scanProject(row)
	if err != nil {
		// scanProject already classified the failure.
		return nil, err
	}
	return p, nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, item *project.Project) (*project.Project, error) {
	query := `
		UPDATE projects SET
			title = $3, description = $4, image_url = $5, technologies = $6, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + projectColumns

	row := r.db.QueryRow(ctx, query,
		id, ownerID, item.Title, item.Description, item.ImageURL, item.Technologies,
	)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return nil, apperror.NewNotFound("project", id.String())
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.Warn("Delete project matched no rows", zap.String("project_id", id.String()))
		return apperror.NewNotFound("project", id.String())
	}
	return nil
}
