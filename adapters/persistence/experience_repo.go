package persistence

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brianmuthui/portfolio-api/internal/domain/experience"
	"github.com/brianmuthui/portfolio-api/pkg/apperror"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

var psqlExperience = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const experienceColumns = `id, owner_id, position, company, duration, description, created_at, updated_at`

func scanExperience(row pgx.Row) (*experience.Experience, error) {
	e := &experience.Experience{}
	err := row.Scan(
		&e.ID,
		&e.OwnerID,
		&e.Position,
		&e.Company,
		&e.Duration,
		&e.Description,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, experience.ErrNotFound
		}
		return nil, apperror.NewInternal("failed to scan experience row", err)
	}
	return e, nil
}

func scanExperiences(rows pgx.Rows) ([]*experience.Experience, error) {
	defer rows.Close()
	items := make([]*experience.Experience, 0)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating experience rows", err)
	}
	return items, nil
}

func (r *postgresExperienceRepo) List(ctx context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	builder := psqlExperience.Select(experienceColumns).
		From("experience").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list experience query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experience by owner", err)
	}
	return scanExperiences(rows)
}

func (r *postgresExperienceRepo) ListAll(ctx context.Context) ([]*experience.Experience, error) {
	builder := psqlExperience.Select(experienceColumns).
		From("experience").
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list all experience query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query all experience", err)
	}
	return scanExperiences(rows)
}

func (r *postgresExperienceRepo) Insert(ctx context.Context, ownerID uuid.UUID, item *experience.Experience) (*experience.Experience, error) {
	now := time.Now().UTC()
	query := `
		INSERT INTO experience (id, owner_id, position, company, duration, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + experienceColumns

	row := r.db.QueryRow(ctx, query,
		uuid.New(), ownerID, item.Position, item.Company,
		item.Duration, item.Description, now, now,
	)
	e, err := scanExperience(row)
	if err != nil {
		// scanExperience already classified the failure.
		return nil, err
	}
	return e, nil
}

func (r *postgresExperienceRepo) Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, item *experience.Experience) (*experience.Experience, error) {
	query := `
		UPDATE experience SET
			position = $3, company = $4, duration = $5, description = $6, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + experienceColumns

	row := r.db.QueryRow(ctx, query,
		id, ownerID, item.Position, item.Company, item.Duration, item.Description,
	)
	e, err := scanExperience(row)
	if err != nil {
		if errors.Is(err, experience.ErrNotFound) {
			return nil, apperror.NewNotFound("experience", id.String())
		}
		return nil, err
	}
	return e, nil
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM experience WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("experience", id.String())
	}
	return nil
}
