package persistence

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brianmuthui/portfolio-api/internal/domain/skill"
	"github.com/brianmuthui/portfolio-api/pkg/apperror"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

var psqlSkill = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const skillColumns = `id, owner_id, category, skill_list, created_at, updated_at`

func scanSkillCategory(row pgx.Row) (*skill.Category, error) {
	c := &skill.Category{}
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Category,
		&c.SkillList,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, skill.ErrNotFound
		}
		return nil, apperror.NewInternal("failed to scan skill category row", err)
	}
	if c.SkillList == nil {
		c.SkillList = []string{}
	}
	return c, nil
}

func scanSkillCategories(rows pgx.Rows) ([]*skill.Category, error) {
	defer rows.Close()
	categories := make([]*skill.Category, 0)
	for rows.Next() {
		c, err := scanSkillCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}
	return categories, nil
}

func (r *postgresSkillRepo) List(ctx context.Context, ownerID uuid.UUID) ([]*skill.Category, error) {
	builder := psqlSkill.Select(skillColumns).
		From("skills").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list skills query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills by owner", err)
	}
	return scanSkillCategories(rows)
}

func (r *postgresSkillRepo) ListAll(ctx context.Context) ([]*skill.Category, error) {
	builder := psqlSkill.Select(skillColumns).
		From("skills").
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list all skills query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query all skills", err)
	}
	return scanSkillCategories(rows)
}

func (r *postgresSkillRepo) Insert(ctx context.Context, ownerID uuid.UUID, item *skill.Category) (*skill.Category, error) {
	now := time.Now().UTC()
	query := `
		INSERT INTO skills (id, owner_id, category, skill_list, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + skillColumns

	row := r.db.QueryRow(ctx, query,
		uuid.New(), ownerID, item.Category, item.SkillList, now, now,
	)
	c, err := scanSkillCategory(row)
	if err != nil {
		// scanSkillCategory already classified the failure.
		return nil, err
	}
	return c, nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, item *skill.Category) (*skill.Category, error) {
	query := `
		UPDATE skills SET
			category = $3, skill_list = $4, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + skillColumns

	row := r.db.QueryRow(ctx, query, id, ownerID, item.Category, item.SkillList)
	c, err := scanSkillCategory(row)
	if err != nil {
		if errors.Is(err, skill.ErrNotFound) {
			return nil, apperror.NewNotFound("skill category", id.String())
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `DELETE FROM skills WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete skill category", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill category", id.String())
	}
	return nil
}
