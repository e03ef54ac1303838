package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brianmuthui/portfolio-api/internal/domain/contact"
	"github.com/brianmuthui/portfolio-api/pkg/apperror"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

type postgresContactRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContactRepo(db *pgxpool.Pool, logger logger.Logger) contact.Repository {
	return &postgresContactRepo{db: db, logger: logger}
}

var psqlContact = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresContactRepo) Save(ctx context.Context, msg *contact.Message) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save contact message", err)
	}
	return nil
}

func (r *postgresContactRepo) List(ctx context.Context, limit, offset int) ([]*contact.Message, error) {
	builder := psqlContact.Select("id, name, email, subject, message, created_at").
		From("contact_messages").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list messages query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query contact messages", err)
	}
	defer rows.Close()

	messages := make([]*contact.Message, 0)
	for rows.Next() {
		m := &contact.Message{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, apperror.NewInternal("failed to scan contact message row", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating contact message rows", err)
	}
	return messages, nil
}
