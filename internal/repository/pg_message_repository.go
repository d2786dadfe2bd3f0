package repository

import (
	"context"

	"github.com/devfolio/site/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MessageRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type MessageRepository interface {
	Save(ctx context.Context, msg *model.Message) error
	List(ctx context.Context, opts model.ListOptions) ([]*model.Message, error)
}

// PgMessageRepository is the PostgreSQL implementation of MessageRepository.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgMessageRepository creates a PgMessageRepository backed by the given pool.
func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

// Ensure PgMessageRepository implements MessageRepository at compile time.
var _ MessageRepository = (*PgMessageRepository)(nil)

// Save inserts a new messages row and populates msg.ID from the database
// RETURNING clause. CreatedAt must already be set by the caller; the
// client-supplied form never carries a timestamp.
func (r *PgMessageRepository) Save(ctx context.Context, msg *model.Message) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO messages (name, email, message, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		msg.Name, msg.Email, msg.Message, msg.CreatedAt,
	).Scan(&msg.ID)
}

// List returns messages newest-first, paginated by limit/offset.
func (r *PgMessageRepository) List(ctx context.Context, opts model.ListOptions) ([]*model.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, message, created_at
		 FROM messages ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}
