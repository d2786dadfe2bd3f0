package repository

import (
	"context"
	"errors"

	"github.com/devfolio/site/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProjectRepository defines the persistence interface for portfolio projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	List(ctx context.Context, opts model.ListOptions) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

// Create inserts a new projects row and populates project.ID from the
// RETURNING clause. Screenshots is stored as a JSONB array.
func (r *PgProjectRepository) Create(ctx context.Context, project *model.Project) error {
	if project.Screenshots == nil {
		project.Screenshots = []string{}
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, screenshots, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		project.Title, project.Description, project.Screenshots, project.CreatedAt,
	).Scan(&project.ID)
}

// List returns projects newest-first, paginated by limit/offset.
func (r *PgProjectRepository) List(ctx context.Context, opts model.ListOptions) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, screenshots, created_at
		 FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Screenshots, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

// GetByID fetches a project by id. A malformed id is reported as ErrNotFound
// rather than a query error.
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	var p model.Project
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, screenshots, created_at
		 FROM projects WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Title, &p.Description, &p.Screenshots, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a project row. Deleting an absent or malformed id returns
// ErrNotFound.
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
