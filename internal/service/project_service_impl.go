package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/devfolio/site/internal/model"
	"github.com/devfolio/site/internal/repository"
	"github.com/devfolio/site/internal/storage"
)

// MaxScreenshots is the number of upload slots on the project form.
const MaxScreenshots = 3

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo  repository.ProjectRepository
	store storage.Storage
}

// NewProjectService creates a ProjectService backed by the given repository
// and file store.
func NewProjectService(repo repository.ProjectRepository, store storage.Storage) ProjectService {
	return &projectServiceImpl{repo: repo, store: store}
}

func (s *projectServiceImpl) Create(ctx context.Context, title, description string, uploads []Upload) (*model.Project, error) {
	if len(uploads) > MaxScreenshots {
		uploads = uploads[:MaxScreenshots]
	}

	// Phase one: stage file writes. A slot with a disallowed extension is
	// dropped silently; any other save failure aborts and rolls back what
	// was already written.
	saved := make([]string, 0, len(uploads))
	for _, u := range uploads {
		relPath, err := s.store.Save(ctx, u.Filename, u.Data)
		if errors.Is(err, storage.ErrDisallowedExtension) {
			slog.Debug("screenshot rejected", "filename", u.Filename)
			continue
		}
		if err != nil {
			s.removeFiles(ctx, saved)
			return nil, fmt.Errorf("save screenshot: %w", err)
		}
		saved = append(saved, relPath)
	}

	// Phase two: record write. On failure the staged files are removed so
	// no orphaned record reference or unreachable file survives.
	project := &model.Project{
		Title:       title,
		Description: description,
		Screenshots: saved,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, project); err != nil {
		s.removeFiles(ctx, saved)
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

func (s *projectServiceImpl) List(ctx context.Context, opts model.ListOptions) ([]*model.Project, error) {
	return s.repo.List(ctx, opts)
}

func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Record first: once it is gone no page can reference the files, so a
	// failed file delete orphans a file at worst, never a dangling link.
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.removeFiles(ctx, project.Screenshots)
	return nil
}

// removeFiles deletes the given relative paths, logging failures instead of
// returning them. Missing files are already a success at the storage layer.
func (s *projectServiceImpl) removeFiles(ctx context.Context, relPaths []string) {
	for _, p := range relPaths {
		if err := s.store.Delete(ctx, p); err != nil {
			slog.Error("screenshot delete failed", "path", p, "error", err)
		}
	}
}
