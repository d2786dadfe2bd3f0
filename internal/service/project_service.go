package service

import (
	"context"
	"io"

	"github.com/devfolio/site/internal/model"
)

// Upload is one screenshot slot submitted with the project form.
type Upload struct {
	Filename string
	Data     io.Reader
}

// ProjectService coordinates the project record store and the screenshot
// file store so no caller can observe a half-completed state.
type ProjectService interface {
	// Create saves the accepted upload slots (disallowed extensions are
	// skipped, preserving slot order among the accepted ones), then inserts
	// the project record. If the record insert fails, every file saved for
	// it is rolled back before the error is returned.
	Create(ctx context.Context, title, description string, uploads []Upload) (*model.Project, error)

	// List returns projects newest-first according to the given options.
	List(ctx context.Context, opts model.ListOptions) ([]*model.Project, error)

	// Delete removes the project record first, then deletes its screenshot
	// files best-effort (a missing file is fine). Returns
	// repository.ErrNotFound for unknown or malformed ids.
	Delete(ctx context.Context, id string) error
}
