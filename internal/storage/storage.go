package storage

import (
	"context"
	"errors"
	"io"
)

// ErrDisallowedExtension is returned by Save when the original filename does
// not carry an allowed image extension. Nothing is written in that case.
var ErrDisallowedExtension = errors.New("disallowed file extension")

// Storage abstracts saving and deleting uploaded screenshot files.
// The local filesystem implementation can be swapped for S3 / R2 later.
type Storage interface {
	// Save stores the upload under a collision-resistant generated name and
	// returns the path relative to the static asset root, e.g.
	// "uploads/<generated-name>".
	Save(ctx context.Context, originalFilename string, data io.Reader) (relPath string, err error)

	// Delete removes the file at relPath. Deleting a missing file is not an
	// error.
	Delete(ctx context.Context, relPath string) error
}
