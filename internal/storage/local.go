package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const uploadsDir = "uploads"

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// LocalStorage stores uploads on the local filesystem under
// <staticDir>/uploads. Returned paths are relative to staticDir so they can
// be served directly by the static file handler.
type LocalStorage struct {
	staticDir string
}

// NewLocalStorage creates a LocalStorage rooted at staticDir.
func NewLocalStorage(staticDir string) *LocalStorage {
	return &LocalStorage{staticDir: staticDir}
}

var _ Storage = (*LocalStorage)(nil)

func (s *LocalStorage) Save(_ context.Context, originalFilename string, data io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if !allowedExtensions[ext] {
		return "", ErrDisallowedExtension
	}

	name := fmt.Sprintf("%d_%s", time.Now().UTC().UnixNano(), sanitizeFilename(originalFilename))
	dest := filepath.Join(s.staticDir, uploadsDir, name)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("storage: create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("storage: write: %w", err)
	}

	return uploadsDir + "/" + name, nil
}

func (s *LocalStorage) Delete(_ context.Context, relPath string) error {
	if !filepath.IsLocal(relPath) {
		return fmt.Errorf("storage: invalid path %q", relPath)
	}
	dest := filepath.Join(s.staticDir, filepath.FromSlash(relPath))
	if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove: %w", err)
	}
	return nil
}

// sanitizeFilename strips path separators and anything outside
// [A-Za-z0-9._-] from the original name so the stored name can never escape
// the upload directory. An empty result falls back to a random name so the
// generated filename stays unique and non-empty.
func sanitizeFilename(name string) string {
	// Drop any client-supplied directory components first.
	name = filepath.Base(filepath.FromSlash(name))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return uuid.NewString()
	}
	return out
}
