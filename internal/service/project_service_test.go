package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devfolio/site/internal/model"
	"github.com/devfolio/site/internal/repository"
	"github.com/devfolio/site/internal/storage"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockProjectRepo struct {
	createFunc func(ctx context.Context, p *model.Project) error
	getFunc    func(ctx context.Context, id string) (*model.Project, error)
	deleteFunc func(ctx context.Context, id string) error
	listFunc   func(ctx context.Context, opts model.ListOptions) ([]*model.Project, error)
}

func (m *mockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	p.ID = "generated-id"
	return nil
}

func (m *mockProjectRepo) List(ctx context.Context, opts model.ListOptions) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// mockStorage accepts the same extensions as the real store and records
// saves and deletes.
type mockStorage struct {
	saved   []string
	deleted []string
	saveErr error
}

func (m *mockStorage) Save(ctx context.Context, originalFilename string, data io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	switch strings.ToLower(filepath.Ext(originalFilename)) {
	case ".png", ".jpg", ".jpeg", ".gif":
	default:
		return "", storage.ErrDisallowedExtension
	}
	rel := "uploads/" + originalFilename
	m.saved = append(m.saved, rel)
	return rel, nil
}

func (m *mockStorage) Delete(ctx context.Context, relPath string) error {
	m.deleted = append(m.deleted, relPath)
	return nil
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestProjectService_Create_PreservesSlotOrder(t *testing.T) {
	store := &mockStorage{}
	svc := NewProjectService(&mockProjectRepo{}, store)

	uploads := []Upload{
		{Filename: "first.png", Data: strings.NewReader("1")},
		{Filename: "second.jpg", Data: strings.NewReader("2")},
		{Filename: "third.gif", Data: strings.NewReader("3")},
	}
	p, err := svc.Create(context.Background(), "My Site", "desc", uploads)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	want := []string{"uploads/first.png", "uploads/second.jpg", "uploads/third.gif"}
	if len(p.Screenshots) != len(want) {
		t.Fatalf("expected %d screenshots, got %d", len(want), len(p.Screenshots))
	}
	for i, w := range want {
		if p.Screenshots[i] != w {
			t.Errorf("slot %d: expected %q, got %q", i, w, p.Screenshots[i])
		}
	}
}

func TestProjectService_Create_SkipsDisallowedSlot(t *testing.T) {
	store := &mockStorage{}
	svc := NewProjectService(&mockProjectRepo{}, store)

	uploads := []Upload{
		{Filename: "first.png", Data: strings.NewReader("1")},
		{Filename: "malware.exe", Data: strings.NewReader("2")},
		{Filename: "third.gif", Data: strings.NewReader("3")},
	}
	p, err := svc.Create(context.Background(), "t", "d", uploads)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// The rejected slot is dropped; the remaining slots keep their order.
	if len(p.Screenshots) != 2 {
		t.Fatalf("expected 2 screenshots, got %d: %v", len(p.Screenshots), p.Screenshots)
	}
	if p.Screenshots[0] != "uploads/first.png" || p.Screenshots[1] != "uploads/third.gif" {
		t.Errorf("unexpected screenshots: %v", p.Screenshots)
	}
	for _, s := range store.saved {
		if strings.Contains(s, ".exe") {
			t.Errorf("disallowed file was written: %s", s)
		}
	}
}

func TestProjectService_Create_NoUploadsIsAllowed(t *testing.T) {
	created := false
	repo := &mockProjectRepo{
		createFunc: func(ctx context.Context, p *model.Project) error {
			created = true
			if p.Screenshots == nil {
				t.Error("expected empty slice, not nil")
			}
			if len(p.Screenshots) != 0 {
				t.Errorf("expected 0 screenshots, got %d", len(p.Screenshots))
			}
			return nil
		},
	}
	svc := NewProjectService(repo, &mockStorage{})

	if _, err := svc.Create(context.Background(), "t", "d", nil); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !created {
		t.Error("expected record to be created even with zero screenshots")
	}
}

func TestProjectService_Create_TimestampIsUTC(t *testing.T) {
	var got *model.Project
	repo := &mockProjectRepo{
		createFunc: func(ctx context.Context, p *model.Project) error {
			got = p
			return nil
		},
	}
	svc := NewProjectService(repo, &mockStorage{})

	if _, err := svc.Create(context.Background(), "t", "d", nil); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be stamped")
	}
}

func TestProjectService_Create_RollsBackFilesOnRecordFailure(t *testing.T) {
	store := &mockStorage{}
	repo := &mockProjectRepo{
		createFunc: func(ctx context.Context, p *model.Project) error {
			return errors.New("insert failed")
		},
	}
	svc := NewProjectService(repo, store)

	uploads := []Upload{
		{Filename: "a.png", Data: strings.NewReader("1")},
		{Filename: "b.jpg", Data: strings.NewReader("2")},
	}
	if _, err := svc.Create(context.Background(), "t", "d", uploads); err == nil {
		t.Fatal("expected Create to fail")
	}

	if len(store.deleted) != 2 {
		t.Fatalf("expected both staged files rolled back, deleted: %v", store.deleted)
	}
}

func TestProjectService_Create_RollsBackOnSaveFailure(t *testing.T) {
	// First save succeeds, second blows up: the first file must be removed.
	store := &mockStorage{}
	boom := errors.New("disk full")
	uploads := []Upload{
		{Filename: "a.png", Data: strings.NewReader("1")},
		{Filename: "b.jpg", Data: strings.NewReader("2")},
	}
	// Inject the failure after one successful save.
	calls := 0
	wrapped := &funcStorage{
		save: func(ctx context.Context, name string, data io.Reader) (string, error) {
			calls++
			if calls == 2 {
				return "", boom
			}
			return store.Save(ctx, name, data)
		},
		del: store.Delete,
	}
	svc := NewProjectService(&mockProjectRepo{}, wrapped)

	if _, err := svc.Create(context.Background(), "t", "d", uploads); !errors.Is(err, boom) {
		t.Fatalf("expected save failure, got %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "uploads/a.png" {
		t.Errorf("expected first file rolled back, deleted: %v", store.deleted)
	}
}

type funcStorage struct {
	save func(ctx context.Context, name string, data io.Reader) (string, error)
	del  func(ctx context.Context, relPath string) error
}

func (f *funcStorage) Save(ctx context.Context, name string, data io.Reader) (string, error) {
	return f.save(ctx, name, data)
}

func (f *funcStorage) Delete(ctx context.Context, relPath string) error {
	return f.del(ctx, relPath)
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestProjectService_Delete_RemovesRecordAndFiles(t *testing.T) {
	store := &mockStorage{}
	recordDeleted := false
	repo := &mockProjectRepo{
		getFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return &model.Project{ID: id, Screenshots: []string{"uploads/a.png", "uploads/b.jpg"}}, nil
		},
		deleteFunc: func(ctx context.Context, id string) error {
			recordDeleted = true
			return nil
		},
	}
	svc := NewProjectService(repo, store)

	if err := svc.Delete(context.Background(), "some-id"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !recordDeleted {
		t.Error("expected record delete")
	}
	if len(store.deleted) != 2 {
		t.Errorf("expected both files deleted, got %v", store.deleted)
	}
}

func TestProjectService_Delete_NotFound(t *testing.T) {
	store := &mockStorage{}
	svc := NewProjectService(&mockProjectRepo{}, store)

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if len(store.deleted) != 0 {
		t.Errorf("expected no file deletes for a missing project, got %v", store.deleted)
	}
}

func TestProjectService_Delete_FileErrorIsNotFatal(t *testing.T) {
	repo := &mockProjectRepo{
		getFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return &model.Project{ID: id, Screenshots: []string{"uploads/a.png"}}, nil
		},
	}
	store := &funcStorage{
		save: func(ctx context.Context, name string, data io.Reader) (string, error) { return "", nil },
		del: func(ctx context.Context, relPath string) error {
			return errors.New("permission denied")
		},
	}
	svc := NewProjectService(repo, store)

	// The record is already gone; file cleanup failures are logged only.
	if err := svc.Delete(context.Background(), "some-id"); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
