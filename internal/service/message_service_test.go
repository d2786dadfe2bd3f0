package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devfolio/site/internal/model"
)

type mockMessageRepo struct {
	saveFunc func(ctx context.Context, msg *model.Message) error
	listFunc func(ctx context.Context, opts model.ListOptions) ([]*model.Message, error)
}

func (m *mockMessageRepo) Save(ctx context.Context, msg *model.Message) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepo) List(ctx context.Context, opts model.ListOptions) ([]*model.Message, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func TestMessageService_Submit_StampsServerTimestamp(t *testing.T) {
	var captured *model.Message
	repo := &mockMessageRepo{
		saveFunc: func(ctx context.Context, msg *model.Message) error {
			captured = msg
			return nil
		},
	}
	svc := NewMessageService(repo)

	// A client-supplied timestamp must never be trusted.
	msg := &model.Message{
		Name:      "Alice",
		Email:     "alice@example.com",
		Message:   "Hi!",
		CreatedAt: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	before := time.Now().UTC()
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if captured == nil {
		t.Fatal("expected Save to be called")
	}
	if captured.CreatedAt.Before(before) {
		t.Errorf("expected server-assigned CreatedAt, got %v", captured.CreatedAt)
	}
	if captured.CreatedAt.Location() != time.UTC {
		t.Errorf("expected UTC timestamp, got %v", captured.CreatedAt.Location())
	}
}

func TestMessageService_Submit_EmptyFieldsAllowed(t *testing.T) {
	repo := &mockMessageRepo{}
	svc := NewMessageService(repo)

	// Contact submissions have no required fields; empty text is stored as-is.
	if err := svc.Submit(context.Background(), &model.Message{}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
}

func TestMessageService_Submit_RepoErrorPropagates(t *testing.T) {
	wantErr := errors.New("db unreachable")
	repo := &mockMessageRepo{
		saveFunc: func(ctx context.Context, msg *model.Message) error { return wantErr },
	}
	svc := NewMessageService(repo)

	if err := svc.Submit(context.Background(), &model.Message{}); !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
}

func TestMessageService_List_Passthrough(t *testing.T) {
	want := []*model.Message{{ID: "1"}, {ID: "2"}}
	var gotOpts model.ListOptions
	repo := &mockMessageRepo{
		listFunc: func(ctx context.Context, opts model.ListOptions) ([]*model.Message, error) {
			gotOpts = opts
			return want, nil
		},
	}
	svc := NewMessageService(repo)

	got, err := svc.List(context.Background(), model.ListOptions{Limit: 20, Offset: 40})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 messages, got %d", len(got))
	}
	if gotOpts.Limit != 20 || gotOpts.Offset != 40 {
		t.Errorf("expected options to pass through, got %+v", gotOpts)
	}
}
