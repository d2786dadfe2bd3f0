package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/devfolio/site/internal/model"
)

func TestPgMessageRepository_SaveAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewPgMessageRepository(testPool(t))

	unique := fmt.Sprintf("%d", time.Now().UnixNano())
	base := time.Now().UTC()

	// Insert three messages at T1 < T2 < T3.
	for i := 0; i < 3; i++ {
		msg := &model.Message{
			Name:      "order-test-" + unique,
			Email:     fmt.Sprintf("t%d@example.com", i),
			Message:   fmt.Sprintf("message %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := repo.Save(ctx, msg); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if msg.ID == "" {
			t.Fatal("expected ID to be set after Save")
		}
	}

	messages, err := repo.List(ctx, model.ListOptions{Limit: 100, Offset: 0})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	// Collect ours and verify T3, T2, T1 ordering.
	var ours []*model.Message
	for _, m := range messages {
		if m.Name == "order-test-"+unique {
			ours = append(ours, m)
		}
	}
	if len(ours) != 3 {
		t.Fatalf("expected 3 inserted messages in the first page, got %d", len(ours))
	}
	for i := 0; i < len(ours)-1; i++ {
		if ours[i].CreatedAt.Before(ours[i+1].CreatedAt) {
			t.Errorf("messages not newest-first at index %d", i)
		}
	}
}
