package service

import (
	"context"

	"github.com/devfolio/site/internal/model"
)

// MessageService defines the business logic for contact form submissions.
type MessageService interface {
	// Submit stores a new contact message. msg.ID and msg.CreatedAt are
	// populated by the implementation; any caller-supplied timestamp is
	// overwritten.
	Submit(ctx context.Context, msg *model.Message) error

	// List returns messages newest-first according to the given options.
	List(ctx context.Context, opts model.ListOptions) ([]*model.Message, error)
}
