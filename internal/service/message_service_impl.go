package service

import (
	"context"
	"time"

	"github.com/devfolio/site/internal/model"
	"github.com/devfolio/site/internal/repository"
)

// messageServiceImpl is the production implementation of MessageService.
type messageServiceImpl struct {
	repo repository.MessageRepository
}

// NewMessageService creates a MessageService backed by the given repository.
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageServiceImpl{repo: repo}
}

// Submit stamps CreatedAt with the current UTC time and persists the message.
func (s *messageServiceImpl) Submit(ctx context.Context, msg *model.Message) error {
	msg.CreatedAt = time.Now().UTC()
	return s.repo.Save(ctx, msg)
}

// List returns messages newest-first according to the given pagination options.
func (s *messageServiceImpl) List(ctx context.Context, opts model.ListOptions) ([]*model.Message, error) {
	return s.repo.List(ctx, opts)
}
