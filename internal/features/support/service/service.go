package service

import (
	"context"
	"sort"
	"time"

	apperrors "cryptopay-admin-backend/internal/common/errors"
	"cryptopay-admin-backend/internal/common/validation"
	"cryptopay-admin-backend/internal/features/support/models"
	"cryptopay-admin-backend/internal/features/support/repository"
)

type SupportService interface {
	// List returns all messages in ascending creation order.
	List(ctx context.Context) ([]models.Message, error)
	Append(ctx context.Context, text string) (*models.Message, error)
	Remove(ctx context.Context, id int64) error
}

type supportService struct {
	repo repository.MessageRepository
	now  func() time.Time
}

func NewSupportService(repo repository.MessageRepository) SupportService {
	return &supportService{repo: repo, now: time.Now}
}

func (s *supportService) List(ctx context.Context) ([]models.Message, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("support_messages", err)
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt < messages[j].CreatedAt
	})
	return messages, nil
}

func (s *supportService) Append(ctx context.Context, text string) (*models.Message, error) {
	if err := validation.ValidateMessageText(text); err != nil {
		return nil, apperrors.NewValidationError("text", err.Error())
	}

	now := s.now().UnixMilli()
	msg := &models.Message{
		ID:        now,
		Text:      text,
		CreatedAt: now,
	}

	if err := s.repo.Append(ctx, msg); err != nil {
		return nil, apperrors.NewStorageError("support_messages", err)
	}
	return msg, nil
}

func (s *supportService) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return apperrors.NewStorageError("support_messages", err)
	}
	return nil
}
