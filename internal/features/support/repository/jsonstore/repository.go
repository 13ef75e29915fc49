package jsonstore

import (
	"context"

	"cryptopay-admin-backend/internal/features/support/models"
	"cryptopay-admin-backend/internal/features/support/repository"
	"cryptopay-admin-backend/internal/platform/storage"
)

const collectionName = "support_messages"

type messageRepository struct {
	messages *storage.Collection[[]models.Message]
}

func NewMessageRepository(backend storage.Backend) repository.MessageRepository {
	return &messageRepository{
		messages: storage.NewCollection(backend, collectionName, func() []models.Message {
			return []models.Message{}
		}),
	}
}

func (r *messageRepository) List(ctx context.Context) ([]models.Message, error) {
	return r.messages.Load(ctx)
}

func (r *messageRepository) Append(ctx context.Context, msg *models.Message) error {
	_, err := r.messages.Update(ctx, func(messages []models.Message) ([]models.Message, error) {
		return append(messages, *msg), nil
	})
	return err
}

func (r *messageRepository) Remove(ctx context.Context, id int64) error {
	_, err := r.messages.Update(ctx, func(messages []models.Message) ([]models.Message, error) {
		kept := messages[:0]
		for _, m := range messages {
			if m.ID != id {
				kept = append(kept, m)
			}
		}
		return kept, nil
	})
	return err
}
