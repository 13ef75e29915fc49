package repository

import (
	"context"

	"cryptopay-admin-backend/internal/features/support/models"
)

type MessageRepository interface {
	List(ctx context.Context) ([]models.Message, error)
	Append(ctx context.Context, msg *models.Message) error
	// Remove drops the message with the given id; unknown ids are a no-op.
	Remove(ctx context.Context, id int64) error
}
