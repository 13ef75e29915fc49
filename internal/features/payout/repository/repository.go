package repository

import (
	"context"

	"cryptopay-admin-backend/internal/features/payout/models"
)

type ConfigRepository interface {
	Get(ctx context.Context) (models.Config, error)
	// Patch applies a partial update and returns the stored result.
	Patch(ctx context.Context, patch models.ConfigPatch) (models.Config, error)
}
