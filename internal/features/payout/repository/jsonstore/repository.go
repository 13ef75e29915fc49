package jsonstore

import (
	"context"

	"cryptopay-admin-backend/internal/features/payout/models"
	"cryptopay-admin-backend/internal/features/payout/repository"
	"cryptopay-admin-backend/internal/platform/storage"
)

const collectionName = "config"

type configRepository struct {
	config *storage.Collection[models.Config]
}

func NewConfigRepository(backend storage.Backend) repository.ConfigRepository {
	return &configRepository{
		config: storage.NewCollection(backend, collectionName, models.DefaultConfig),
	}
}

func (r *configRepository) Get(ctx context.Context) (models.Config, error) {
	return r.config.Load(ctx)
}

func (r *configRepository) Patch(ctx context.Context, patch models.ConfigPatch) (models.Config, error) {
	return r.config.Update(ctx, func(cfg models.Config) (models.Config, error) {
		return patch.Apply(cfg), nil
	})
}
