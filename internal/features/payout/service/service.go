package service

import (
	"context"

	apperrors "cryptopay-admin-backend/internal/common/errors"
	"cryptopay-admin-backend/internal/common/logger"
	"cryptopay-admin-backend/internal/features/payout/models"
	"cryptopay-admin-backend/internal/features/payout/repository"
)

type ConfigService interface {
	Get(ctx context.Context) (models.Config, error)
	Patch(ctx context.Context, patch models.ConfigPatch) (models.Config, error)
}

type configService struct {
	repo repository.ConfigRepository
}

func NewConfigService(repo repository.ConfigRepository) ConfigService {
	return &configService{repo: repo}
}

func (s *configService) Get(ctx context.Context) (models.Config, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return models.Config{}, apperrors.NewStorageError("config", err)
	}
	return cfg, nil
}

func (s *configService) Patch(ctx context.Context, patch models.ConfigPatch) (models.Config, error) {
	if patch.IsZero() {
		return s.Get(ctx)
	}

	cfg, err := s.repo.Patch(ctx, patch)
	if err != nil {
		return models.Config{}, apperrors.NewStorageError("config", err)
	}

	logger.Info().
		Bool("wallet_address", patch.WalletAddress != "").
		Bool("standard_fee", patch.StandardFee != "").
		Bool("priority_fee", patch.PriorityFee != "").
		Bool("balance", patch.Balance != "").
		Msg("Payout config updated")

	return cfg, nil
}
