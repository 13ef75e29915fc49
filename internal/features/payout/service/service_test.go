package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptopay-admin-backend/internal/features/payout/models"
	"cryptopay-admin-backend/internal/features/payout/repository/jsonstore"
	"cryptopay-admin-backend/internal/platform/storage"
)

func newTestService(t *testing.T) ConfigService {
	t.Helper()
	return NewConfigService(jsonstore.NewConfigRepository(storage.NewMemoryBackend()))
}

func TestGet_Defaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	cfg, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultConfig(), cfg)
}

func TestPatch_Partial(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	cfg, err := svc.Patch(ctx, models.ConfigPatch{Balance: "250000"})
	require.NoError(t, err)

	assert.Equal(t, "250000", cfg.Balance)
	assert.Equal(t, "demoWallet123", cfg.WalletAddress, "unset fields must be preserved")
	assert.Equal(t, "5000", cfg.StandardFee)
	assert.Equal(t, "12000", cfg.PriorityFee)

	// The patch survives a reload.
	cfg, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "250000", cfg.Balance)
}

func TestPatch_Accumulates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Patch(ctx, models.ConfigPatch{WalletAddress: "TWalletXYZ"})
	require.NoError(t, err)
	cfg, err := svc.Patch(ctx, models.ConfigPatch{StandardFee: "7000"})
	require.NoError(t, err)

	assert.Equal(t, "TWalletXYZ", cfg.WalletAddress)
	assert.Equal(t, "7000", cfg.StandardFee)
}

func TestPatch_Empty(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	cfg, err := svc.Patch(ctx, models.ConfigPatch{})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultConfig(), cfg)
}
