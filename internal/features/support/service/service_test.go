package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "cryptopay-admin-backend/internal/common/errors"
	"cryptopay-admin-backend/internal/features/support/repository/jsonstore"
	"cryptopay-admin-backend/internal/platform/storage"
)

// newTestService returns a service with a ticking fake clock so every append
// gets a distinct timestamp id.
func newTestService(t *testing.T) *supportService {
	t.Helper()

	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	return &supportService{
		repo: jsonstore.NewMessageRepository(storage.NewMemoryBackend()),
		now: func() time.Time {
			now = now.Add(time.Second)
			return now
		},
	}
}

func TestAppendAndList_AscendingOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	for _, text := range []string{"first", "second", "third"} {
		_, err := svc.Append(ctx, text)
		require.NoError(t, err)
	}

	messages, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Text)
	assert.Equal(t, "second", messages[1].Text)
	assert.Equal(t, "third", messages[2].Text)
	assert.Less(t, messages[0].CreatedAt, messages[1].CreatedAt)
}

func TestList_OrderSurvivesInterleavedRemoval(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	first, err := svc.Append(ctx, "first")
	require.NoError(t, err)
	second, err := svc.Append(ctx, "second")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, first.ID))

	third, err := svc.Append(ctx, "third")
	require.NoError(t, err)

	messages, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, second.ID, messages[0].ID)
	assert.Equal(t, third.ID, messages[1].ID)
}

func TestAppend_EmptyText(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	for _, text := range []string{"", "   "} {
		_, err := svc.Append(ctx, text)
		require.Error(t, err)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	}

	messages, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestRemove_UnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	msg, err := svc.Append(ctx, "keep me")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, msg.ID+1))

	messages, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "keep me", messages[0].Text)
}
