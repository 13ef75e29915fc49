package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "cryptopay-admin-backend/internal/common/errors"
	"cryptopay-admin-backend/internal/features/payment/models"
	"cryptopay-admin-backend/internal/features/payment/repository/jsonstore"
	"cryptopay-admin-backend/internal/platform/storage"
)

func newTestService(t *testing.T) PaymentService {
	t.Helper()
	return NewPaymentService(jsonstore.NewPaymentRepository(storage.NewMemoryBackend()))
}

func TestSubmit_StartsPending(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	payment, err := svc.Submit(ctx, "U1", "U1", "standard", "p.png")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, payment.Status)
	assert.Equal(t, "U1", payment.UID)
	assert.Equal(t, "p.png", payment.Proof)
	assert.False(t, payment.CreatedAt.IsZero())
}

func TestSubmit_MissingFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	cases := map[string][4]string{
		"empty id":    {"", "U1", "standard", "p.png"},
		"empty uid":   {"U1", "", "standard", "p.png"},
		"empty type":  {"U1", "U1", "", "p.png"},
		"empty proof": {"U1", "U1", "standard", ""},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Submit(ctx, args[0], args[1], args[2], args[3])
			require.Error(t, err)

			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
		})
	}

	payments, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, payments, "rejected submissions must not persist anything")
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Submit(ctx, "U1", "U1", "standard", "p.png")
	require.NoError(t, err)

	payment, err := svc.SetStatus(ctx, "U1", models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, payment.Status)

	payments, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, models.StatusApproved, payments[0].Status)
}

func TestSetStatus_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.SetStatus(ctx, "U404", models.StatusApproved)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestSetStatus_DuplicateIDHitsFirstMatch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	// Two submissions by the same user share an id.
	_, err := svc.Submit(ctx, "U1", "U1", "standard", "p1.png")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "U1", "U1", "priority", "p2.png")
	require.NoError(t, err)

	payment, err := svc.SetStatus(ctx, "U1", models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, "p1.png", payment.Proof)

	payments, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, models.StatusApproved, payments[0].Status)
	assert.Equal(t, models.StatusPending, payments[1].Status)
}

func TestIsApprovedFor_AnyApprovedSemantics(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	approved, err := svc.IsApprovedFor(ctx, "U1")
	require.NoError(t, err)
	assert.False(t, approved)

	_, err = svc.Submit(ctx, "U1", "U1", "standard", "p1.png")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "U1", "U1", "priority", "p2.png")
	require.NoError(t, err)

	// Reject the first: still not approved.
	_, err = svc.SetStatus(ctx, "U1", models.StatusRejected)
	require.NoError(t, err)
	approved, err = svc.IsApprovedFor(ctx, "U1")
	require.NoError(t, err)
	assert.False(t, approved)

	// Approve the first: a user with [approved, pending] counts as approved.
	_, err = svc.SetStatus(ctx, "U1", models.StatusApproved)
	require.NoError(t, err)
	approved, err = svc.IsApprovedFor(ctx, "U1")
	require.NoError(t, err)
	assert.True(t, approved)

	// Another user's ledger is independent.
	approved, err = svc.IsApprovedFor(ctx, "U2")
	require.NoError(t, err)
	assert.False(t, approved)
}
