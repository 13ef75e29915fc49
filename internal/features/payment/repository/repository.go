package repository

import (
	"context"
	"errors"

	"cryptopay-admin-backend/internal/features/payment/models"
)

var ErrNotFound = errors.New("payment not found")

type PaymentRepository interface {
	Append(ctx context.Context, payment *models.Payment) error
	// SetStatus mutates the first payment matching id and returns it as
	// saved. Returns ErrNotFound when no payment matches.
	SetStatus(ctx context.Context, id, status string) (*models.Payment, error)
	// AnyApproved reports whether any payment of the user reached approved.
	AnyApproved(ctx context.Context, uid string) (bool, error)
	List(ctx context.Context) ([]models.Payment, error)
}
