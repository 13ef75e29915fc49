package repository

import (
	"context"
	"errors"

	"cryptopay-admin-backend/internal/features/user/models"
)

var ErrNotFound = errors.New("user not found")

type UserRepository interface {
	// FindByEmailWallet looks a user up by the natural key. Returns
	// ErrNotFound when no record matches.
	FindByEmailWallet(ctx context.Context, email, wallet string) (*models.User, error)
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	// SetApproval overwrites the approval flag. An unknown uid is a
	// silent no-op: a decision on a payment whose user is gone must not
	// fail the workflow.
	SetApproval(ctx context.Context, uid string, approved bool) error
	List(ctx context.Context) ([]models.User, error)
}
