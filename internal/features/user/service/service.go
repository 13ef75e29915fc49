package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	apperrors "cryptopay-admin-backend/internal/common/errors"
	"cryptopay-admin-backend/internal/common/logger"
	"cryptopay-admin-backend/internal/common/validation"
	"cryptopay-admin-backend/internal/features/user/models"
	"cryptopay-admin-backend/internal/features/user/repository"
)

type UserService interface {
	// FindOrCreate returns the user matching (email, wallet), creating a
	// fresh unapproved record when none exists. Existing records are
	// returned unchanged even when name or walletType differ from the
	// request.
	FindOrCreate(ctx context.Context, name, email, wallet, walletType string) (*models.User, bool, error)
	// SetApproval overwrites a user's approval flag; unknown uid is a no-op.
	SetApproval(ctx context.Context, uid string, approved bool) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) FindOrCreate(ctx context.Context, name, email, wallet, walletType string) (*models.User, bool, error) {
	email = strings.TrimSpace(email)
	wallet = strings.TrimSpace(wallet)

	if err := validation.ValidateEmail(email); err != nil {
		return nil, false, apperrors.NewValidationError("email", err.Error())
	}
	if err := validation.ValidateWallet(wallet); err != nil {
		return nil, false, apperrors.NewValidationError("wallet", err.Error())
	}

	user, err := s.repo.FindByEmailWallet(ctx, email, wallet)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, apperrors.NewStorageError("users", err)
	}

	user = &models.User{
		UID:        newUID(),
		Name:       name,
		Email:      email,
		Wallet:     wallet,
		WalletType: walletType,
		Approved:   false,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, false, apperrors.NewStorageError("users", err)
	}

	logger.Info().
		Str("uid", user.UID).
		Str("wallet_type", walletType).
		Msg("User registered")

	return user, true, nil
}

func (s *userService) SetApproval(ctx context.Context, uid string, approved bool) error {
	if err := s.repo.SetApproval(ctx, uid, approved); err != nil {
		return apperrors.NewStorageError("users", err)
	}
	return nil
}

// newUID generates the short server-side user identifier: 6 random bytes as
// uppercase hex.
func newUID() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in no state to continue.
		panic(err)
	}
	return strings.ToUpper(hex.EncodeToString(buf))
}
