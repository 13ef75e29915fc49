package service

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "cryptopay-admin-backend/internal/common/errors"
	"cryptopay-admin-backend/internal/common/logger"
	"cryptopay-admin-backend/internal/features/payment/models"
	"cryptopay-admin-backend/internal/features/payment/repository"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentService interface {
	// Submit appends a pending payment. All four inputs are required.
	Submit(ctx context.Context, id, uid, paymentType, proof string) (*models.Payment, error)
	// SetStatus mutates a payment's status and returns the updated record,
	// or ErrPaymentNotFound.
	SetStatus(ctx context.Context, id, status string) (*models.Payment, error)
	// IsApprovedFor reports whether any payment of the user was approved.
	IsApprovedFor(ctx context.Context, uid string) (bool, error)
	List(ctx context.Context) ([]models.Payment, error)
}

type paymentService struct {
	repo repository.PaymentRepository
}

func NewPaymentService(repo repository.PaymentRepository) PaymentService {
	return &paymentService{repo: repo}
}

func (s *paymentService) Submit(ctx context.Context, id, uid, paymentType, proof string) (*models.Payment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("id", "cannot be empty")
	}
	if strings.TrimSpace(uid) == "" {
		return nil, apperrors.NewValidationError("uid", "cannot be empty")
	}
	if strings.TrimSpace(paymentType) == "" {
		return nil, apperrors.NewValidationError("type", "cannot be empty")
	}
	if strings.TrimSpace(proof) == "" {
		return nil, apperrors.NewValidationError("proof", "cannot be empty")
	}

	payment := &models.Payment{
		ID:        id,
		UID:       uid,
		Type:      paymentType,
		Proof:     proof,
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Append(ctx, payment); err != nil {
		return nil, apperrors.NewStorageError("payments", err)
	}

	logger.Info().
		Str("payment_id", payment.ID).
		Str("uid", uid).
		Str("type", paymentType).
		Msg("Payment submitted")

	return payment, nil
}

func (s *paymentService) SetStatus(ctx context.Context, id, status string) (*models.Payment, error) {
	payment, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, apperrors.NewStorageError("payments", err)
	}
	return payment, nil
}

func (s *paymentService) IsApprovedFor(ctx context.Context, uid string) (bool, error) {
	approved, err := s.repo.AnyApproved(ctx, uid)
	if err != nil {
		return false, apperrors.NewStorageError("payments", err)
	}
	return approved, nil
}

func (s *paymentService) List(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("payments", err)
	}
	return payments, nil
}
