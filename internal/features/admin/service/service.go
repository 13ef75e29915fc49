package service

import (
	"context"
	"errors"

	apperrors "cryptopay-admin-backend/internal/common/errors"
	"cryptopay-admin-backend/internal/common/logger"
	"cryptopay-admin-backend/internal/features/admin/auth"
	paymentmodels "cryptopay-admin-backend/internal/features/payment/models"
	paymentservice "cryptopay-admin-backend/internal/features/payment/service"
	payoutmodels "cryptopay-admin-backend/internal/features/payout/models"
	payoutservice "cryptopay-admin-backend/internal/features/payout/service"
	userservice "cryptopay-admin-backend/internal/features/user/service"
)

// Decision is one admin submission: an optional payment verdict plus an
// optional payout config patch.
type Decision struct {
	PaymentID string
	Status    string
	Config    payoutmodels.ConfigPatch
}

type AdminService interface {
	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, username, password string) (string, error)
	ListPayments(ctx context.Context) ([]paymentmodels.Payment, error)
	// Decide applies a decision: updates the payment's status, recomputes
	// the user's approval flag from it, and applies the config patch. The
	// config patch is applied even without a payment id.
	Decide(ctx context.Context, decision Decision) error
}

type adminService struct {
	authenticator auth.Authenticator
	sessions      *auth.SessionStore
	payments      paymentservice.PaymentService
	users         userservice.UserService
	payout        payoutservice.ConfigService
}

func NewAdminService(
	authenticator auth.Authenticator,
	sessions *auth.SessionStore,
	payments paymentservice.PaymentService,
	users userservice.UserService,
	payout payoutservice.ConfigService,
) AdminService {
	return &adminService{
		authenticator: authenticator,
		sessions:      sessions,
		payments:      payments,
		users:         users,
		payout:        payout,
	}
}

func (s *adminService) Login(ctx context.Context, username, password string) (string, error) {
	if !s.authenticator.Verify(username, password) {
		logger.Warn().Str("username", username).Msg("Admin login rejected")
		return "", apperrors.NewUnauthorizedError("invalid credentials")
	}

	logger.Info().Msg("Admin logged in")
	return s.sessions.Issue(), nil
}

func (s *adminService) ListPayments(ctx context.Context) ([]paymentmodels.Payment, error) {
	return s.payments.List(ctx)
}

func (s *adminService) Decide(ctx context.Context, decision Decision) error {
	if decision.PaymentID != "" {
		if err := s.applyVerdict(ctx, decision.PaymentID, decision.Status); err != nil {
			return err
		}
	}

	// Config updates ride along on every decision, payment or not.
	if _, err := s.payout.Patch(ctx, decision.Config); err != nil {
		return err
	}

	return nil
}

func (s *adminService) applyVerdict(ctx context.Context, paymentID, status string) error {
	payment, err := s.payments.SetStatus(ctx, paymentID, status)
	if err != nil {
		if errors.Is(err, paymentservice.ErrPaymentNotFound) {
			logger.Warn().Str("payment_id", paymentID).Msg("Decision for unknown payment ignored")
			return nil
		}
		return err
	}

	// The user's flag is recomputed from this decision alone: approved only
	// when the verdict is "approved", cleared for anything else. Re-deciding
	// a payment therefore always overwrites the previous outcome.
	approved := status == paymentmodels.StatusApproved
	if err := s.users.SetApproval(ctx, payment.UID, approved); err != nil {
		// Ledger already saved; the registry is now behind. Known gap of
		// the two-collection design, surfaced to the caller.
		return err
	}

	logger.Info().
		Str("payment_id", paymentID).
		Str("uid", payment.UID).
		Str("status", status).
		Msg("Payment decision applied")

	return nil
}
