package jsonstore

import (
	"context"

	"cryptopay-admin-backend/internal/features/payment/models"
	"cryptopay-admin-backend/internal/features/payment/repository"
	"cryptopay-admin-backend/internal/platform/storage"
)

const collectionName = "payments"

type paymentRepository struct {
	payments *storage.Collection[[]models.Payment]
}

func NewPaymentRepository(backend storage.Backend) repository.PaymentRepository {
	return &paymentRepository{
		payments: storage.NewCollection(backend, collectionName, func() []models.Payment {
			return []models.Payment{}
		}),
	}
}

func (r *paymentRepository) Append(ctx context.Context, payment *models.Payment) error {
	_, err := r.payments.Update(ctx, func(payments []models.Payment) ([]models.Payment, error) {
		return append(payments, *payment), nil
	})
	return err
}

func (r *paymentRepository) SetStatus(ctx context.Context, id, status string) (*models.Payment, error) {
	var updated *models.Payment

	_, err := r.payments.Update(ctx, func(payments []models.Payment) ([]models.Payment, error) {
		for i := range payments {
			if payments[i].ID == id {
				payments[i].Status = status
				p := payments[i]
				updated = &p
				break
			}
		}
		if updated == nil {
			return nil, repository.ErrNotFound
		}
		return payments, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *paymentRepository) AnyApproved(ctx context.Context, uid string) (bool, error) {
	payments, err := r.payments.Load(ctx)
	if err != nil {
		return false, err
	}

	for i := range payments {
		if payments[i].UID == uid && payments[i].Status == models.StatusApproved {
			return true, nil
		}
	}
	return false, nil
}

func (r *paymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	return r.payments.Load(ctx)
}
