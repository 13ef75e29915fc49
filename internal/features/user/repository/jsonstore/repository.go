package jsonstore

import (
	"context"

	"cryptopay-admin-backend/internal/features/user/models"
	"cryptopay-admin-backend/internal/features/user/repository"
	"cryptopay-admin-backend/internal/platform/storage"
)

const collectionName = "users"

type userRepository struct {
	users *storage.Collection[[]models.User]
}

func NewUserRepository(backend storage.Backend) repository.UserRepository {
	return &userRepository{
		users: storage.NewCollection(backend, collectionName, func() []models.User {
			return []models.User{}
		}),
	}
}

func (r *userRepository) FindByEmailWallet(ctx context.Context, email, wallet string) (*models.User, error) {
	users, err := r.users.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email && users[i].Wallet == wallet {
			return &users[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	users, err := r.users.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].UID == uid {
			return &users[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.users.Update(ctx, func(users []models.User) ([]models.User, error) {
		return append(users, *user), nil
	})
	return err
}

func (r *userRepository) SetApproval(ctx context.Context, uid string, approved bool) error {
	_, err := r.users.Update(ctx, func(users []models.User) ([]models.User, error) {
		for i := range users {
			if users[i].UID == uid {
				users[i].Approved = approved
				break
			}
		}
		return users, nil
	})
	return err
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	return r.users.Load(ctx)
}
