package user

import (
	"context"
	"user-collection-service/internal/domain/models"
)

//go:generate mockery --name UserRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename UserRepository.go

type UserRepository interface {
	// CreateUser assigns the next id to user and appends it to the collection.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int) error
	// ListUsers returns copies of all records in insertion order.
	ListUsers(ctx context.Context) ([]models.User, error)
}
