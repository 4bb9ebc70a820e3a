package input

import (
	"context"
	"user-collection-service/internal/domain/models"
)

//go:generate mockery --name UserInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename UserInputPort.go

type UserInputPort interface {
	ListUsers(ctx context.Context, q models.ListQuery) ([]models.User, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
	CreateUser(ctx context.Context, in models.NewUser) (*models.User, error)
	UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id int) error
	Stats(ctx context.Context) (*models.Stats, error)
}
