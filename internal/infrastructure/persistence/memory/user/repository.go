package user_repository

import (
	"context"
	"slices"
	"user-collection-service/internal/domain/models"
	ports "user-collection-service/internal/domain/ports/output"
	user_port "user-collection-service/internal/domain/ports/output/user"
	"user-collection-service/internal/infrastructure/persistence/memory"
	"user-collection-service/internal/utils"
)

type UserRepository struct {
	state *memory.State
	log   ports.Logger
}

func NewUserRepository(state *memory.State, log ports.Logger) user_port.UserRepository {
	return &UserRepository{state: state, log: log}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = r.state.TakeID()
	r.state.SetUsers(append(r.state.Writable(), *user))
	r.log.Debug("CreateUser stored", "user_id", user.ID)
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, utils.ErrUserNotFound
	}
	u := r.state.Users()[i]
	return &u, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	i := r.indexOf(user.ID)
	if i < 0 {
		return utils.ErrUserNotFound
	}
	r.state.Writable()[i] = *user
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	i := r.indexOf(id)
	if i < 0 {
		return utils.ErrUserNotFound
	}
	r.state.SetUsers(slices.Delete(r.state.Writable(), i, i+1))
	r.log.Debug("DeleteUser removed", "user_id", id)
	return nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return slices.Clone(r.state.Users()), nil
}

// indexOf returns the position of the first record with id, or -1.
func (r *UserRepository) indexOf(id int) int {
	return slices.IndexFunc(r.state.Users(), func(u models.User) bool { return u.ID == id })
}
