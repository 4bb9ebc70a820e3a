package user

import (
	"context"
	"fmt"
	"user-collection-service/internal/domain/models"
	"user-collection-service/internal/domain/ports/input"
	ports "user-collection-service/internal/domain/ports/output"
	uow "user-collection-service/internal/domain/ports/output/uow"
	"user-collection-service/internal/domain/services"
	"user-collection-service/internal/utils"
)

type Service struct {
	uow uow.UnitOfWork
	log ports.Logger
}

func NewService(uow uow.UnitOfWork, log ports.Logger) input.UserInputPort {
	return &Service{uow: uow, log: log}
}

func (s *Service) ListUsers(ctx context.Context, q models.ListQuery) ([]models.User, error) {
	sortBy, ok := models.ParseSortField(string(q.SortBy))
	if !ok {
		return nil, utils.ErrInvalidSortField
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	users, err := tx.UserRepository().ListUsers(ctx)
	if err != nil {
		s.log.Error("ListUsers repo failed", "err", err)
		return nil, err
	}
	res := services.FilterUsers(users, q)
	services.SortUsers(res, sortBy, q.SortOrder)
	return res, nil
}

func (s *Service) GetUser(ctx context.Context, id int) (*models.User, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	u, err := tx.UserRepository().GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUser appends a new record. Absent fields keep their zero value except
// IsActive, which defaults to true.
func (s *Service) CreateUser(ctx context.Context, in models.NewUser) (*models.User, error) {
	u := &models.User{
		Name:       deref(in.Name),
		Email:      deref(in.Email),
		Age:        deref(in.Age),
		Occupation: deref(in.Occupation),
		City:       deref(in.City),
		IsActive:   true,
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("CreateUser begin tx failed", "err", err)
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	if err := tx.UserRepository().CreateUser(ctx, u); err != nil {
		s.log.Error("CreateUser repo failed", "err", err)
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("CreateUser commit failed", "err", err, "user_id", u.ID)
		return nil, err
	}
	commit = true
	s.log.Info("user created", "user_id", u.ID)
	return u, nil
}

// UpdateUser applies patch to the record with id. Text fields and age are only
// replaced by non-blank values; IsActive is replaced whenever it is present.
func (s *Service) UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	repo := tx.UserRepository()
	u, err := repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyPatch(u, patch)
	if err := repo.UpdateUser(ctx, u); err != nil {
		s.log.Error("UpdateUser repo failed", "err", err, "user_id", id)
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("UpdateUser commit failed", "err", err, "user_id", id)
		return nil, err
	}
	commit = true
	return u, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int) error {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	if err := tx.UserRepository().DeleteUser(ctx, id); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("DeleteUser commit failed", "err", err, "user_id", id)
		return err
	}
	commit = true
	s.log.Info("user deleted", "user_id", id)
	return nil
}

func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	users, err := tx.UserRepository().ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users for stats: %w", err)
	}
	stats := services.ComputeStats(users)
	return &stats, nil
}

func applyPatch(u *models.User, p models.UserPatch) {
	if p.Name != nil && *p.Name != "" {
		u.Name = *p.Name
	}
	if p.Email != nil && *p.Email != "" {
		u.Email = *p.Email
	}
	if p.Age != nil && *p.Age != 0 {
		u.Age = *p.Age
	}
	if p.Occupation != nil && *p.Occupation != "" {
		u.Occupation = *p.Occupation
	}
	if p.City != nil && *p.City != "" {
		u.City = *p.City
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
