package user_test

import (
	"context"
	"errors"
	"testing"

	app "user-collection-service/internal/application/user"
	"user-collection-service/internal/domain/models"
	"user-collection-service/internal/infrastructure/logger"
	"user-collection-service/internal/utils"
	"user-collection-service/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSetupFunc func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository)

func newService(t *testing.T, setup mockSetupFunc) *app.Service {
	t.Helper()
	mockUOW := mocks.NewUnitOfWork(t)
	mockTx := mocks.NewTransaction(t)
	mockRepo := mocks.NewUserRepository(t)
	if setup != nil {
		setup(mockUOW, mockTx, mockRepo)
	}
	return app.NewService(mockUOW, logger.New("test")).(*app.Service)
}

func ptr[T any](v T) *T { return &v }

func seed() []models.User {
	return []models.User{
		{ID: 1, Name: "John Doe", Age: 30, City: "New York", Occupation: "Developer", IsActive: true},
		{ID: 2, Name: "Jane Smith", Age: 25, City: "San Francisco", Occupation: "Designer", IsActive: true},
		{ID: 3, Name: "Bob Johnson", Age: 35, City: "Chicago", Occupation: "Manager", IsActive: false},
	}
}

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name      string
		query     models.ListQuery
		mockSetup mockSetupFunc
		wantIDs   []int
		wantErr   error
		useIs     bool
	}{
		{
			name: "filters and sorts",
			query: models.ListQuery{
				MinAge:    &models.IntParam{Value: 26, Valid: true},
				SortBy:    models.SortByAge,
				SortOrder: models.SortDesc,
			},
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(repo)
				repo.EXPECT().ListUsers(ctx).Return(seed(), nil)
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantIDs: []int{3, 1},
		},
		{
			name: "empty result is not nil",
			query: models.ListQuery{
				City: ptr("Nowhere"),
			},
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(repo)
				repo.EXPECT().ListUsers(ctx).Return(seed(), nil)
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantIDs: []int{},
		},
		{
			name:      "unknown sort field",
			query:     models.ListQuery{SortBy: models.SortField("salary")},
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {},
			wantErr:   utils.ErrInvalidSortField,
			useIs:     true,
		},
		{
			name: "begin fails",
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
				uow.EXPECT().Begin(ctx).Return(nil, errors.New("begin fail"))
			},
			wantErr: errors.New("begin fail"),
		},
		{
			name: "repo fails",
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(repo)
				repo.EXPECT().ListUsers(ctx).Return(nil, errors.New("read fail"))
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: errors.New("read fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, tt.mockSetup)
			users, err := svc.ListUsers(ctx, tt.query)
			if tt.wantErr != nil {
				require.Error(t, err)
				if tt.useIs {
					require.ErrorIs(t, err, tt.wantErr)
				} else {
					require.EqualError(t, err, tt.wantErr.Error())
				}
				require.Nil(t, users)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, users)
			got := make([]int, 0, len(users))
			for _, u := range users {
				got = append(got, u.ID)
			}
			require.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestUserService_GetUser(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name      string
		id        int
		mockSetup mockSetupFunc
		wantErr   error
		useIs     bool
	}{
		{
			name: "success",
			id:   1,
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(repo)
				repo.EXPECT().GetUserByID(ctx, 1).Return(&models.User{ID: 1, Name: "John Doe"}, nil)
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
		},
		{
			name: "not found",
			id:   999,
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(repo)
				repo.EXPECT().GetUserByID(ctx, 999).Return(nil, utils.ErrUserNotFound)
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: utils.ErrUserNotFound,
			useIs:   true,
		},
		{
			name: "begin fails",
			id:   1,
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
				uow.EXPECT().Begin(ctx).Return(nil, errors.New("begin fail"))
			},
			wantErr: errors.New("begin fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, tt.mockSetup)
			u, err := svc.GetUser(ctx, tt.id)
			if tt.wantErr != nil {
				require.Error(t, err)
				if tt.useIs {
					require.ErrorIs(t, err, tt.wantErr)
				} else {
					require.EqualError(t, err, tt.wantErr.Error())
				}
				require.Nil(t, u)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.id, u.ID)
		})
	}
}

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name       string
		in         models.NewUser
		mockSetup  mockSetupFunc
		wantActive bool
		wantErr    error
	}{
		{
			name: "defaults isActive to true",
			in:   models.NewUser{Name: ptr("Zed")},
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(repo)
				repo.EXPECT().CreateUser(ctx, mock.MatchedBy(func(u *models.User) bool { return u.Name == "Zed" && u.IsActive })).
					Run(func(_ context.Context, u *models.User) { u.ID = 6 }).
					Return(nil)
				tx.EXPECT().Commit(ctx).Return(nil)
			},
			wantActive: true,
		},
		{
			name: "explicit false is kept",
			in:   models.NewUser{Name: ptr("Yan"), IsActive: ptr(false)},
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(repo)
				repo.EXPECT().CreateUser(ctx, mock.MatchedBy(func(u *models.User) bool { return u.Name == "Yan" && !u.IsActive })).
					Run(func(_ context.Context, u *models.User) { u.ID = 6 }).
					Return(nil)
				tx.EXPECT().Commit(ctx).Return(nil)
			},
			wantActive: false,
		},
		{
			name: "begin fails",
			in:   models.NewUser{},
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
				uow.EXPECT().Begin(ctx).Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
		{
			name: "commit fails",
			in:   models.NewUser{Name: ptr("dave")},
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(repo)
				repo.EXPECT().CreateUser(ctx, mock.Anything).Return(nil)
				tx.EXPECT().Commit(ctx).Return(errors.New("commit fail"))
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: errors.New("commit fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, tt.mockSetup)
			u, err := svc.CreateUser(ctx, tt.in)
			if tt.wantErr != nil {
				require.EqualError(t, err, tt.wantErr.Error())
				require.Nil(t, u)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 6, u.ID)
			require.Equal(t, tt.wantActive, u.IsActive)
		})
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()
	original := func() *models.User {
		return &models.User{ID: 1, Name: "John Doe", Email: "john@example.com", Age: 30, City: "New York", IsActive: true}
	}
	tests := []struct {
		name      string
		patch     models.UserPatch
		check     func(t *testing.T, u *models.User)
		mockSetup mockSetupFunc
		wantErr   error
	}{
		{
			name:  "explicit false isActive is applied",
			patch: models.UserPatch{IsActive: ptr(false)},
			check: func(t *testing.T, u *models.User) {
				require.False(t, u.IsActive)
				require.Equal(t, "John Doe", u.Name)
			},
		},
		{
			name:  "blank values are ignored",
			patch: models.UserPatch{Name: ptr(""), Age: ptr(0.0), City: ptr("")},
			check: func(t *testing.T, u *models.User) {
				require.Equal(t, *original(), *u)
			},
		},
		{
			name:  "non-blank values replace",
			patch: models.UserPatch{Name: ptr("Johnny"), Age: ptr(31.0), Occupation: ptr("Architect")},
			check: func(t *testing.T, u *models.User) {
				require.Equal(t, "Johnny", u.Name)
				require.Equal(t, 31.0, u.Age)
				require.Equal(t, "Architect", u.Occupation)
				require.Equal(t, "john@example.com", u.Email)
				require.True(t, u.IsActive)
			},
		},
		{
			name: "not found",
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(repo)
				repo.EXPECT().GetUserByID(ctx, 1).Return(nil, utils.ErrUserNotFound)
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: utils.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := tt.mockSetup
			if setup == nil {
				setup = func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
					uow.EXPECT().Begin(ctx).Return(tx, nil)
					tx.EXPECT().UserRepository().Return(repo)
					repo.EXPECT().GetUserByID(ctx, 1).Return(original(), nil)
					repo.EXPECT().UpdateUser(ctx, mock.AnythingOfType("*models.User")).Return(nil)
					tx.EXPECT().Commit(ctx).Return(nil)
				}
			}
			svc := newService(t, setup)
			u, err := svc.UpdateUser(ctx, 1, tt.patch)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, u)
				return
			}
			require.NoError(t, err)
			tt.check(t, u)
		})
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name      string
		mockSetup mockSetupFunc
		wantErr   error
	}{
		{
			name: "success",
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(repo)
				repo.EXPECT().DeleteUser(ctx, 3).Return(nil)
				tx.EXPECT().Commit(ctx).Return(nil)
			},
		},
		{
			name: "not found",
			mockSetup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(repo)
				repo.EXPECT().DeleteUser(ctx, 3).Return(utils.ErrUserNotFound)
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: utils.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, tt.mockSetup)
			err := svc.DeleteUser(ctx, 3)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUserService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates full collection", func(t *testing.T) {
		svc := newService(t, func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
			uow.EXPECT().Begin(ctx).Return(tx, nil)
			tx.EXPECT().UserRepository().Return(repo)
			repo.EXPECT().ListUsers(ctx).Return(seed(), nil)
			tx.EXPECT().Rollback(ctx).Return(nil)
		})
		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, stats.TotalUsers)
		require.Equal(t, 2, stats.ActiveUsers)
		require.InDelta(t, 30.0, stats.AverageAge, 1e-9)
	})

	t.Run("repo fails", func(t *testing.T) {
		svc := newService(t, func(uow *mocks.UnitOfWork, tx *mocks.Transaction, repo *mocks.UserRepository) {
			uow.EXPECT().Begin(ctx).Return(tx, nil)
			tx.EXPECT().UserRepository().Return(repo)
			repo.EXPECT().ListUsers(ctx).Return(nil, errors.New("read fail"))
			tx.EXPECT().Rollback(ctx).Return(nil)
		})
		_, err := svc.Stats(ctx)
		require.ErrorContains(t, err, "read fail")
	})
}
