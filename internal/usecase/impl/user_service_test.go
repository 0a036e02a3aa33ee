package impl

import (
	"context"
	"testing"

	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/domain/service"
	"autoparts/internal/errors"
	"autoparts/internal/infra/validation"
	mocks "autoparts/internal/mocks/service"
	"autoparts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service usecase.UserUsecase
	userAPI *mocks.MockUserAPI
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userAPI := mocks.NewMockUserAPI(t)

	return userServiceFixtures{
		service: NewUserService(userAPI, validation.New(), newDiscardLogger()),
		userAPI: userAPI,
	}
}

var (
	adminUser    = &entity.User{ID: "admin-1", Role: entity.RoleAdmin}
	managerUser  = &entity.User{ID: "manager-1", Role: entity.RoleManager}
	customerUser = &entity.User{ID: "customer-1", Role: entity.RoleCustomer}
)

func recentFilter(f *entity.UserFilter) bool {
	return f.Page == 1 && f.Limit == 5 && f.SortBy == "createdAt" && f.SortOrder == "desc"
}

func TestUserService_Dashboard_AdminSeesStats(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	store := newSignedInStore(t, adminUser)
	stats := &entity.UserStats{Total: 10, Active: 9, Inactive: 1}
	recent := []*entity.User{{ID: "u-9"}, {ID: "u-8"}}

	fx.userAPI.EXPECT().GetStats(mock.Anything, store).Return(stats, nil)
	fx.userAPI.EXPECT().ListUsers(mock.Anything, store, mock.MatchedBy(recentFilter)).
		Return(&entity.UserPage{Data: recent, Total: 10}, nil)

	view, err := fx.service.Dashboard(ctx, store)

	require.NoError(t, err)
	assert.Equal(t, stats, view.Stats)
	assert.Equal(t, recent, view.RecentUsers)
	assert.Equal(t, adminUser.ID, view.User.ID)
}

func TestUserService_Dashboard_ManagerWithoutStats(t *testing.T) {
	fx := createTestUserService(t)
	store := newSignedInStore(t, managerUser)

	fx.userAPI.EXPECT().ListUsers(mock.Anything, store, mock.MatchedBy(recentFilter)).
		Return(&entity.UserPage{}, nil)

	view, err := fx.service.Dashboard(context.Background(), store)

	require.NoError(t, err)
	assert.Nil(t, view.Stats)
	assert.NotNil(t, view.RecentUsers)
}

func TestUserService_Dashboard_FailureSurfaces(t *testing.T) {
	fx := createTestUserService(t)
	store := newSignedInStore(t, adminUser)

	fx.userAPI.EXPECT().GetStats(mock.Anything, store).Return(nil, domainerrors.ErrInternalError)
	fx.userAPI.EXPECT().ListUsers(mock.Anything, store, mock.Anything).Return(&entity.UserPage{}, nil).Maybe()

	_, err := fx.service.Dashboard(context.Background(), store)

	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestUserService_StaffOnly(t *testing.T) {
	tests := []struct {
		name  string
		store func(t *testing.T) service.SessionStore
		want  error
	}{
		{name: "guest", store: func(*testing.T) service.SessionStore { return newTestStore() }, want: domainerrors.ErrAuthenticationRequired},
		{name: "customer", store: func(t *testing.T) service.SessionStore { return newSignedInStore(t, customerUser) }, want: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			ctx := context.Background()
			store := tt.store(t)

			_, err := fx.service.Dashboard(ctx, store)
			assert.True(t, errors.Is(err, tt.want))

			_, err = fx.service.ListUsers(ctx, store, &usecase.ListUsersInput{})
			assert.True(t, errors.Is(err, tt.want))

			_, err = fx.service.GetUser(ctx, store, "u-1")
			assert.True(t, errors.Is(err, tt.want))

			err = fx.service.DeleteUser(ctx, store, "u-1")
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	store := newSignedInStore(t, managerUser)
	active := true

	fx.userAPI.EXPECT().
		ListUsers(ctx, store, &entity.UserFilter{Role: entity.RoleAdmin, IsActive: &active, Search: "ivan", Page: 2, Limit: 20, SortBy: "phone", SortOrder: "asc"}).
		Return(&entity.UserPage{Page: 2}, nil)

	page, err := fx.service.ListUsers(ctx, store, &usecase.ListUsersInput{
		Role: "ADMIN", IsActive: &active, Search: " ivan ", Page: 2, Limit: 20, SortBy: "phone", SortOrder: "asc",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
}

func TestUserService_ListUsers_InvalidFilter(t *testing.T) {
	fx := createTestUserService(t)
	store := newSignedInStore(t, managerUser)

	_, err := fx.service.ListUsers(context.Background(), store, &usecase.ListUsersInput{Role: "ROOT", Limit: 500})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_CreateUser(t *testing.T) {
	t.Run("manager creates customer", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		store := newSignedInStore(t, managerUser)

		fx.userAPI.EXPECT().
			CreateUser(ctx, store, &entity.NewUser{Phone: "+79991112233", Role: entity.RoleCustomer, FirstName: "Ivan"}).
			Return(&entity.User{ID: "u-new"}, nil)

		user, err := fx.service.CreateUser(ctx, store, &usecase.CreateUserInput{Phone: "8 999 111 22 33", Role: "CUSTOMER", FirstName: "Ivan"})

		require.NoError(t, err)
		assert.Equal(t, "u-new", user.ID)
	})

	t.Run("manager cannot create staff", func(t *testing.T) {
		fx := createTestUserService(t)
		store := newSignedInStore(t, managerUser)

		_, err := fx.service.CreateUser(context.Background(), store, &usecase.CreateUserInput{Phone: "+79991112233", Role: "ADMIN"})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("invalid phone", func(t *testing.T) {
		fx := createTestUserService(t)
		store := newSignedInStore(t, adminUser)

		_, err := fx.service.CreateUser(context.Background(), store, &usecase.CreateUserInput{Phone: "999", Role: "CUSTOMER"})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("manager cannot change role", func(t *testing.T) {
		fx := createTestUserService(t)
		store := newSignedInStore(t, managerUser)

		_, err := fx.service.UpdateUser(context.Background(), store, "u-1", &usecase.UpdateUserInput{Role: strPtr("ADMIN")})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("admin changes role", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		store := newSignedInStore(t, adminUser)

		fx.userAPI.EXPECT().
			UpdateUser(ctx, store, "u-1", mock.MatchedBy(func(u *entity.UserUpdate) bool {
				return u.Role != nil && *u.Role == entity.RoleManager
			})).
			Return(&entity.User{ID: "u-1", Role: entity.RoleManager}, nil)

		user, err := fx.service.UpdateUser(ctx, store, "u-1", &usecase.UpdateUserInput{Role: strPtr("MANAGER")})

		require.NoError(t, err)
		assert.Equal(t, entity.RoleManager, user.Role)
		assert.Equal(t, adminUser.ID, store.User(ctx).ID)
	})

	t.Run("editing self refreshes cache", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		store := newSignedInStore(t, managerUser)

		fx.userAPI.EXPECT().
			UpdateUser(ctx, store, managerUser.ID, mock.Anything).
			Return(&entity.User{ID: managerUser.ID, Role: entity.RoleManager, FirstName: "Anna"}, nil)

		_, err := fx.service.UpdateUser(ctx, store, managerUser.ID, &usecase.UpdateUserInput{FirstName: strPtr("Anna")})

		require.NoError(t, err)
		assert.Equal(t, "Anna", store.User(ctx).FirstName)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("admin deletes", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		store := newSignedInStore(t, adminUser)

		fx.userAPI.EXPECT().DeleteUser(ctx, store, "u-1").Return(nil)

		require.NoError(t, fx.service.DeleteUser(ctx, store, "u-1"))
	})

	t.Run("manager forbidden", func(t *testing.T) {
		fx := createTestUserService(t)
		store := newSignedInStore(t, managerUser)

		err := fx.service.DeleteUser(context.Background(), store, "u-1")

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("self forbidden", func(t *testing.T) {
		fx := createTestUserService(t)
		store := newSignedInStore(t, adminUser)

		err := fx.service.DeleteUser(context.Background(), store, adminUser.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("missing id", func(t *testing.T) {
		fx := createTestUserService(t)
		store := newSignedInStore(t, adminUser)

		err := fx.service.DeleteUser(context.Background(), store, " ")

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
