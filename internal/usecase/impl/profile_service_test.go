package impl

import (
	"context"
	"testing"
	"time"

	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/errors"
	"autoparts/internal/infra/validation"
	mocks "autoparts/internal/mocks/service"
	"autoparts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service usecase.ProfileUsecase
	userAPI *mocks.MockUserAPI
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userAPI := mocks.NewMockUserAPI(t)

	return profileServiceFixtures{
		service: NewProfileService(userAPI, validation.New(), newDiscardLogger()),
		userAPI: userAPI,
	}
}

func TestProfileService_Home(t *testing.T) {
	t.Run("guest", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()
		store := newTestStore()
		require.NoError(t, store.SetAnonymousToken(ctx, "anon-1", time.Hour))

		view := fx.service.Home(ctx, store)

		assert.Equal(t, &usecase.HomeView{IsGuest: true}, view)
	})

	t.Run("manager", func(t *testing.T) {
		fx := createTestProfileService(t)
		store := newSignedInStore(t, &entity.User{ID: "u-1", Phone: "+79991234567", Role: entity.RoleManager})

		view := fx.service.Home(context.Background(), store)

		assert.True(t, view.IsAuthenticated)
		assert.True(t, view.CanAccessAdmin)
		assert.Equal(t, "+7 (999) 123-45-67", view.DisplayName)
	})

	t.Run("profile unavailable degrades to guest", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()
		store := newSignedInStore(t, nil)

		fx.userAPI.EXPECT().GetProfile(ctx, store).Return(nil, domainerrors.ErrInternalError)

		view := fx.service.Home(ctx, store)

		assert.False(t, view.IsAuthenticated)
	})
}

func TestProfileService_GetProfile_RefreshesCache(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	store := newSignedInStore(t, &entity.User{ID: "u-1", FirstName: "Old"})

	fx.userAPI.EXPECT().GetProfile(ctx, store).Return(&entity.User{ID: "u-1", FirstName: "New"}, nil)

	user, err := fx.service.GetProfile(ctx, store)

	require.NoError(t, err)
	assert.Equal(t, "New", user.FirstName)
	assert.Equal(t, "New", store.User(ctx).FirstName)
}

func TestProfileService_GetProfile_RequiresSession(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.GetProfile(context.Background(), newTestStore())

	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationRequired))
}

func TestProfileService_UpdateProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	store := newSignedInStore(t, &entity.User{ID: "u-1"})

	fx.userAPI.EXPECT().
		UpdateProfile(ctx, store, mock.MatchedBy(func(u *entity.ProfileUpdate) bool {
			return *u.FirstName == "Ivan" && u.LastName == nil && *u.Email == ""
		})).
		Return(&entity.User{ID: "u-1", FirstName: "Ivan"}, nil)

	user, err := fx.service.UpdateProfile(ctx, store, &usecase.UpdateProfileInput{
		FirstName: strPtr("  Ivan "),
		Email:     strPtr(""),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ivan", user.FirstName)
	assert.Equal(t, "Ivan", store.User(ctx).FirstName)
}

func TestProfileService_UpdateProfile_InvalidEmail(t *testing.T) {
	fx := createTestProfileService(t)
	store := newSignedInStore(t, &entity.User{ID: "u-1"})

	_, err := fx.service.UpdateProfile(context.Background(), store, &usecase.UpdateProfileInput{Email: strPtr("not-an-email")})

	require.Error(t, err)
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "email:clearable_email", appErr.Details())
}
