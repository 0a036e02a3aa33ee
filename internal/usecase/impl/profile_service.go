package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "autoparts/internal/delivery/context"
	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/domain/service"
	"autoparts/internal/errors"
	"autoparts/internal/infra/validation"
	"autoparts/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userAPI   service.UserAPI
	validator *validation.Validator
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userAPI service.UserAPI,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userAPI:   userAPI,
		validator: validator,
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Home builds the shop landing page. Profile lookup failures degrade to the
// guest view.
func (srv *profileService) Home(ctx context.Context, store service.SessionStore) *usecase.HomeView {
	user, err := currentUser(ctx, store, srv.userAPI, srv.log(ctx))
	if err != nil {
		srv.log(ctx).Warn("home: profile unavailable", slog.Any("error", err))
	}

	if user == nil {
		return &usecase.HomeView{IsGuest: store.AnonymousToken(ctx) != ""}
	}

	return &usecase.HomeView{
		IsAuthenticated: true,
		User:            user,
		DisplayName:     user.FullName(),
		CanAccessAdmin:  user.Role.CanAccessAdminPanel(),
	}
}

// GetProfile fetches the profile from the remote API and refreshes the cached copy.
func (srv *profileService) GetProfile(ctx context.Context, store service.SessionStore) (*entity.User, error) {
	if store.AccessToken(ctx) == "" && store.RefreshToken(ctx) == "" {
		return nil, errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	user, err := srv.userAPI.GetProfile(ctx, store)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	if err := store.SetUser(ctx, user); err != nil {
		srv.log(ctx).Warn("failed to cache profile", slog.Any("error", err))
	}

	return user, nil
}

// UpdateProfile saves name and email changes and refreshes the cached copy.
func (srv *profileService) UpdateProfile(ctx context.Context, store service.SessionStore, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if store.AccessToken(ctx) == "" && store.RefreshToken(ctx) == "" {
		return nil, errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.Wrap(err, "update profile")
	}

	update := &entity.ProfileUpdate{
		FirstName: trimmed(input.FirstName),
		LastName:  trimmed(input.LastName),
		Email:     trimmed(input.Email),
	}

	user, err := srv.userAPI.UpdateProfile(ctx, store, update)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	if err := store.SetUser(ctx, user); err != nil {
		srv.log(ctx).Warn("failed to cache profile", slog.Any("error", err))
	}
	srv.log(ctx).Info("profile updated", slog.String("user_id", user.ID))

	return user, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)

	return &v
}
