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

	"golang.org/x/sync/errgroup"
)

const recentUsersLimit = 5

// userService implements the UserUsecase interface.
type userService struct {
	userAPI   service.UserAPI
	validator *validation.Validator
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userAPI service.UserAPI,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userAPI:   userAPI,
		validator: validator,
		logger:    logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard loads the stats and the newest accounts in parallel.
func (srv *userService) Dashboard(ctx context.Context, store service.SessionStore) (*usecase.DashboardView, error) {
	actor, err := srv.staff(ctx, store)
	if err != nil {
		return nil, err
	}

	view := &usecase.DashboardView{User: actor}

	g, gctx := errgroup.WithContext(ctx)
	if actor.Role == entity.RoleAdmin {
		g.Go(func() error {
			stats, err := srv.userAPI.GetStats(gctx, store)
			if err != nil {
				return errors.Wrap(err, "failed to get user stats")
			}
			view.Stats = stats

			return nil
		})
	}
	g.Go(func() error {
		page, err := srv.userAPI.ListUsers(gctx, store, &entity.UserFilter{
			Page:      1,
			Limit:     recentUsersLimit,
			SortBy:    "createdAt",
			SortOrder: "desc",
		})
		if err != nil {
			return errors.Wrap(err, "failed to list recent users")
		}
		view.RecentUsers = page.Data

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if view.RecentUsers == nil {
		view.RecentUsers = []*entity.User{}
	}

	return view, nil
}

// ListUsers returns one page of accounts.
func (srv *userService) ListUsers(ctx context.Context, store service.SessionStore, input *usecase.ListUsersInput) (*entity.UserPage, error) {
	if _, err := srv.staff(ctx, store); err != nil {
		return nil, err
	}

	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	page, err := srv.userAPI.ListUsers(ctx, store, &entity.UserFilter{
		Role:      entity.Role(input.Role),
		IsActive:  input.IsActive,
		Search:    strings.TrimSpace(input.Search),
		Page:      input.Page,
		Limit:     input.Limit,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return page, nil
}

// GetUser returns a single account.
func (srv *userService) GetUser(ctx context.Context, store service.SessionStore, id string) (*entity.User, error) {
	if _, err := srv.staff(ctx, store); err != nil {
		return nil, err
	}
	if err := requireID(id); err != nil {
		return nil, err
	}

	user, err := srv.userAPI.GetUser(ctx, store, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// CreateUser adds an account. Only administrators may create staff accounts.
func (srv *userService) CreateUser(ctx context.Context, store service.SessionStore, input *usecase.CreateUserInput) (*entity.User, error) {
	actor, err := srv.staff(ctx, store)
	if err != nil {
		return nil, err
	}

	phone := entity.NormalizePhone(input.Phone)
	if err := srv.validator.Validate(&phoneInput{Phone: phone}); err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.Wrap(err, "create user")
	}

	role := entity.Role(input.Role)
	if role != entity.RoleCustomer && actor.Role != entity.RoleAdmin {
		return nil, errors.Wrap(domainerrors.ErrForbidden.WithDetails("only administrators create staff accounts"), "create user")
	}

	user, err := srv.userAPI.CreateUser(ctx, store, &entity.NewUser{
		Phone:     phone,
		Role:      role,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}
	srv.log(ctx).Info("user created", slog.String("user_id", user.ID), slog.String("by", actor.ID))

	return user, nil
}

// UpdateUser edits an account. Role changes are reserved for administrators.
func (srv *userService) UpdateUser(ctx context.Context, store service.SessionStore, id string, input *usecase.UpdateUserInput) (*entity.User, error) {
	actor, err := srv.staff(ctx, store)
	if err != nil {
		return nil, err
	}
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.Wrap(err, "update user")
	}

	update := &entity.UserUpdate{
		ProfileUpdate: entity.ProfileUpdate{
			FirstName: trimmed(input.FirstName),
			LastName:  trimmed(input.LastName),
			Email:     trimmed(input.Email),
		},
		IsActive: input.IsActive,
	}
	if input.Role != nil {
		if actor.Role != entity.RoleAdmin {
			return nil, errors.Wrap(domainerrors.ErrForbidden.WithDetails("only administrators change roles"), "update user")
		}
		role := entity.Role(*input.Role)
		update.Role = &role
	}

	user, err := srv.userAPI.UpdateUser(ctx, store, id, update)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	if user.ID == actor.ID {
		if err := store.SetUser(ctx, user); err != nil {
			srv.log(ctx).Warn("failed to cache profile", slog.Any("error", err))
		}
	}
	srv.log(ctx).Info("user updated", slog.String("user_id", user.ID), slog.String("by", actor.ID))

	return user, nil
}

// DeleteUser removes an account. Administrators only, never their own.
func (srv *userService) DeleteUser(ctx context.Context, store service.SessionStore, id string) error {
	actor, err := srv.staff(ctx, store)
	if err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	if actor.Role != entity.RoleAdmin {
		return errors.Wrap(domainerrors.ErrForbidden.WithDetails("only administrators delete accounts"), "delete user")
	}
	if id == actor.ID {
		return errors.Wrap(domainerrors.ErrForbidden.WithDetails("cannot delete your own account"), "delete user")
	}

	if err := srv.userAPI.DeleteUser(ctx, store, id); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}
	srv.log(ctx).Info("user deleted", slog.String("user_id", id), slog.String("by", actor.ID))

	return nil
}

// staff resolves the acting user and checks admin console access.
func (srv *userService) staff(ctx context.Context, store service.SessionStore) (*entity.User, error) {
	actor, err := currentUser(ctx, store, srv.userAPI, srv.log(ctx))
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}
	if !actor.Role.CanAccessAdminPanel() {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return actor, nil
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("id:required"))
	}

	return nil
}
