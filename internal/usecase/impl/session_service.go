package impl

import (
	"context"
	"log/slog"

	deliverycontext "autoparts/internal/delivery/context"
	"autoparts/internal/domain/entity"
	"autoparts/internal/domain/service"
	"autoparts/internal/errors"
	"autoparts/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	authAPI service.AuthAPI
	logger  *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	authAPI service.AuthAPI,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		authAPI: authAPI,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureAnonymous issues a guest token to a browser with no credentials.
func (srv *sessionService) EnsureAnonymous(ctx context.Context, store service.TokenStore, device *entity.DeviceInfo) (bool, error) {
	if service.HasIdentity(ctx, store) {
		return false, nil
	}

	session, err := srv.authAPI.CreateAnonymousSession(ctx, device)
	if err != nil {
		return false, errors.Wrap(err, "failed to create anonymous session")
	}
	if session.SessionToken == "" {
		return false, errors.New("anonymous session without token")
	}

	if err := store.SetAnonymousToken(ctx, session.SessionToken, session.TTL()); err != nil {
		return false, errors.Wrap(err, "failed to store anonymous token")
	}
	srv.log(ctx).Debug("anonymous session issued", slog.String("session_id", session.SessionID))

	return true, nil
}
