// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/domain/service"
	"autoparts/internal/errors"
)

// phoneInput validates a normalized phone number.
type phoneInput struct {
	Phone string `json:"phone" validate:"required,ruphone"`
}

// currentUser returns the cached user or, for a session holding tokens but
// no cached profile, fetches and caches it. An expired session yields nil.
func currentUser(ctx context.Context, store service.SessionStore, userAPI service.UserAPI, logger *slog.Logger) (*entity.User, error) {
	if user := store.User(ctx); user != nil {
		return user, nil
	}
	if store.AccessToken(ctx) == "" && store.RefreshToken(ctx) == "" {
		return nil, nil
	}

	user, err := userAPI.GetProfile(ctx, store)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAuthenticationRequired) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to fetch profile")
	}

	if err := store.SetUser(ctx, user); err != nil {
		logger.Warn("failed to cache profile", slog.Any("error", err))
	}

	return user, nil
}

// wholeSeconds rounds a remaining duration up so a countdown never shows 0
// while the cooldown is still running.
func wholeSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	return int(math.Ceil(d.Seconds()))
}
