package usecase

import (
	"context"

	"autoparts/internal/domain/entity"
	"autoparts/internal/domain/service"
)

// SessionUsecase provisions guest identities.
type SessionUsecase interface {
	// EnsureAnonymous issues an anonymous session when the browser carries no
	// credential at all. It reports whether a token was stored.
	EnsureAnonymous(ctx context.Context, store service.TokenStore, device *entity.DeviceInfo) (bool, error)
}
