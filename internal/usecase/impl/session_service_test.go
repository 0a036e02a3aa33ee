package impl

import (
	"context"
	"testing"
	"time"

	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	mocks "autoparts/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_EnsureAnonymous_IssuesToken(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI(t)
	srv := NewSessionService(authAPI, newDiscardLogger())
	ctx := context.Background()
	store := newTestStore()
	device := &entity.DeviceInfo{Platform: "web", Browser: "Firefox"}

	authAPI.EXPECT().
		CreateAnonymousSession(ctx, device).
		Return(&entity.AnonymousSession{SessionToken: "anon-1", SessionID: "s-1", ExpiresIn: 3600}, nil)

	issued, err := srv.EnsureAnonymous(ctx, store, device)

	require.NoError(t, err)
	assert.True(t, issued)
	assert.Equal(t, "anon-1", store.AnonymousToken(ctx))
	assert.False(t, store.Projection(ctx).IsAuthenticated())
}

func TestSessionService_EnsureAnonymous_SkipsExistingIdentity(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *entity.TokenBundle
		anon  string
	}{
		{name: "signed in", setup: func(*testing.T) *entity.TokenBundle {
			return &entity.TokenBundle{AccessToken: "a1", RefreshToken: "r1"}
		}},
		{name: "guest", anon: "anon-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authAPI := mocks.NewMockAuthAPI(t)
			srv := NewSessionService(authAPI, newDiscardLogger())
			ctx := context.Background()
			store := newTestStore()
			if tt.setup != nil {
				require.NoError(t, store.SetTokens(ctx, tt.setup(t)))
			}
			if tt.anon != "" {
				require.NoError(t, store.SetAnonymousToken(ctx, tt.anon, time.Hour))
			}

			issued, err := srv.EnsureAnonymous(ctx, store, nil)

			require.NoError(t, err)
			assert.False(t, issued)
		})
	}
}

func TestSessionService_EnsureAnonymous_RemoteFailure(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI(t)
	srv := NewSessionService(authAPI, newDiscardLogger())
	ctx := context.Background()
	store := newTestStore()

	authAPI.EXPECT().CreateAnonymousSession(ctx, (*entity.DeviceInfo)(nil)).Return(nil, domainerrors.ErrInternalError)

	issued, err := srv.EnsureAnonymous(ctx, store, nil)

	require.Error(t, err)
	assert.False(t, issued)
	assert.Empty(t, store.AnonymousToken(ctx))
}
