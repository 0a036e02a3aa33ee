package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"autoparts/config"
	deliverycontext "autoparts/internal/delivery/context"
	"autoparts/internal/domain/entity"
	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/domain/service"
	"autoparts/internal/errors"
	"autoparts/internal/infra/validation"
	"autoparts/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	authAPI   service.AuthAPI
	userAPI   service.UserAPI
	validator *validation.Validator
	cfg       *config.Config
	logger    *slog.Logger
	now       func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	authAPI service.AuthAPI,
	userAPI service.UserAPI,
	validator *validation.Validator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		authAPI:   authAPI,
		userAPI:   userAPI,
		validator: validator,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoginState renders the saved login flow.
func (srv *authService) LoginState(ctx context.Context, store service.SessionStore) *usecase.LoginView {
	return srv.view(store.LoginFlow(ctx))
}

// RequestOTP sends a code to the entered phone and moves the flow to code entry.
func (srv *authService) RequestOTP(ctx context.Context, store service.SessionStore, input *usecase.RequestOTPInput) (*usecase.LoginView, error) {
	flow := store.LoginFlow(ctx)
	if flow.Step == entity.StepOTPEntry {
		return nil, errors.Wrap(domainerrors.ErrLoginStepInvalid.WithDetails("code already sent"), "request otp")
	}

	phone := entity.NormalizePhone(input.Phone)
	if err := srv.validator.Validate(&phoneInput{Phone: phone}); err != nil {
		return nil, errors.Wrap(err, "request otp")
	}

	challenge, err := srv.authAPI.RequestOTP(ctx, phone, input.Device)
	if err != nil {
		return nil, errors.Wrap(err, "failed to request otp")
	}

	flow.CodeSent(phone, challenge, srv.now())
	if err := store.SaveLoginFlow(ctx, flow); err != nil {
		return nil, errors.Wrap(err, "failed to save login flow")
	}
	srv.log(ctx).Info("otp requested", slog.String("phone", entity.FormatPhoneDisplay(phone)))

	return srv.view(flow), nil
}

// VerifyOTP exchanges the code for a token pair. A rejected code leaves the
// flow in code entry.
func (srv *authService) VerifyOTP(ctx context.Context, store service.SessionStore, input *usecase.VerifyOTPInput) (*usecase.LoginResult, error) {
	flow := store.LoginFlow(ctx)
	if flow.Step != entity.StepOTPEntry {
		return nil, errors.Wrap(domainerrors.ErrLoginStepInvalid.WithDetails("request a code first"), "verify otp")
	}

	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.Wrap(err, "verify otp")
	}

	result, err := srv.authAPI.VerifyOTP(ctx, flow.Phone, input.Code, input.Device)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify otp")
	}

	if err := store.SetTokens(ctx, &result.TokenBundle); err != nil {
		return nil, errors.Wrap(err, "failed to store tokens")
	}

	user := result.User.ToUser(srv.now())
	if err := store.SetUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to store user")
	}

	// The finished flow is not kept; the next visit to login starts over.
	flow.Authenticated()
	if err := store.ClearLoginFlow(ctx); err != nil {
		srv.log(ctx).Warn("failed to clear login flow", slog.Any("error", err))
	}
	srv.log(ctx).Info("user signed in", slog.String("user_id", user.ID), slog.String("role", user.Role.String()))

	return &usecase.LoginResult{
		Step:       flow.Step,
		User:       user,
		RedirectTo: srv.redirectAfterLogin(input.ReturnTo, user.Role),
	}, nil
}

// ResendOTP sends a new code once the cooldown has elapsed.
func (srv *authService) ResendOTP(ctx context.Context, store service.SessionStore, device *entity.DeviceInfo) (*usecase.LoginView, error) {
	flow := store.LoginFlow(ctx)
	if flow.Step != entity.StepOTPEntry {
		return nil, errors.Wrap(domainerrors.ErrLoginStepInvalid.WithDetails("request a code first"), "resend otp")
	}

	now := srv.now()
	if !flow.CanResend(now) {
		remaining := strconv.Itoa(wholeSeconds(flow.ResendIn(now)))

		return nil, errors.Wrap(domainerrors.ErrResendCooldown.WithDetails(remaining), "resend otp")
	}

	challenge, err := srv.authAPI.RequestOTP(ctx, flow.Phone, device)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resend otp")
	}

	flow.CodeSent(flow.Phone, challenge, srv.now())
	if err := store.SaveLoginFlow(ctx, flow); err != nil {
		return nil, errors.Wrap(err, "failed to save login flow")
	}

	return srv.view(flow), nil
}

// ChangePhone discards the sent code and returns to phone entry.
func (srv *authService) ChangePhone(ctx context.Context, store service.SessionStore) (*usecase.LoginView, error) {
	flow := store.LoginFlow(ctx)
	flow.ChangePhone()

	if err := store.ClearLoginFlow(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to reset login flow")
	}

	return srv.view(flow), nil
}

// Logout revokes the refresh token remotely when possible and always clears
// the local credentials. The anonymous session survives.
func (srv *authService) Logout(ctx context.Context, store service.SessionStore) error {
	if refreshToken := store.RefreshToken(ctx); refreshToken != "" {
		if err := srv.authAPI.Logout(ctx, store, refreshToken); err != nil {
			srv.log(ctx).Warn("remote logout failed", slog.Any("error", err))
		}
	}

	return srv.clearLocal(ctx, store)
}

// LogoutAll revokes every session of the account. Local credentials are
// cleared even when the remote call fails.
func (srv *authService) LogoutAll(ctx context.Context, store service.SessionStore) error {
	remoteErr := srv.authAPI.LogoutAll(ctx, store)

	if err := srv.clearLocal(ctx, store); err != nil {
		return err
	}

	if remoteErr != nil && !errors.Is(remoteErr, domainerrors.ErrAuthenticationRequired) {
		return errors.Wrap(remoteErr, "failed to logout everywhere")
	}

	return nil
}

// CurrentUser returns the signed-in user or nil for guests.
func (srv *authService) CurrentUser(ctx context.Context, store service.SessionStore) (*entity.User, error) {
	return currentUser(ctx, store, srv.userAPI, srv.log(ctx))
}

func (srv *authService) clearLocal(ctx context.Context, store service.SessionStore) error {
	if err := store.ClearTokens(ctx); err != nil {
		return errors.Wrap(err, "failed to clear tokens")
	}
	if err := store.ClearLoginFlow(ctx); err != nil {
		return errors.Wrap(err, "failed to clear login flow")
	}

	return nil
}

func (srv *authService) view(flow *entity.LoginFlow) *usecase.LoginView {
	now := srv.now()
	view := &usecase.LoginView{
		Step:      flow.Step,
		Phone:     flow.Phone,
		ResendIn:  wholeSeconds(flow.ResendIn(now)),
		CanResend: flow.CanResend(now),
	}
	if flow.Phone != "" {
		view.PhoneDisplay = entity.FormatPhoneDisplay(flow.Phone)
	}
	if srv.cfg.Auth.ExposeDevCode {
		view.DevCode = flow.DevCode
	}

	return view
}

// redirectAfterLogin honours a local return path and otherwise sends staff
// to the admin console and customers to the shop.
func (srv *authService) redirectAfterLogin(returnTo string, role entity.Role) string {
	routes := srv.cfg.Routes
	if isSafeReturnPath(returnTo) &&
		!matchesPrefix(returnTo, routes.LoginPath) &&
		(role.CanAccessAdminPanel() || !matchesPrefix(returnTo, routes.AdminPath)) {
		return returnTo
	}

	if role.CanAccessAdminPanel() {
		return routes.AdminPath
	}

	return routes.HomePath
}

// isSafeReturnPath accepts only same-origin absolute paths.
func isSafeReturnPath(p string) bool {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return false
	}

	u, err := url.Parse(p)
	if err != nil {
		return false
	}

	return u.Scheme == "" && u.Host == ""
}

// matchesPrefix reports whether p equals prefix or lies below it.
func matchesPrefix(p, prefix string) bool {
	if prefix == "" {
		return false
	}
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}

	return p == prefix || strings.HasPrefix(p, strings.TrimSuffix(prefix, "/")+"/")
}
