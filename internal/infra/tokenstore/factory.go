package tokenstore

import (
	"context"
	"log/slog"

	"autoparts/config"
	"autoparts/internal/errors"
	infraredis "autoparts/internal/infra/persistence/redis"

	"go.uber.org/fx"
)

// Params defines the dependencies of the store factory
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Factory opens a Store for each request according to session.store.
type Factory struct {
	backend Backend
	opts    Options
	logger  *slog.Logger
}

// NewFactory selects the backend and registers its lifecycle hooks.
func NewFactory(params Params) (*Factory, error) {
	opts := OptionsFromConfig(params.Config)

	var backend Backend
	switch params.Config.Session.Store {
	case config.SessionStoreCookie, "":
	case config.SessionStoreMemory:
		memory := NewMemoryBackend()
		params.Append(fx.Hook{
			OnStart: func(context.Context) error {
				memory.Start(defaultJanitorInterval)

				return nil
			},
			OnStop: memory.Stop,
		})
		backend = memory
	case config.SessionStoreRedis:
		client, err := infraredis.New(infraredis.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis session backend")
		}
		backend = NewRedisBackend(client)
	default:
		return nil, errors.Errorf("unknown session store: %s", params.Config.Session.Store)
	}

	params.Logger.Info("Session store selected", slog.String("store", params.Config.Session.Store))

	return &Factory{backend: backend, opts: opts, logger: params.Logger}, nil
}

// NewFactoryWithBackend builds a factory directly; nil backend means cookies.
func NewFactoryWithBackend(backend Backend, opts Options, logger *slog.Logger) *Factory {
	return &Factory{backend: backend, opts: opts, logger: logger}
}

// Options returns the cookie options used for new jars.
func (f *Factory) Options() Options {
	return f.opts
}

// Open returns the store for the request behind jar.
func (f *Factory) Open(jar *CookieJar) *Store {
	if f.backend == nil {
		return NewCookieStore(jar, f.opts, f.logger)
	}

	return NewServerStore(jar, f.backend, f.opts, f.logger)
}

// OptionsFromConfig maps session config onto store options.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	opts.Secure = cfg.Session.SecureCookies
	opts.Domain = cfg.Session.CookieDomain

	if cfg.Session.RefreshTokenTTL > 0 {
		opts.RefreshTokenTTL = cfg.Session.RefreshTokenTTL
	}
	if cfg.Session.DefaultAccessTokenTTL > 0 {
		opts.DefaultAccessTokenTTL = cfg.Session.DefaultAccessTokenTTL
	}
	if cfg.Session.ProjectionTTL > 0 {
		opts.ProjectionTTL = cfg.Session.ProjectionTTL
	}
	if cfg.Session.LoginFlowTTL > 0 {
		opts.LoginFlowTTL = cfg.Session.LoginFlowTTL
	}
	if cfg.Session.KeyPrefix != "" {
		opts.KeyPrefix = cfg.Session.KeyPrefix
	}

	return opts
}
