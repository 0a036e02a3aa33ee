// Package redis provides the redis client used by the server-side session backend.
package redis

import (
	"context"
	"log/slog"
	"time"

	"autoparts/config"
	"autoparts/internal/domain/lifecycle"
	"autoparts/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	poolMonitorInterval = 5 * time.Second
	poolTimeoutsWarnMin = 1
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the redis client and ties its connection to the fx lifecycle.
func New(params Params) (*goredis.Client, error) {
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		return nil, errors.New("redis is not configured")
	}

	client := NewClient(params.Config.Redis)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Connected to redis", slog.String("addr", params.Config.Redis.Addr))

			go monitorPool(monitorCtx, params.Logger, client, poolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// NewClient builds a client without connecting.
func NewClient(cfg *config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func monitorPool(ctx context.Context, logger *slog.Logger, client *goredis.Client, interval time.Duration) {
	if logger == nil || client == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := *client.PoolStats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := *client.PoolStats()
			timeoutsDelta := cur.Timeouts - prev.Timeouts
			missesDelta := cur.Misses - prev.Misses

			if timeoutsDelta > 0 || missesDelta > 0 {
				attrs := []slog.Attr{
					slog.Uint64("timeoutsDelta", uint64(timeoutsDelta)),
					slog.Uint64("missesDelta", uint64(missesDelta)),
					slog.Uint64("totalConns", uint64(cur.TotalConns)),
					slog.Uint64("idleConns", uint64(cur.IdleConns)),
					slog.Uint64("staleConns", uint64(cur.StaleConns)),
				}
				if timeoutsDelta >= poolTimeoutsWarnMin {
					logger.LogAttrs(ctx, slog.LevelWarn, "Redis pool timeouts detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Redis pool misses observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
