package cache

import (
	"context"

	"go.uber.org/fx"

	"github.com/sellaro/storefront/internal/config"
)

// Module provides the cache client, falling back to a no-op when redis
// is not configured.
var Module = fx.Options(
	fx.Provide(newCache),
	fx.Invoke(registerLifecycle),
)

type params struct {
	fx.In

	Config *config.Config
}

func newCache(p params) Cache {
	if p.Config.RedisAddr == "" {
		return Noop{}
	}
	return NewRedis(p.Config.RedisAddr)
}

func registerLifecycle(lc fx.Lifecycle, c Cache) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return c.Close()
		},
	})
}
