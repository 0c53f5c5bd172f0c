package events

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/sellaro/storefront/internal/config"
)

// Module provides the event publisher, falling back to a no-op when no
// brokers are configured.
var Module = fx.Options(
	fx.Provide(newPublisher),
	fx.Invoke(registerLifecycle),
)

type params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newPublisher(p params) Publisher {
	if len(p.Config.KafkaBrokers) == 0 {
		return NoopPublisher{}
	}
	return NewKafkaPublisher(p.Config.KafkaBrokers, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, pub Publisher) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return pub.Close()
		},
	})
}
