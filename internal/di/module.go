package di

import (
	"go.uber.org/fx"

	"github.com/sellaro/storefront/internal/adapter/payment"
	"github.com/sellaro/storefront/internal/app"
	"github.com/sellaro/storefront/internal/cache"
	"github.com/sellaro/storefront/internal/config"
	"github.com/sellaro/storefront/internal/events"
	"github.com/sellaro/storefront/internal/logger"
	"github.com/sellaro/storefront/internal/pkg/auth"
	"github.com/sellaro/storefront/internal/server/http/handlers"
	"github.com/sellaro/storefront/internal/server/http/router"
	"github.com/sellaro/storefront/internal/storage/postgres"
	"github.com/sellaro/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		events.Module,
		payment.Module,
		usecase.Module,
		fx.Provide(func(f *app.StoreFacade) handlers.StoreFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
