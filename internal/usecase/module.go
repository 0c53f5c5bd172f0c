package usecase

import (
	"go.uber.org/fx"

	"github.com/sellaro/storefront/internal/adapter/payment"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		NewAuthUseCase,
		NewCatalogUseCase,
		NewCartUseCase,
		NewOrderUseCase,
		NewPaymentUseCase,
		NewStatsUseCase,
	),
	fx.Provide(func(s *payment.Signer) NotificationVerifier { return s }),
)
