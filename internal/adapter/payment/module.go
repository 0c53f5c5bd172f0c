package payment

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/sellaro/storefront/internal/config"
)

// Module exposes the payment signer and client to the fx graph.
var Module = fx.Options(
	fx.Provide(newSigner),
	fx.Provide(newClient),
)

type signerParams struct {
	fx.In

	Config *config.Config
}

func newSigner(p signerParams) *Signer {
	return NewSigner(p.Config.PaymentPartner, p.Config.PaymentAccessKey, p.Config.PaymentSecretKey)
}

type clientParams struct {
	fx.In

	Config *config.Config
	Signer *Signer
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.PaymentAddress, p.Config.PaymentPartner, p.Signer, p.Logger)
}
