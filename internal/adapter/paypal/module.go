package paypal

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/tradewind/storefront/internal/config"
)

// Module exposes the provider client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.PayPalAPIURL, p.Config.PayPalClientID, p.Config.PayPalClientSecret, p.Logger)
}
