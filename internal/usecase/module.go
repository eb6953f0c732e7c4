package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/tradewind/storefront/internal/adapter/mailer"
	"github.com/tradewind/storefront/internal/adapter/paypal"
	"github.com/tradewind/storefront/internal/config"
	"github.com/tradewind/storefront/internal/domain/repository"
)

type checkoutParams struct {
	fx.In

	Orders   repository.OrderRepository
	Products repository.ProductRepository
	Provider paypal.Client
	Config   *config.Config
}

func newCheckoutUseCase(p checkoutParams) *CheckoutUseCase {
	return NewCheckoutUseCase(p.Orders, p.Products, p.Provider, p.Config.Currency)
}

type marketingParams struct {
	fx.In

	Marketing repository.MarketingRepository
	Mail      mailer.Publisher
	Logger    *slog.Logger
	Config    *config.Config
}

func newMarketingUseCase(p marketingParams) *MarketingUseCase {
	return NewMarketingUseCase(p.Marketing, p.Mail, p.Logger, p.Config.AdminEmail)
}

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	newCheckoutUseCase,
	NewOrderUseCase,
	NewCatalogUseCase,
	NewCartUseCase,
	NewWishlistUseCase,
	NewReviewUseCase,
	newMarketingUseCase,
)
