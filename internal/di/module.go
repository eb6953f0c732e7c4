package di

import (
	"go.uber.org/fx"

	"github.com/tradewind/storefront/internal/adapter/mailer"
	"github.com/tradewind/storefront/internal/adapter/paypal"
	"github.com/tradewind/storefront/internal/app"
	"github.com/tradewind/storefront/internal/config"
	"github.com/tradewind/storefront/internal/logger"
	"github.com/tradewind/storefront/internal/pkg/auth"
	"github.com/tradewind/storefront/internal/server/http/router"
	"github.com/tradewind/storefront/internal/storage/postgres"
	"github.com/tradewind/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		paypal.Module,
		mailer.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
