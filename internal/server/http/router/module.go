package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/tradewind/storefront/internal/app"
)

func newRouter(facade *app.CommerceFacade, logger *slog.Logger) *gin.Engine {
	return Setup(facade, logger)
}

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newRouter)
