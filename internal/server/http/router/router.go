package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tradewind/storefront/internal/server/http/handlers"
	"github.com/tradewind/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	wishlistHandler := handlers.NewWishlistHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)
	marketingHandler := handlers.NewMarketingHandler(facade)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/profile", authHandler.Profile)

	products := api.Group("/products")
	products.GET("", catalogHandler.List)
	products.GET("/:productID", catalogHandler.Get)
	products.GET("/:productID/reviews", reviewHandler.List)

	productsAuth := products.Group("")
	productsAuth.Use(middleware.AuthRequired(facade))
	productsAuth.POST("/:productID/reviews", reviewHandler.Create)
	productsAuth.PUT("/:productID/reviews/:reviewID", reviewHandler.Update)
	productsAuth.DELETE("/:productID/reviews/:reviewID", reviewHandler.Delete)

	checkout := api.Group("/checkout")
	checkout.Use(middleware.AuthRequired(facade))
	checkout.POST("/orders", checkoutHandler.Create)
	checkout.GET("/orders/:orderID/validate", checkoutHandler.Validate)
	checkout.POST("/orders/:orderID/capture", checkoutHandler.Capture)
	checkout.POST("/orders/:orderID/cancel", checkoutHandler.Cancel)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.GET("", orderHandler.List)
	orders.GET("/:orderID", orderHandler.Get)
	orders.POST("/:orderID/cancel", orderHandler.Cancel)

	cart := api.Group("/cart")
	cart.Use(middleware.AuthRequired(facade))
	cart.GET("", cartHandler.Get)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items", cartHandler.AddItems)
	cart.PATCH("/items/:productID", cartHandler.UpdateItem)
	cart.DELETE("/items/:productID", cartHandler.RemoveItem)

	wishlist := api.Group("/wishlist")
	wishlist.Use(middleware.AuthRequired(facade))
	wishlist.GET("", wishlistHandler.List)
	wishlist.DELETE("", wishlistHandler.Clear)
	wishlist.POST("/:productID", wishlistHandler.Add)
	wishlist.DELETE("/:productID", wishlistHandler.Remove)

	api.POST("/contact", marketingHandler.SubmitContact)
	api.POST("/newsletter/subscribe", marketingHandler.Subscribe)
	api.POST("/newsletter/unsubscribe", marketingHandler.Unsubscribe)

	sell := api.Group("/sell-requests")
	sell.Use(middleware.AuthRequired(facade))
	sell.POST("", marketingHandler.SubmitSellRequest)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired(facade))
	admin.POST("/products", catalogHandler.Create)
	admin.POST("/checkout/orders/:orderID/refund", checkoutHandler.Refund)
	admin.PATCH("/orders/:orderID/fulfilment", orderHandler.UpdateFulfilment)
	admin.GET("/orders/stats", orderHandler.Stats)
	admin.POST("/newsletter/campaigns", marketingHandler.CreateCampaign)
	admin.GET("/contact", marketingHandler.ListContacts)
	admin.GET("/sell-requests", marketingHandler.ListSellRequests)

	return engine
}
