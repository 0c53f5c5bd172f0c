package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/sellaro/storefront/internal/server/http/handlers"
	"github.com/sellaro/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade)

	api := engine.Group("/api/v1")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	api.GET("/categories", catalogHandler.Categories)
	api.GET("/products", catalogHandler.Products)
	api.GET("/products/:slug", catalogHandler.Product)

	// Provider callbacks authenticate via payload signature, not session.
	api.POST("/payment/momo-ipn", paymentHandler.Notify)

	user := api.Group("")
	user.Use(middleware.AuthRequired(facade))
	user.GET("/cart", cartHandler.Get)
	user.DELETE("/cart", cartHandler.Clear)
	user.POST("/cart/items", cartHandler.AddItem)
	user.PUT("/cart/items/:variantID", cartHandler.SetQuantity)
	user.DELETE("/cart/items/:variantID", cartHandler.RemoveItem)
	user.POST("/orders", orderHandler.Checkout)
	user.GET("/orders", orderHandler.List)
	user.GET("/orders/:code", orderHandler.Get)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	admin.POST("/categories", catalogHandler.CreateCategory)
	admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)
	admin.POST("/products", catalogHandler.CreateProduct)
	admin.PUT("/products/:id", catalogHandler.UpdateProduct)
	admin.DELETE("/products/:id", catalogHandler.DeleteProduct)
	admin.POST("/variants", catalogHandler.CreateVariant)
	admin.PUT("/variants/:id", catalogHandler.UpdateVariant)
	admin.PATCH("/variants/:id/inventory", catalogHandler.AdjustInventory)
	admin.DELETE("/variants/:id", catalogHandler.DeleteVariant)
	admin.PATCH("/orders/:code/status", orderHandler.UpdateStatus)
	admin.POST("/orders/:code/cancel", orderHandler.Cancel)
	admin.GET("/stats/summary", statsHandler.Summary)

	return engine
}
