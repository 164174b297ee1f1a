package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skilz-store/api/handlers"
	"skilz-store/internal/config"
	"skilz-store/internal/models"
	"skilz-store/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// Initialize services
	catalog := services.NewCatalogService()
	if err := catalog.Validate(); err != nil {
		logger.Fatal("Catalog data invalid", zap.Error(err))
	}

	cart := services.NewCartService(logger)
	cart.Subscribe(func(snap models.CartSnapshot) {
		logger.Debug("cart updated",
			zap.Int("items", snap.ItemCount),
			zap.Float64("total", snap.TotalPrice),
		)
	})
	checkout := services.NewCheckoutService(
		cart,
		&services.SimulatedProcessor{Delay: cfg.PaymentDelay},
		logger,
	)
	accounts := services.NewAccountService(logger)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalog)
	cartHandler := handlers.NewCartHandler(cart, catalog)
	checkoutHandler := handlers.NewCheckoutHandler(checkout)
	authHandler := handlers.NewAuthHandler(accounts)

	router := setupRouter(cfg, logger, productHandler, cartHandler, checkoutHandler, authHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", server.Addr),
			zap.String("environment", cfg.Environment),
			zap.Int("products", catalog.Size()),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	// An in-flight simulated settlement is cut loose here; the cart and
	// checkout state die with the process anyway.
	checkout.Abandon()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server shutdown complete")
}

func setupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	productHandler *handlers.ProductHandler,
	cartHandler *handlers.CartHandler,
	checkoutHandler *handlers.CheckoutHandler,
	authHandler *handlers.AuthHandler,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))

	api := router.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/featured", productHandler.GetFeaturedProducts)
			products.GET("/discounted", productHandler.GetDiscountedProducts)
			products.GET("/:id", productHandler.GetProductByID)
		}

		api.GET("/categories", productHandler.GetCategories)

		cart := api.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.GET("/count", cartHandler.GetCartCount)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:product_id", cartHandler.UpdateItem)
			cart.DELETE("/items/:product_id", cartHandler.RemoveItem)
			cart.DELETE("", cartHandler.ClearCart)
		}

		checkout := api.Group("/checkout")
		{
			checkout.GET("", checkoutHandler.GetState)
			checkout.POST("", checkoutHandler.Begin)
			checkout.POST("/shipping", checkoutHandler.SubmitShipping)
			checkout.POST("/back", checkoutHandler.Back)
			checkout.POST("/payment", checkoutHandler.SubmitPayment)
			checkout.DELETE("", checkoutHandler.Abandon)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		api.GET("/health", productHandler.HealthCheck)
	}

	return router
}

func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}

func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
