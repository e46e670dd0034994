package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rafaelleal24/catalog/internal/adapters/config"
	"github.com/rafaelleal24/catalog/internal/adapters/http/controllers"
	"github.com/rafaelleal24/catalog/internal/adapters/http/handlers"
	"github.com/rafaelleal24/catalog/internal/adapters/http/middleware"
)

type Router struct {
	healthController   *controllers.HealthController
	productController  *controllers.ProductController
	providerController *controllers.ProviderController
	metricsEnabled     bool
}

func NewRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	providerController *controllers.ProviderController,
	metricsEnabled bool,
) *Router {
	return &Router{
		healthController:   healthController,
		productController:  productController,
		providerController: providerController,
		metricsEnabled:     metricsEnabled,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(handlers.Recovery(), middleware.RequestID())
	if r.metricsEnabled {
		router.Use(middleware.Metrics())
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.GET("/", r.healthController.Welcome)

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		products := v1Group.Group("/products")
		products.POST("", r.productController.CreateProduct)
		products.GET("", r.productController.GetProducts)
		products.GET("/provider/:providerId", r.productController.GetProductsByProvider)
		products.GET("/:id", r.productController.GetProductByID)
		products.PUT("/:id", r.productController.UpdateProduct)
		products.PATCH("/:id", r.productController.UpdateProduct)
		products.DELETE("/:id", r.productController.DeleteProduct)

		providers := v1Group.Group("/providers")
		providers.POST("", r.providerController.CreateProvider)
		providers.GET("", r.providerController.GetProviders)
		providers.GET("/:id", r.providerController.GetProviderByID)
		providers.PATCH("/:id", r.providerController.UpdateProvider)
		providers.PUT("/:id", r.providerController.ReplaceProvider)
		providers.DELETE("/:id", r.providerController.DeleteProvider)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.New()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
