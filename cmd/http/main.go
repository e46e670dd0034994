package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rafaelleal24/catalog/internal/adapters/config"
	"github.com/rafaelleal24/catalog/internal/adapters/http"
	"github.com/rafaelleal24/catalog/internal/adapters/http/controllers"
	"github.com/rafaelleal24/catalog/internal/adapters/mongo"
	"github.com/rafaelleal24/catalog/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/catalog/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/catalog/internal/core/logger"
	"github.com/rafaelleal24/catalog/internal/core/port"
	"github.com/rafaelleal24/catalog/internal/core/service"
	"github.com/rafaelleal24/catalog/internal/core/validation"
)

// @title       Catalog API
// @version     1.0
// @description Products and providers management API

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func main() {
	cfg := config.NewConfig()
	if err := logger.Initialize(logger.Options{
		Endpoint:    cfg.Logger.Endpoint,
		ServiceName: cfg.Logger.ServiceName,
		Production:  cfg.Logger.IsProduction,
		Level:       logger.ParseLevel(cfg.Logger.Level),
	}); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongoClient, err := mongo.NewConnection(ctx, cfg.Mongo)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer disconnectCancel()
		if err := mongo.Disconnect(disconnectCtx, mongoClient); err != nil {
			logger.Error(disconnectCtx, "Failed to disconnect from MongoDB", err, nil)
		}
	}()
	logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})

	checkers := []controllers.HealthChecker{
		{Name: "mongodb", Check: mongo.HealthCheck(mongoClient)},
	}

	// change events are optional, a disabled broker swallows them
	var broker port.BrokerPort = rabbitmq.NewNoopPublisher()
	if cfg.RabbitMQ.Enabled {
		adapter, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
		}
		broker = adapter
		checkers = append(checkers, controllers.HealthChecker{
			Name:  "rabbitmq",
			Check: func(ctx context.Context) error { return adapter.HealthCheck() },
		})
		logger.Info(ctx, "Connected to RabbitMQ", nil)
	}
	defer broker.Close()

	database := mongoClient.Database(cfg.Mongo.Database)
	productRepository := repository.NewProductRepository(database)
	providerRepository := repository.NewProviderRepository(database)

	productService := service.NewProductService(productRepository, broker)
	providerService := service.NewProviderService(providerRepository, broker)

	validator := validation.New()
	productController := controllers.NewProductController(productService, validator)
	providerController := controllers.NewProviderController(providerService, validator)
	healthController := controllers.NewHealthController(checkers)

	router := http.NewRouter(healthController, productController, providerController, cfg.Metrics.Enabled)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]any{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{"addr": cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port})
	if err := router.ListenAndServe(ctx, cfg.HTTP); err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}
