package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	nrecho "github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/walletlogs/payment-relay/internal/pkg/config"
	"github.com/walletlogs/payment-relay/internal/pkg/database"
	"github.com/walletlogs/payment-relay/internal/pkg/health"
	"github.com/walletlogs/payment-relay/internal/pkg/logger"
	"github.com/walletlogs/payment-relay/internal/pkg/middleware"
	nsqpkg "github.com/walletlogs/payment-relay/internal/pkg/nsq"
	nrpkg "github.com/walletlogs/payment-relay/internal/pkg/newrelic"
	"github.com/walletlogs/payment-relay/internal/pkg/server"
	"github.com/walletlogs/payment-relay/services/payment"
	"github.com/walletlogs/payment-relay/services/payment/gateway"
	"github.com/walletlogs/payment-relay/services/payment/handler"
	"github.com/walletlogs/payment-relay/services/payment/repository"
	"github.com/walletlogs/payment-relay/services/payment/usecase"
)

func main() {
	appName := "payment-service"
	configPath := "config/payment.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and the application logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	shutdownManager := server.NewShutdownManager(zapLogger)

	// Select the transaction store backend
	var transactionRepo payment.TransactionRepo
	switch configs.Store.Driver {
	case "redis":
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdownManager.Register(func(ctx context.Context) error {
			return redisClient.Close()
		})
		transactionRepo = repository.NewRedisTransactionRepo(redisClient, configs.Store)
		logger.Info("Using Redis transaction store",
			logger.Int("ttl_seconds", configs.Store.TTLSeconds))
	default:
		transactionRepo = repository.NewMemoryTransactionRepo()
		logger.Info("Using in-memory transaction store")
	}

	// NSQ producer for status events, optional
	var producer *nsqpkg.Producer
	if configs.NSQ.Address != "" {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		shutdownManager.Register(func(ctx context.Context) error {
			producer.Stop()
			return nil
		})
		logger.Info("NSQ producer initialized", logger.String("address", configs.NSQ.Address))
	}

	// Initialize gateway adapter, usecase and handlers
	paymentGW := gateway.NewPaymentGW(configs, producer)
	paymentUC := usecase.NewPaymentUC(configs, transactionRepo, paymentGW)
	paymentHandler := handler.NewHandler(paymentUC, configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Panic recovery must come first
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	paymentHandler.RegisterRoutes(e)

	if nrApp != nil {
		shutdownManager.Register(func(ctx context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	// Blocks until a shutdown signal arrives
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = shutdownManager.Shutdown(ctx)

	logger.Info("Server exiting gracefully")
}
