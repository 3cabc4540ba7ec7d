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

	"github.com/eatwithchiso/service-booking/internal/adapter"
	"github.com/eatwithchiso/service-booking/internal/application"
	"github.com/eatwithchiso/service-booking/internal/common/health"
	"github.com/eatwithchiso/service-booking/internal/common/kafka"
	"github.com/eatwithchiso/service-booking/internal/common/logger"
	"github.com/eatwithchiso/service-booking/internal/common/middleware"
	"github.com/eatwithchiso/service-booking/internal/config"
	"github.com/eatwithchiso/service-booking/internal/domain/menu"
	bookingEvents "github.com/eatwithchiso/service-booking/internal/events"
	"github.com/eatwithchiso/service-booking/internal/handler"
	"github.com/eatwithchiso/service-booking/internal/repository"
)

const serviceName = "service-booking"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("starting "+serviceName,
		zap.String("port", cfg.Port),
		zap.String("store_driver", cfg.StoreDriver),
		zap.Bool("kafka_enabled", cfg.KafkaConfig.Enabled),
	)

	// Connect the key-value store
	connectCtx, connectCancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := openStore(connectCtx, cfg, zapLogger)
	connectCancel()
	if err != nil {
		zapLogger.Fatal("failed to open store", zap.Error(err))
	}
	defer store.Close()

	bookingRepo := repository.NewBookingRepository(store)

	// Confirmation notifier
	var notifier adapter.Notifier
	if cfg.EmailConfig.ResendAPIKey != "" {
		resendNotifier, err := adapter.NewResendNotifier(adapter.ResendConfig{
			APIKey:  cfg.EmailConfig.ResendAPIKey,
			From:    cfg.EmailConfig.From,
			ReplyTo: cfg.EmailConfig.ReplyTo,
			BaseURL: cfg.EmailConfig.BaseURL,
		}, zapLogger)
		if err != nil {
			zapLogger.Fatal("failed to configure email provider", zap.Error(err))
		}
		notifier = resendNotifier
	} else {
		zapLogger.Warn("RESEND_API_KEY not set, confirmation emails will not be delivered")
		notifier = adapter.NewUnconfiguredNotifier(zapLogger)
	}

	// Event publisher
	var publisher application.EventPublisher = bookingEvents.NoopPublisher{}
	if cfg.KafkaConfig.Enabled {
		kafkaProducer := kafka.NewProducer(cfg.KafkaConfig.Brokers, zapLogger)
		defer kafkaProducer.Close()
		publisher = bookingEvents.NewBookingPublisher(kafkaProducer, zapLogger)
	}

	// Initialize application services
	bookingService := application.NewBookingService(bookingRepo, notifier, publisher, zapLogger)
	menuService := application.NewMenuService(menu.DefaultCatalog(), zapLogger)

	// Kafka consumer for booking commands
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	if cfg.KafkaConfig.Enabled {
		consumerGroupID := cfg.KafkaConfig.GroupPrefix + serviceName
		commandConsumer := bookingEvents.NewBookingCommandConsumer(
			cfg.KafkaConfig.Brokers,
			consumerGroupID,
			bookingService,
			zapLogger,
		)
		defer commandConsumer.Close()

		go func() {
			zapLogger.Info("starting booking command consumer")
			if err := commandConsumer.Start(consumerCtx); err != nil {
				if consumerCtx.Err() == nil {
					zapLogger.Error("booking command consumer failed", zap.Error(err))
				}
			}
		}()
	}

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.LoggerMiddleware(zapLogger))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	postLimit := middleware.RateLimitMiddleware(cfg.RateLimitPerMinute, zapLogger)

	// Register routes
	handler.RegisterRootRoute(router, menuService)
	health.NewHandler(bookingRepo, serviceName).RegisterRoutes(router)
	handler.NewBookingHandler(bookingService).RegisterRoutes(router, postLimit)
	handler.NewStoreHandler(bookingService).RegisterRoutes(router, cfg.StoreAPIKey, postLimit)
	handler.NewMenuHandler(menuService).RegisterRoutes(router)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		zapLogger.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down " + serviceName + "...")

	// Cancel Kafka consumer
	consumerCancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info(serviceName + " stopped")
}
