package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	financeapp "github.com/opsportal/backend/internal/application/finance"
	inventoryapp "github.com/opsportal/backend/internal/application/inventory"
	orderapp "github.com/opsportal/backend/internal/application/order"
	partnerapp "github.com/opsportal/backend/internal/application/partner"
	pricingapp "github.com/opsportal/backend/internal/application/pricing"
	qualityapp "github.com/opsportal/backend/internal/application/quality"
	reportapp "github.com/opsportal/backend/internal/application/report"
	"github.com/opsportal/backend/internal/domain/order"
	"github.com/opsportal/backend/internal/domain/shared"
	"github.com/opsportal/backend/internal/infrastructure/auth"
	"github.com/opsportal/backend/internal/infrastructure/config"
	"github.com/opsportal/backend/internal/infrastructure/event"
	"github.com/opsportal/backend/internal/infrastructure/logger"
	"github.com/opsportal/backend/internal/infrastructure/persistence"
	"github.com/opsportal/backend/internal/infrastructure/storage"
	"github.com/opsportal/backend/internal/interfaces/http/handler"
	"github.com/opsportal/backend/internal/interfaces/http/middleware"
	"github.com/opsportal/backend/internal/interfaces/http/router"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting operations portal",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	itemRepo := persistence.NewGormInventoryItemRepository(db.DB)
	movementRepo := persistence.NewGormInventoryMovementRepository(db.DB)
	usageRepo := persistence.NewGormMaterialUsageRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	defectRepo := persistence.NewGormDefectRecordRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)

	// Receipt attachment storage
	attachments, err := storage.NewAttachmentStore(&cfg.Storage)
	if err != nil {
		log.Fatal("Failed to initialize attachment storage", zap.Error(err))
	}
	log.Info("Attachment storage ready", zap.String("provider", cfg.Storage.Provider))

	// Event bus for order lifecycle notifications. Every published event
	// is written to the audit log.
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.SubscribeAll(func(_ context.Context, evt shared.DomainEvent) error {
		log.Info("Domain event",
			zap.String("event_type", evt.EventType()),
			zap.String("aggregate_type", evt.AggregateType()),
			zap.String("aggregate_id", evt.AggregateID().String()),
		)
		return nil
	})

	// Application services
	clientService := partnerapp.NewClientService(clientRepo)
	orderService := orderapp.NewOrderService(orderRepo, clientRepo, order.PermissivePolicy{})
	orderService.SetEventBus(eventBus)
	itemService := inventoryapp.NewItemService(itemRepo)
	movementService := inventoryapp.NewMovementService(movementRepo, itemRepo)
	usageService := inventoryapp.NewUsageService(usageRepo, itemRepo, orderRepo)
	expenseService := financeapp.NewExpenseService(expenseRepo, attachments)
	defectService := qualityapp.NewDefectService(defectRepo, orderRepo)
	calculatorService := pricingapp.NewCalculatorService(itemRepo)
	reportService := reportapp.NewReportService(reportRepo, orderRepo, expenseRepo)

	jwtService := auth.NewJWTService(cfg.JWT)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r := router.New(router.Config{
		JWTService: jwtService,
		Logger:     log,
		CORS:       &corsConfig,
	})
	r.Register(
		handler.NewSystemHandler(db.DB, version),
		handler.NewClientHandler(clientService),
		handler.NewOrderHandler(orderService),
		handler.NewInventoryHandler(itemService, movementService, usageService),
		handler.NewExpenseHandler(expenseService),
		handler.NewDefectHandler(defectService),
		handler.NewCalculatorHandler(calculatorService),
		handler.NewReportHandler(reportService),
	)

	engine := r.Engine()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
