package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	budgetapp "github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/application/budget"
	hrsyncapp "github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/application/hrsync"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/application/notification"
	orderapp "github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/application/order"
	reconapp "github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/application/reconciliation"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/reconciliation"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/cache"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/config"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/event"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/hibob"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/logger"
	notifinfra "github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/notification"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/persistence"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/settings"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/telemetry"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/interfaces/http/handler"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/interfaces/http/middleware"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
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

	log.Info("Starting Home Office Shop",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	db, err := persistence.Open(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize OpenTelemetry tracing and metrics
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	meterProvider, err := telemetry.NewMeterProvider(context.Background(), telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()

	// Bridge application logs to the OTEL collector alongside the
	// configured output
	logsProvider, err := telemetry.NewLoggerProvider(context.Background(), telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize logs provider", zap.Error(err))
	}
	defer func() {
		if err := logsProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down logs provider", zap.Error(err))
		}
	}()
	if logsProvider.IsEnabled() {
		bridgeLevel, parseErr := zapcore.ParseLevel(cfg.Log.Level)
		if parseErr != nil {
			bridgeLevel = zapcore.InfoLevel
		}
		otelCore := telemetry.NewZapOTELCore(telemetry.ZapBridgeConfig{
			ServiceName:    cfg.Telemetry.ServiceName,
			LoggerProvider: logsProvider,
			Level:          bridgeLevel,
		})
		log = telemetry.NewBridgedLogger(log.Core(), otelCore,
			zap.AddCaller(),
			zap.AddStacktrace(zapcore.ErrorLevel),
		)
	}

	// Register database query tracing (otelgorm)
	if cfg.Telemetry.DBTraceEnabled {
		dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
			Enabled:         true,
			LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
			SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
			DBSystem:        "postgresql",
		}, log)
		if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}

	// Register database query and connection pool metrics
	dbMetricsCfg := telemetry.DefaultDBMetricsConfig()
	dbMetricsCfg.SlowQueryThreshold = cfg.Telemetry.DBSlowQueryThresh
	dbMetrics, err := telemetry.RegisterDBMetrics(db.DB, meterProvider, dbMetricsCfg, log)
	if err != nil {
		log.Warn("Failed to register database metrics", zap.Error(err))
	} else if dbMetrics != nil {
		dbMetrics.StartPoolStatsCollection(context.Background())
		defer dbMetrics.Stop()
	}

	// Initialize repositories
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	ruleRepo := persistence.NewGormBudgetRuleRepository(db.DB)
	overrideRepo := persistence.NewGormOverrideRepository(db.DB)
	adjustmentRepo := persistence.NewGormBudgetAdjustmentRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	catalogGateway := persistence.NewGormCatalogGateway(db.DB)
	reviewRepo := persistence.NewGormPurchaseReviewRepository(db.DB)
	runRepo := persistence.NewGormPurchaseSyncRunRepository(db.DB)
	outboxRepo := event.NewGormOutboxRepository(db.DB)
	auditSink := persistence.NewGormAuditSink(db.DB, log)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Settings provider with a short freshness window so HiBob category and
	// currency settings can change without a restart
	settingsProvider := settings.NewProvider(db.DB, cfg.Sync.SettingsTTL, settings.Defaults())

	// HiBob client. Credentials are required in production (enforced by config
	// validation); in development missing credentials get placeholders so the
	// server can boot, and sync operations fail at call time with HTTP 401.
	hibobCfg := &hibob.Config{
		BaseURL:          cfg.HiBob.BaseURL,
		ServiceUserID:    cfg.HiBob.ServiceUserID,
		ServiceUserToken: cfg.HiBob.ServiceUserToken,
		TimeoutSeconds:   cfg.HiBob.TimeoutSeconds,
	}
	if hibobCfg.ServiceUserID == "" || hibobCfg.ServiceUserToken == "" {
		log.Warn("HiBob credentials not configured, external sync calls will be rejected by the API")
		hibobCfg.ServiceUserID = "unconfigured"
		hibobCfg.ServiceUserToken = "unconfigured"
	}
	hibobClient, err := hibob.NewHTTPClient(hibobCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize HiBob client", zap.Error(err))
	}

	// Initialize event serializer and register all event types
	eventSerializer := event.NewEventSerializer()
	event.RegisterAllEvents(eventSerializer)

	// Outbox-backed publisher: events are saved in the same transaction as the
	// state change and delivered by the outbox processor
	eventPublisher := event.NewOutboxEventPublisher(db.DB, eventSerializer)

	// Initialize application services
	budgetService := budgetapp.NewBudgetService(employeeRepo, ruleRepo, overrideRepo, adjustmentRepo, orderapp.NewSpentReader(orderRepo), log)
	employeeService := budgetapp.NewEmployeeService(employeeRepo, ruleRepo, overrideRepo, log)
	cartService := orderapp.NewCartService(cartRepo, catalogGateway, log)
	orderService := orderapp.NewOrderService(txScope, orderRepo, catalogGateway, log)
	syncCoordinator := reconapp.NewSyncCoordinator()
	purchaseSyncService := reconapp.NewPurchaseSyncService(
		syncCoordinator, settingsProvider, hibobClient,
		employeeRepo, adjustmentRepo, orderRepo, reviewRepo, runRepo, log,
	)
	reviewService := reconapp.NewReviewService(reviewRepo, orderRepo, employeeRepo, adjustmentRepo, log)
	expenseSyncService := hrsyncapp.NewExpenseSyncService(txScope, hibobClient, settingsProvider, log)
	expenseSyncService.SetInterPushDelay(cfg.Sync.InterPushDelay)

	// Wire the outbox publisher and audit sink into the services
	budgetService.SetEventPublisher(eventPublisher)
	budgetService.SetAuditSink(auditSink)
	employeeService.SetAuditSink(auditSink)
	orderService.SetEventPublisher(eventPublisher)
	orderService.SetAuditSink(auditSink)
	purchaseSyncService.SetEventPublisher(eventPublisher)
	reviewService.SetEventPublisher(eventPublisher)
	reviewService.SetAuditSink(auditSink)
	expenseSyncService.SetEventPublisher(eventPublisher)
	expenseSyncService.SetAuditSink(auditSink)

	// Initialize event bus and notification handlers
	eventBus := event.NewInMemoryEventBus(log)

	// Notification delivery is at-most-once per event: handlers are wrapped in
	// an idempotency layer backed by Redis, falling back to process memory
	var idempotencyStore shared.IdempotencyStore
	redisStore, err := cache.NewRedisIdempotencyStore(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory idempotency store", zap.Error(err))
		idempotencyStore = cache.NewInMemoryIdempotencyStore()
	} else {
		idempotencyStore = redisStore
		log.Info("Redis idempotency store connected",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	}

	notifier := notifinfra.NewLogNotifier(log)
	orderStatusHandler := notification.NewOrderStatusHandler(notifier, log)
	reviewPendingHandler := notification.NewReviewPendingHandler(notifier, log)
	eventBus.Subscribe(event.NewIdempotentHandler(orderStatusHandler, idempotencyStore, log))
	eventBus.Subscribe(event.NewIdempotentHandler(reviewPendingHandler, idempotencyStore, log))

	log.Info("Event handlers registered",
		zap.Strings("order_status_events", orderStatusHandler.EventTypes()),
		zap.Strings("review_pending_events", reviewPendingHandler.EventTypes()),
	)

	// Start event bus
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Initialize and start the outbox processor for guaranteed event delivery
	if cfg.Event.ProcessorEnabled {
		outboxProcessorConfig := event.DefaultOutboxProcessorConfig()
		if cfg.Event.BatchSize > 0 {
			outboxProcessorConfig.BatchSize = cfg.Event.BatchSize
		}
		if cfg.Event.PollInterval > 0 {
			outboxProcessorConfig.PollInterval = cfg.Event.PollInterval
		}
		outboxProcessorConfig.CleanupEnabled = cfg.Event.CleanupEnabled
		if cfg.Event.CleanupRetention > 0 {
			outboxProcessorConfig.CleanupRetention = cfg.Event.CleanupRetention
		}
		outboxProcessor := event.NewOutboxProcessor(outboxRepo, eventBus, eventSerializer, outboxProcessorConfig, log)
		if err := outboxProcessor.Start(context.Background()); err != nil {
			log.Fatal("Failed to start outbox processor", zap.Error(err))
		}
		defer func() {
			if err := outboxProcessor.Stop(context.Background()); err != nil {
				log.Error("Error stopping outbox processor", zap.Error(err))
			}
		}()
		log.Info("Outbox processor started",
			zap.Int("batch_size", outboxProcessorConfig.BatchSize),
			zap.Duration("poll_interval", outboxProcessorConfig.PollInterval),
		)
	}

	// Business metrics with a periodic pending-review gauge
	if cfg.Telemetry.Enabled {
		businessMetrics, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
			Meter:          meterProvider.Meter("homeoffice-shop/business"),
			Logger:         log,
			ReviewProvider: pendingReviewCounter{repo: reviewRepo},
		})
		if err != nil {
			log.Warn("Failed to initialize business metrics", zap.Error(err))
		} else {
			businessMetrics.StartPeriodicCollection(context.Background(), 30*time.Second)
			defer businessMetrics.Stop()
		}
	}

	// Background purchase reconciliation
	syncCtx, syncCancel := context.WithCancel(context.Background())
	defer syncCancel()
	if cfg.Sync.Enabled {
		go runPurchaseSyncLoop(syncCtx, purchaseSyncService, cfg.Sync.PurchaseInterval, log)
		log.Info("Purchase sync loop started", zap.Duration("interval", cfg.Sync.PurchaseInterval))
	}

	// Initialize HTTP handlers
	budgetHandler := handler.NewBudgetHandler(budgetService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	purchaseSyncHandler := handler.NewPurchaseSyncHandler(purchaseSyncService)
	expenseSyncHandler := handler.NewExpenseSyncHandler(expenseSyncService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. Tracing/Metrics - OpenTelemetry instrumentation
	// 8. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
		engine.Use(middleware.SpanErrorMarker())
		engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
			MeterProvider: meterProvider,
			ServiceName:   cfg.Telemetry.ServiceName,
			Enabled:       true,
		}))
	}

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Employee and per-employee budget, cart and order routes
	employeeRoutes := router.NewDomainGroup("employees", "/employees")
	employeeRoutes.POST("", employeeHandler.Create)
	employeeRoutes.GET("", employeeHandler.List)
	employeeRoutes.GET("/:id", employeeHandler.Get)
	employeeRoutes.POST("/:id/hibob-link", employeeHandler.LinkHibob)
	employeeRoutes.POST("/:id/deactivate", employeeHandler.Deactivate)
	employeeRoutes.GET("/:id/budget", budgetHandler.GetAvailable)
	employeeRoutes.GET("/:id/budget/timeline", budgetHandler.GetTimeline)
	employeeRoutes.POST("/:id/budget/refresh", budgetHandler.RefreshCache)
	employeeRoutes.POST("/:id/budget/recalculate", budgetHandler.RecalculateTotal)
	employeeRoutes.GET("/:id/budget/adjustments", budgetHandler.ListAdjustments)
	employeeRoutes.GET("/:id/budget/overrides", budgetHandler.ListOverrides)
	employeeRoutes.GET("/:id/cart", cartHandler.Get)
	employeeRoutes.POST("/:id/cart/items", cartHandler.AddItem)
	employeeRoutes.DELETE("/:id/cart", cartHandler.Clear)
	employeeRoutes.POST("/:id/orders", orderHandler.Create)
	employeeRoutes.GET("/:id/orders", orderHandler.ListByEmployee)

	// Budget administration routes
	budgetRoutes := router.NewDomainGroup("budget", "/budget")
	budgetRoutes.POST("/rules", budgetHandler.CreateRule)
	budgetRoutes.GET("/rules", budgetHandler.ListRules)
	budgetRoutes.POST("/overrides", budgetHandler.CreateOverride)
	budgetRoutes.DELETE("/overrides/:id", budgetHandler.DeleteOverride)
	budgetRoutes.POST("/adjustments", budgetHandler.CreateAdjustment)
	budgetRoutes.DELETE("/adjustments/:id", budgetHandler.DeleteAdjustment)

	// Cart line routes (line IDs are globally unique)
	cartRoutes := router.NewDomainGroup("cart", "/cart")
	cartRoutes.DELETE("/items/:id", cartHandler.RemoveItem)

	// Order routes
	orderRoutes := router.NewDomainGroup("orders", "/orders")
	orderRoutes.GET("/:id", orderHandler.Get)
	orderRoutes.POST("/:id/transition", orderHandler.Transition)
	orderRoutes.POST("/:id/hibob-sync", expenseSyncHandler.SyncOrder)
	orderRoutes.DELETE("/:id/hibob-sync", expenseSyncHandler.UnsyncOrder)

	// Purchase review routes
	reviewRoutes := router.NewDomainGroup("reviews", "/reviews")
	reviewRoutes.GET("", reviewHandler.List)
	reviewRoutes.GET("/:id", reviewHandler.Get)
	reviewRoutes.POST("/:id/match", reviewHandler.ResolveMatch)
	reviewRoutes.POST("/:id/adjust", reviewHandler.ResolveAdjust)
	reviewRoutes.POST("/:id/dismiss", reviewHandler.ResolveDismiss)

	// Reconciliation sync routes
	syncRoutes := router.NewDomainGroup("sync", "/sync")
	syncRoutes.POST("/purchases", purchaseSyncHandler.Trigger)
	syncRoutes.GET("/purchases/runs", purchaseSyncHandler.ListRuns)
	syncRoutes.GET("/purchases/runs/:id", purchaseSyncHandler.GetRun)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/health", systemHandler.Health)

	r.Register(employeeRoutes).
		Register(budgetRoutes).
		Register(cartRoutes).
		Register(orderRoutes).
		Register(reviewRoutes).
		Register(syncRoutes).
		Register(systemRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	syncCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// runPurchaseSyncLoop pulls HiBob purchases on a fixed interval until ctx is
// cancelled. Overlap with manual triggers is prevented by the sync coordinator.
func runPurchaseSyncLoop(ctx context.Context, svc *reconapp.PurchaseSyncService, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result, err := svc.Run(ctx, uuid.Nil)
			if err != nil {
				log.Error("Scheduled purchase sync failed", zap.Error(err))
				continue
			}
			log.Info("Scheduled purchase sync completed", zap.String("run_id", result.ID.String()))
		}
	}
}

// pendingReviewCounter feeds the pending-review gauge from the review store.
type pendingReviewCounter struct {
	repo reconciliation.ReviewRepository
}

func (p pendingReviewCounter) GetPendingReviewCount(ctx context.Context) (int64, error) {
	return p.repo.CountByStatus(ctx, reconciliation.ReviewStatusPending)
}
