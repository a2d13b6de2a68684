package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/safetrip/tripwatch/internal/pkg/config"
	"github.com/safetrip/tripwatch/internal/pkg/database"
	"github.com/safetrip/tripwatch/internal/pkg/health"
	"github.com/safetrip/tripwatch/internal/pkg/logger"
	"github.com/safetrip/tripwatch/internal/pkg/middleware"
	natspkg "github.com/safetrip/tripwatch/internal/pkg/nats"
	nsqpkg "github.com/safetrip/tripwatch/internal/pkg/nsq"
	"github.com/safetrip/tripwatch/internal/pkg/ratelimit"
	"github.com/safetrip/tripwatch/internal/pkg/server"
	wspkg "github.com/safetrip/tripwatch/internal/pkg/websocket"
	"github.com/safetrip/tripwatch/services/access"
	accessrepo "github.com/safetrip/tripwatch/services/access/repository"
	incidentgw "github.com/safetrip/tripwatch/services/incident/gateway"
	incidenthandler "github.com/safetrip/tripwatch/services/incident/handler"
	incidentrepo "github.com/safetrip/tripwatch/services/incident/repository"
	incidentuc "github.com/safetrip/tripwatch/services/incident/usecase"
	"github.com/safetrip/tripwatch/services/stream"
	streamhandler "github.com/safetrip/tripwatch/services/stream/handler"
	telemetrygw "github.com/safetrip/tripwatch/services/telemetry/gateway"
	telemetryhandler "github.com/safetrip/tripwatch/services/telemetry/handler"
	telemetryrepo "github.com/safetrip/tripwatch/services/telemetry/repository"
	telemetryuc "github.com/safetrip/tripwatch/services/telemetry/usecase"
)

func main() {
	cfg := config.InitConfig(os.Getenv("ENV_FILE"))

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:    cfg.Logger.Level,
		FilePath: cfg.Logger.FilePath,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	shutdownManager := server.NewShutdownManager(zapLogger)
	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage
	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to postgres", logger.Err(err))
	}
	shutdownManager.Register(func(context.Context) error { return pgClient.Close() })

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to redis", logger.Err(err))
	}
	shutdownManager.Register(func(context.Context) error { return redisClient.Close() })

	// Messaging
	natsClient, err := natspkg.NewClient(cfg.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	shutdownManager.Register(func(context.Context) error {
		natsClient.Close()
		return nil
	})

	nsqProducer, err := nsqpkg.NewProducer(cfg.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	shutdownManager.Register(func(context.Context) error {
		nsqProducer.Stop()
		return nil
	})

	db := pgClient.GetDB()

	// Access resolution
	resolver := access.NewResolver(accessrepo.NewPrincipalRepository(db))

	// Device rate limiting
	limiter := ratelimit.NewDeviceLimiter(
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		cfg.RateLimit.SweepThreshold,
	)
	limiter.StartSweeper(rootCtx, time.Duration(cfg.RateLimit.SweepInterval)*time.Second)

	// Repositories
	positionRepo := telemetryrepo.NewTelemetryRepository(db, redisClient)
	alertRepo := incidentrepo.NewIncidentRepository(db)

	// Broadcast router; the repositories double as snapshot sources.
	router := stream.NewRouter(resolver, positionRepo, alertRepo)

	// Use cases
	telemetryUC := telemetryuc.NewTelemetryUC(
		positionRepo,
		telemetrygw.NewTelemetryGW(natsClient.GetConn()),
		router,
		resolver,
		limiter,
	)
	incidentUC := incidentuc.NewIncidentUC(
		alertRepo,
		incidentgw.NewIncidentGW(natsClient.GetConn()),
		incidentgw.NewNSQNotifier(nsqProducer),
		router,
		resolver,
	)

	// HTTP surface
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLoggerMiddleware())

	e.GET("/health", health.NewPingHandler(cfg.App.Name, cfg.App.Version))

	telemetryhandler.NewHTTPHandler(telemetryUC, cfg).RegisterRoutes(e)
	incidenthandler.NewHTTPHandler(incidentUC, cfg).RegisterRoutes(e)
	streamhandler.NewSnapshotHandler(router, cfg).RegisterRoutes(e)
	streamhandler.NewWebSocketHandler(wspkg.NewManager(cfg.JWT), router).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()
	shutdownManager.Shutdown(shutdownCtx)
}
