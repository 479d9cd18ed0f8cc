package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/shesafe/internal/pkg/config"
	"github.com/piresc/shesafe/internal/pkg/constants"
	"github.com/piresc/shesafe/internal/pkg/database"
	"github.com/piresc/shesafe/internal/pkg/health"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/piresc/shesafe/internal/pkg/middleware"
	"github.com/piresc/shesafe/internal/pkg/models"
	natspkg "github.com/piresc/shesafe/internal/pkg/nats"
	nrpkg "github.com/piresc/shesafe/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/shesafe/internal/pkg/nsq"
	"github.com/piresc/shesafe/internal/pkg/server"
	"github.com/piresc/shesafe/internal/pkg/websocket"
	"github.com/piresc/shesafe/services/guardians"
	guardianGateway "github.com/piresc/shesafe/services/guardians/gateway"
	guardianHTTP "github.com/piresc/shesafe/services/guardians/handler/http"
	guardianNATS "github.com/piresc/shesafe/services/guardians/handler/nats"
	guardianRepository "github.com/piresc/shesafe/services/guardians/repository"
	guardianUsecase "github.com/piresc/shesafe/services/guardians/usecase"
	locationGateway "github.com/piresc/shesafe/services/location/gateway"
	locationHTTP "github.com/piresc/shesafe/services/location/handler/http"
	locationRepository "github.com/piresc/shesafe/services/location/repository"
	locationUsecase "github.com/piresc/shesafe/services/location/usecase"
	"github.com/piresc/shesafe/services/notify"
	notifyGateway "github.com/piresc/shesafe/services/notify/gateway"
	notifyNSQ "github.com/piresc/shesafe/services/notify/handler/nsq"
	notifyUsecase "github.com/piresc/shesafe/services/notify/usecase"
	ownerHTTP "github.com/piresc/shesafe/services/owners/handler/http"
	ownerRepository "github.com/piresc/shesafe/services/owners/repository"
	ownerUsecase "github.com/piresc/shesafe/services/owners/usecase"
	safetyGateway "github.com/piresc/shesafe/services/safety/gateway"
	safetyHTTP "github.com/piresc/shesafe/services/safety/handler/http"
	safetyRepository "github.com/piresc/shesafe/services/safety/repository"
	safetyUsecase "github.com/piresc/shesafe/services/safety/usecase"
	sosGateway "github.com/piresc/shesafe/services/sos/gateway"
	sosHTTP "github.com/piresc/shesafe/services/sos/handler/http"
	sosUsecase "github.com/piresc/shesafe/services/sos/usecase"
	"github.com/spf13/cobra"
)

// notificationMaxAttempts bounds NSQ redeliveries of one notification
const notificationMaxAttempts = 5

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, device feed and event consumers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		configs, err := config.InitConfig(configPath)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, configs)
	},
}

func serve(ctx context.Context, configs *models.Config) error {
	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		return fmt.Errorf("failed to create Zap logger: %w", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdown := server.NewShutdownManager(zapLogger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := shutdown.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("Shutdown completed with errors", logger.Err(err))
		}
		_ = zapLogger.Sync()
	}()

	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })

	// Initialize JetStream-enabled NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	shutdown.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})

	stream := natspkg.NewStreamConfigBuilder(configs.NATS.StreamName).
		WithSubjects(constants.StreamSubjects...).
		Build()
	if err := natsClient.EnsureStream(ctx, stream); err != nil {
		return fmt.Errorf("failed to ensure JetStream stream: %w", err)
	}
	logger.Info("JetStream stream ready",
		logger.String("url", configs.NATS.URL),
		logger.String("stream", configs.NATS.StreamName))

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		return fmt.Errorf("failed to connect to NSQ: %w", err)
	}
	shutdown.Register("nsq-producer", func(context.Context) error {
		producer.Stop()
		return nil
	})

	wsManager := websocket.NewManager()
	shutdown.Register("websocket", func(context.Context) error {
		wsManager.CloseAll()
		return nil
	})

	// Owners
	ownerRepo := ownerRepository.NewOwnerRepository(postgresClient.GetDB())
	ownerUC := ownerUsecase.NewOwnerUC(ownerRepo, configs)

	// Guardians
	guardianRepo, err := newGuardianRepo(configs.Guardians.Store, postgresClient, redisClient)
	if err != nil {
		return err
	}
	guardianGW := guardianGateway.NewNotificationGW(producer, configs.NSQ.NotificationsTopic)
	guardianUC := guardianUsecase.NewGuardianUC(guardianRepo, guardianGW)

	guardianEvents := guardianNATS.NewNatsHandler(guardianUC, natsClient, configs.NATS.StreamName)
	if err := guardianEvents.InitNATSConsumers(ctx); err != nil {
		return fmt.Errorf("failed to initialize NATS consumers: %w", err)
	}
	shutdown.Register("guardian-consumers", func(context.Context) error {
		guardianEvents.Stop()
		return nil
	})

	// Location sharing
	deviceHub := locationGateway.NewDeviceHub(wsManager)
	wsManager.OnConnect(deviceHub.Resume)

	locationRepo := locationRepository.NewLocationRepository(redisClient)
	locationGW := locationGateway.NewLocationGW(natsClient, producer, configs.NSQ.NotificationsTopic)
	locationUC := locationUsecase.NewLocationUC(configs.Location, locationRepo, locationGW, guardianUC, deviceHub, wsManager)
	shutdown.Register("location-sessions", func(ctx context.Context) error {
		locationUC.StopAll(ctx)
		return nil
	})

	// AI safety flows
	analysisGW, err := safetyGateway.NewGeminiGW(ctx, configs.Safety)
	if err != nil {
		return err
	}
	safetyRepo := safetyRepository.NewSafetyRepository(redisClient)
	safetyUC := safetyUsecase.NewSafetyUC(configs.Safety, safetyRepo, analysisGW)

	// SOS
	sosGW := sosGateway.NewSOSGW(natsClient, producer, configs.NSQ.NotificationsTopic)
	sosUC := sosUsecase.NewSOSUC(sosGW, guardianUC)

	// Outbound notifications
	notifyUC := notifyUsecase.NewNotifyUC(newSMSGateway(configs.SMS, zapLogger))
	notificationHandler := notifyNSQ.NewNotificationHandler(notifyUC)
	consumer, err := nsqpkg.NewConsumer(
		configs.NSQ.NotificationsTopic,
		configs.NSQ.Channel,
		configs.NSQ.Address,
		notificationMaxAttempts,
		notificationHandler.HandleMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to start notification consumer: %w", err)
	}
	shutdown.Register("nsq-consumer", func(context.Context) error {
		consumer.Stop()
		return nil
	})

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewService()
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient.GetClient(),
		Limit:       configs.RateLimit.Requests,
		Period:      time.Duration(configs.RateLimit.PeriodSeconds) * time.Second,
	})
	public := e.Group("", rateLimiter)
	v1Public := e.Group("/v1", rateLimiter)
	protected := e.Group("/v1", middleware.JWTAuth(configs.JWT), rateLimiter)

	// Register service routes
	ownerHTTP.NewAuthHandler(ownerUC).RegisterRoutes(v1Public, protected)
	guardianHTTP.NewGuardianHandler(guardianUC).RegisterRoutes(protected)
	locationHTTP.NewLocationHandler(locationUC, wsManager, deviceHub.HandleMessage).RegisterRoutes(public, protected)
	safetyHTTP.NewSafetyHandler(safetyUC).RegisterRoutes(protected)
	sosHTTP.NewSOSHandler(sosUC).RegisterRoutes(protected)

	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	return srv.Run(ctx)
}

// newGuardianRepo selects the guardian store named by GUARDIANS_STORE
func newGuardianRepo(store string, postgresClient *database.PostgresClient, redisClient *database.RedisClient) (guardians.GuardianRepo, error) {
	switch store {
	case "postgres":
		return guardianRepository.NewPostgresGuardianRepo(postgresClient.GetDB()), nil
	case "redis":
		return guardianRepository.NewRedisGuardianRepo(redisClient), nil
	default:
		return nil, fmt.Errorf("unknown guardian store %q", store)
	}
}

// newSMSGateway sends through the SMS API when enabled, otherwise logs
func newSMSGateway(cfg models.SMSConfig, zapLogger *logger.ZapLogger) notify.SMSGW {
	if !cfg.Enabled {
		logger.Info("SMS sending disabled, notifications will be logged")
		return notifyGateway.LogGW{}
	}
	return notifyGateway.NewTwilioGW(cfg, zapLogger)
}
