package main

import (
	"log"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/EddyKilonzo/CrediScore/internal/frauddetection"
	"github.com/EddyKilonzo/CrediScore/pkg/common"
	"github.com/EddyKilonzo/CrediScore/pkg/config"
	"github.com/EddyKilonzo/CrediScore/pkg/logger"
	"github.com/EddyKilonzo/CrediScore/pkg/middleware"
)

const (
	serviceName    = "fraud-detection"
	serviceVersion = "1.0.0"
)

func main() {
	// Load configuration
	cfg, err := config.Load(serviceName)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Sentry error reporting (optional)
	if cfg.Sentry.Enabled && cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Server.Environment,
			Release:     serviceName + "@" + serviceVersion,
		}); err != nil {
			logger.Fatal("Failed to initialize Sentry", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Verdict event publishing (optional)
	var events frauddetection.Publisher = frauddetection.NoopPublisher{}
	healthChecks := map[string]func() error{}
	if cfg.Events.Enabled {
		natsPublisher, err := frauddetection.NewNATSPublisher(cfg.Events.URL, cfg.Events.Subject)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		defer natsPublisher.Close()
		events = natsPublisher
		healthChecks["nats"] = natsPublisher.Check
		logger.Info("Connected to NATS", zap.String("url", cfg.Events.URL))
	}

	// Create service and handler
	service := frauddetection.NewService(frauddetection.DefaultLexicon(), cfg.Engine, events)
	handler := frauddetection.NewHandler(service, serviceName, serviceVersion)

	// Set up Gin router
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CorrelationID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics(serviceName))
	router.Use(middleware.Recovery())
	if cfg.Sentry.Enabled && cfg.Sentry.DSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.CORSOrigins, ",")
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", middleware.CorrelationIDHeader}
	router.Use(cors.New(corsConfig))

	// Metrics endpoint (no auth required)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.NoRoute(notFoundHandler())

	// Scoring is CPU-bound and fast; the timeout guards against pathological inputs
	scoringTimeout := newScoringTimeout(time.Duration(cfg.Server.WriteTimeout) * time.Second)
	handler.RegisterRoutes(router, newHealthHandler(healthChecks), scoringTimeout)

	// Start server
	addr := ":" + cfg.Server.Port
	logger.Info("Fraud detection service starting", zap.String("port", cfg.Server.Port))
	if err := router.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// newScoringTimeout bounds how long a single scoring request may run.
func newScoringTimeout(d time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(d),
		timeout.WithResponse(func(c *gin.Context) {
			common.AppErrorResponse(c, common.NewServiceUnavailableError("request timed out"))
		}),
	)
}

// newHealthHandler reports dependency status when checks are configured.
func newHealthHandler(checks map[string]func() error) gin.HandlerFunc {
	if len(checks) == 0 {
		return common.HealthCheck(serviceName, serviceVersion)
	}
	return common.HealthCheckWithDeps(serviceName, serviceVersion, checks)
}

func notFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		common.AppErrorResponse(c, common.NewNotFoundError("route not found"))
	}
}
