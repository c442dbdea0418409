package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	_ "github.com/freightops/freight_broker_app/cmd/docs"
	"github.com/freightops/freight_broker_app/internal/adapters/notify"
	"github.com/freightops/freight_broker_app/internal/adapters/storage"
	"github.com/freightops/freight_broker_app/internal/core/services"
	"github.com/freightops/freight_broker_app/internal/dto"
	"github.com/freightops/freight_broker_app/internal/handlers"
	"github.com/freightops/freight_broker_app/internal/middleware"
	"github.com/freightops/freight_broker_app/internal/platform/config"
	"github.com/freightops/freight_broker_app/internal/platform/schedule"
	"github.com/freightops/freight_broker_app/internal/repositories/database/pgsql"
	"github.com/freightops/freight_broker_app/internal/utils"
	"github.com/freightops/freight_broker_app/pkg/database"
)

// @title Freight Broker API
// @version 1.0
// @description Back office API for freight brokerage operations.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := database.ApplyMigrations(cfg.DatabaseURL, "file://migrations", logger); err != nil {
		logger.Error("Migrations failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	docStorage, err := storage.NewLocalStorage(cfg.StorageDir, "/api/v1/files")
	if err != nil {
		logger.Error("Failed to initialize document storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, notify.NewSlogNotifier(logger))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, docStorage)

	sweeper := schedule.NewOverdueSweeper(serviceContainer.Receivable, cfg.OverdueSweepInterval, logger)
	go sweeper.Run(ctx)

	reporter := schedule.NewStatsReporter(map[string]schedule.StatsSource{
		"load":               dailyStats(serviceContainer.Load),
		"customer":           dailyStats(serviceContainer.Customer),
		"carrier":            dailyStats(serviceContainer.Carrier),
		"payment_receivable": dailyStats(serviceContainer.Receivable),
		"payment_payable":    dailyStats(serviceContainer.Payable),
	}, cfg.StatsReportInterval, logger)
	go reporter.Run(ctx)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdown(srv, logger)
}

// statsCapable is the slice of a record service the reporter needs.
type statsCapable interface {
	RecordStats(ctx context.Context, period string) (*dto.StatsResult, error)
}

func dailyStats(svc statsCapable) schedule.StatsSource {
	return func(ctx context.Context) (*dto.StatsResult, error) {
		return svc.RecordStats(ctx, "today")
	}
}

func shutdown(srv *http.Server, logger *slog.Logger) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped")
}
