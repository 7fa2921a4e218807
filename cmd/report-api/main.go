package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/thrillee/revenuereport/internal/auth"
	cfg "github.com/thrillee/revenuereport/internal/config"
	"github.com/thrillee/revenuereport/internal/database"
	"github.com/thrillee/revenuereport/internal/logging"
	"github.com/thrillee/revenuereport/internal/orderstore"
	apihandlers "github.com/thrillee/revenuereport/internal/reportapi/handlers"
)

func main() {
	appCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	// --- Config & Logging ---
	config, err := cfg.Load()
	if err != nil {
		log.Fatalf("Config load error: %v", err)
	}
	logging.Setup(os.Stdout, config.LogLevel)

	location, err := config.Location()
	if err != nil {
		slog.Error("Invalid report timezone", slog.Any("error", err))
		os.Exit(1)
	}

	// --- Database ---
	slog.Info("Connecting to database...")
	dbpool, err := pgxpool.New(appCtx, config.DatabaseURL)
	if err != nil {
		slog.Error("DB connect error", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()
	if err := dbpool.Ping(appCtx); err != nil {
		slog.Error("DB ping error", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Database connection established")
	store := orderstore.New(database.New(dbpool))

	// --- Gin Router Setup ---
	if config.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), apihandlers.RequestID())

	router.GET("/health", func(c *gin.Context) {
		if err := dbpool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "db": "error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	if config.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		slog.Info("Prometheus metrics exposed on /metrics")
	}

	apiV1 := router.Group("/api/v1")
	apihandlers.SetupRoutes(router, apiV1, store,
		auth.Credentials{User: config.Auth.AdminUser, PasswordHash: config.Auth.AdminPasswordHash},
		apihandlers.ReportOptions{
			Currency:     config.Report.CurrencySymbol,
			Location:     location,
			QueryTimeout: config.Report.QueryTimeout,
		},
	)

	// --- HTTP Server ---
	srv := &http.Server{
		Addr:         config.ReportAPI.Addr,
		Handler:      router,
		ReadTimeout:  config.ReportAPI.ReadTimeout,
		WriteTimeout: config.ReportAPI.WriteTimeout,
		IdleTimeout:  config.ReportAPI.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
	}

	go func() {
		slog.Info("Starting Revenue Report API Server", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Revenue Report API ListenAndServe error", slog.Any("error", err))
			rootCancel()
		}
	}()

	// --- Wait for Shutdown ---
	<-appCtx.Done()
	slog.Info("Shutdown signal received for Revenue Report API server.")

	// --- Graceful Shutdown ---
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Revenue Report API server forced to shutdown", slog.Any("error", err))
	}

	slog.Info("Revenue Report API server stopped.")
}
