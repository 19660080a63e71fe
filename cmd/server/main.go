package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/league-charts/internal/api"
	"github.com/jstittsworth/league-charts/internal/api/handlers"
	"github.com/jstittsworth/league-charts/internal/api/middleware"
	"github.com/jstittsworth/league-charts/internal/espn"
	"github.com/jstittsworth/league-charts/internal/services"
	"github.com/jstittsworth/league-charts/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to Redis
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logrus.Fatalf("Failed to parse Redis URL: %v", err)
	}
	redisClient := redis.NewClient(opt)
	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize services
	cacheService := services.NewCacheService(redisClient)

	espnClient := espn.NewClient(espn.Options{
		LeagueID:         cfg.LeagueID,
		Season:           cfg.Season,
		ESPNS2:           cfg.ESPNS2,
		SWID:             cfg.SWID,
		Timeout:          cfg.ExternalAPITimeout,
		RequestsPerSec:   cfg.ESPNRateLimit,
		BreakerThreshold: cfg.CircuitBreakerThreshold,
	}, cacheService, logrus.StandardLogger())

	reportService := services.NewReportService(espnClient, cacheService, logrus.StandardLogger(), cfg)

	// Parse refresh interval
	refreshInterval, err := time.ParseDuration(cfg.RefreshInterval)
	if err != nil {
		logrus.Warnf("Invalid refresh interval, using default 2h: %v", err)
		refreshInterval = 2 * time.Hour
	}

	refresher := services.NewReportRefresher(reportService, logrus.StandardLogger(), refreshInterval)
	if err := refresher.Start(); err != nil {
		logrus.Errorf("Failed to start report refresher: %v", err)
	}
	defer refresher.Stop()

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.CorsOrigins))

	// Health check endpoint
	healthHandler := handlers.NewHealthHandler()
	router.GET("/health", healthHandler.GetHealth)

	// Rendered dashboard at the root
	chartsHandler := handlers.NewChartsHandler(reportService)
	router.GET("/", chartsHandler.Dashboard)

	// Setup API routes under /api/v1
	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, reportService)

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
