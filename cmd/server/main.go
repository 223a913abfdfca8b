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
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/dk-lineup/internal/api/handlers"
	"github.com/stitts-dev/dk-lineup/internal/cache"
	"github.com/stitts-dev/dk-lineup/internal/config"
	"github.com/stitts-dev/dk-lineup/internal/generator"
	"github.com/stitts-dev/dk-lineup/internal/ingest"
	"github.com/stitts-dev/dk-lineup/internal/scraper"
	"github.com/stitts-dev/dk-lineup/internal/types"
	"github.com/stitts-dev/dk-lineup/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	structuredLogger := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	logger.WithService("dk-lineup").WithFields(logrus.Fields{
		"environment": cfg.Env,
		"port":        cfg.Port,
	}).Info("Starting lineup service")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// The pool is loaded once at startup; restart the service to pick up
	// fresh stats or a new salary file.
	pool, err := loadPool(cfg, structuredLogger)
	if err != nil {
		logger.WithService("dk-lineup").Fatalf("Failed to load player pool: %v", err)
	}
	logger.WithPoolContext(cfg.SalaryCSV, len(pool.Players), len(pool.Defenses)).Info("Player pool loaded")

	var lineupCache *cache.LineupCache
	if cfg.RedisURL != "" {
		lineupCache, err = cache.NewLineupCache(cfg.RedisURL, structuredLogger)
		if err != nil {
			logger.WithService("dk-lineup").Fatalf("Failed to connect to Redis: %v", err)
		}
		defer lineupCache.Close()
	} else {
		logger.WithService("dk-lineup").Info("Redis not configured, recent-lineup history disabled")
	}

	gen := generator.New()

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	lineupHandler := handlers.NewLineupHandler(pool, gen, lineupCache, structuredLogger)
	healthHandler := handlers.NewHealthHandler(lineupCache, structuredLogger)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/lineups/generate", lineupHandler.GenerateLineup)
		apiV1.GET("/lineups/recent", lineupHandler.GetRecentLineups)
		apiV1.GET("/pool", lineupHandler.GetPoolSummary)
	}

	router.GET("/health", healthHandler.GetHealth)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.WithService("dk-lineup").WithField("port", cfg.Port).Info("Lineup service started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithService("dk-lineup").Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.WithService("dk-lineup").Info("Shutting down lineup service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithService("dk-lineup").Fatalf("Lineup service forced to shutdown: %v", err)
	}

	logger.WithService("dk-lineup").Info("Lineup service exited")
}

// loadPool fetches season stats, reads the salary file and joins them
func loadPool(cfg *config.Config, log *logrus.Logger) (types.PlayerPool, error) {
	if cfg.SalaryCSV == "" {
		return types.PlayerPool{}, fmt.Errorf("DKLINEUP_SALARY_CSV is required")
	}
	if cfg.OffenseURL == "" {
		return types.PlayerPool{}, fmt.Errorf("DKLINEUP_OFFENSE_URL is required")
	}

	salaries, err := ingest.LoadSalaryFile(cfg.SalaryCSV)
	if err != nil {
		return types.PlayerPool{}, fmt.Errorf("failed to load salary file: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client := scraper.NewClient(0)
	offense, err := client.FetchOffenseStats(ctx, cfg.OffenseURL)
	if err != nil {
		return types.PlayerPool{}, fmt.Errorf("failed to fetch offense stats: %w", err)
	}

	if cfg.DefenseURL != "" {
		defense, err := client.FetchDefenseStats(ctx, cfg.DefenseURL)
		if err != nil {
			log.WithError(err).Warn("Failed to fetch defense stats, continuing without them")
		} else {
			log.WithField("teams", len(defense)).Debug("Fetched defense stats")
		}
	}

	return ingest.MergePool(offense, salaries), nil
}
