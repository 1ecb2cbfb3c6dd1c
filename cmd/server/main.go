package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ml-lifecycle-service/internal/adapters/primary/http/handlers"
	"ml-lifecycle-service/internal/adapters/primary/http/middleware"
	"ml-lifecycle-service/internal/adapters/secondary/blobstore"
	"ml-lifecycle-service/internal/adapters/secondary/mlengine"
	"ml-lifecycle-service/internal/adapters/secondary/warehouse"
	"ml-lifecycle-service/internal/config"
	"ml-lifecycle-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	if cfg.Platform.Project == "" {
		log.Fatal("PLATFORM_PROJECT is required")
	}

	// Platform management API client
	platform := mlengine.NewClient(cfg.Platform.URL, cfg.Platform.Timeout)

	poll := services.PollSettings{
		Interval:    cfg.Sweep.PollInterval,
		MaxInterval: cfg.Sweep.PollMaxInterval,
		Timeout:     cfg.Sweep.PollTimeout,
	}

	// Core services
	sweepSvc := services.NewSweepService(platform, services.SweepConfig{
		Project: cfg.Platform.Project,
		Poll:    poll,
	})
	trainSvc := services.NewTrainingService(platform, cfg.Platform.Project, poll)
	deploySvc := services.NewDeploymentService(platform, cfg.Platform.Project, poll)
	predictSvc := services.NewPredictionService(platform, cfg.Platform.Project)

	// Warehouse + artifact store (optional - based on config)
	var pool *pgxpool.Pool
	var datasetSvc *services.DatasetService
	if cfg.Warehouse.Enabled && cfg.Artifacts.Enabled {
		poolCfg, err := pgxpool.ParseConfig(cfg.Warehouse.DSN())
		if err != nil {
			log.Fatalf("parse warehouse config: %v", err)
		}
		poolCfg.MaxConns = int32(cfg.Warehouse.MaxOpenConns)
		poolCfg.MinConns = int32(cfg.Warehouse.MaxIdleConns)
		poolCfg.MaxConnLifetime = cfg.Warehouse.ConnMaxLifetime

		pool, err = pgxpool.NewWithConfig(context.Background(), poolCfg)
		if err != nil {
			log.Fatalf("create warehouse pool: %v", err)
		}
		defer pool.Close()

		if err := pool.Ping(context.Background()); err != nil {
			log.Fatalf("ping warehouse: %v", err)
		}
		log.Info("warehouse connection established")

		store, err := blobstore.NewClient(context.Background(),
			cfg.Artifacts.Endpoint, cfg.Artifacts.Region,
			cfg.Artifacts.AccessKey, cfg.Artifacts.SecretKey, cfg.Artifacts.Bucket)
		if err != nil {
			log.Fatalf("create artifact store: %v", err)
		}

		datasetSvc = services.NewDatasetService(warehouse.NewExampleRepository(pool), store)
		log.Info("dataset staging enabled")
	} else {
		log.Info("dataset staging disabled")
	}

	h := handlers.New(sweepSvc, trainSvc, deploySvc, predictSvc, datasetSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/lifecycle")
	h.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/healthz", func(c *gin.Context) {
		if pool != nil {
			if err := pool.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
