package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/client"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/di"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/events"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/internal/handler"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/config"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/database"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/logger"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/middleware"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/redis"
	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&logger.Config{
		Level:       logLevel(cfg),
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
		OutputPath:  "stdout",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	}); err != nil {
		logger.Fatal("failed to init telemetry", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	containerCfg := &di.ContainerConfig{
		OccupancyCacheTTL: cfg.Redis.OccupancyTTL,
	}

	// optional backends wire in only when configured
	if cfg.Database.Host != "" {
		db, err := database.NewPostgresDB(ctx, database.PostgresConfigFromApp(&cfg.Database))
		if err != nil {
			logger.Fatal("failed to connect to postgres", zap.Error(err))
		}
		containerCfg.DB = db
	} else {
		logger.Warn("no database configured, properties will not survive a restart")
	}

	if cfg.Redis.Host != "" {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, occupancy reads will skip the cache", zap.Error(err))
		} else {
			containerCfg.Redis = redisClient
		}
	}

	if cfg.PMS.BaseURL != "" {
		containerCfg.PMSClient = client.NewHTTPPMSClient(cfg.PMS.BaseURL, cfg.PMS.APIKey, cfg.PMS.Timeout)
	} else {
		logger.Warn("no PMS configured, price pushes and occupancy reads are disabled")
	}

	if cfg.Kafka.Enabled {
		audit, err := events.NewKafkaAuditPublisher(cfg.Kafka.Brokers, cfg.Kafka.ClientID, cfg.Kafka.AuditTopic)
		if err != nil {
			logger.Fatal("failed to connect to kafka", zap.Error(err))
		}
		containerCfg.Audit = audit
	}

	container := di.NewContainer(containerCfg)
	defer container.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	handler.SetupRoutes(router, container.Handlers, cfg.JWT.Secret)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func logLevel(cfg *config.Config) string {
	if cfg.App.Debug {
		return "debug"
	}
	return "info"
}
