package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"shopdash/internal/changefeed"
	"shopdash/internal/config"
	"shopdash/internal/dashboard"
	"shopdash/internal/infrastructure/kafka"
	"shopdash/internal/infrastructure/logger"
	"shopdash/internal/infrastructure/mysql"
	"shopdash/internal/metrics"
	"shopdash/internal/orders/repository"
	"shopdash/internal/server"
	"shopdash/internal/webhook"
)

func main() {
	// Local development convenience; the file is absent in deployment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.Webhook.Secret == "" {
		zapLogger.Warn("webhook secret not configured; all webhook deliveries will be rejected")
	}

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	metrics.Register()

	orderRepo := repository.NewMySQLOrderRepository(db)

	hub := changefeed.NewHub()
	publishers := []changefeed.Publisher{hub}
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		publishers = append(publishers, changefeed.NewKafkaBridge(producer))
		zapLogger.Info("kafka changefeed bridge enabled",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic),
		)
	}
	feed := changefeed.NewFanout(zapLogger, publishers...)

	webhookCtrl := webhook.NewModule(orderRepo, feed, cfg.Webhook, zapLogger)
	dashModule := dashboard.NewModule(orderRepo, hub, zapLogger)

	router := server.NewRouter(webhookCtrl, dashModule, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
