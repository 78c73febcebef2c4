package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	blogUC "github.com/khoahotran/portfolio-api/internal/application/usecase/blog"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const consumerGroup = "portfolio-feed-cache"

// The worker follows the content event topic and drops the cached RSS feed
// whenever a blog post changes.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	appLogger.Info("Starting Portfolio Worker...")

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("Kafka brokers are not configured", nil)
	}

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	invalidateFeed := blogUC.NewFeedInvalidationUseCase(persistence.NewRedisFeedCache(redisClient), appLogger)

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    cfg.Kafka.Topic,
		GroupID:  consumerGroup,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Worker listening", zap.String("topic", cfg.Kafka.Topic), zap.String("group", consumerGroup))

	for {
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				appLogger.Info("Worker stopped")
				return
			}
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var ev service.ContentEvent
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			appLogger.Warn("Skipping malformed content event", zap.Error(err), zap.Int64("offset", msg.Offset))
			commitMessage(ctx, consumer, msg, appLogger)
			continue
		}

		// Handle retries on its own; a failure left over is logged and the offset
		// committed anyway, the reader has already moved past this message.
		if _, err := invalidateFeed.Handle(ctx, ev); err != nil {
			if errors.Is(err, context.Canceled) {
				appLogger.Info("Worker stopped")
				return
			}
			appLogger.Error("Failed to handle content event", err,
				zap.String("resource", ev.Resource),
				zap.String("id", ev.ID.String()),
				zap.Int64("offset", msg.Offset),
			)
		}

		commitMessage(ctx, consumer, msg, appLogger)
	}
}

func commitMessage(ctx context.Context, consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(ctx, msg); err != nil {
		log.Error("Failed to commit message", err, zap.Int64("offset", msg.Offset))
	}
}
