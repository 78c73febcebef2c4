package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/metrics"
)

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
	logger              logger.Logger
}

// NewKafkaProducerClient builds an async writer for content events. Writes
// return immediately; delivery failures are logged from the completion hook.
func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        cfg.Kafka.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				metrics.ContentEventsPublishedTotal.WithLabelValues("failed").Add(float64(len(messages)))
				log.Error("Failed to deliver content events", err, zap.Int("count", len(messages)))
				return
			}
			metrics.ContentEventsPublishedTotal.WithLabelValues("delivered").Add(float64(len(messages)))
		},
	}

	log.Info("Initialize Kafka Producer successfully.", zap.String("topic", cfg.Kafka.Topic))
	return &KafkaProducerClient{ContentEventsWriter: writer, logger: log}, nil
}

// Publish keys messages by record id so events for one record stay ordered.
func (c *KafkaProducerClient) Publish(ctx context.Context, ev service.ContentEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal content event: %w", err)
	}
	return c.ContentEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.ID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "resource", Value: []byte(ev.Resource)},
			{Key: "type", Value: []byte(ev.Type)},
		},
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		if err := c.ContentEventsWriter.Close(); err != nil {
			c.logger.Warn("Failed to close Kafka writer", zap.Error(err))
		}
	}
	c.logger.Info("Closed Kafka Producer")
}
