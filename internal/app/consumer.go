package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka/consumer"
	"go-payroll/internal/payroll"
	"go-payroll/internal/shared/config"
	"go-payroll/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer keeps the payroll read cache in step with record-changed
// events until interrupted.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer rdb.Close()

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.PayrollRecordChangedTopic,
		GroupID:        cfg.Kafka.ConsumerGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.ConsumePayrollRecordChanged(ctx, reader, payroll.NewCache(rdb, cfg.Redis.CacheTTL), logger)

	logger.Info("consumer shutting down")
	return nil
}
