package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-payroll/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type CacheInvalidator interface {
	Invalidate(ctx context.Context, payrollID string) error
}

// ConsumePayrollRecordChanged drops cached payroll reads whenever a record
// is generated or adjusted.
func ConsumePayrollRecordChanged(
	ctx context.Context,
	reader MessageReader,
	cache CacheInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_record_changed")
	Run(ctx, reader, PayrollRecordChangedHandler(cache, log), log)
}

func PayrollRecordChangedHandler(cache CacheInvalidator, log *zap.Logger) HandlerFunc {
	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.PayrollRecordChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return fmt.Errorf("%w: decode payroll record changed event: %v", ErrSkipMessage, err)
		}
		if event.PayrollID == "" {
			return fmt.Errorf("%w: payroll record changed event without payroll id", ErrSkipMessage)
		}

		if err := cache.Invalidate(ctx, event.PayrollID); err != nil {
			return fmt.Errorf("invalidate payroll %s: %w", event.PayrollID, err)
		}

		log.Info("payroll cache invalidated",
			zap.String("payroll_id", event.PayrollID),
			zap.String("event_type", event.EventType),
			zap.String("period", event.PeriodKey),
			zap.String("request_id", event.RequestID),
		)
		return nil
	}
}
