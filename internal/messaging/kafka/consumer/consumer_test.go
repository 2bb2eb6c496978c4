package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.msgs) == 0 {
		f.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := f.msgs[0]
	f.msgs = f.msgs[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	f.committed = append(f.committed, msgs...)
	return nil
}

type fakeCache struct {
	invalidateFn func(ctx context.Context, payrollID string) error
	invalidated  []string
}

func (f *fakeCache) Invalidate(ctx context.Context, payrollID string) error {
	if f.invalidateFn != nil {
		if err := f.invalidateFn(ctx, payrollID); err != nil {
			return err
		}
	}
	f.invalidated = append(f.invalidated, payrollID)
	return nil
}

func changedMessage(t *testing.T, offset int64, payrollID string) kafkago.Message {
	t.Helper()
	body, err := json.Marshal(events.PayrollRecordChangedEvent{
		EventType:  events.PayrollAdjusted,
		PayrollID:  payrollID,
		PeriodKey:  "2025-01",
		OccurredAt: time.Now().UTC(),
	})
	assert.NoError(t, err)
	return kafkago.Message{Topic: events.PayrollRecordChangedTopic, Offset: offset, Value: body}
}

func TestConsumePayrollRecordChanged(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			changedMessage(t, 1, "p-1"),
			{Topic: events.PayrollRecordChangedTopic, Offset: 2, Value: []byte("not json")},
			changedMessage(t, 3, "p-fail"),
			changedMessage(t, 4, "p-2"),
		},
	}
	cache := &fakeCache{
		invalidateFn: func(ctx context.Context, payrollID string) error {
			if payrollID == "p-fail" {
				return errors.New("redis down")
			}
			return nil
		},
	}

	consumer.ConsumePayrollRecordChanged(ctx, reader, cache, zap.NewNop())

	assert.Equal(t, []string{"p-1", "p-2"}, cache.invalidated)

	var offsets []int64
	for _, m := range reader.committed {
		offsets = append(offsets, m.Offset)
	}
	// the undecodable message is committed, the failed invalidation is not
	assert.Equal(t, []int64{1, 2, 4}, offsets)
}

func TestPayrollRecordChangedHandler_MissingID(t *testing.T) {
	handle := consumer.PayrollRecordChangedHandler(&fakeCache{}, zap.NewNop())

	err := handle(context.Background(), kafkago.Message{Value: []byte(`{"event_type":"payroll_generated"}`)})

	assert.ErrorIs(t, err, consumer.ErrSkipMessage)
}
