package consumer

import (
	"context"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ErrSkipMessage marks a message that can never be handled, such as an
// undecodable payload. It is committed so it does not block the partition.
var ErrSkipMessage = errors.New("skip message")

// MessageReader is the part of *kafkago.Reader a consumer loop needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// HandlerFunc processes one message. A nil error commits it; ErrSkipMessage
// commits and logs it; any other error leaves it uncommitted for redelivery.
type HandlerFunc func(ctx context.Context, msg kafkago.Message) error

// Run fetches and handles messages until ctx is done.
func Run(ctx context.Context, reader MessageReader, handle HandlerFunc, log *zap.Logger) {
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		fields := []zap.Field{
			zap.String("topic", msg.Topic),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
		}

		if err := handle(ctx, msg); err != nil {
			if !errors.Is(err, ErrSkipMessage) {
				log.Error("handle message failed", append(fields, zap.Error(err))...)
				continue
			}
			log.Warn("skipping message", append(fields, zap.Error(err))...)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", append(fields, zap.Error(err))...)
		}
	}
}
