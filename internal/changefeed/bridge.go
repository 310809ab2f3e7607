package changefeed

import (
	"context"

	"go.uber.org/zap"

	"shopdash/internal/infrastructure/kafka"
)

// KafkaBridge mirrors change events onto a Kafka topic so consumers outside
// the process (the notifier) see the same feed the SSE subscribers do.
type KafkaBridge struct {
	producer *kafka.Producer
}

func NewKafkaBridge(producer *kafka.Producer) *KafkaBridge {
	return &KafkaBridge{producer: producer}
}

func (b *KafkaBridge) PublishChange(ctx context.Context, event Event) error {
	return b.producer.Publish(ctx, event.Order.ID, event)
}

// Fanout forwards each event to every publisher. Failures are logged and do
// not stop delivery to the remaining publishers; the change is already
// durable in the store by the time it reaches the feed.
type Fanout struct {
	publishers []Publisher
	logger     *zap.Logger
}

func NewFanout(logger *zap.Logger, publishers ...Publisher) *Fanout {
	return &Fanout{publishers: publishers, logger: logger}
}

func (f *Fanout) PublishChange(ctx context.Context, event Event) error {
	for _, p := range f.publishers {
		if err := p.PublishChange(ctx, event); err != nil {
			f.logger.Warn("publishing change event",
				zap.String("type", string(event.Type)),
				zap.String("order_id", event.Order.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}
