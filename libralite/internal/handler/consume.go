package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/skhanzad/libralite/libralite/internal/model"
	"go.uber.org/zap"
)

const defaultRetryBackoff = 5 * time.Second

type deliverHoldReady func(ctx context.Context, event model.HoldReadyEvent) error

// Consumer feeds hold-ready events to the notifier.
type Consumer struct {
	deliver      deliverHoldReady
	log          *zap.Logger
	ready        chan bool
	retryBackoff time.Duration
}

type ConsumerOption func(c *Consumer)

// WithRetryBackoff sets the pause between attempts to deliver one event.
func WithRetryBackoff(d time.Duration) ConsumerOption {
	return func(c *Consumer) {
		c.retryBackoff = d
	}
}

func NewConsumer(deliver deliverHoldReady, log *zap.Logger, opts ...ConsumerOption) *Consumer {
	c := &Consumer{
		deliver:      deliver,
		log:          log.Named("consumer"),
		ready:        make(chan bool),
		retryBackoff: defaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ready is closed once the first session is set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event model.HoldReadyEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("decode hold ready event", zap.Error(err), zap.Int64("offset", message.Offset))
				session.MarkMessage(message, "")
				continue
			}

			// the partition does not advance past an undelivered event
			if !consumer.deliverWithRetry(session.Context(), event) {
				return nil
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// deliverWithRetry retries until the event is delivered or the session ends.
// It reports whether the event was delivered.
func (consumer *Consumer) deliverWithRetry(ctx context.Context, event model.HoldReadyEvent) bool {
	for attempt := 1; ; attempt++ {
		err := consumer.deliver(ctx, event)
		if err == nil {
			return true
		}
		consumer.log.Error("consumer.deliver", zap.Error(err),
			zap.String("shelfEntryId", event.ShelfEntryID), zap.Int("attempt", attempt))
		select {
		case <-ctx.Done():
			return false
		case <-time.After(consumer.retryBackoff):
		}
	}
}
