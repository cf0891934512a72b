package kafka

import (
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/skhanzad/libralite/pkg/circuit_breaker"
)

type Enqueuer interface {
	Enqueue(topic, key string, v any) error
}

func NewEnqueuer(producer sarama.SyncProducer, cb circuit_breaker.CircuitBreaker) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
		cb:       cb,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
}

func (q *enqueuerImpl) Enqueue(topic, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}
	return q.cb.Call(func() error {
		_, _, err := q.producer.SendMessage(msg)
		return err
	})
}

// ErrDisabled is returned by the no-op enqueuer.
var ErrDisabled = disabledError{}

type disabledError struct{}

func (disabledError) Error() string { return "kafka is not configured" }

type noopEnqueuer struct{}

// NewNoopEnqueuer is used when no brokers are configured; every publish
// reports ErrDisabled so callers leave delivery state untouched.
func NewNoopEnqueuer() Enqueuer { return noopEnqueuer{} }

func (noopEnqueuer) Enqueue(string, string, any) error { return ErrDisabled }
