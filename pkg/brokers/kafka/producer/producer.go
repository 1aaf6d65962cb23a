package producer

import (
	"context"
	"log/slog"

	"github.com/IBM/sarama"
)

// NewAsyncProducer builds the publisher transport: acks from all replicas and
// idempotent produce, so broker-side retries cannot duplicate an event. The
// Successes/Errors channels are drained by a logging goroutine; publish
// outcomes are never surfaced to callers.
func NewAsyncProducer(ctx context.Context, log *slog.Logger, brokerList []string) (sarama.AsyncProducer, error) {
	producerConfig := sarama.NewConfig()
	producerConfig.Producer.RequiredAcks = sarama.WaitForAll
	producerConfig.Producer.Idempotent = true
	producerConfig.Net.MaxOpenRequests = 1
	producerConfig.Producer.Retry.Max = 3
	producerConfig.Producer.Compression = sarama.CompressionNone
	producerConfig.Producer.Return.Successes = true
	producerConfig.Producer.Return.Errors = true

	producer, err := sarama.NewAsyncProducer(brokerList, producerConfig)
	if err != nil {
		return nil, err
	}

	go drain(ctx, log, producer)

	return producer, nil
}

// drain consumes acks and nacks until ctx is cancelled or the producer is
// closed. A nack is logged and nothing else: the order that produced the
// event has already been committed.
func drain(ctx context.Context, log *slog.Logger, producer sarama.AsyncProducer) {
	for {
		select {
		case sendErr, ok := <-producer.Errors():
			if !ok {
				return
			}

			log.Error("failed to publish event",
				slog.String("topic", sendErr.Msg.Topic),
				slog.String("error", sendErr.Err.Error()),
			)
		case success, ok := <-producer.Successes():
			if !ok {
				return
			}

			log.Debug("event published",
				slog.String("topic", success.Topic),
				slog.Int("partition", int(success.Partition)),
				slog.Int64("offset", success.Offset),
			)
		case <-ctx.Done():
			return
		}
	}
}
