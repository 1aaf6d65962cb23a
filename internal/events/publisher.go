package events

import (
	"encoding/json"
	"log/slog"

	"github.com/IBM/sarama"

	"github.com/bookstore/fulfillment/internal/domain/models"
)

type asyncProducer interface {
	Input() chan<- *sarama.ProducerMessage
}

// Publisher turns a confirmed order into a BookOrderedEvent on the book
// ordered topic, keyed by ISBN.
type Publisher struct {
	log      *slog.Logger
	topic    string
	producer asyncProducer
}

func NewPublisher(log *slog.Logger, topic string, producer asyncProducer) *Publisher {
	return &Publisher{
		log:      log,
		topic:    topic,
		producer: producer,
	}
}

// PublishBookOrdered enqueues the event and returns immediately. Ack handling
// lives in the producer's drain loop; a publish failure is logged there and
// never rolls the order back.
func (p *Publisher) PublishBookOrdered(event *models.BookOrderedEvent) {
	const op = "events.Publisher.PublishBookOrdered"

	bytes, err := json.Marshal(event)
	if err != nil {
		p.log.Error(op,
			slog.String("event_id", event.EventID),
			slog.String("error", err.Error()),
		)
		return
	}

	p.producer.Input() <- &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.Key()),
		Value: sarama.ByteEncoder(bytes),
	}

	p.log.Debug("book ordered event enqueued",
		slog.String("event_id", event.EventID),
		slog.String("order_id", event.OrderID),
		slog.String("isbn", event.BookISBN),
	)
}
