package apply

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"

	"github.com/bookstore/fulfillment/internal/domain/models"
	internalErrors "github.com/bookstore/fulfillment/internal/lib/errors"
)

type salesRepository interface {
	WasProcessed(ctx context.Context, eventID string) (bool, error)
	Apply(ctx context.Context, eventID, isbn string, quantity int32) error
}

// Service applies BookOrderedEvent deliveries to the sales counter.
// Delivery is at-least-once: a nil return acknowledges the message, an error
// leaves the offset unadvanced and forces redelivery.
type Service struct {
	log   *slog.Logger
	sales salesRepository
}

func New(log *slog.Logger, sales salesRepository) *Service {
	return &Service{
		log:   log,
		sales: sales,
	}
}

func (s *Service) Handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	const op = "services.sales.apply.Handle"

	var event models.BookOrderedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// Malformed payloads would never become valid on redelivery.
		s.log.WarnContext(ctx, "skipping malformed event",
			slog.Int64("offset", msg.Offset),
			slog.Int("partition", int(msg.Partition)),
			slog.String("error", err.Error()),
		)
		return nil
	}

	log := s.log.With(
		slog.String("event_id", event.EventID),
		slog.String("order_id", event.OrderID),
		slog.String("isbn", event.BookISBN),
		slog.Int("quantity", int(event.Quantity)),
		slog.Int("partition", int(msg.Partition)),
		slog.Int64("offset", msg.Offset),
	)

	log.InfoContext(ctx, "received book ordered event")

	if event.EventID == "" || event.BookISBN == "" || event.Quantity <= 0 {
		log.WarnContext(ctx, "skipping invalid event")
		return nil
	}

	processed, err := s.sales.WasProcessed(ctx, event.EventID)
	if err != nil {
		return fmt.Errorf("%s: dedup check: %w", op, err)
	}
	if processed {
		log.WarnContext(ctx, "event already processed, skipping")
		return nil
	}

	if err = s.sales.Apply(ctx, event.EventID, event.BookISBN, event.Quantity); err != nil {
		// The unique insert is the authoritative gate; losing the race to a
		// concurrent apply is a safe no-op.
		if errors.Is(err, internalErrors.ErrEventAlreadyProcessed) {
			log.WarnContext(ctx, "event already processed, skipping")
			return nil
		}
		// No book row will ever appear for this ISBN; redelivering forever
		// would pin the partition. Same treatment as a malformed payload.
		if errors.Is(err, internalErrors.ErrBookNotFound) {
			log.WarnContext(ctx, "skipping event for unknown book")
			return nil
		}
		return fmt.Errorf("%s: apply: %w", op, err)
	}

	log.InfoContext(ctx, "sales count updated")

	return nil
}
