package place

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/bookstore/fulfillment/internal/domain/models"
	internalErrors "github.com/bookstore/fulfillment/internal/lib/errors"
)

type orderRepository interface {
	Create(ctx context.Context, order *models.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status models.OrderStatus) error
}

type reserver interface {
	Reserve(ctx context.Context, isbn string, quantity int32) error
}

type eventPublisher interface {
	PublishBookOrdered(event *models.BookOrderedEvent)
}

// Service coordinates the order saga: persist the order, reserve inventory
// synchronously, publish the sales event without waiting for the ack.
type Service struct {
	log *slog.Logger

	orders    orderRepository
	reserver  reserver
	publisher eventPublisher

	reserveTimeout time.Duration
}

func New(
	log *slog.Logger,
	orders orderRepository,
	reserver reserver,
	publisher eventPublisher,
	reserveTimeout time.Duration,
) *Service {
	return &Service{
		log:            log,
		orders:         orders,
		reserver:       reserver,
		publisher:      publisher,
		reserveTimeout: reserveTimeout,
	}
}

// PlaceOrder returns with the inventory decrement durably applied; the sales
// count update is only eventual. Status transitions:
// created -> reserved on success, created -> failed on a business rejection.
// An internal reservation fault leaves the order in created for later
// reconciliation, since the decrement may or may not have happened.
func (s *Service) PlaceOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	const op = "services.order.place.PlaceOrder"

	order.Status = models.OrderStatusCreated

	orderID, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("%s: create order: %w", op, err)
	}
	order.ID = orderID

	reserveCtx, cancel := context.WithTimeout(ctx, s.reserveTimeout)
	defer cancel()

	if err = s.reserver.Reserve(reserveCtx, order.BookISBN, order.Quantity); err != nil {
		if errors.Is(err, internalErrors.ErrBookNotFound) ||
			errors.Is(err, internalErrors.ErrInsufficientStock) {
			s.markFailed(ctx, orderID)
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		// Non-authoritative outcome: the decrement may have landed, so the
		// order is not failed here.
		s.log.ErrorContext(ctx, "reservation fault",
			slog.Int64("order_id", orderID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%s: reserve: %w", op, err)
	}

	if err = s.orders.UpdateStatus(ctx, orderID, models.OrderStatusReserved); err != nil {
		return nil, fmt.Errorf("%s: mark reserved: %w", op, err)
	}
	order.Status = models.OrderStatusReserved

	event := &models.BookOrderedEvent{
		EventID:   uuid.NewString(),
		OrderID:   strconv.FormatInt(orderID, 10),
		BookISBN:  order.BookISBN,
		Quantity:  order.Quantity,
		OrderedAt: time.Now().UTC(),
	}

	// Fire-and-forget: publish outcome is observed by the producer's ack
	// loop, never by this caller.
	s.publisher.PublishBookOrdered(event)

	s.log.InfoContext(ctx, "order placed",
		slog.Int64("order_id", orderID),
		slog.String("isbn", order.BookISBN),
		slog.Int("quantity", int(order.Quantity)),
		slog.String("event_id", event.EventID),
	)

	return order, nil
}

func (s *Service) markFailed(ctx context.Context, orderID int64) {
	const op = "services.order.place.markFailed"

	if err := s.orders.UpdateStatus(ctx, orderID, models.OrderStatusFailed); err != nil {
		s.log.ErrorContext(ctx, op,
			slog.Int64("order_id", orderID),
			slog.String("error", err.Error()),
		)
	}
}
