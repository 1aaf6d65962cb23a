package place_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bookstore/fulfillment/internal/domain/models"
	"github.com/bookstore/fulfillment/internal/events"
	internalErrors "github.com/bookstore/fulfillment/internal/lib/errors"
	"github.com/bookstore/fulfillment/internal/services/order/place"
	"github.com/bookstore/fulfillment/internal/services/order/place/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newOrder() *models.Order {
	return &models.Order{
		UserUUID:         uuid.New(),
		BookISBN:         "9780131103627",
		Quantity:         3,
		TotalAmountCents: 9000,
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	orders := mocks.NewMockorderRepository(ctl)
	reserver := mocks.NewMockreserver(ctl)
	publisher := mocks.NewMockeventPublisher(ctl)

	order := newOrder()

	orders.EXPECT().Create(gomock.Any(), order).Return(int64(42), nil)
	reserver.EXPECT().Reserve(gomock.Any(), order.BookISBN, order.Quantity).Return(nil)
	orders.EXPECT().UpdateStatus(gomock.Any(), int64(42), models.OrderStatusReserved).Return(nil)
	publisher.EXPECT().PublishBookOrdered(gomock.Any()).Do(func(event *models.BookOrderedEvent) {
		require.NotEmpty(t, event.EventID)
		require.Equal(t, "42", event.OrderID)
		require.Equal(t, order.BookISBN, event.BookISBN)
		require.Equal(t, order.Quantity, event.Quantity)
		require.False(t, event.OrderedAt.IsZero())
	})

	svc := place.New(testLogger(), orders, reserver, publisher, time.Second)

	placed, err := svc.PlaceOrder(context.Background(), order)
	require.NoError(t, err)
	require.Equal(t, int64(42), placed.ID)
	require.Equal(t, models.OrderStatusReserved, placed.Status)
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	orders := mocks.NewMockorderRepository(ctl)
	reserver := mocks.NewMockreserver(ctl)
	publisher := mocks.NewMockeventPublisher(ctl)

	order := newOrder()
	order.Quantity = 5

	orders.EXPECT().Create(gomock.Any(), order).Return(int64(7), nil)
	reserver.EXPECT().Reserve(gomock.Any(), order.BookISBN, order.Quantity).
		Return(internalErrors.ErrInsufficientStock)
	orders.EXPECT().UpdateStatus(gomock.Any(), int64(7), models.OrderStatusFailed).Return(nil)
	// No event for a rejected reservation.
	publisher.EXPECT().PublishBookOrdered(gomock.Any()).Times(0)

	svc := place.New(testLogger(), orders, reserver, publisher, time.Second)

	_, err := svc.PlaceOrder(context.Background(), order)
	require.ErrorIs(t, err, internalErrors.ErrInsufficientStock)
}

func TestPlaceOrder_BookNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	orders := mocks.NewMockorderRepository(ctl)
	reserver := mocks.NewMockreserver(ctl)
	publisher := mocks.NewMockeventPublisher(ctl)

	order := newOrder()
	order.BookISBN = "0000000000"

	orders.EXPECT().Create(gomock.Any(), order).Return(int64(8), nil)
	reserver.EXPECT().Reserve(gomock.Any(), order.BookISBN, order.Quantity).
		Return(internalErrors.ErrBookNotFound)
	orders.EXPECT().UpdateStatus(gomock.Any(), int64(8), models.OrderStatusFailed).Return(nil)
	publisher.EXPECT().PublishBookOrdered(gomock.Any()).Times(0)

	svc := place.New(testLogger(), orders, reserver, publisher, time.Second)

	_, err := svc.PlaceOrder(context.Background(), order)
	require.ErrorIs(t, err, internalErrors.ErrBookNotFound)
}

func TestPlaceOrder_ReservationFault(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	orders := mocks.NewMockorderRepository(ctl)
	reserver := mocks.NewMockreserver(ctl)
	publisher := mocks.NewMockeventPublisher(ctl)

	order := newOrder()

	orders.EXPECT().Create(gomock.Any(), order).Return(int64(9), nil)
	reserver.EXPECT().Reserve(gomock.Any(), order.BookISBN, order.Quantity).
		Return(errors.New("connection reset"))
	// A non-authoritative fault must not mark the order failed: the
	// decrement may have been applied.
	orders.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	publisher.EXPECT().PublishBookOrdered(gomock.Any()).Times(0)

	svc := place.New(testLogger(), orders, reserver, publisher, time.Second)

	_, err := svc.PlaceOrder(context.Background(), order)
	require.Error(t, err)
	require.NotErrorIs(t, err, internalErrors.ErrBookNotFound)
	require.NotErrorIs(t, err, internalErrors.ErrInsufficientStock)
}

type stubProducer struct {
	input    chan *sarama.ProducerMessage
	received chan *sarama.ProducerMessage
}

func newStubProducer() *stubProducer {
	p := &stubProducer{
		input:    make(chan *sarama.ProducerMessage),
		received: make(chan *sarama.ProducerMessage, 1),
	}

	go func() {
		for msg := range p.input {
			p.received <- msg
		}
	}()

	return p
}

func (p *stubProducer) Input() chan<- *sarama.ProducerMessage {
	return p.input
}

// The publish is enqueued after the reserved status is committed and its
// outcome never reaches the caller: even if the broker later nacks the
// message, PlaceOrder has already returned a reserved order.
func TestPlaceOrder_PublishOutcomeCannotAffectOrder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	orders := mocks.NewMockorderRepository(ctl)
	reserver := mocks.NewMockreserver(ctl)

	order := newOrder()

	orders.EXPECT().Create(gomock.Any(), order).Return(int64(42), nil)
	reserver.EXPECT().Reserve(gomock.Any(), order.BookISBN, order.Quantity).Return(nil)
	// The only status write is the reserved one; a failed delivery has no
	// path back to the order.
	orders.EXPECT().UpdateStatus(gomock.Any(), int64(42), models.OrderStatusReserved).Return(nil)

	producer := newStubProducer()
	publisher := events.NewPublisher(testLogger(), "book.ordered", producer)

	svc := place.New(testLogger(), orders, reserver, publisher, time.Second)

	placed, err := svc.PlaceOrder(context.Background(), order)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusReserved, placed.Status)

	select {
	case msg := <-producer.received:
		require.Equal(t, "book.ordered", msg.Topic)
	case <-time.After(time.Second):
		t.Fatal("event was not enqueued")
	}
}

func TestPlaceOrder_CreateFails(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	orders := mocks.NewMockorderRepository(ctl)
	reserver := mocks.NewMockreserver(ctl)
	publisher := mocks.NewMockeventPublisher(ctl)

	order := newOrder()

	orders.EXPECT().Create(gomock.Any(), order).Return(int64(0), errors.New("db down"))
	reserver.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	publisher.EXPECT().PublishBookOrdered(gomock.Any()).Times(0)

	svc := place.New(testLogger(), orders, reserver, publisher, time.Second)

	_, err := svc.PlaceOrder(context.Background(), order)
	require.Error(t, err)
}
