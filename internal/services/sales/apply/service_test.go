package apply_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/bookstore/fulfillment/internal/domain/models"
	internalErrors "github.com/bookstore/fulfillment/internal/lib/errors"
	"github.com/bookstore/fulfillment/internal/services/sales/apply"
	"github.com/bookstore/fulfillment/internal/services/sales/apply/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func message(t *testing.T, event models.BookOrderedEvent) *sarama.ConsumerMessage {
	t.Helper()

	bytes, err := json.Marshal(&event)
	require.NoError(t, err)

	return &sarama.ConsumerMessage{
		Topic:     "book.ordered",
		Partition: 2,
		Offset:    17,
		Key:       []byte(event.BookISBN),
		Value:     bytes,
	}
}

func testEvent() models.BookOrderedEvent {
	return models.BookOrderedEvent{
		EventID:   "e1",
		OrderID:   "42",
		BookISBN:  "9780131103627",
		Quantity:  3,
		OrderedAt: time.Now().UTC(),
	}
}

func TestHandle_FirstDelivery(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sales := mocks.NewMocksalesRepository(ctl)
	sales.EXPECT().WasProcessed(gomock.Any(), "e1").Return(false, nil)
	sales.EXPECT().Apply(gomock.Any(), "e1", "9780131103627", int32(3)).Return(nil)

	svc := apply.New(testLogger(), sales)

	err := svc.Handle(context.Background(), message(t, testEvent()))
	require.NoError(t, err)
}

// Redelivery of an already-applied event id acknowledges without mutating.
func TestHandle_Redelivery(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sales := mocks.NewMocksalesRepository(ctl)
	sales.EXPECT().WasProcessed(gomock.Any(), "e1").Return(true, nil)
	sales.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := apply.New(testLogger(), sales)

	err := svc.Handle(context.Background(), message(t, testEvent()))
	require.NoError(t, err)
}

// The pre-check can race with another instance; the unique-insert rejection
// is still an acknowledged no-op, never a second increment.
func TestHandle_LostInsertRace(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sales := mocks.NewMocksalesRepository(ctl)
	sales.EXPECT().WasProcessed(gomock.Any(), "e1").Return(false, nil)
	sales.EXPECT().Apply(gomock.Any(), "e1", "9780131103627", int32(3)).
		Return(internalErrors.ErrEventAlreadyProcessed)

	svc := apply.New(testLogger(), sales)

	err := svc.Handle(context.Background(), message(t, testEvent()))
	require.NoError(t, err)
}

// A storage fault must not acknowledge: the error propagates and the message
// is redelivered.
func TestHandle_StorageFault(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sales := mocks.NewMocksalesRepository(ctl)
	sales.EXPECT().WasProcessed(gomock.Any(), "e1").Return(false, nil)
	sales.EXPECT().Apply(gomock.Any(), "e1", "9780131103627", int32(3)).
		Return(errors.New("db down"))

	svc := apply.New(testLogger(), sales)

	err := svc.Handle(context.Background(), message(t, testEvent()))
	require.Error(t, err)
}

// An event referencing an ISBN with no catalog row can never succeed on
// redelivery, so it is acknowledged like any other permanently-invalid event.
func TestHandle_UnknownBook(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sales := mocks.NewMocksalesRepository(ctl)
	sales.EXPECT().WasProcessed(gomock.Any(), "e1").Return(false, nil)
	sales.EXPECT().Apply(gomock.Any(), "e1", "9780131103627", int32(3)).
		Return(internalErrors.ErrBookNotFound)

	svc := apply.New(testLogger(), sales)

	err := svc.Handle(context.Background(), message(t, testEvent()))
	require.NoError(t, err)
}

func TestHandle_MalformedPayload(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sales := mocks.NewMocksalesRepository(ctl)
	sales.EXPECT().WasProcessed(gomock.Any(), gomock.Any()).Times(0)
	sales.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := apply.New(testLogger(), sales)

	err := svc.Handle(context.Background(), &sarama.ConsumerMessage{Value: []byte("{not json")})
	require.NoError(t, err)
}

func TestHandle_InvalidEvent(t *testing.T) {
	tCases := []struct {
		name  string
		event models.BookOrderedEvent
	}{
		{
			name:  "empty_event_id",
			event: models.BookOrderedEvent{BookISBN: "9780131103627", Quantity: 1},
		},
		{
			name:  "empty_isbn",
			event: models.BookOrderedEvent{EventID: "e1", Quantity: 1},
		},
		{
			name:  "zero_quantity",
			event: models.BookOrderedEvent{EventID: "e1", BookISBN: "9780131103627"},
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			sales := mocks.NewMocksalesRepository(ctl)
			sales.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			svc := apply.New(testLogger(), sales)

			err := svc.Handle(context.Background(), message(t, tCase.event))
			require.NoError(t, err)
		})
	}
}
