package reservation_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	internalErrors "github.com/bookstore/fulfillment/internal/lib/errors"
	"github.com/bookstore/fulfillment/internal/services/reservation"
)

// memoryLedger mimics the repository's conditional decrement: the stock
// check and the decrement happen under one lock, like the row-locked UPDATE.
type memoryLedger struct {
	mu     sync.Mutex
	copies map[string]int32
}

func (l *memoryLedger) ReserveCopies(_ context.Context, isbn string, quantity int32) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	available, ok := l.copies[isbn]
	if !ok {
		return internalErrors.ErrBookNotFound
	}
	if available < quantity {
		return internalErrors.ErrInsufficientStock
	}

	l.copies[isbn] = available - quantity
	return nil
}

// N concurrent reservations whose quantities sum past the available stock:
// the successful decrements never drive the counter negative.
func TestReserve_ConcurrentOverCommit(t *testing.T) {
	const (
		isbn      = "9780131103627"
		initial   = int32(10)
		quantity  = int32(3)
		attempts  = 20
		maxWinner = initial / quantity
	)

	ledger := &memoryLedger{copies: map[string]int32{isbn: initial}}
	svc := reservation.New(testLogger(), ledger)

	var successes atomic.Int32

	g := errgroup.Group{}
	for i := 0; i < attempts; i++ {
		g.Go(func() error {
			err := svc.Reserve(context.Background(), isbn, quantity)
			if err == nil {
				successes.Add(1)
				return nil
			}
			if !errors.Is(err, internalErrors.ErrInsufficientStock) {
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	won := successes.Load()
	require.LessOrEqual(t, won, maxWinner)
	require.GreaterOrEqual(t, won, int32(1))

	remaining := ledger.copies[isbn]
	require.GreaterOrEqual(t, remaining, int32(0))
	require.Equal(t, initial-won*quantity, remaining)
}
