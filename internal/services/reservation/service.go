package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	internalErrors "github.com/bookstore/fulfillment/internal/lib/errors"
)

type inventoryLedger interface {
	ReserveCopies(ctx context.Context, isbn string, quantity int32) error
}

var (
	ErrEmptyISBN       = errors.New("isbn can't be empty")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Service validates and applies one reservation. It is the only mutation path
// for available_copies.
type Service struct {
	log    *slog.Logger
	ledger inventoryLedger
}

func New(log *slog.Logger, ledger inventoryLedger) *Service {
	return &Service{
		log:    log,
		ledger: ledger,
	}
}

// Reserve decrements the book's available copies by quantity. Business
// rejections come back as ErrBookNotFound / ErrInsufficientStock; anything
// else is a storage fault the caller must treat as non-authoritative.
func (s *Service) Reserve(ctx context.Context, isbn string, quantity int32) error {
	const op = "services.reservation.Reserve"

	if isbn == "" {
		return ErrEmptyISBN
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	err := s.ledger.ReserveCopies(ctx, isbn, quantity)
	switch {
	case err == nil:
		s.log.InfoContext(ctx, "copies reserved",
			slog.String("isbn", isbn),
			slog.Int("quantity", int(quantity)),
		)
		return nil
	case errors.Is(err, internalErrors.ErrBookNotFound),
		errors.Is(err, internalErrors.ErrInsufficientStock):
		s.log.InfoContext(ctx, "reservation rejected",
			slog.String("isbn", isbn),
			slog.Int("quantity", int(quantity)),
			slog.String("reason", err.Error()),
		)
		return err
	default:
		s.log.ErrorContext(ctx, "reservation failed",
			slog.String("isbn", isbn),
			slog.Int("quantity", int(quantity)),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}
}
