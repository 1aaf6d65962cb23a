package book

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/bookstore/fulfillment/internal/domain/models"
	internalErrors "github.com/bookstore/fulfillment/internal/lib/errors"
)

type Repository struct {
	log *slog.Logger
	db  *sqlx.DB
}

func NewRepository(log *slog.Logger, db *sqlx.DB) *Repository {
	return &Repository{
		log: log,
		db:  db,
	}
}

// ReserveCopies decrements available_copies by quantity iff the remaining
// stock covers it. The single conditional UPDATE takes the row lock, so two
// concurrent reservations on one ISBN cannot both pass the stock check
// against a stale count.
func (r *Repository) ReserveCopies(ctx context.Context, isbn string, quantity int32) error {
	const op = "repository.book.ReserveCopies"

	const reserveQuery = `
		UPDATE books
			SET available_copies = available_copies - $2
			WHERE isbn = $1 AND available_copies >= $2`

	res, err := r.db.ExecContext(ctx, reserveQuery, isbn, quantity)
	if err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}

	if affected == 1 {
		return nil
	}

	// Zero rows: either the book does not exist or the stock is short.
	var exists bool
	if err = r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)`, isbn,
	); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return fmt.Errorf("%s: existence check: %w", op, err)
	}

	if !exists {
		return internalErrors.ErrBookNotFound
	}

	return internalErrors.ErrInsufficientStock
}

func (r *Repository) BookByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	const op = "repository.book.BookByISBN"

	const query = `
		SELECT isbn, title, author, price_cents, published_at, available_copies, sales_count
			FROM books
			WHERE isbn = $1`

	var b models.Book
	if err := r.db.GetContext(ctx, &b, query, isbn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrBookNotFound
		}
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &b, nil
}
