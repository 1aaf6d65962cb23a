package order

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

func (r *Repository) Create(ctx context.Context, order *models.Order) (int64, error) {
	const op = "repository.order.Create"

	const query = `
		INSERT INTO orders (user_uuid, book_isbn, quantity, total_amount_cents, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at`

	row := r.db.QueryRowContext(ctx, query,
		order.UserUUID, order.BookISBN, order.Quantity, order.TotalAmountCents, order.Status,
	)

	var orderID int64
	if err := row.Scan(&orderID, &order.CreatedAt); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return 0, fmt.Errorf("%s: scan result: %w", op, err)
	}

	return orderID, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID int64, status models.OrderStatus) error {
	const op = "repository.order.UpdateStatus"

	const query = `UPDATE orders SET status = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, status, orderID)
	if err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}

	if affected == 0 {
		return internalErrors.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) OrderByID(ctx context.Context, orderID int64) (*models.Order, error) {
	const op = "repository.order.OrderByID"

	const query = `
		SELECT id, user_uuid, book_isbn, quantity, total_amount_cents, status, created_at
			FROM orders
			WHERE id = $1`

	var order models.Order
	if err := r.db.GetContext(ctx, &order, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internalErrors.ErrOrderNotFound
		}
		r.log.Error(op, slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &order, nil
}
