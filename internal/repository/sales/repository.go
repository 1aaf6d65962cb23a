package sales

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	internalErrors "github.com/bookstore/fulfillment/internal/lib/errors"
)

// Repository owns the sales counter and the idempotency ledger. The two
// writes share one transaction: the unique insert into processed_event is the
// gate, so a crash between increment and commit cannot leave the counter
// incremented without a ledger row.
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

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}

// WasProcessed is a cheap pre-check. It may race with a concurrent apply;
// Apply's unique insert stays authoritative.
func (r *Repository) WasProcessed(ctx context.Context, eventID string) (bool, error) {
	const op = "repository.sales.WasProcessed"

	var exists bool
	if err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM processed_event WHERE event_id = $1)`, eventID,
	); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return false, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return exists, nil
}

// Apply records the event id and increments the book's sales count in one
// transaction. A duplicate event id yields ErrEventAlreadyProcessed and no
// mutation.
func (r *Repository) Apply(ctx context.Context, eventID, isbn string, quantity int32) (err error) {
	const op = "repository.sales.Apply"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rollBackErr := tx.Rollback(); rollBackErr != nil {
				r.log.Error(op, slog.String("error", rollBackErr.Error()))
				err = errors.Join(err, fmt.Errorf("%s: rollback transaction: %w", op, rollBackErr))
			}
		}
	}()

	const insertQuery = `INSERT INTO processed_event (event_id, processed_at) VALUES ($1, $2)`

	if _, err = tx.ExecContext(ctx, insertQuery, eventID, time.Now().UTC()); err != nil {
		if isUniqueViolation(err) {
			return internalErrors.ErrEventAlreadyProcessed
		}
		r.log.Error(op, slog.String("error", err.Error()))
		return fmt.Errorf("%s: insert processed event: %w", op, err)
	}

	const incrementQuery = `UPDATE books SET sales_count = sales_count + $2 WHERE isbn = $1`

	res, err := tx.ExecContext(ctx, incrementQuery, isbn, quantity)
	if err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return fmt.Errorf("%s: increment sales count: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}

	if affected == 0 {
		err = internalErrors.ErrBookNotFound
		return err
	}

	if err = tx.Commit(); err != nil {
		r.log.Error(op, slog.String("error", err.Error()))
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}
