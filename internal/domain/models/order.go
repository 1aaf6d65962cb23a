package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus int

const (
	UndefinedStatus OrderStatus = iota
	// OrderStatusCreated: row persisted, reservation not yet confirmed.
	OrderStatusCreated
	// OrderStatusReserved: inventory decrement durably applied.
	OrderStatusReserved
	// OrderStatusFailed: reservation rejected with a business outcome.
	OrderStatusFailed
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusCreated:
		return "created"
	case OrderStatusReserved:
		return "reserved"
	case OrderStatusFailed:
		return "failed"
	default:
		return "undefined"
	}
}

type Order struct {
	ID               int64       `db:"id" json:"order_id"`
	UserUUID         uuid.UUID   `db:"user_uuid" json:"user_id"`
	BookISBN         string      `db:"book_isbn" json:"book_isbn"`
	Quantity         int32       `db:"quantity" json:"quantity"`
	TotalAmountCents uint64      `db:"total_amount_cents" json:"total_amount_cents"`
	Status           OrderStatus `db:"status" json:"status"`
	CreatedAt        time.Time   `db:"created_at" json:"created_at"`
}
