package models

import "time"

// BookOrderedEvent is produced exactly once per reserved order. Delivery is
// at-least-once, so EventID is the deduplication key downstream.
type BookOrderedEvent struct {
	EventID   string    `json:"event_id"`
	OrderID   string    `json:"order_id"`
	BookISBN  string    `json:"book_isbn"`
	Quantity  int32     `json:"quantity"`
	OrderedAt time.Time `json:"ordered_at"`
}

// Key is the partition key: events for one book land on one partition and are
// consumed in publish order.
func (e *BookOrderedEvent) Key() string {
	return e.BookISBN
}
