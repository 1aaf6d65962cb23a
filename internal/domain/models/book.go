package models

import "time"

// Book is the catalog aggregate. AvailableCopies is mutated only through the
// inventory repository's conditional decrement, SalesCount only by the sales
// update consumer.
type Book struct {
	ISBN            string    `db:"isbn" json:"isbn"`
	Title           string    `db:"title" json:"title"`
	Author          string    `db:"author" json:"author"`
	PriceCents      uint64    `db:"price_cents" json:"price_cents"`
	PublishedAt     time.Time `db:"published_at" json:"published_at"`
	AvailableCopies int32     `db:"available_copies" json:"available_copies"`
	SalesCount      int64     `db:"sales_count" json:"sales_count"`
}
