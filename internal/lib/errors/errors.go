package errors

import "errors"

var (
	ErrBookNotFound          = errors.New("book not found")
	ErrInsufficientStock     = errors.New("not enough stock")
	ErrOrderNotFound         = errors.New("order not found")
	ErrEventAlreadyProcessed = errors.New("event already processed")
)
