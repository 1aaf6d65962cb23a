package reservation

// Outcome is the typed reservation result. Callers branch on it instead of
// pattern-matching a free-text message.
type Outcome string

const (
	OutcomeOK                Outcome = "OK"
	OutcomeNotFound          Outcome = "NOT_FOUND"
	OutcomeInsufficientStock Outcome = "INSUFFICIENT_STOCK"
	OutcomeInternal          Outcome = "INTERNAL"
)

type ReserveRequest struct {
	BookISBN string `json:"book_isbn"`
	Quantity int32  `json:"quantity"`
}

type ReserveResponse struct {
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message,omitempty"`
}
