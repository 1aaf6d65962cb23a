package reservation

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	internalErrors "github.com/bookstore/fulfillment/internal/lib/errors"
	reservationService "github.com/bookstore/fulfillment/internal/services/reservation"
)

type reserver interface {
	Reserve(ctx context.Context, isbn string, quantity int32) error
}

type Handler struct {
	log *slog.Logger

	reserver reserver
}

func NewHandler(log *slog.Logger, reserver reserver) *Handler {
	return &Handler{
		log:      log,
		reserver: reserver,
	}
}

// Reserve is the RPC endpoint wrapping the inventory ledger. Business
// rejections are 200s with a non-OK outcome; only transport or storage
// faults produce a 500.
func (h *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	var request ReserveRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.log.Error("failed to decode reserve request", slog.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.reserver.Reserve(r.Context(), request.BookISBN, request.Quantity)

	response := ReserveResponse{Outcome: OutcomeOK}
	status := http.StatusOK

	switch {
	case err == nil:
	case errors.Is(err, internalErrors.ErrBookNotFound):
		response = ReserveResponse{Outcome: OutcomeNotFound, Message: err.Error()}
	case errors.Is(err, internalErrors.ErrInsufficientStock):
		response = ReserveResponse{Outcome: OutcomeInsufficientStock, Message: err.Error()}
	case errors.Is(err, reservationService.ErrEmptyISBN),
		errors.Is(err, reservationService.ErrInvalidQuantity):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	default:
		response = ReserveResponse{Outcome: OutcomeInternal, Message: "unexpected error occurred"}
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err = json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("failed to encode reserve response", slog.String("error", err.Error()))
	}
}
