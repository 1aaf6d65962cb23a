package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bookstore/fulfillment/internal/domain/models"
	internalErrors "github.com/bookstore/fulfillment/internal/lib/errors"
)

type orderPlacer interface {
	PlaceOrder(ctx context.Context, order *models.Order) (*models.Order, error)
}

type Handler struct {
	log *slog.Logger

	orderPlacer orderPlacer
}

func NewHandler(log *slog.Logger, orderPlacer orderPlacer) *Handler {
	return &Handler{
		log:         log,
		orderPlacer: orderPlacer,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var request CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.log.Error("failed to decode request", slog.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := request.Validate(); err != nil {
		h.log.Error("failed to validate request", slog.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order := request.toDTO()

	placed, err := h.orderPlacer.PlaceOrder(r.Context(), &order)
	if err != nil {
		switch {
		case errors.Is(err, internalErrors.ErrBookNotFound):
			http.Error(w, internalErrors.ErrBookNotFound.Error(), http.StatusNotFound)
		case errors.Is(err, internalErrors.ErrInsufficientStock):
			http.Error(w, internalErrors.ErrInsufficientStock.Error(), http.StatusConflict)
		default:
			h.log.Error("failed to place order", slog.String("error", err.Error()))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err = json.NewEncoder(w).Encode(placed); err != nil {
		h.log.Error("failed to encode response", slog.String("error", err.Error()))
	}
}
