package get

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bookstore/fulfillment/internal/domain/models"
	internalErrors "github.com/bookstore/fulfillment/internal/lib/errors"
)

type orderGetter interface {
	OrderByID(ctx context.Context, orderID int64) (*models.Order, error)
}

type Handler struct {
	log *slog.Logger

	orderGetter orderGetter
}

func NewHandler(log *slog.Logger, orderGetter orderGetter) *Handler {
	return &Handler{
		log:         log,
		orderGetter: orderGetter,
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.orderGetter.OrderByID(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrOrderNotFound) {
			http.Error(w, internalErrors.ErrOrderNotFound.Error(), http.StatusNotFound)
			return
		}
		h.log.Error("failed to get order", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err = json.NewEncoder(w).Encode(order); err != nil {
		h.log.Error("failed to encode response", slog.String("error", err.Error()))
	}
}
