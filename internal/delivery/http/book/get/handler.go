package get

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookstore/fulfillment/internal/domain/models"
	internalErrors "github.com/bookstore/fulfillment/internal/lib/errors"
)

type bookGetter interface {
	BookByISBN(ctx context.Context, isbn string) (*models.Book, error)
}

type Handler struct {
	log *slog.Logger

	bookGetter bookGetter
}

func NewHandler(log *slog.Logger, bookGetter bookGetter) *Handler {
	return &Handler{
		log:        log,
		bookGetter: bookGetter,
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	isbn := chi.URLParam(r, "isbn")

	book, err := h.bookGetter.BookByISBN(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, internalErrors.ErrBookNotFound) {
			http.Error(w, internalErrors.ErrBookNotFound.Error(), http.StatusNotFound)
			return
		}
		h.log.Error("failed to get book", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err = json.NewEncoder(w).Encode(book); err != nil {
		h.log.Error("failed to encode response", slog.String("error", err.Error()))
	}
}
