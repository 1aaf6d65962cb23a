package fulfillment_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	bookGetHandler "github.com/bookstore/fulfillment/internal/delivery/http/book/get"
	reservationHandler "github.com/bookstore/fulfillment/internal/delivery/http/reservation"
	"github.com/bookstore/fulfillment/internal/domain/models"
)

type Reserver interface {
	Reserve(ctx context.Context, isbn string, quantity int32) error
}

type BookGetter interface {
	BookByISBN(ctx context.Context, isbn string) (*models.Book, error)
}

// NewBookRouter wires the book service's surface: the reservation RPC and a
// read endpoint for the catalog counters.
func NewBookRouter(log *slog.Logger, reserver Reserver, bookGetter BookGetter) http.Handler {
	reserve := reservationHandler.NewHandler(log, reserver)
	get := bookGetHandler.NewHandler(log, bookGetter)

	mux := chi.NewRouter()

	mux.Post("/rpc/reserve", reserve.Reserve)
	mux.Get("/book/{isbn}", get.Get)

	return mux
}
