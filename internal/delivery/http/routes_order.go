package fulfillment_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	createHandler "github.com/bookstore/fulfillment/internal/delivery/http/order/create"
	getHandler "github.com/bookstore/fulfillment/internal/delivery/http/order/get"
	"github.com/bookstore/fulfillment/internal/domain/models"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, order *models.Order) (*models.Order, error)
}

type OrderGetter interface {
	OrderByID(ctx context.Context, orderID int64) (*models.Order, error)
}

// NewOrderRouter wires the order service's public API.
func NewOrderRouter(log *slog.Logger, orderPlacer OrderPlacer, orderGetter OrderGetter) http.Handler {
	create := createHandler.NewHandler(log, orderPlacer)
	get := getHandler.NewHandler(log, orderGetter)

	mux := chi.NewRouter()

	mux.Route("/order", func(r chi.Router) {
		r.Post("/", create.Create)
		r.Get("/{id}", get.Get)
	})

	return mux
}
