package get

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bookstore/fulfillment/internal/cache"
	"github.com/bookstore/fulfillment/internal/domain/models"
)

type orderGetter interface {
	OrderByID(ctx context.Context, orderID int64) (*models.Order, error)
}

type OrderRetrievalService struct {
	log   *slog.Logger
	cache cache.CacheI[int64, *models.Order]

	orderGetter orderGetter
}

func New(
	log *slog.Logger,
	cache cache.CacheI[int64, *models.Order],
	orderGetter orderGetter,
) *OrderRetrievalService {
	return &OrderRetrievalService{
		log:         log,
		cache:       cache,
		orderGetter: orderGetter,
	}
}

func (s *OrderRetrievalService) OrderByID(ctx context.Context, orderID int64) (*models.Order, error) {
	const op = "services.order.get.OrderByID"

	if order, ok := s.cache.Get(orderID); ok && order != nil {
		s.log.DebugContext(ctx, op, slog.Int64("order_id", orderID), slog.Bool("cache_hit", true))
		return order, nil
	}

	order, err := s.orderGetter.OrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_ = s.cache.Add(orderID, order)

	return order, nil
}
