package orderapp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/hashicorp/golang-lru/v2/expirable"

	httpapp "github.com/bookstore/fulfillment/internal/app/http"
	"github.com/bookstore/fulfillment/internal/cache"
	reservationClient "github.com/bookstore/fulfillment/internal/clients/reservation"
	"github.com/bookstore/fulfillment/internal/config"
	fulfillment_http "github.com/bookstore/fulfillment/internal/delivery/http"
	"github.com/bookstore/fulfillment/internal/domain/models"
	"github.com/bookstore/fulfillment/internal/events"
	orderRepository "github.com/bookstore/fulfillment/internal/repository/order"
	orderRetrievalService "github.com/bookstore/fulfillment/internal/services/order/get"
	orderPlacementService "github.com/bookstore/fulfillment/internal/services/order/place"
	kafkaProducer "github.com/bookstore/fulfillment/pkg/brokers/kafka/producer"
	"github.com/bookstore/fulfillment/pkg/databases/postgres"
)

const (
	orderCacheSize = 256
	orderCacheTTL  = 10 * time.Minute
)

type App struct {
	log *slog.Logger

	HTTPServer *httpapp.App

	producer sarama.AsyncProducer
	db       *postgres.PgDB
}

func NewApp(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	db, err := postgres.NewPostgresDB(ctx, log, cfg.Postgres.ConnConfig())
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	producer, err := kafkaProducer.NewAsyncProducer(ctx, log, cfg.Kafka.BrokerList)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	orderRepo := orderRepository.NewRepository(log, db.GetDB())

	publisher := events.NewPublisher(log, cfg.Kafka.BookOrderedTopic, producer)
	reserver := reservationClient.NewClient(log, cfg.Reservation.BaseURL)

	placementSvc := orderPlacementService.New(log, orderRepo, reserver, publisher, cfg.Reservation.Timeout)

	lru := expirable.NewLRU[int64, *models.Order](orderCacheSize, nil, orderCacheTTL)
	retrievalSvc := orderRetrievalService.New(log, cache.NewCache[int64, *models.Order](lru, log), orderRepo)

	router := fulfillment_http.NewOrderRouter(log, placementSvc, retrievalSvc)

	return &App{
		log:        log,
		HTTPServer: httpapp.NewApp(log, router, cfg.OrderHTTP.Port),
		producer:   producer,
		db:         db,
	}, nil
}

func (a *App) Stop(ctx context.Context) error {
	if err := a.HTTPServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	if err := a.producer.Close(); err != nil {
		return fmt.Errorf("close kafka producer: %w", err)
	}

	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close postgres: %w", err)
	}

	a.log.Info("order service stopped")

	return nil
}
