package bookapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	httpapp "github.com/bookstore/fulfillment/internal/app/http"
	"github.com/bookstore/fulfillment/internal/config"
	fulfillment_http "github.com/bookstore/fulfillment/internal/delivery/http"
	bookRepository "github.com/bookstore/fulfillment/internal/repository/book"
	salesRepository "github.com/bookstore/fulfillment/internal/repository/sales"
	reservationService "github.com/bookstore/fulfillment/internal/services/reservation"
	salesApplyService "github.com/bookstore/fulfillment/internal/services/sales/apply"
	"github.com/bookstore/fulfillment/pkg/brokers/kafka/consumergroup"
	"github.com/bookstore/fulfillment/pkg/databases/postgres"
)

type App struct {
	log *slog.Logger

	httpServer *httpapp.App
	consumer   *consumergroup.Group
	db         *postgres.PgDB
}

func NewApp(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	db, err := postgres.NewPostgresDB(ctx, log, cfg.Postgres.ConnConfig())
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	bookRepo := bookRepository.NewRepository(log, db.GetDB())
	salesRepo := salesRepository.NewRepository(log, db.GetDB())

	reservationSvc := reservationService.New(log, bookRepo)
	applySvc := salesApplyService.New(log, salesRepo)

	consumer, err := consumergroup.New(
		log,
		cfg.Kafka.BrokerList,
		cfg.Kafka.ConsumerGroup,
		[]string{cfg.Kafka.BookOrderedTopic},
		applySvc.Handle,
	)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	router := fulfillment_http.NewBookRouter(log, reservationSvc, bookRepo)

	return &App{
		log:        log,
		httpServer: httpapp.NewApp(log, router, cfg.BookHTTP.Port),
		consumer:   consumer,
		db:         db,
	}, nil
}

// Run serves the reservation RPC and the sales update consumer until ctx is
// cancelled or either loop fails.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.httpServer.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return a.consumer.Run(ctx)
	})

	return g.Wait()
}

func (a *App) Stop(ctx context.Context) error {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	if err := a.consumer.Close(); err != nil {
		return fmt.Errorf("close consumer group: %w", err)
	}

	if err := a.db.Close(); err != nil {
		return fmt.Errorf("close postgres: %w", err)
	}

	a.log.Info("book service stopped")

	return nil
}
