package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sabordecasa/storefront/internal/dal/gateway"
	"github.com/sabordecasa/storefront/internal/dal/postgres"
	"github.com/sabordecasa/storefront/internal/dal/rabbitmq"
	auditrepo "github.com/sabordecasa/storefront/internal/dal/repositories/audit"
	outboxrepo "github.com/sabordecasa/storefront/internal/dal/repositories/outbox/sqlite"
	snapshotrepo "github.com/sabordecasa/storefront/internal/dal/repositories/snapshot/sqlite"
	"github.com/sabordecasa/storefront/internal/dal/sqlite"
	"github.com/sabordecasa/storefront/internal/otel"
	"github.com/sabordecasa/storefront/internal/service/services/storesvc"
	httptransport "github.com/sabordecasa/storefront/internal/transport/http"
	outboxworker "github.com/sabordecasa/storefront/internal/worker/outbox"
	"golang.org/x/sync/errgroup"
)

// App represents the application.
type App struct {
	storeSvc       *storesvc.StoreService
	transport      *httptransport.HTTPTransport
	postgresClient *postgres.Client
	sqliteClient   *sqlite.Client
	rabbitClient   *rabbitmq.Client
	auditWorker    *outboxworker.Worker
	otelController *otel.OtelController
}

// MustNewApp creates a new application. The local store is mandatory; the
// remote store and the broker are optional at startup, the app degrades to
// snapshot mode and buffered audit events respectively.
func MustNewApp() *App {
	ctx := context.Background()

	otelController := otel.MustInitOtel()

	sqliteClient := sqlite.MustNewClient()
	snapshots := snapshotrepo.NewSnapshotRepository(sqliteClient)
	outbox := outboxrepo.NewOutboxRepository(sqliteClient)

	postgresClient, err := postgres.NewClient(ctx)
	if err != nil {
		slog.Error("Remote store unavailable, starting in disconnected mode", "error", err)
		postgresClient = nil
	}

	storeSvc := storesvc.MustNewStoreService(
		storesvc.WithGateway(gateway.New(postgresClient)),
		storesvc.WithSnapshotRepository(snapshots),
		storesvc.WithOutboxRepository(outbox),
	)
	storeSvc.Init(ctx)

	transport := httptransport.NewHTTPTransport(storeSvc)
	transport.RegisterRoutes()

	var auditWorker *outboxworker.Worker
	rabbitClient, err := rabbitmq.NewClient()
	if err != nil {
		slog.Error("RabbitMQ unavailable, audit events stay buffered locally", "error", err)
		rabbitClient = nil
	} else {
		publisher, err := auditrepo.NewAuditRabbitMQPublisher(rabbitClient)
		if err != nil {
			slog.Error("Failed to declare audit queue, audit events stay buffered locally", "error", err)
		} else {
			auditWorker = outboxworker.NewWorker(outbox, publisher)
		}
	}

	return &App{
		storeSvc:       storeSvc,
		transport:      transport,
		postgresClient: postgresClient,
		sqliteClient:   sqliteClient,
		rabbitClient:   rabbitClient,
		auditWorker:    auditWorker,
		otelController: otelController,
	}
}

// Run starts the application and blocks until an interrupt signal arrives,
// then shuts everything down gracefully.
func (a *App) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	if a.auditWorker != nil {
		g.Go(func() error {
			a.auditWorker.Start(gctx)

			return nil
		})
	}

	<-gctx.Done()
	slog.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	if err := g.Wait(); err != nil {
		slog.Error("Runtime error during shutdown", "error", err)
	}

	if a.postgresClient != nil {
		if err := a.postgresClient.Close(); err != nil {
			slog.Error("Remote store close error", "error", err)
		}
	}

	if err := a.sqliteClient.Close(); err != nil {
		slog.Error("Local store close error", "error", err)
	}

	if a.rabbitClient != nil {
		if err := a.rabbitClient.Close(); err != nil {
			slog.Error("RabbitMQ close error", "error", err)
		}
	}

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Tracer shutdown error", "error", err)
	}

	slog.Info("Application shutdown complete")
}
