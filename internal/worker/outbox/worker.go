package outbox

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/sabordecasa/storefront/internal/dal/interfaces/ioutboxrepo"
	"github.com/sabordecasa/storefront/internal/service/models/outbox"
	"github.com/spf13/viper"
)

// publisher delivers a buffered audit event to the broker.
type publisher interface {
	Publish(msg outbox.Message) error
}

// Worker drains the local audit outbox into RabbitMQ. Events that fail to
// publish stay in the outbox and are retried with exponential backoff until
// max_retries is reached.
type Worker struct {
	outboxRepo   ioutboxrepo.IOutboxRepository
	publisher    publisher
	pollInterval time.Duration
	batchSize    int
	stopCh       chan struct{}
}

// NewWorker creates a new outbox worker.
func NewWorker(outboxRepo ioutboxrepo.IOutboxRepository, pub publisher) *Worker {
	pollIntervalSeconds := viper.GetInt("rabbitmq.outbox.poll_interval_seconds")
	if pollIntervalSeconds == 0 {
		pollIntervalSeconds = 10
	}

	batchSize := viper.GetInt("rabbitmq.outbox.batch_size")
	if batchSize == 0 {
		batchSize = 100
	}

	return &Worker{
		outboxRepo:   outboxRepo,
		publisher:    pub,
		pollInterval: time.Duration(pollIntervalSeconds) * time.Second,
		batchSize:    batchSize,
		stopCh:       make(chan struct{}),
	}
}

// Start begins draining the outbox. Blocks until the context is cancelled
// or Stop is called.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	slog.Info("Audit outbox worker started", "poll_interval", w.pollInterval, "batch_size", w.batchSize)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Audit outbox worker shutting down")

			return
		case <-w.stopCh:
			slog.Info("Audit outbox worker stopped")

			return
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

// Stop stops the worker.
func (w *Worker) Stop() {
	close(w.stopCh)
}

func (w *Worker) drain(ctx context.Context) {
	messages, err := w.outboxRepo.GetPendingMessages(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending audit events", "error", err)

		return
	}

	if len(messages) == 0 {
		return
	}

	slog.Info("Publishing audit events", "count", len(messages))

	for _, msg := range messages {
		if err := w.publisher.Publish(msg); err != nil {
			w.scheduleRetry(ctx, msg, err)
			continue
		}

		if err := w.outboxRepo.Delete(ctx, msg.ID); err != nil {
			slog.Error("Failed to delete published audit event", "outbox_id", msg.ID, "error", err)
		}
	}
}

func (w *Worker) scheduleRetry(ctx context.Context, msg outbox.Message, pubErr error) {
	newRetryCount := msg.RetryCount + 1
	backoffSeconds := math.Pow(2, float64(newRetryCount)) * 30 // 60s, 120s, 240s, ...
	nextRetryAt := time.Now().Add(time.Duration(backoffSeconds) * time.Second)

	slog.Warn("Failed to publish audit event, will retry",
		"outbox_id", msg.ID,
		"retry_count", newRetryCount,
		"next_retry", nextRetryAt,
		"error", pubErr,
	)

	if err := w.outboxRepo.UpdateRetry(ctx, msg.ID, newRetryCount, pubErr.Error(), nextRetryAt); err != nil {
		slog.Error("Failed to update retry information", "outbox_id", msg.ID, "error", err)
	}
}
