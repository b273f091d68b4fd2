package sqliterepo

import (
	"context"
	"testing"
	"time"

	"github.com/sabordecasa/storefront/internal/dal/sqlite"
	"github.com/sabordecasa/storefront/internal/service/models/outbox"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *OutboxRepository {
	t.Helper()

	viper.Set("sqlite.path", ":memory:")
	t.Cleanup(func() { viper.Set("sqlite.path", "") })

	client := sqlite.MustNewClient()
	t.Cleanup(func() { _ = client.Close() })

	return NewOutboxRepository(client)
}

func testMessage(nextRetryAt time.Time) outbox.Message {
	now := time.Now()

	return outbox.Message{
		QueueName:   "storefront.order.created",
		RoutingKey:  "storefront.order.created",
		Payload:     []byte(`{"id": "ord-1"}`),
		ContentType: "application/json",
		MaxRetries:  5,
		CreatedAt:   now,
		UpdatedAt:   now,
		NextRetryAt: nextRetryAt,
	}
}

func TestOutboxRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("inserted messages become pending", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.Insert(ctx, testMessage(time.Now().Add(-time.Second))))

		pending, err := repo.GetPendingMessages(ctx, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "storefront.order.created", pending[0].QueueName)
		assert.JSONEq(t, `{"id": "ord-1"}`, string(pending[0].Payload))
	})

	t.Run("future retries are not pending yet", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.Insert(ctx, testMessage(time.Now().Add(time.Hour))))

		pending, err := repo.GetPendingMessages(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("exhausted retries drop out of the pending set", func(t *testing.T) {
		repo := newTestRepo(t)
		msg := testMessage(time.Now().Add(-time.Second))
		msg.MaxRetries = 1
		require.NoError(t, repo.Insert(ctx, msg))

		pending, err := repo.GetPendingMessages(ctx, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)

		err = repo.UpdateRetry(ctx, pending[0].ID, 1, "broker unreachable", time.Now().Add(-time.Second))
		require.NoError(t, err)

		pending, err = repo.GetPendingMessages(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("delete removes a published message", func(t *testing.T) {
		repo := newTestRepo(t)
		require.NoError(t, repo.Insert(ctx, testMessage(time.Now().Add(-time.Second))))

		pending, err := repo.GetPendingMessages(ctx, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)

		require.NoError(t, repo.Delete(ctx, pending[0].ID))

		pending, err = repo.GetPendingMessages(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}
