package outbox

import (
	"time"
)

// Message is an audit event waiting to be published to RabbitMQ. Messages
// are buffered in the local store so a broker outage never blocks checkout.
type Message struct {
	ID          int64
	QueueName   string
	RoutingKey  string
	Payload     []byte
	ContentType string
	RetryCount  int
	MaxRetries  int
	LastError   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	NextRetryAt time.Time
}
