package audit

import (
	"context"

	"github.com/sabordecasa/storefront/internal/dal/rabbitmq"
	"github.com/sabordecasa/storefront/internal/service/models/outbox"
	"github.com/streadway/amqp"
	"golang.org/x/sync/errgroup"
)

// QueueOrderCreated receives one event per placed order.
const QueueOrderCreated = "storefront.order.created"

// AuditRabbitMQPublisher delivers buffered audit events to RabbitMQ.
type AuditRabbitMQPublisher struct {
	client *rabbitmq.Client
	queue  amqp.Queue
}

func NewAuditRabbitMQPublisher(client *rabbitmq.Client) (*AuditRabbitMQPublisher, error) {
	queue, err := client.DeclareQueue(rabbitmq.DeclareQueueConfig{
		Name:       QueueOrderCreated,
		Durable:    true,
		Exclusive:  false,
		AutoDelete: false,
	})
	if err != nil {
		return nil, err
	}

	return &AuditRabbitMQPublisher{
		client: client,
		queue:  queue,
	}, nil
}

// Publish sends a single outbox message to its queue.
func (p *AuditRabbitMQPublisher) Publish(msg outbox.Message) error {
	return p.client.Channel().Publish(
		"",
		msg.QueueName,
		false,
		false,
		amqp.Publishing{
			ContentType: msg.ContentType,
			Body:        msg.Payload,
		},
	)
}

// PublishBatch sends a batch of outbox messages with bounded fan-out. The
// first failure cancels the remaining publishes.
func (p *AuditRabbitMQPublisher) PublishBatch(ctx context.Context, msgs []outbox.Message) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(3)

	for _, msg := range msgs {
		msg := msg
		g.Go(func() error {
			return p.Publish(msg)
		})
	}

	return g.Wait()
}
