package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/tradewind/storefront/internal/domain/model"
)

// Publisher enqueues outgoing mail for the external delivery worker.
type Publisher interface {
	Publish(ctx context.Context, msg model.EmailMessage) error
}

// AMQPPublisher publishes mail messages to a durable RabbitMQ queue.
type AMQPPublisher struct {
	conn    *amqp.Connection
	queue   string
	logger  *slog.Logger
	mu      sync.Mutex
	channel *amqp.Channel
}

// NewAMQPPublisher dials the broker and declares the mail queue.
func NewAMQPPublisher(url, queue string, logger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	return &AMQPPublisher{conn: conn, channel: ch, queue: queue, logger: logger}, nil
}

// Publish enqueues a single mail message as persistent JSON.
func (p *AMQPPublisher) Publish(ctx context.Context, msg model.EmailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("mail publish failed",
			slog.String("kind", string(msg.Kind)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// Close releases broker resources.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
