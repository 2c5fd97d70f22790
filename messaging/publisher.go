// Package messaging publishes domain events to RabbitMQ for kitchen and
// display consumers. Publishing is best-effort: the order and payment flows
// never fail because the broker is down.
package messaging

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   *gecho.Logger
	mu       sync.Mutex
}

// Connect dials the broker and declares a durable topic exchange. An empty
// URL disables events entirely; callers hold a nil *Publisher and every
// method stays safe to call.
func Connect(url, exchange string, logger *gecho.Logger) (*Publisher, error) {
	if url == "" {
		return nil, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	logger.Info("Connected to event broker", gecho.Field("exchange", exchange))

	return &Publisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// Publish sends one JSON event under the given routing key.
func (p *Publisher) Publish(ctx context.Context, routingKey string, payload any) error {
	if p == nil {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
