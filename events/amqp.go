package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type AMQPConfig struct {
	URL          string
	ExchangeName string
	// ExchangeType defaults to "topic".
	ExchangeType string
}

// AMQPPublisher publishes JSON events to a RabbitMQ exchange.
type AMQPPublisher struct {
	cfg  AMQPConfig
	conn *amqp.Connection
	log  *slog.Logger

	mu sync.Mutex
	ch *amqp.Channel
}

func NewAMQPPublisher(cfg AMQPConfig, log *slog.Logger) (*AMQPPublisher, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("amqp publisher: url is required")
	}
	if cfg.ExchangeName == "" {
		return nil, fmt.Errorf("amqp publisher: exchange name is required")
	}
	if cfg.ExchangeType == "" {
		cfg.ExchangeType = amqp.ExchangeTopic
	}
	if log == nil {
		log = slog.Default()
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("amqp publisher: failed to dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp publisher: failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.ExchangeName,
		cfg.ExchangeType,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp publisher: failed to declare exchange '%s': %w", cfg.ExchangeName, err)
	}

	log.Info("amqp publisher ready", "exchange", cfg.ExchangeName, "type", cfg.ExchangeType)
	return &AMQPPublisher{cfg: cfg, conn: conn, ch: ch, log: log}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("amqp publisher: marshal %s: %w", routingKey, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.conn.IsClosed() {
		return fmt.Errorf("amqp publisher: not connected or channel/connection is closed")
	}

	return p.ch.PublishWithContext(ctx,
		p.cfg.ExchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now().UTC(),
			Type:         routingKey,
			Body:         body,
		},
	)
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			firstErr = err
		}
		p.ch = nil
	}
	if p.conn != nil && !p.conn.IsClosed() {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
