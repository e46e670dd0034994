package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelleal24/catalog/internal/adapters/config"
	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const appID = "catalog"

var (
	ErrClosed          = errors.New("rabbitmq publisher is closed")
	ErrUnknownExchange = errors.New("no exchange declared for entity")
	errNacked          = errors.New("broker did not confirm the message")
)

// RabbitMQAdapter publishes change events to exchange.<entity> with the event name as
// routing key and waits for the broker confirm. A failed publish drops the channel so
// the next attempt reconnects.
type RabbitMQAdapter struct {
	mu        sync.Mutex
	conn      *amqp.Connection
	channel   *amqp.Channel
	config    config.RabbitMQConfig
	exchanges map[string]bool
	closed    bool
}

func NewRabbitMQAdapter(cfg config.RabbitMQConfig) (*RabbitMQAdapter, error) {
	adapter := &RabbitMQAdapter{config: cfg, exchanges: make(map[string]bool, len(cfg.ExchangeConfigs))}
	for _, ec := range cfg.ExchangeConfigs {
		adapter.exchanges[ec.Name] = true
	}

	if err := adapter.connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	return adapter, nil
}

func (r *RabbitMQAdapter) connect() error {
	conn, err := amqp.Dial(r.config.URL)
	if err != nil {
		return fmt.Errorf("failed to dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	for _, ec := range r.config.ExchangeConfigs {
		if err := ch.ExchangeDeclare(ec.Name, ec.Type, ec.Durable, ec.AutoDelete, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return fmt.Errorf("failed to declare exchange %s: %w", ec.Name, err)
		}
	}

	r.conn = conn
	r.channel = ch
	return nil
}

func (r *RabbitMQAdapter) dropChannel() {
	if r.channel != nil {
		r.channel.Close()
		r.channel = nil
	}
	if r.conn != nil {
		r.conn.Close()
		r.conn = nil
	}
}

func (r *RabbitMQAdapter) exchangeFor(entity string) (string, error) {
	exchange := "exchange." + entity
	if !r.exchanges[exchange] {
		return "", fmt.Errorf("%w: %s", ErrUnknownExchange, entity)
	}
	return exchange, nil
}

func (r *RabbitMQAdapter) Publish(ctx context.Context, event domain.Event) error {
	attrs := map[string]any{
		"event_name":  event.GetName(),
		"entity_name": event.GetEntityName(),
	}

	exchange, err := r.exchangeFor(event.GetEntityName())
	if err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		logger.Error(ctx, "failed to marshal event", err, attrs)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    uuid.NewString(),
		Type:         event.GetName(),
		AppId:        appID,
	}

	var lastErr error
	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.config.RetryDelay):
			}
		}

		lastErr = r.publishOnce(ctx, exchange, event.GetName(), msg)
		if lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, ErrClosed) || ctx.Err() != nil {
			return lastErr
		}

		attrs["attempt"] = attempt + 1
		logger.Error(ctx, "publish: failed", lastErr, attrs)
	}

	return fmt.Errorf("failed to publish after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *RabbitMQAdapter) publishOnce(ctx context.Context, exchange, routingKey string, msg amqp.Publishing) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if r.channel == nil {
		if err := r.connect(); err != nil {
			return fmt.Errorf("reconnect failed: %w", err)
		}
	}

	confirm, err := r.channel.PublishWithDeferredConfirmWithContext(ctx, exchange, routingKey, false, false, msg)
	if err != nil {
		r.dropChannel()
		return err
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !acked {
		return errNacked
	}
	return nil
}

func (r *RabbitMQAdapter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true

	var errs []error
	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing channel: %w", err))
		}
		r.channel = nil
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing connection: %w", err))
		}
		r.conn = nil
	}
	return errors.Join(errs...)
}

func (r *RabbitMQAdapter) HealthCheck() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case r.closed:
		return ErrClosed
	case r.conn == nil || r.conn.IsClosed():
		return errors.New("connection is closed")
	case r.channel == nil:
		return errors.New("channel is nil")
	}
	return nil
}
