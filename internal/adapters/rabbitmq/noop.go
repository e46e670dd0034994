package rabbitmq

import (
	"context"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/logger"
)

// NoopPublisher stands in for the broker when publishing is disabled.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (NoopPublisher) Publish(ctx context.Context, event domain.Event) error {
	logger.Debug(ctx, "publish skipped, broker disabled", map[string]any{
		"event_name": event.GetName(),
	})
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
