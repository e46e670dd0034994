package service

import (
	"context"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/logger"
	"github.com/rafaelleal24/catalog/internal/core/port"
)

// publishChange never fails the caller: the mutation is already stored.
func publishChange(ctx context.Context, broker port.BrokerPort, event *domain.ChangeEvent) {
	if err := broker.Publish(ctx, event); err != nil {
		logger.Error(ctx, "broker: publish change event failed", err, map[string]any{
			"event":     event.GetName(),
			"entity_id": event.EntityID,
		})
	}
}
