package interfaces

import (
	"bemu_storefront/internal/domain/entities"
	"context"
)

type IEventPublisher interface {
	PublishOrderCreated(ctx context.Context, event entities.OrderCreatedEvent) error
}
