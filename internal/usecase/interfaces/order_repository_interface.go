package interfaces

import (
	"bemu_storefront/internal/domain/entities"
	"context"
)

// IOrderRepository writes paid orders and their line items back to Airtable.

type IOrderRepository interface {
	// FindByOrderID returns the order with the given provider reference, or a zero Order.
	FindByOrderID(ctx context.Context, orderID string) (entities.Order, error)
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, recordID string, status entities.OrderStatus) error
}
