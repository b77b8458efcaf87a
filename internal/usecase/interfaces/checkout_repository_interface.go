package interfaces

import (
	"bemu_storefront/internal/domain/entities"
	"context"
	"time"
)

// ICheckoutRepository abstracts DynamoDB persistence for CheckoutSession.

type ICheckoutRepository interface {
	Create(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error)
	GetByID(ctx context.Context, id string) (entities.CheckoutSession, error)
	GetByProviderSessionID(ctx context.Context, providerSessionID string) (entities.CheckoutSession, error)
	// MarkCompleted returns a zero session when id does not exist.
	MarkCompleted(ctx context.Context, id, orderRecordID string, at time.Time) (entities.CheckoutSession, error)
}
