package interfaces

import (
	"bemu_storefront/internal/domain/entities"
	"context"
)

// CartMutation edits a loaded cart in place. Returning an error discards the edit.
type CartMutation func(cart *entities.Cart) error

// ICartStore keeps carts between requests. Get returns a zero Cart for unknown ids.
type ICartStore interface {
	Get(ctx context.Context, id string) (entities.Cart, error)
	Save(ctx context.Context, cart entities.Cart) error
	Delete(ctx context.Context, id string) error
	// Update loads the cart (zero Cart when unknown), applies fn and saves the result
	// atomically with respect to concurrent updates of the same id. When fn fails the
	// stored cart is left as it was and the loaded cart is returned with fn's error.
	Update(ctx context.Context, id string, fn CartMutation) (entities.Cart, error)
}
