package usecase

import (
	"bemu_storefront/internal/domain/entities"
	"bemu_storefront/internal/domain/tiling"
	"bemu_storefront/internal/usecase/interfaces"
	"bemu_storefront/pkg/logger"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidCartID     = errors.New("invalid cart id")
	ErrCartNotFound      = errors.New("cart not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInvalidCartItem   = errors.New("invalid cart item")
	ErrProductOutOfStock = errors.New("product out of stock")
)

// AddCartItemInput references a catalog product; price and name come from the catalog.
type AddCartItemInput struct {
	ProductID string
	Quantity  int
	Color     string
	Size      string
}

type ICartUseCase interface {
	Create(ctx context.Context) (entities.Cart, error)
	Get(ctx context.Context, cartID string) (entities.Cart, error)
	AddItems(ctx context.Context, cartID string, items []AddCartItemInput) (entities.Cart, error)
	UpdateQuantity(ctx context.Context, cartID, key string, quantity int) (entities.Cart, error)
	RemoveItem(ctx context.Context, cartID, key string) (entities.Cart, error)
	Clear(ctx context.Context, cartID string) error
	AddDrawer(ctx context.Context, cartID string, widthCM, heightCM float64) (entities.Cart, tiling.Calculation, error)
}

type CartUseCase struct {
	store   interfaces.ICartStore
	catalog interfaces.ICatalogRepository
	drawer  IDrawerUseCase
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(store interfaces.ICartStore, catalog interfaces.ICatalogRepository, drawer IDrawerUseCase) *CartUseCase {
	return &CartUseCase{store: store, catalog: catalog, drawer: drawer}
}

func (u *CartUseCase) Create(ctx context.Context) (entities.Cart, error) {
	cart := entities.NewCart(uuid.NewString())
	if err := u.store.Save(ctx, cart); err != nil {
		logger.Component(ctx, "cart", "usecase").Error().Err(err).Msg("create cart failed")
		return entities.Cart{}, err
	}
	return cart, nil
}

func (u *CartUseCase) Get(ctx context.Context, cartID string) (entities.Cart, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Cart{}, ErrInvalidCartID
	}
	cart, err := u.store.Get(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	if cart.ID == "" {
		return entities.Cart{}, ErrCartNotFound
	}
	return cart, nil
}

// AddItems resolves every product first so a bad line leaves the cart untouched.
func (u *CartUseCase) AddItems(ctx context.Context, cartID string, items []AddCartItemInput) (entities.Cart, error) {
	log := logger.Component(ctx, "cart", "usecase")
	if len(items) == 0 {
		return entities.Cart{}, ErrInvalidCartItem
	}
	cart, err := u.Get(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}

	lines := make([]entities.CartItem, 0, len(items))
	qtys := make([]int, 0, len(items))
	for _, in := range items {
		productID := strings.TrimSpace(in.ProductID)
		if productID == "" {
			return entities.Cart{}, ErrInvalidCartItem
		}
		p, err := u.catalog.GetProductByID(ctx, productID)
		if err != nil {
			log.Error().Err(err).Str("product_id", productID).Msg("product lookup failed")
			return entities.Cart{}, err
		}
		if p.ID == "" {
			return entities.Cart{}, ErrProductNotFound
		}
		if !p.InStock {
			return entities.Cart{}, ErrProductOutOfStock
		}
		lines = append(lines, cartItemFromProduct(p, in.Color, in.Size))
		qtys = append(qtys, in.Quantity)
	}

	cart, err = u.store.Update(ctx, cart.ID, func(c *entities.Cart) error {
		if c.ID == "" {
			return ErrCartNotFound
		}
		for i := range lines {
			c.AddItem(lines[i], qtys[i])
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("cart_id", cartID).Msg("save cart failed")
		return entities.Cart{}, err
	}
	log.Info().Str("cart_id", cart.ID).Int("lines", len(lines)).Int("total_items", cart.TotalItems).Msg("items added")
	return cart, nil
}

// errNoChange aborts a cart update without writing.
var errNoChange = errors.New("cart unchanged")

func (u *CartUseCase) UpdateQuantity(ctx context.Context, cartID, key string, quantity int) (entities.Cart, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Cart{}, ErrInvalidCartID
	}
	cart, err := u.store.Update(ctx, cartID, func(c *entities.Cart) error {
		if c.ID == "" {
			return ErrCartNotFound
		}
		if !hasCartLine(*c, key) {
			return ErrCartItemNotFound
		}
		if !c.UpdateQuantity(key, quantity) {
			// quantities below one are ignored
			return errNoChange
		}
		return nil
	})
	if errors.Is(err, errNoChange) {
		return cart, nil
	}
	if err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

func (u *CartUseCase) RemoveItem(ctx context.Context, cartID, key string) (entities.Cart, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Cart{}, ErrInvalidCartID
	}
	cart, err := u.store.Update(ctx, cartID, func(c *entities.Cart) error {
		if c.ID == "" {
			return ErrCartNotFound
		}
		if !c.RemoveItem(key) {
			return ErrCartItemNotFound
		}
		return nil
	})
	if err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

func (u *CartUseCase) Clear(ctx context.Context, cartID string) error {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return ErrInvalidCartID
	}
	return u.store.Delete(ctx, cartID)
}

// AddDrawer runs the drawer calculator and adds every recommended base in one update.
func (u *CartUseCase) AddDrawer(ctx context.Context, cartID string, widthCM, heightCM float64) (entities.Cart, tiling.Calculation, error) {
	cart, err := u.Get(ctx, cartID)
	if err != nil {
		return entities.Cart{}, tiling.Calculation{}, err
	}
	calc, err := u.drawer.Calculate(ctx, widthCM, heightCM)
	if err != nil {
		return entities.Cart{}, tiling.Calculation{}, err
	}
	if len(calc.Recommendations) == 0 {
		return cart, calc, nil
	}
	cart, err = u.store.Update(ctx, cart.ID, func(c *entities.Cart) error {
		if c.ID == "" {
			return ErrCartNotFound
		}
		for _, line := range calc.Recommendations {
			c.AddItem(cartItemFromGridBase(line.Item), line.Quantity)
		}
		return nil
	})
	if err != nil {
		return entities.Cart{}, tiling.Calculation{}, err
	}
	logger.Component(ctx, "cart", "usecase").Info().
		Str("cart_id", cart.ID).
		Int("lines", len(calc.Recommendations)).
		Float64("total_price", calc.TotalPrice).
		Msg("drawer recommendation added")
	return cart, calc, nil
}

func hasCartLine(cart entities.Cart, key string) bool {
	for _, it := range cart.Items {
		if it.Key() == key {
			return true
		}
	}
	return false
}

func cartItemFromProduct(p entities.Product, color, size string) entities.CartItem {
	return entities.CartItem{
		ProductID:     p.ID,
		ProductName:   p.Name,
		ProductSlug:   p.Slug,
		Price:         p.Price,
		ImageURL:      p.PrimaryImageURL(),
		InStock:       p.InStock,
		StockQuantity: p.StockQuantity,
		SelectedColor: strings.TrimSpace(color),
		SelectedSize:  strings.TrimSpace(size),
	}
}

func cartItemFromGridBase(g entities.GridBase) entities.CartItem {
	return entities.CartItem{
		ProductID:     g.ID,
		ProductName:   g.Name,
		ProductSlug:   g.Slug,
		Price:         g.Price,
		ImageURL:      g.PrimaryImageURL(),
		InStock:       g.InStock,
		StockQuantity: g.StockQuantity,
	}
}
