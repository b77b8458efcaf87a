package entities

import (
	"strings"
	"time"
)

// CartItem is a product line in a cart. The same product with different
// variants lives in separate lines.
type CartItem struct {
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	ProductSlug   string  `json:"product_slug"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	ImageURL      string  `json:"image_url,omitempty"`
	InStock       bool    `json:"in_stock"`
	StockQuantity int     `json:"stock_quantity"`
	SelectedColor string  `json:"selected_color,omitempty"`
	SelectedSize  string  `json:"selected_size,omitempty"`
}

// Key identifies a cart line: product id plus selected variants.
func (i CartItem) Key() string {
	return CartItemKey(i.ProductID, i.SelectedColor, i.SelectedSize)
}

func CartItemKey(productID, color, size string) string {
	return strings.Join([]string{productID, color, size}, "|")
}

func (i CartItem) capped(qty int) int {
	if i.StockQuantity > 0 && qty > i.StockQuantity {
		return i.StockQuantity
	}
	return qty
}

// Cart is a server-side shopping cart. Totals are recomputed after every mutation.
type Cart struct {
	ID         string     `json:"id"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewCart(id string) Cart {
	return Cart{ID: id, Items: []CartItem{}, UpdatedAt: time.Now().UTC()}
}

// AddItem merges qty into an existing line with the same key or appends a new one.
// Quantities below one are treated as one. Merged lines are capped at known stock;
// a new line keeps the requested quantity.
func (c *Cart) AddItem(item CartItem, qty int) {
	if qty < 1 {
		qty = 1
	}
	key := item.Key()
	for i := range c.Items {
		if c.Items[i].Key() == key {
			c.Items[i].Quantity = c.Items[i].capped(c.Items[i].Quantity + qty)
			c.recalculate()
			return
		}
	}
	item.Quantity = qty
	c.Items = append(c.Items, item)
	c.recalculate()
}

// RemoveItem drops the line with key; it reports whether anything was removed.
func (c *Cart) RemoveItem(key string) bool {
	for i := range c.Items {
		if c.Items[i].Key() == key {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.recalculate()
			return true
		}
	}
	return false
}

// UpdateQuantity sets the quantity of a line. Values below one are ignored.
func (c *Cart) UpdateQuantity(key string, qty int) bool {
	if qty < 1 {
		return false
	}
	for i := range c.Items {
		if c.Items[i].Key() == key {
			c.Items[i].Quantity = c.Items[i].capped(qty)
			c.recalculate()
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.recalculate()
}

func (c *Cart) recalculate() {
	c.TotalItems = 0
	c.TotalPrice = 0
	for _, it := range c.Items {
		c.TotalItems += it.Quantity
		c.TotalPrice += it.Price * float64(it.Quantity)
	}
	c.UpdatedAt = time.Now().UTC()
}
