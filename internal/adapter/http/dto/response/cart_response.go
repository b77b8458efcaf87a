package response

import (
	"bemu_storefront/internal/domain/entities"
	"time"
)

type CartItemResponse struct {
	Key           string  `json:"key"`
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	ProductSlug   string  `json:"product_slug"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	Subtotal      float64 `json:"subtotal"`
	ImageURL      string  `json:"image_url,omitempty"`
	InStock       bool    `json:"in_stock"`
	StockQuantity int     `json:"stock_quantity"`
	SelectedColor string  `json:"selected_color,omitempty"`
	SelectedSize  string  `json:"selected_size,omitempty"`
}

type CartResponse struct {
	ID         string             `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	TotalPrice float64            `json:"total_price"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func FromCart(c entities.Cart) CartResponse {
	res := CartResponse{
		ID:         c.ID,
		Items:      make([]CartItemResponse, 0, len(c.Items)),
		TotalItems: c.TotalItems,
		TotalPrice: c.TotalPrice,
		UpdatedAt:  c.UpdatedAt,
	}
	for _, it := range c.Items {
		res.Items = append(res.Items, CartItemResponse{
			Key:           it.Key(),
			ProductID:     it.ProductID,
			ProductName:   it.ProductName,
			ProductSlug:   it.ProductSlug,
			Price:         it.Price,
			Quantity:      it.Quantity,
			Subtotal:      it.Price * float64(it.Quantity),
			ImageURL:      it.ImageURL,
			InStock:       it.InStock,
			StockQuantity: it.StockQuantity,
			SelectedColor: it.SelectedColor,
			SelectedSize:  it.SelectedSize,
		})
	}
	return res
}

type CartDrawerResponse struct {
	Cart        CartResponse              `json:"cart"`
	Calculation DrawerCalculationResponse `json:"calculation"`
}
