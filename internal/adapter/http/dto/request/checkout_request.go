package request

import "bemu_storefront/internal/usecase"

type CheckoutItemRequest struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// CheckoutRequest takes explicit items or the id of a server-side cart.
type CheckoutRequest struct {
	Items  []CheckoutItemRequest `json:"items"`
	CartID string                `json:"cart_id"`
}

func (r CheckoutRequest) ToInput() usecase.CheckoutInput {
	in := usecase.CheckoutInput{CartID: r.CartID}
	for _, it := range r.Items {
		in.Items = append(in.Items, usecase.CheckoutItemInput{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
			ImageURL:    it.ImageURL,
		})
	}
	return in
}
