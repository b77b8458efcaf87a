package request

import (
	"bemu_storefront/internal/usecase"
	"strings"
)

type CartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
}

// AddCartItemsRequest accepts either a single item at the top level or a bulk "items" list.
type AddCartItemsRequest struct {
	CartItemRequest
	Items []CartItemRequest `json:"items"`
}

func (r AddCartItemsRequest) ToInputs() []usecase.AddCartItemInput {
	items := r.Items
	if len(items) == 0 && strings.TrimSpace(r.ProductID) != "" {
		items = []CartItemRequest{r.CartItemRequest}
	}
	out := make([]usecase.AddCartItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, usecase.AddCartItemInput{
			ProductID: strings.TrimSpace(it.ProductID),
			Quantity:  it.Quantity,
			Color:     it.Color,
			Size:      it.Size,
		})
	}
	return out
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
