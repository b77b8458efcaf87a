package response

import (
	"testing"

	"bemu_storefront/internal/domain/entities"
	"bemu_storefront/internal/domain/tiling"
)

func TestFromCalculation(t *testing.T) {
	calc := tiling.Calculation{
		GridDimensions: tiling.GridDimensions{WidthUnits: 5, HeightUnits: 5, UsedWidthMM: 210, UsedHeightMM: 210},
		Recommendations: []tiling.RecommendationLine{
			{Item: entities.GridBase{ID: "g55", Price: 20, Kind: entities.OrganiziroKindGrid}, Quantity: 2},
		},
		TotalPrice:   40,
		CoveredCells: 25,
	}
	res := FromCalculation(calc)
	if len(res.Recommendations) != 1 || res.Recommendations[0].Subtotal != 40 || res.Recommendations[0].Item.Kind != "grid" {
		t.Fatalf("unexpected recommendations: %+v", res.Recommendations)
	}
	if res.Message != "" {
		t.Fatalf("expected no message, got %q", res.Message)
	}

	empty := FromCalculation(tiling.Calculation{})
	if empty.Message != MessageNoBasesAvailable || empty.Recommendations == nil {
		t.Fatalf("unexpected empty response: %+v", empty)
	}
}

func TestFromCart(t *testing.T) {
	c := entities.NewCart("c1")
	c.AddItem(entities.CartItem{ProductID: "p1", Price: 2.5, SelectedSize: "L"}, 2)

	res := FromCart(c)
	if len(res.Items) != 1 || res.Items[0].Key != "p1||L" || res.Items[0].Subtotal != 5 || res.TotalPrice != 5 {
		t.Fatalf("unexpected cart response: %+v", res)
	}
}

func TestFromProduct(t *testing.T) {
	res := FromProduct(entities.Product{ID: "p1", Price: 10, CompareAtPrice: 15})
	if !res.OnSale || res.Images == nil {
		t.Fatalf("unexpected product response: %+v", res)
	}
}

func TestFromCheckoutSession(t *testing.T) {
	res := FromCheckoutSession(entities.CheckoutSession{ID: "chk-1", ProviderSessionID: "cs_1", URL: "https://pay"})
	if !res.Success || res.SessionID != "cs_1" || res.CheckoutID != "chk-1" {
		t.Fatalf("unexpected checkout response: %+v", res)
	}
	rec := FromCheckoutRecord(entities.CheckoutSession{ID: "chk-1", Status: entities.CheckoutStatusCompleted})
	if rec.Status != "completed" || rec.Items == nil {
		t.Fatalf("unexpected record response: %+v", rec)
	}
}
