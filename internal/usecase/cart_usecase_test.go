package usecase

import (
	"context"
	"errors"
	"testing"

	"bemu_storefront/internal/domain/entities"
	"bemu_storefront/internal/domain/tiling"
	"bemu_storefront/internal/usecase/interfaces"
	mock_interfaces "bemu_storefront/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type stubDrawer struct {
	calc tiling.Calculation
	err  error
}

func (s stubDrawer) Calculate(context.Context, float64, float64) (tiling.Calculation, error) {
	return s.calc, s.err
}

func (s stubDrawer) ExportLayout(context.Context, float64, float64) ([]byte, tiling.Calculation, error) {
	return nil, s.calc, s.err
}

// updateOn stands in for ICartStore.Update over a stored cart.
func updateOn(stored entities.Cart) func(context.Context, string, interfaces.CartMutation) (entities.Cart, error) {
	return func(_ context.Context, _ string, fn interfaces.CartMutation) (entities.Cart, error) {
		loaded := stored
		loaded.Items = append([]entities.CartItem(nil), stored.Items...)
		working := loaded
		working.Items = append([]entities.CartItem(nil), stored.Items...)
		if err := fn(&working); err != nil {
			return loaded, err
		}
		return working, nil
	}
}

func TestCartUseCase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockICartStore(ctrl)
	uc := NewCartUseCase(store, nil, nil)

	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	cart, err := uc.Create(context.Background())
	if err != nil || cart.ID == "" || len(cart.Items) != 0 {
		t.Fatalf("unexpected cart: %+v err=%v", cart, err)
	}
}

func TestCartUseCase_Get(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil, nil)
		if _, err := uc.Get(context.Background(), " "); !errors.Is(err, ErrInvalidCartID) {
			t.Fatalf("expected ErrInvalidCartID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, nil)

		store.EXPECT().Get(gomock.Any(), "c1").Return(entities.Cart{}, nil)

		if _, err := uc.Get(context.Background(), "c1"); !errors.Is(err, ErrCartNotFound) {
			t.Fatalf("expected ErrCartNotFound, got %v", err)
		}
	})
}

func TestCartUseCase_AddItems(t *testing.T) {
	t.Run("uses catalog price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCartUseCase(store, catalog, nil)

		store.EXPECT().Get(gomock.Any(), "c1").Return(entities.NewCart("c1"), nil)
		catalog.EXPECT().GetProductByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Name: "Vase", Price: 12.5, InStock: true, StockQuantity: 2}, nil)
		store.EXPECT().Update(gomock.Any(), "c1", gomock.Any()).DoAndReturn(updateOn(entities.NewCart("c1")))

		cart, err := uc.AddItems(context.Background(), "c1", []AddCartItemInput{{ProductID: "p1", Quantity: 5, Color: "Red"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 1 || cart.Items[0].Quantity != 5 || cart.Items[0].SelectedColor != "Red" {
			t.Fatalf("unexpected cart: %+v", cart)
		}
		if cart.TotalPrice != 62.5 {
			t.Fatalf("expected total 62.5, got %v", cart.TotalPrice)
		}
	})

	t.Run("bad line leaves cart untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCartUseCase(store, catalog, nil)

		store.EXPECT().Get(gomock.Any(), "c1").Return(entities.NewCart("c1"), nil)
		catalog.EXPECT().GetProductByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", InStock: true}, nil)
		catalog.EXPECT().GetProductByID(gomock.Any(), "gone").Return(entities.Product{}, nil)

		_, err := uc.AddItems(context.Background(), "c1", []AddCartItemInput{{ProductID: "p1"}, {ProductID: "gone"}})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("out of stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCartUseCase(store, catalog, nil)

		store.EXPECT().Get(gomock.Any(), "c1").Return(entities.NewCart("c1"), nil)
		catalog.EXPECT().GetProductByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", InStock: false}, nil)

		_, err := uc.AddItems(context.Background(), "c1", []AddCartItemInput{{ProductID: "p1"}})
		if !errors.Is(err, ErrProductOutOfStock) {
			t.Fatalf("expected ErrProductOutOfStock, got %v", err)
		}
	})

	t.Run("merges into the cart as stored at write time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCartUseCase(store, catalog, nil)

		// another request added p2 between the read and the write
		current := entities.NewCart("c1")
		current.AddItem(entities.CartItem{ProductID: "p2", Price: 1}, 4)

		store.EXPECT().Get(gomock.Any(), "c1").Return(entities.NewCart("c1"), nil)
		catalog.EXPECT().GetProductByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Price: 2, InStock: true}, nil)
		store.EXPECT().Update(gomock.Any(), "c1", gomock.Any()).DoAndReturn(updateOn(current))

		cart, err := uc.AddItems(context.Background(), "c1", []AddCartItemInput{{ProductID: "p1", Quantity: 1}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 2 || cart.TotalItems != 5 || cart.TotalPrice != 6 {
			t.Fatalf("expected both lines, got %+v", cart)
		}
	})

	t.Run("cart deleted before the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCartUseCase(store, catalog, nil)

		store.EXPECT().Get(gomock.Any(), "c1").Return(entities.NewCart("c1"), nil)
		catalog.EXPECT().GetProductByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", InStock: true}, nil)
		store.EXPECT().Update(gomock.Any(), "c1", gomock.Any()).DoAndReturn(updateOn(entities.Cart{}))

		if _, err := uc.AddItems(context.Background(), "c1", []AddCartItemInput{{ProductID: "p1"}}); !errors.Is(err, ErrCartNotFound) {
			t.Fatalf("expected ErrCartNotFound, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil, nil)
		if _, err := uc.AddItems(context.Background(), "c1", nil); !errors.Is(err, ErrInvalidCartItem) {
			t.Fatalf("expected ErrInvalidCartItem, got %v", err)
		}
	})
}

func TestCartUseCase_UpdateAndRemove(t *testing.T) {
	existing := entities.NewCart("c1")
	existing.AddItem(entities.CartItem{ProductID: "p1", Price: 3}, 1)
	key := entities.CartItemKey("p1", "", "")

	t.Run("unknown key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, nil)

		store.EXPECT().Update(gomock.Any(), "c1", gomock.Any()).DoAndReturn(updateOn(existing))

		if _, err := uc.UpdateQuantity(context.Background(), "c1", "nope||", 2); !errors.Is(err, ErrCartItemNotFound) {
			t.Fatalf("expected ErrCartItemNotFound, got %v", err)
		}
	})

	t.Run("quantity below one is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, nil)

		store.EXPECT().Update(gomock.Any(), "c1", gomock.Any()).DoAndReturn(updateOn(existing))

		cart, err := uc.UpdateQuantity(context.Background(), "c1", key, 0)
		if err != nil || cart.Items[0].Quantity != 1 {
			t.Fatalf("unexpected result: %+v err=%v", cart, err)
		}
	})

	t.Run("set quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, nil)

		store.EXPECT().Update(gomock.Any(), "c1", gomock.Any()).DoAndReturn(updateOn(existing))

		cart, err := uc.UpdateQuantity(context.Background(), " c1 ", key, 4)
		if err != nil || cart.Items[0].Quantity != 4 || cart.TotalPrice != 12 {
			t.Fatalf("unexpected result: %+v err=%v", cart, err)
		}
		if existing.Items[0].Quantity != 1 {
			t.Fatalf("stored cart mutated: %+v", existing)
		}
	})

	t.Run("missing cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, nil)

		store.EXPECT().Update(gomock.Any(), "gone", gomock.Any()).DoAndReturn(updateOn(entities.Cart{}))

		if _, err := uc.RemoveItem(context.Background(), "gone", key); !errors.Is(err, ErrCartNotFound) {
			t.Fatalf("expected ErrCartNotFound, got %v", err)
		}
	})

	t.Run("blank cart id", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil, nil)
		if _, err := uc.UpdateQuantity(context.Background(), "  ", key, 2); !errors.Is(err, ErrInvalidCartID) {
			t.Fatalf("expected ErrInvalidCartID, got %v", err)
		}
	})

	t.Run("remove", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, nil)

		c := entities.NewCart("c1")
		c.AddItem(entities.CartItem{ProductID: "p1", Price: 3}, 1)
		store.EXPECT().Update(gomock.Any(), "c1", gomock.Any()).DoAndReturn(updateOn(c))

		cart, err := uc.RemoveItem(context.Background(), "c1", key)
		if err != nil || len(cart.Items) != 0 {
			t.Fatalf("unexpected result: %+v err=%v", cart, err)
		}
	})
}

func TestCartUseCase_AddDrawer(t *testing.T) {
	t.Run("adds every recommended line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)

		calc := tiling.Calculation{
			Recommendations: []tiling.RecommendationLine{
				{Item: gridBase("g55", 5, 5, 20), Quantity: 2},
				{Item: gridBase("g11", 1, 1, 1), Quantity: 3},
			},
			TotalPrice: 43,
		}
		uc := NewCartUseCase(store, nil, stubDrawer{calc: calc})

		store.EXPECT().Get(gomock.Any(), "c1").Return(entities.NewCart("c1"), nil)
		store.EXPECT().Update(gomock.Any(), "c1", gomock.Any()).DoAndReturn(updateOn(entities.NewCart("c1")))

		cart, got, err := uc.AddDrawer(context.Background(), "c1", 30, 30)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 2 || cart.TotalItems != 5 || cart.TotalPrice != 43 || got.TotalPrice != 43 {
			t.Fatalf("unexpected cart: %+v", cart)
		}
	})

	t.Run("low stock does not shrink recommended quantities", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)

		scarce := gridBase("g11", 1, 1, 1)
		scarce.StockQuantity = 2
		calc := tiling.Calculation{
			Recommendations: []tiling.RecommendationLine{{Item: scarce, Quantity: 6}},
			TotalPrice:      6,
		}
		uc := NewCartUseCase(store, nil, stubDrawer{calc: calc})

		store.EXPECT().Get(gomock.Any(), "c1").Return(entities.NewCart("c1"), nil)
		store.EXPECT().Update(gomock.Any(), "c1", gomock.Any()).DoAndReturn(updateOn(entities.NewCart("c1")))

		cart, _, err := uc.AddDrawer(context.Background(), "c1", 12.6, 8.4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 1 || cart.Items[0].Quantity != 6 || cart.TotalPrice != 6 {
			t.Fatalf("unexpected cart: %+v", cart)
		}
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICartStore(ctrl)
		uc := NewCartUseCase(store, nil, stubDrawer{err: ErrInvalidDimensions})

		store.EXPECT().Get(gomock.Any(), "c1").Return(entities.NewCart("c1"), nil)

		if _, _, err := uc.AddDrawer(context.Background(), "c1", 1, 1); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("expected ErrInvalidDimensions, got %v", err)
		}
	})
}
