package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"bemu_storefront/internal/adapter/http/handlers/mocks"
	"bemu_storefront/internal/domain/entities"
	"bemu_storefront/internal/domain/tiling"
	"bemu_storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCartRouter(h *CartHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/carts", h.CreateCart)
	r.GET("/v1/carts/:cart_id", h.GetCart)
	r.POST("/v1/carts/:cart_id/items", h.AddItems)
	r.PATCH("/v1/carts/:cart_id/items/:key", h.UpdateItem)
	r.DELETE("/v1/carts/:cart_id/items/:key", h.RemoveItem)
	r.DELETE("/v1/carts/:cart_id", h.ClearCart)
	r.POST("/v1/carts/:cart_id/drawer", h.AddDrawer)
	return r
}

func TestCartHandler_CreateAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	r := newCartRouter(NewCartHandler(uc))

	uc.EXPECT().Create(gomock.Any()).Return(entities.NewCart("c1"), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/carts", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	uc.EXPECT().Get(gomock.Any(), "missing").Return(entities.Cart{}, usecase.ErrCartNotFound)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/carts/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCartHandler_AddItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bulk", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := newCartRouter(NewCartHandler(uc))

		uc.EXPECT().AddItems(gomock.Any(), "c1", []usecase.AddCartItemInput{
			{ProductID: "a", Quantity: 1},
			{ProductID: "b", Quantity: 2, Color: "Blue"},
		}).Return(entities.NewCart("c1"), nil)

		body := `{"items":[{"product_id":"a","quantity":1},{"product_id":"b","quantity":2,"color":"Blue"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/carts/c1/items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newCartRouter(NewCartHandler(mocks.NewMockICartUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodPost, "/v1/carts/c1/items", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		r := newCartRouter(NewCartHandler(uc))

		uc.EXPECT().AddItems(gomock.Any(), "c1", gomock.Any()).Return(entities.Cart{}, usecase.ErrProductOutOfStock)

		req := httptest.NewRequest(http.MethodPost, "/v1/carts/c1/items", bytes.NewBufferString(`{"product_id":"a"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestCartHandler_ItemKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	r := newCartRouter(NewCartHandler(uc))

	uc.EXPECT().UpdateQuantity(gomock.Any(), "c1", "p1|Red|", 3).Return(entities.NewCart("c1"), nil)
	req := httptest.NewRequest(http.MethodPatch, "/v1/carts/c1/items/p1%7CRed%7C", bytes.NewBufferString(`{"quantity":3}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	uc.EXPECT().RemoveItem(gomock.Any(), "c1", "p1||").Return(entities.Cart{}, usecase.ErrCartItemNotFound)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/carts/c1/items/p1%7C%7C", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	// a literal "%25" in a variant survives a single decode
	uc.EXPECT().RemoveItem(gomock.Any(), "c1", "p1|10%25|").Return(entities.NewCart("c1"), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/carts/c1/items/p1%7C10%2525%7C", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	uc.EXPECT().Clear(gomock.Any(), "c1").Return(nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/carts/c1", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestCartHandler_AddDrawer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	r := newCartRouter(NewCartHandler(uc))

	cart := entities.NewCart("c1")
	cart.AddItem(entities.CartItem{ProductID: "g55", Price: 20}, 1)
	uc.EXPECT().AddDrawer(gomock.Any(), "c1", 21.0, 21.0).Return(cart, tiling.Calculation{TotalPrice: 20}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/carts/c1/drawer", bytes.NewBufferString(`{"width_cm":"21","height_cm":"21"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data, _ := decodeBody(t, w)["data"].(map[string]any)
	c, _ := data["cart"].(map[string]any)
	if c["total_price"] != 20.0 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
