package handlers

import (
	"bemu_storefront/internal/adapter/http/dto/request"
	"bemu_storefront/internal/adapter/http/dto/response"
	"bemu_storefront/internal/usecase"
	"bemu_storefront/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CartHandler handles server-side carts. Line keys are "productID|color|size" and
// must be URL-encoded in paths.

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) CreateCart(c *gin.Context) {
	cart, err := h.usecase.Create(c.Request.Context())
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK(response.FromCart(cart)))
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.usecase.Get(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromCart(cart)))
}

// AddItems adds one item or a bulk list of items.
func (h *CartHandler) AddItems(c *gin.Context) {
	ctx := c.Request.Context()
	var req request.AddCartItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest())
		return
	}
	inputs := req.ToInputs()
	if len(inputs) == 0 {
		writeError(c, invalidRequest())
		return
	}

	cart, err := h.usecase.AddItems(ctx, c.Param("cart_id"), inputs)
	if err != nil {
		logger.Component(ctx, "cart", "handler").Debug().Err(err).Str("cart_id", c.Param("cart_id")).Msg("add items failed")
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromCart(cart)))
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest())
		return
	}
	cart, err := h.usecase.UpdateQuantity(c.Request.Context(), c.Param("cart_id"), itemKey(c), req.Quantity)
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromCart(cart)))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("cart_id"), itemKey(c))
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromCart(cart)))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context(), c.Param("cart_id")); err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// AddDrawer runs the drawer calculator and adds all recommended bases to the cart.
func (h *CartHandler) AddDrawer(c *gin.Context) {
	var req request.DrawerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, mapStoreError(request.ErrInvalidLength))
		return
	}
	width, height, err := req.Resolve()
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}

	cart, calc, err := h.usecase.AddDrawer(c.Request.Context(), c.Param("cart_id"), width, height)
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.CartDrawerResponse{
		Cart:        response.FromCart(cart),
		Calculation: response.FromCalculation(calc),
	}))
}

// itemKey is the line key from the path; gin has already percent-decoded it.
func itemKey(c *gin.Context) string {
	return c.Param("key")
}
