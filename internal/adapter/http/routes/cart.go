package routes

import (
	"bemu_storefront/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCarts = "/carts"

func addCartRoutes(rg *gin.RouterGroup, cartHandler *handlers.CartHandler) {
	carts := rg.Group(PathCarts)
	{
		carts.POST("", cartHandler.CreateCart)
		carts.GET("/:cart_id", cartHandler.GetCart)
		carts.DELETE("/:cart_id", cartHandler.ClearCart)
		carts.POST("/:cart_id/items", cartHandler.AddItems)
		carts.PATCH("/:cart_id/items/:key", cartHandler.UpdateItem)
		carts.DELETE("/:cart_id/items/:key", cartHandler.RemoveItem)
		carts.POST("/:cart_id/drawer", cartHandler.AddDrawer)
	}
}
