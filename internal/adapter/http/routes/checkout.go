package routes

import (
	"bemu_storefront/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathWebhook  = "/webhook"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("", checkoutHandler.CreateCheckout)
		checkout.GET("/:checkout_id", checkoutHandler.GetCheckout)
	}

	// Payment providers post here; the body is read raw for signature checks.
	rg.POST(PathWebhook+"/:provider", checkoutHandler.Webhook)
}
