package handlers

import (
	"bemu_storefront/internal/adapter/http/dto/request"
	"bemu_storefront/internal/usecase"
	"bemu_storefront/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const MessageInvalidDimensions = "enter valid dimensions, minimum 4.2 cm per side"

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest() *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
}

func mapStoreError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDimensions), errors.Is(err, request.ErrInvalidLength):
		return pkg.NewDomainErrorSimple("INVALID_DIMENSIONS", MessageInvalidDimensions, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSlug):
		return pkg.NewDomainErrorSimple("INVALID_SLUG", "Invalid slug", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductOutOfStock):
		return pkg.NewDomainErrorSimple("PRODUCT_OUT_OF_STOCK", "Product out of stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCartID), errors.Is(err, usecase.ErrInvalidCartItem):
		return invalidRequest()
	case errors.Is(err, usecase.ErrCartNotFound):
		return pkg.NewDomainErrorSimple("CART_NOT_FOUND", "Cart not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCartItemNotFound):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_FOUND", "Cart item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoCheckoutItems):
		return pkg.NewDomainErrorSimple("NO_ITEMS", "No items provided", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingCheckoutFields):
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", "Missing required fields in cart items", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_FOUND", "Checkout not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentProviderNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_FOUND", "Payment provider not configured", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Failed to create checkout session", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrWebhookSignatureMissing):
		return pkg.NewDomainErrorSimple("MISSING_SIGNATURE", "Missing signature", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid signature", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderWriteback):
		return pkg.NewDomainError("WEBHOOK_FAILED", "Webhook handler failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
