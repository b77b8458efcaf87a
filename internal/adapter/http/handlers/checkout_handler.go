package handlers

import (
	"bemu_storefront/internal/adapter/http/dto/request"
	"bemu_storefront/internal/adapter/http/dto/response"
	"bemu_storefront/internal/usecase"
	"bemu_storefront/internal/usecase/interfaces"
	"bemu_storefront/pkg"
	"bemu_storefront/pkg/logger"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler creates hosted checkouts and receives payment provider webhooks.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateCheckout godoc
// @Summary Start a hosted checkout
// @Tags checkout
// @Accept json
// @Produce json
// @Param body body request.CheckoutRequest true "Cart lines or cart id"
// @Success 200 {object} response.CheckoutSessionResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /checkout [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	ctx := c.Request.Context()
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest())
		return
	}

	session, err := h.usecase.CreateSession(ctx, req.ToInput())
	if err != nil {
		logger.Component(ctx, "checkout", "handler").Warn().Err(err).Msg("create checkout failed")
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("checkout_id"))
	if err != nil {
		writeError(c, mapStoreError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromCheckoutRecord(s)))
}

// Webhook accepts provider callbacks. Failed writebacks answer 500 so the provider retries.
func (h *CheckoutHandler) Webhook(c *gin.Context) {
	ctx := c.Request.Context()
	provider := strings.ToLower(c.Param("provider"))
	log := logger.Component(ctx, "checkout", "webhook")

	payload, err := c.GetRawData()
	if err != nil {
		writeError(c, invalidRequest())
		return
	}

	n := interfaces.WebhookNotification{
		Payload:   payload,
		Signature: webhookSignature(c, provider),
		Query:     c.Request.URL.Query(),
	}
	res, err := h.usecase.HandleWebhook(ctx, provider, n)
	if err != nil {
		log.Warn().Err(err).Str("provider", provider).Msg("webhook failed")
		appErr := mapStoreError(err)
		if errors.Is(err, usecase.ErrWebhookSignatureMissing) && provider == "stripe" {
			appErr = pkg.NewDomainErrorSimple("MISSING_SIGNATURE", "Missing Stripe signature", http.StatusBadRequest)
		}
		writeError(c, appErr)
		return
	}

	c.JSON(http.StatusOK, response.WebhookResponse{
		Received:  true,
		Processed: res.Processed,
		Duplicate: res.Duplicate,
		OrderID:   res.OrderRecordID,
	})
}

func webhookSignature(c *gin.Context, provider string) string {
	switch provider {
	case "stripe":
		return c.GetHeader("Stripe-Signature")
	case "mercadopago":
		return c.GetHeader("X-Signature")
	}
	return ""
}
