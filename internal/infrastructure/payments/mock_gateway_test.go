package payments

import (
	"context"
	"testing"
	"time"

	"bemu_storefront/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGateway(t *testing.T) {
	g := NewMockGateway("stripe")
	g.now = func() time.Time { return time.Unix(0, 42) }
	assert.Equal(t, "stripe", g.Provider())

	sess, err := g.CreateCheckoutSession(context.Background(), interfaces.CheckoutSessionInput{
		CheckoutID: "chk-1",
		SuccessURL: "http://shop.test/checkout/success?session_id={CHECKOUT_SESSION_ID}",
	})
	require.NoError(t, err)
	assert.Equal(t, "mock_42", sess.ID)
	assert.Equal(t, "http://shop.test/checkout/success?session_id=mock_42", sess.URL)

	got, err := g.ParseWebhook(context.Background(), interfaces.WebhookNotification{
		Payload: []byte(`{"session_id":"mock_42","checkout_id":"chk-1","email":"a@b.c","amount":12.5}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "mock_42", got.ProviderReference)
	assert.Equal(t, "chk-1", got.CheckoutID)
	assert.Equal(t, 12.5, got.AmountTotal)

	_, err = g.ParseWebhook(context.Background(), interfaces.WebhookNotification{Payload: []byte(`{}`)})
	assert.ErrorIs(t, err, interfaces.ErrWebhookIgnored)

	_, err = g.ParseWebhook(context.Background(), interfaces.WebhookNotification{Payload: []byte(`nope`)})
	assert.ErrorIs(t, err, interfaces.ErrWebhookSignature)
}
