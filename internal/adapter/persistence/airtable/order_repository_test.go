package airtable

import (
	"context"
	"encoding/json"
	"testing"

	"bemu_storefront/internal/domain/entities"
	at "bemu_storefront/internal/infrastructure/airtable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_CreateOrder(t *testing.T) {
	store := newFakeStore()
	repo := NewOrderRepository(store)

	order, err := repo.CreateOrder(context.Background(), entities.Order{
		OrderID:       "cs_test_1",
		CustomerEmail: "a@b.c",
		CustomerName:  "Ana",
		CustomerPhone: "+359",
		Total:         42.5,
		Status:        entities.OrderStatusPaid,
		ShippingAddress: &entities.ShippingAddress{
			Line1: "1 Main St", City: "Sofia", PostalCode: "1000", Country: "BG",
		},
		Items: []entities.OrderItem{
			{ProductID: "p1", Quantity: 2, Price: 10},
			{ProductID: "p2", Quantity: 1, Price: 22.5},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "rec1", order.ID)
	assert.Equal(t, "rec2", order.Items[0].ID)
	assert.Equal(t, "rec3", order.Items[1].ID)
	assert.False(t, order.CreatedAt.IsZero())

	require.Len(t, store.created, 3)
	o := store.created[0]
	assert.Equal(t, ordersTable, o.table)
	assert.Equal(t, "cs_test_1", o.fields["Order ID"])
	assert.Equal(t, "paid", o.fields["Status"])

	var addr map[string]string
	require.NoError(t, json.Unmarshal([]byte(o.fields["Shipping Address"].(string)), &addr))
	assert.Equal(t, "Ana", addr["name"])
	assert.Equal(t, "1000", addr["postalCode"])
	assert.Equal(t, "+359", addr["phone"])

	item := store.created[1]
	assert.Equal(t, orderItemsTable, item.table)
	assert.Equal(t, []string{"rec1"}, item.fields["Order"])
	assert.Equal(t, []string{"p1"}, item.fields["Product"])
	assert.Equal(t, 2, item.fields["Quantity"])
	assert.Equal(t, 10.0, item.fields["Price (Each)"])
}

func TestOrderRepository_CreateOrder_ItemFailure(t *testing.T) {
	store := newFakeStore()
	store.failOn = orderItemsTable
	repo := NewOrderRepository(store)

	_, err := repo.CreateOrder(context.Background(), entities.Order{
		OrderID: "cs_1",
		Items:   []entities.OrderItem{{ProductID: "p1", Quantity: 1, Price: 1}},
	})
	assert.Error(t, err)
}

func TestOrderRepository_FindByOrderID(t *testing.T) {
	store := newFakeStore()
	store.records[ordersTable] = []at.Record{{ID: "rec9", Fields: map[string]any{
		"Order ID":         "cs_1",
		"Customer Email":   "a@b.c",
		"Total Amount":     15.0,
		"Status":           "shipped",
		"Shipping Address": `{"name":"Ana","line1":"x","city":"Sofia","state":"","postalCode":"1000","country":"BG","phone":"1"}`,
	}}}
	repo := NewOrderRepository(store)

	o, err := repo.FindByOrderID(context.Background(), "cs_'1")
	require.NoError(t, err)

	assert.Equal(t, `{Order ID} = 'cs_\'1'`, store.queries[0].Formula)
	assert.Equal(t, "rec9", o.ID)
	assert.Equal(t, entities.OrderStatusShipped, o.Status)
	assert.Equal(t, "1", o.CustomerPhone)
	require.NotNil(t, o.ShippingAddress)
	assert.Equal(t, "1000", o.ShippingAddress.PostalCode)
}

func TestOrderRepository_FindByOrderID_Missing(t *testing.T) {
	repo := NewOrderRepository(newFakeStore())

	o, err := repo.FindByOrderID(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.Empty(t, o.ID)
}

func TestOrderRepository_UpdateOrderStatus(t *testing.T) {
	store := newFakeStore()
	repo := NewOrderRepository(store)

	require.NoError(t, repo.UpdateOrderStatus(context.Background(), "rec1", entities.OrderStatusDelivered))
	assert.Equal(t, map[string]any{"Status": "delivered"}, store.updated[ordersTable+"/rec1"])
}
