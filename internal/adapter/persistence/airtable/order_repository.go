package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bemu_storefront/internal/domain/entities"
	at "bemu_storefront/internal/infrastructure/airtable"
	"bemu_storefront/internal/usecase/interfaces"
	"bemu_storefront/pkg/logger"
)

const (
	ordersTable     = "Orders"
	orderItemsTable = "Order Items"
)

// OrderRepository writes paid orders to the Orders table and one row per line to Order Items.
type OrderRepository struct {
	store recordStore
	now   func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(store recordStore) *OrderRepository {
	return &OrderRepository{store: store, now: time.Now}
}

// shippingAddressJSON is the layout stored in the "Shipping Address" long text field.
type shippingAddressJSON struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

func (r *OrderRepository) FindByOrderID(ctx context.Context, orderID string) (entities.Order, error) {
	records, err := r.store.List(ctx, ordersTable, at.Query{
		Formula:    fmt.Sprintf("{Order ID} = '%s'", escapeFormula(orderID)),
		MaxRecords: 1,
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(records) == 0 {
		return entities.Order{}, nil
	}
	rec := records[0]
	f := rec.Fields

	o := entities.Order{
		ID:            rec.ID,
		OrderID:       fieldString(f, "Order ID"),
		CustomerEmail: fieldString(f, "Customer Email"),
		CustomerName:  fieldString(f, "Customer Name"),
		Total:         fieldFloat(f, "Total Amount"),
		Status:        entities.OrderStatus(fieldString(f, "Status")),
		CreatedAt:     fieldTime(f, "Created", rec.CreatedTime),
	}
	if !o.Status.Valid() {
		o.Status = entities.OrderStatusPending
	}
	if raw := fieldString(f, "Shipping Address"); raw != "" {
		var addr shippingAddressJSON
		if err := json.Unmarshal([]byte(raw), &addr); err == nil {
			o.CustomerPhone = addr.Phone
			o.ShippingAddress = &entities.ShippingAddress{
				Line1:      addr.Line1,
				Line2:      addr.Line2,
				City:       addr.City,
				State:      addr.State,
				PostalCode: addr.PostalCode,
				Country:    addr.Country,
			}
		}
	}
	return o, nil
}

// CreateOrder writes the order row first, then one Order Items row per line linked to it.
func (r *OrderRepository) CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	log := logger.Component(ctx, "orders", "repository")

	if order.Status == "" {
		order.Status = entities.OrderStatusPending
	}
	fields, err := orderFields(order)
	if err != nil {
		return entities.Order{}, err
	}

	rec, err := r.store.Create(ctx, ordersTable, fields)
	if err != nil {
		return entities.Order{}, fmt.Errorf("create order: %w", err)
	}
	order.ID = rec.ID
	if order.CreatedAt.IsZero() {
		order.CreatedAt = r.now().UTC()
	}

	for i, it := range order.Items {
		itemRec, err := r.store.Create(ctx, orderItemsTable, map[string]any{
			"Order":        []string{order.ID},
			"Product":      []string{it.ProductID},
			"Quantity":     it.Quantity,
			"Price (Each)": it.Price,
		})
		if err != nil {
			log.Error().Err(err).Str("order_record_id", order.ID).Str("product_id", it.ProductID).Msg("order item write failed")
			return entities.Order{}, fmt.Errorf("create order item %s: %w", it.ProductID, err)
		}
		order.Items[i].ID = itemRec.ID
	}

	log.Info().Str("order_record_id", order.ID).Str("order_id", order.OrderID).Int("items", len(order.Items)).Msg("order written")
	return order, nil
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, recordID string, status entities.OrderStatus) error {
	return r.store.Update(ctx, ordersTable, recordID, map[string]any{"Status": string(status)})
}

func orderFields(o entities.Order) (map[string]any, error) {
	addr := shippingAddressJSON{Name: o.CustomerName, Phone: o.CustomerPhone}
	if o.ShippingAddress != nil {
		addr.Line1 = o.ShippingAddress.Line1
		addr.Line2 = o.ShippingAddress.Line2
		addr.City = o.ShippingAddress.City
		addr.State = o.ShippingAddress.State
		addr.PostalCode = o.ShippingAddress.PostalCode
		addr.Country = o.ShippingAddress.Country
	}
	raw, err := json.Marshal(addr)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"Order ID":         o.OrderID,
		"Customer Email":   o.CustomerEmail,
		"Customer Name":    o.CustomerName,
		"Total Amount":     o.Total,
		"Status":           string(o.Status),
		"Shipping Address": string(raw),
	}, nil
}
