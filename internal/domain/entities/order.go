package entities

import "time"

// OrderStatus follows the fulfilment lifecycle of an order in Airtable.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

type ShippingAddress struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// OrderItem is a purchased line written to the "Order Items" table.
type OrderItem struct {
	ID        string  `json:"id,omitempty"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is the record written back once a payment provider confirms a checkout.
// OrderID is the provider-side reference used for idempotency.
type Order struct {
	ID              string           `json:"id,omitempty"`
	OrderID         string           `json:"order_id"`
	CustomerEmail   string           `json:"customer_email"`
	CustomerName    string           `json:"customer_name"`
	CustomerPhone   string           `json:"customer_phone,omitempty"`
	Total           float64          `json:"total"`
	Status          OrderStatus      `json:"status"`
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty"`
	Items           []OrderItem      `json:"items"`
	CreatedAt       time.Time        `json:"created_at"`
}

// CompletedCheckout is what a payment provider reports after a successful payment.
type CompletedCheckout struct {
	Provider          string
	ProviderReference string
	CheckoutID        string
	CustomerEmail     string
	CustomerName      string
	CustomerPhone     string
	AmountTotal       float64
	ShippingAddress   *ShippingAddress
}

// OrderCreatedEvent is published after a successful writeback.
type OrderCreatedEvent struct {
	EventID       string      `json:"event_id"`
	OrderRecordID string      `json:"order_record_id"`
	OrderID       string      `json:"order_id"`
	CheckoutID    string      `json:"checkout_id"`
	Provider      string      `json:"provider"`
	CustomerEmail string      `json:"customer_email"`
	Total         float64     `json:"total"`
	Items         []OrderItem `json:"items"`
	OccurredAt    time.Time   `json:"occurred_at"`
}
