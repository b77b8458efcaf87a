package entities

import "time"

type CheckoutStatus string

const (
	CheckoutStatusPending   CheckoutStatus = "pending"
	CheckoutStatusCompleted CheckoutStatus = "completed"
)

// CheckoutLine is a priced line sent to the payment provider.
type CheckoutLine struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// CheckoutSession tracks a hosted checkout from creation until its order is written back.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (provider_session_id-index): provider_session_id
type CheckoutSession struct {
	ID                string         `json:"id"`
	Provider          string         `json:"provider"`
	ProviderSessionID string         `json:"provider_session_id"`
	URL               string         `json:"url"`
	CartID            string         `json:"cart_id,omitempty"`
	Items             []CheckoutLine `json:"items"`
	AmountTotal       float64        `json:"amount_total"`
	Currency          string         `json:"currency"`
	Status            CheckoutStatus `json:"status"`
	OrderRecordID     string         `json:"order_record_id,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	CompletedAt       *time.Time     `json:"completed_at,omitempty"`
}

func (s CheckoutSession) Total() float64 {
	total := 0.0
	for _, l := range s.Items {
		total += l.Price * float64(l.Quantity)
	}
	return total
}
