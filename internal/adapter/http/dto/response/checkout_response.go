package response

import (
	"bemu_storefront/internal/domain/entities"
	"time"
)

// CheckoutSessionResponse keeps the flat shape the storefront redirect expects.
type CheckoutSessionResponse struct {
	Success    bool   `json:"success"`
	SessionID  string `json:"session_id"`
	CheckoutID string `json:"checkout_id"`
	URL        string `json:"url"`
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{Success: true, SessionID: s.ProviderSessionID, CheckoutID: s.ID, URL: s.URL}
}

type CheckoutRecordResponse struct {
	ID                string                  `json:"id"`
	Provider          string                  `json:"provider"`
	ProviderSessionID string                  `json:"provider_session_id"`
	Status            string                  `json:"status"`
	Items             []entities.CheckoutLine `json:"items"`
	AmountTotal       float64                 `json:"amount_total"`
	Currency          string                  `json:"currency"`
	OrderRecordID     string                  `json:"order_record_id,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	CompletedAt       *time.Time              `json:"completed_at,omitempty"`
}

func FromCheckoutRecord(s entities.CheckoutSession) CheckoutRecordResponse {
	items := s.Items
	if items == nil {
		items = []entities.CheckoutLine{}
	}
	return CheckoutRecordResponse{
		ID:                s.ID,
		Provider:          s.Provider,
		ProviderSessionID: s.ProviderSessionID,
		Status:            string(s.Status),
		Items:             items,
		AmountTotal:       s.AmountTotal,
		Currency:          s.Currency,
		OrderRecordID:     s.OrderRecordID,
		CreatedAt:         s.CreatedAt,
		CompletedAt:       s.CompletedAt,
	}
}

type WebhookResponse struct {
	Received  bool   `json:"received"`
	Processed bool   `json:"processed,omitempty"`
	Duplicate bool   `json:"duplicate,omitempty"`
	OrderID   string `json:"order_record_id,omitempty"`
}
