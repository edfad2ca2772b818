package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodPayPal       PaymentMethod = "PAYPAL"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCash         PaymentMethod = "CASH"
)

type Payment struct {
	ID            int32         `json:"id"`
	InvoiceID     int32         `json:"invoice_id"`
	AmountCents   int32         `json:"amount_cents"`
	Status        PaymentStatus `json:"status"`
	Method        PaymentMethod `json:"method,omitempty"`
	TransactionID string        `json:"transaction_id,omitempty"`
	ProcessedAt   *time.Time    `json:"processed_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// CountsTowardPaid reports whether this payment contributes to an
// invoice's paid total. Only COMPLETED payments count; a refunded payment
// keeps its amount field but is excluded.
func (p *Payment) CountsTowardPaid() bool {
	return p.Status == PaymentStatusCompleted
}
