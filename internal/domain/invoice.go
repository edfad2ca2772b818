package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "DRAFT"
	InvoiceStatusUnpaid InvoiceStatus = "UNPAID"
	InvoiceStatusPaid   InvoiceStatus = "PAID"
	InvoiceStatusVoid   InvoiceStatus = "VOID"
)

type Invoice struct {
	ID            int32         `json:"id"`
	BookingID     int32         `json:"booking_id"`
	InvoiceNumber string        `json:"invoice_number"`
	AmountCents   int32         `json:"amount_cents"`
	TaxCents      int32         `json:"tax_cents"`
	Status        InvoiceStatus `json:"status"`
	IssueDate     time.Time     `json:"issue_date"`
	DueDate       *time.Time    `json:"due_date,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// InvoiceTotals is the read-path view of an invoice's payment position.
// RemainingCents may be negative when the invoice is overpaid; no clamping
// is applied here.
type InvoiceTotals struct {
	TotalPaidCents int32 `json:"total_paid_cents"`
	RemainingCents int32 `json:"remaining_cents"`
}
