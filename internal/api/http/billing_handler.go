package http

import (
	"net/http"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/service"
)

type BillingHandler struct {
	billingSvc service.BillingService
}

func NewBillingHandler(billingSvc service.BillingService) *BillingHandler {
	return &BillingHandler{billingSvc: billingSvc}
}

type createInvoiceRequest struct {
	BookingID   int32      `json:"booking_id"`
	AmountCents int32      `json:"amount_cents"`
	TaxCents    int32      `json:"tax_cents"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Draft       bool       `json:"draft"`
}

func (h *BillingHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	invoice, err := h.billingSvc.CreateInvoice(r.Context(), req.BookingID, req.AmountCents, req.TaxCents, req.DueDate, req.Draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, invoice)
}

type invoiceResponse struct {
	*domain.Invoice
	TotalPaidCents int32 `json:"total_paid_cents"`
	RemainingCents int32 `json:"remaining_cents"`
}

func (h *BillingHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	invoice, totals, err := h.billingSvc.GetInvoice(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invoiceResponse{
		Invoice:        invoice,
		TotalPaidCents: totals.TotalPaidCents,
		RemainingCents: totals.RemainingCents,
	})
}

func (h *BillingHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := domain.InvoiceStatus(r.URL.Query().Get("status"))
	invoices, total, err := h.billingSvc.ListInvoices(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: invoices, Total: total, Page: page, PageSize: pageSize})
}

func (h *BillingHandler) ListBookingInvoices(w http.ResponseWriter, r *http.Request) {
	bookingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	invoices, err := h.billingSvc.ListInvoicesForBooking(r.Context(), bookingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}

func (h *BillingHandler) MarkInvoicePaid(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	invoice, err := h.billingSvc.MarkInvoicePaid(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

func (h *BillingHandler) VoidInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	invoice, err := h.billingSvc.VoidInvoice(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

func (h *BillingHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var payment domain.Payment
	if err := decodeBody(r, &payment); err != nil {
		writeError(w, err)
		return
	}
	payment.InvoiceID = invoiceID
	created, err := h.billingSvc.CreatePayment(r.Context(), &payment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BillingHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	invoiceID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	payments, err := h.billingSvc.ListPayments(r.Context(), invoiceID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

type paymentStatusRequest struct {
	Status domain.PaymentStatus `json:"status"`
}

func (h *BillingHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req paymentStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	payment, err := h.billingSvc.UpdatePaymentStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

type refundRequest struct {
	AmountCents *int32 `json:"amount_cents,omitempty"`
}

func (h *BillingHandler) Refund(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req refundRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	payment, err := h.billingSvc.ProcessRefund(r.Context(), id, req.AmountCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *BillingHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.billingSvc.DeletePayment(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
