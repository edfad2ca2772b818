package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/repository"

	"github.com/google/uuid"
)

type billingService struct {
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
	guestRepo   repository.GuestRepository
	emailSvc    EmailService
}

func NewBillingService(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	guestRepo repository.GuestRepository,
	emailSvc EmailService,
) BillingService {
	return &billingService{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		guestRepo:   guestRepo,
		emailSvc:    emailSvc,
	}
}

// ComputeTotals derives an invoice's payment position from its payment
// list. Only COMPLETED payments count toward the paid total; PENDING,
// FAILED and REFUNDED payments are excluded regardless of their amount.
// The remaining balance may be negative when the invoice is overpaid; no
// clamping is applied on the read path.
func ComputeTotals(invoice *domain.Invoice, payments []domain.Payment) domain.InvoiceTotals {
	var totalPaid int32
	for _, p := range payments {
		if p.CountsTowardPaid() {
			totalPaid += p.AmountCents
		}
	}
	return domain.InvoiceTotals{
		TotalPaidCents: totalPaid,
		RemainingCents: invoice.AmountCents - totalPaid,
	}
}

// reconciledStatus applies the status decision table to an invoice given
// the sum of its completed payments. VOID invoices never transition
// automatically. A fully unpaid invoice currently marked PAID reverts to
// UNPAID, which covers the case where every completed payment was deleted
// or refunded.
func reconciledStatus(current domain.InvoiceStatus, amountCents, totalPaidCents int32) domain.InvoiceStatus {
	if current == domain.InvoiceStatusVoid {
		return current
	}
	if totalPaidCents >= amountCents && current != domain.InvoiceStatusPaid {
		return domain.InvoiceStatusPaid
	}
	if totalPaidCents < amountCents && current == domain.InvoiceStatusPaid {
		return domain.InvoiceStatusUnpaid
	}
	return current
}

func (s *billingService) CreateInvoice(ctx context.Context, bookingID, amountCents, taxCents int32, dueDate *time.Time, draft bool) (*domain.Invoice, error) {
	if amountCents < 0 {
		return nil, fmt.Errorf("%w: invoice amount must not be negative", domain.ErrValidation)
	}
	if taxCents < 0 {
		return nil, fmt.Errorf("%w: invoice tax must not be negative", domain.ErrValidation)
	}

	// Verify the booking exists before writing anything.
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}

	status := domain.InvoiceStatusUnpaid
	if draft {
		status = domain.InvoiceStatusDraft
	}

	invoice := &domain.Invoice{
		BookingID:     bookingID,
		InvoiceNumber: generateInvoiceNumber(),
		AmountCents:   amountCents,
		TaxCents:      taxCents,
		Status:        status,
		IssueDate:     time.Now(),
		DueDate:       dueDate,
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *billingService) GetInvoice(ctx context.Context, id int32) (*domain.Invoice, *domain.InvoiceTotals, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	payments, err := s.paymentRepo.ListByInvoice(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	totals := ComputeTotals(invoice, payments)
	return invoice, &totals, nil
}

func (s *billingService) ListInvoices(ctx context.Context, status domain.InvoiceStatus, page, pageSize int32) ([]domain.Invoice, int32, error) {
	return s.invoiceRepo.List(ctx, status, page, pageSize)
}

func (s *billingService) ListInvoicesForBooking(ctx context.Context, bookingID int32) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListByBooking(ctx, bookingID)
}

func (s *billingService) MarkInvoicePaid(ctx context.Context, id int32) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status == domain.InvoiceStatusVoid {
		return nil, fmt.Errorf("%w: cannot mark a void invoice as paid", domain.ErrInvalidState)
	}
	if invoice.Status == domain.InvoiceStatusPaid {
		return invoice, nil
	}
	if err := s.invoiceRepo.UpdateStatus(ctx, id, domain.InvoiceStatusPaid); err != nil {
		return nil, err
	}
	invoice.Status = domain.InvoiceStatusPaid
	return invoice, nil
}

func (s *billingService) VoidInvoice(ctx context.Context, id int32) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status == domain.InvoiceStatusVoid {
		return invoice, nil
	}
	if err := s.invoiceRepo.UpdateStatus(ctx, id, domain.InvoiceStatusVoid); err != nil {
		return nil, err
	}
	invoice.Status = domain.InvoiceStatusVoid
	return invoice, nil
}

// ReconcileInvoiceStatus brings an invoice's status in line with the sum
// of its completed payments. It writes only when the status actually
// changes, so repeated invocations with no intervening payment changes
// are no-ops. Concurrent invocations for the same invoice may race on
// slightly different snapshots; the result self-corrects on the next
// reconciling write.
func (s *billingService) ReconcileInvoiceStatus(ctx context.Context, invoiceID int32) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}

	completed, err := s.paymentRepo.ListCompletedByInvoice(ctx, invoiceID)
	if err != nil {
		return err
	}

	totals := ComputeTotals(invoice, completed)
	next := reconciledStatus(invoice.Status, invoice.AmountCents, totals.TotalPaidCents)
	if next == invoice.Status {
		return nil
	}

	logger.Info("Reconciling invoice status",
		"invoice_id", invoiceID,
		"from", invoice.Status,
		"to", next,
		"total_paid_cents", totals.TotalPaidCents,
		"amount_cents", invoice.AmountCents)

	return s.invoiceRepo.UpdateStatus(ctx, invoiceID, next)
}

func (s *billingService) CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if payment.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", domain.ErrValidation)
	}
	switch payment.Status {
	case "":
		payment.Status = domain.PaymentStatusPending
	case domain.PaymentStatusPending, domain.PaymentStatusCompleted:
	default:
		return nil, fmt.Errorf("%w: a payment is created pending or completed, not %s", domain.ErrValidation, payment.Status)
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, payment.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == domain.InvoiceStatusVoid {
		return nil, fmt.Errorf("%w: cannot record a payment against a void invoice", domain.ErrInvalidState)
	}

	if payment.TransactionID == "" {
		payment.TransactionID = generateTransactionID()
	}
	if payment.Status == domain.PaymentStatusCompleted && payment.ProcessedAt == nil {
		now := time.Now()
		payment.ProcessedAt = &now
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.ReconcileInvoiceStatus(ctx, payment.InvoiceID); err != nil {
		return nil, err
	}

	if payment.Status == domain.PaymentStatusCompleted {
		s.sendReceipt(ctx, invoice, payment)
	}

	return payment, nil
}

func (s *billingService) UpdatePaymentStatus(ctx context.Context, paymentID int32, status domain.PaymentStatus) (*domain.Payment, error) {
	switch status {
	case domain.PaymentStatusPending, domain.PaymentStatusCompleted, domain.PaymentStatusFailed:
	case domain.PaymentStatusRefunded:
		return nil, fmt.Errorf("%w: refunds go through the refund operation", domain.ErrValidation)
	default:
		return nil, fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, status)
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status == domain.PaymentStatusRefunded {
		return nil, fmt.Errorf("%w: a refunded payment cannot change status", domain.ErrInvalidState)
	}

	payment.Status = status
	if status == domain.PaymentStatusCompleted && payment.ProcessedAt == nil {
		now := time.Now()
		payment.ProcessedAt = &now
	}
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.ReconcileInvoiceStatus(ctx, payment.InvoiceID); err != nil {
		return nil, err
	}

	if status == domain.PaymentStatusCompleted {
		if invoice, err := s.invoiceRepo.GetByID(ctx, payment.InvoiceID); err == nil {
			s.sendReceipt(ctx, invoice, payment)
		}
	}

	return payment, nil
}

// ProcessRefund marks a completed payment as refunded. When a refund
// amount is supplied it overwrites the payment amount; either way the
// payment stops counting toward the invoice's paid total, so the parent
// invoice is reconciled afterward.
func (s *billingService) ProcessRefund(ctx context.Context, paymentID int32, refundCents *int32) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != domain.PaymentStatusCompleted {
		return nil, fmt.Errorf("%w: only a completed payment can be refunded", domain.ErrInvalidState)
	}
	if refundCents != nil && *refundCents <= 0 {
		return nil, fmt.Errorf("%w: refund amount must be positive", domain.ErrValidation)
	}

	payment.Status = domain.PaymentStatusRefunded
	if refundCents != nil {
		payment.AmountCents = *refundCents
	}
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.ReconcileInvoiceStatus(ctx, payment.InvoiceID); err != nil {
		return nil, err
	}
	return payment, nil
}

// DeletePayment removes a payment and reconciles its parent invoice, so
// deleting the completed payment that covered an invoice reverts the
// invoice to UNPAID.
func (s *billingService) DeletePayment(ctx context.Context, paymentID int32) error {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return err
	}

	if err := s.paymentRepo.Delete(ctx, paymentID); err != nil {
		return err
	}

	return s.ReconcileInvoiceStatus(ctx, payment.InvoiceID)
}

func (s *billingService) ListPayments(ctx context.Context, invoiceID int32) ([]domain.Payment, error) {
	if _, err := s.invoiceRepo.GetByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByInvoice(ctx, invoiceID)
}

// sendReceipt emails a payment receipt to the booking's guest. Email
// failures are logged and never fail the payment operation.
func (s *billingService) sendReceipt(ctx context.Context, invoice *domain.Invoice, payment *domain.Payment) {
	booking, err := s.bookingRepo.GetByID(ctx, invoice.BookingID)
	if err != nil {
		return
	}
	guest, err := s.guestRepo.GetByID(ctx, booking.GuestID)
	if err != nil || guest.Email == "" {
		return
	}
	if err := s.emailSvc.SendPaymentReceipt(ctx, guest.Email, guest.FullName(), invoice.InvoiceNumber, payment.AmountCents); err != nil {
		logger.Warn("Failed to send payment receipt", "invoice_id", invoice.ID, "error", err)
	}
}

func generateInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.New().String()[:8])
}

func generateTransactionID() string {
	return "TXN-" + strings.ToUpper(uuid.New().String()[:12])
}
