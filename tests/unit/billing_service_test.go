package unit

import (
	"context"
	"testing"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBillingService(invoiceRepo *MockInvoiceRepo, paymentRepo *MockPaymentRepo, bookingRepo *MockBookingRepo, guestRepo *MockGuestRepo, emailSvc *MockEmailService) service.BillingService {
	return service.NewBillingService(invoiceRepo, paymentRepo, bookingRepo, guestRepo, emailSvc)
}

func TestComputeTotals(t *testing.T) {
	invoice := &domain.Invoice{AmountCents: 10000}

	t.Run("OnlyCompletedPaymentsCount", func(t *testing.T) {
		payments := []domain.Payment{
			{AmountCents: 4000, Status: domain.PaymentStatusCompleted},
			{AmountCents: 3000, Status: domain.PaymentStatusPending},
			{AmountCents: 2000, Status: domain.PaymentStatusFailed},
			{AmountCents: 1000, Status: domain.PaymentStatusRefunded},
		}
		totals := service.ComputeTotals(invoice, payments)
		assert.Equal(t, int32(4000), totals.TotalPaidCents)
		assert.Equal(t, int32(6000), totals.RemainingCents)
	})

	t.Run("NoPayments", func(t *testing.T) {
		totals := service.ComputeTotals(invoice, nil)
		assert.Equal(t, int32(0), totals.TotalPaidCents)
		assert.Equal(t, int32(10000), totals.RemainingCents)
	})

	t.Run("OverpaymentYieldsNegativeRemaining", func(t *testing.T) {
		payments := []domain.Payment{
			{AmountCents: 7000, Status: domain.PaymentStatusCompleted},
			{AmountCents: 5000, Status: domain.PaymentStatusCompleted},
		}
		totals := service.ComputeTotals(invoice, payments)
		assert.Equal(t, int32(12000), totals.TotalPaidCents)
		assert.Equal(t, int32(-2000), totals.RemainingCents)
	})
}

func TestBillingService_ReconcileInvoiceStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("UnpaidBecomesPaidWhenCovered", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepo)
		paymentRepo := new(MockPaymentRepo)
		svc := newBillingService(invoiceRepo, paymentRepo, new(MockBookingRepo), new(MockGuestRepo), new(MockEmailService))

		invoiceRepo.On("GetByID", ctx, int32(1)).Return(&domain.Invoice{ID: 1, AmountCents: 10000, Status: domain.InvoiceStatusUnpaid}, nil)
		paymentRepo.On("ListCompletedByInvoice", ctx, int32(1)).Return([]domain.Payment{
			{AmountCents: 10000, Status: domain.PaymentStatusCompleted},
		}, nil)
		invoiceRepo.On("UpdateStatus", ctx, int32(1), domain.InvoiceStatusPaid).Return(nil)

		err := svc.ReconcileInvoiceStatus(ctx, 1)
		assert.NoError(t, err)
		invoiceRepo.AssertCalled(t, "UpdateStatus", ctx, int32(1), domain.InvoiceStatusPaid)
	})

	t.Run("OverpaymentStillMarksPaid", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepo)
		paymentRepo := new(MockPaymentRepo)
		svc := newBillingService(invoiceRepo, paymentRepo, new(MockBookingRepo), new(MockGuestRepo), new(MockEmailService))

		invoiceRepo.On("GetByID", ctx, int32(2)).Return(&domain.Invoice{ID: 2, AmountCents: 10000, Status: domain.InvoiceStatusUnpaid}, nil)
		paymentRepo.On("ListCompletedByInvoice", ctx, int32(2)).Return([]domain.Payment{
			{AmountCents: 15000, Status: domain.PaymentStatusCompleted},
		}, nil)
		invoiceRepo.On("UpdateStatus", ctx, int32(2), domain.InvoiceStatusPaid).Return(nil)

		err := svc.ReconcileInvoiceStatus(ctx, 2)
		assert.NoError(t, err)
		invoiceRepo.AssertCalled(t, "UpdateStatus", ctx, int32(2), domain.InvoiceStatusPaid)
	})

	t.Run("PartialPaymentStaysUnpaid", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepo)
		paymentRepo := new(MockPaymentRepo)
		svc := newBillingService(invoiceRepo, paymentRepo, new(MockBookingRepo), new(MockGuestRepo), new(MockEmailService))

		invoiceRepo.On("GetByID", ctx, int32(3)).Return(&domain.Invoice{ID: 3, AmountCents: 10000, Status: domain.InvoiceStatusUnpaid}, nil)
		paymentRepo.On("ListCompletedByInvoice", ctx, int32(3)).Return([]domain.Payment{
			{AmountCents: 4000, Status: domain.PaymentStatusCompleted},
		}, nil)

		err := svc.ReconcileInvoiceStatus(ctx, 3)
		assert.NoError(t, err)
		invoiceRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("PaidRevertsToUnpaidWhenShort", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepo)
		paymentRepo := new(MockPaymentRepo)
		svc := newBillingService(invoiceRepo, paymentRepo, new(MockBookingRepo), new(MockGuestRepo), new(MockEmailService))

		invoiceRepo.On("GetByID", ctx, int32(4)).Return(&domain.Invoice{ID: 4, AmountCents: 10000, Status: domain.InvoiceStatusPaid}, nil)
		paymentRepo.On("ListCompletedByInvoice", ctx, int32(4)).Return([]domain.Payment{
			{AmountCents: 6000, Status: domain.PaymentStatusCompleted},
		}, nil)
		invoiceRepo.On("UpdateStatus", ctx, int32(4), domain.InvoiceStatusUnpaid).Return(nil)

		err := svc.ReconcileInvoiceStatus(ctx, 4)
		assert.NoError(t, err)
		invoiceRepo.AssertCalled(t, "UpdateStatus", ctx, int32(4), domain.InvoiceStatusUnpaid)
	})

	t.Run("PaidRevertsWhenAllPaymentsGone", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepo)
		paymentRepo := new(MockPaymentRepo)
		svc := newBillingService(invoiceRepo, paymentRepo, new(MockBookingRepo), new(MockGuestRepo), new(MockEmailService))

		invoiceRepo.On("GetByID", ctx, int32(5)).Return(&domain.Invoice{ID: 5, AmountCents: 10000, Status: domain.InvoiceStatusPaid}, nil)
		paymentRepo.On("ListCompletedByInvoice", ctx, int32(5)).Return([]domain.Payment{}, nil)
		invoiceRepo.On("UpdateStatus", ctx, int32(5), domain.InvoiceStatusUnpaid).Return(nil)

		err := svc.ReconcileInvoiceStatus(ctx, 5)
		assert.NoError(t, err)
		invoiceRepo.AssertCalled(t, "UpdateStatus", ctx, int32(5), domain.InvoiceStatusUnpaid)
	})

	t.Run("VoidInvoiceNeverTransitions", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepo)
		paymentRepo := new(MockPaymentRepo)
		svc := newBillingService(invoiceRepo, paymentRepo, new(MockBookingRepo), new(MockGuestRepo), new(MockEmailService))

		invoiceRepo.On("GetByID", ctx, int32(6)).Return(&domain.Invoice{ID: 6, AmountCents: 10000, Status: domain.InvoiceStatusVoid}, nil)
		paymentRepo.On("ListCompletedByInvoice", ctx, int32(6)).Return([]domain.Payment{
			{AmountCents: 10000, Status: domain.PaymentStatusCompleted},
		}, nil)

		err := svc.ReconcileInvoiceStatus(ctx, 6)
		assert.NoError(t, err)
		invoiceRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("IdempotentWhenAlreadyPaid", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepo)
		paymentRepo := new(MockPaymentRepo)
		svc := newBillingService(invoiceRepo, paymentRepo, new(MockBookingRepo), new(MockGuestRepo), new(MockEmailService))

		invoiceRepo.On("GetByID", ctx, int32(7)).Return(&domain.Invoice{ID: 7, AmountCents: 10000, Status: domain.InvoiceStatusPaid}, nil)
		paymentRepo.On("ListCompletedByInvoice", ctx, int32(7)).Return([]domain.Payment{
			{AmountCents: 10000, Status: domain.PaymentStatusCompleted},
		}, nil)

		err := svc.ReconcileInvoiceStatus(ctx, 7)
		assert.NoError(t, err)
		err = svc.ReconcileInvoiceStatus(ctx, 7)
		assert.NoError(t, err)
		invoiceRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBillingService_CreatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("CompletedPaymentCoversInvoice", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepo)
		paymentRepo := new(MockPaymentRepo)
		bookingRepo := new(MockBookingRepo)
		guestRepo := new(MockGuestRepo)
		emailSvc := new(MockEmailService)
		svc := newBillingService(invoiceRepo, paymentRepo, bookingRepo, guestRepo, emailSvc)

		invoice := &domain.Invoice{ID: 1, BookingID: 10, InvoiceNumber: "INV-TEST", AmountCents: 10000, Status: domain.InvoiceStatusUnpaid}
		invoiceRepo.On("GetByID", ctx, int32(1)).Return(invoice, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)
		paymentRepo.On("ListCompletedByInvoice", ctx, int32(1)).Return([]domain.Payment{
			{AmountCents: 10000, Status: domain.PaymentStatusCompleted},
		}, nil)
		invoiceRepo.On("UpdateStatus", ctx, int32(1), domain.InvoiceStatusPaid).Return(nil)
		bookingRepo.On("GetByID", ctx, int32(10)).Return(&domain.Booking{ID: 10, GuestID: 20}, nil)
		guestRepo.On("GetByID", ctx, int32(20)).Return(&domain.Guest{ID: 20, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}, nil)
		emailSvc.On("SendPaymentReceipt", ctx, "ada@example.com", "Ada Lovelace", "INV-TEST", int32(10000)).Return(nil)

		payment := &domain.Payment{InvoiceID: 1, AmountCents: 10000, Status: domain.PaymentStatusCompleted, Method: domain.PaymentMethodCash}
		created, err := svc.CreatePayment(ctx, payment)
		assert.NoError(t, err)
		assert.NotEmpty(t, created.TransactionID)
		assert.NotNil(t, created.ProcessedAt)
		invoiceRepo.AssertCalled(t, "UpdateStatus", ctx, int32(1), domain.InvoiceStatusPaid)
		emailSvc.AssertExpectations(t)
	})

	t.Run("RejectsNonPositiveAmount", func(t *testing.T) {
		svc := newBillingService(new(MockInvoiceRepo), new(MockPaymentRepo), new(MockBookingRepo), new(MockGuestRepo), new(MockEmailService))

		_, err := svc.CreatePayment(ctx, &domain.Payment{InvoiceID: 1, AmountCents: 0})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("InvoiceNotFound", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepo)
		svc := newBillingService(invoiceRepo, new(MockPaymentRepo), new(MockBookingRepo), new(MockGuestRepo), new(MockEmailService))

		invoiceRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.ErrNotFound)

		_, err := svc.CreatePayment(ctx, &domain.Payment{InvoiceID: 99, AmountCents: 500, Status: domain.PaymentStatusPending})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBillingService_ProcessRefund(t *testing.T) {
	ctx := context.Background()

	t.Run("RefundRevertsInvoiceToUnpaid", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepo)
		paymentRepo := new(MockPaymentRepo)
		svc := newBillingService(invoiceRepo, paymentRepo, new(MockBookingRepo), new(MockGuestRepo), new(MockEmailService))

		paymentRepo.On("GetByID", ctx, int32(1)).Return(&domain.Payment{ID: 1, InvoiceID: 5, AmountCents: 10000, Status: domain.PaymentStatusCompleted}, nil)
		paymentRepo.On("Update", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)
		invoiceRepo.On("GetByID", ctx, int32(5)).Return(&domain.Invoice{ID: 5, AmountCents: 10000, Status: domain.InvoiceStatusPaid}, nil)
		paymentRepo.On("ListCompletedByInvoice", ctx, int32(5)).Return([]domain.Payment{}, nil)
		invoiceRepo.On("UpdateStatus", ctx, int32(5), domain.InvoiceStatusUnpaid).Return(nil)

		refunded, err := svc.ProcessRefund(ctx, 1, nil)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusRefunded, refunded.Status)
		invoiceRepo.AssertCalled(t, "UpdateStatus", ctx, int32(5), domain.InvoiceStatusUnpaid)
	})

	t.Run("OnlyCompletedPaymentsRefundable", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepo)
		svc := newBillingService(new(MockInvoiceRepo), paymentRepo, new(MockBookingRepo), new(MockGuestRepo), new(MockEmailService))

		paymentRepo.On("GetByID", ctx, int32(2)).Return(&domain.Payment{ID: 2, InvoiceID: 5, AmountCents: 1000, Status: domain.PaymentStatusPending}, nil)

		_, err := svc.ProcessRefund(ctx, 2, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
		paymentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestBillingService_DeletePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("DeletionReconcilesInvoice", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepo)
		paymentRepo := new(MockPaymentRepo)
		svc := newBillingService(invoiceRepo, paymentRepo, new(MockBookingRepo), new(MockGuestRepo), new(MockEmailService))

		paymentRepo.On("GetByID", ctx, int32(1)).Return(&domain.Payment{ID: 1, InvoiceID: 7, AmountCents: 10000, Status: domain.PaymentStatusCompleted}, nil)
		paymentRepo.On("Delete", ctx, int32(1)).Return(nil)
		invoiceRepo.On("GetByID", ctx, int32(7)).Return(&domain.Invoice{ID: 7, AmountCents: 10000, Status: domain.InvoiceStatusPaid}, nil)
		paymentRepo.On("ListCompletedByInvoice", ctx, int32(7)).Return([]domain.Payment{}, nil)
		invoiceRepo.On("UpdateStatus", ctx, int32(7), domain.InvoiceStatusUnpaid).Return(nil)

		err := svc.DeletePayment(ctx, 1)
		assert.NoError(t, err)
		invoiceRepo.AssertCalled(t, "UpdateStatus", ctx, int32(7), domain.InvoiceStatusUnpaid)
	})
}

func TestBillingService_CreateInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepo)
		bookingRepo := new(MockBookingRepo)
		svc := newBillingService(invoiceRepo, new(MockPaymentRepo), bookingRepo, new(MockGuestRepo), new(MockEmailService))

		bookingRepo.On("GetByID", ctx, int32(10)).Return(&domain.Booking{ID: 10}, nil)
		invoiceRepo.On("Create", ctx, mock.AnythingOfType("*domain.Invoice")).Return(nil)

		due := time.Now().AddDate(0, 0, 14)
		invoice, err := svc.CreateInvoice(ctx, 10, 25000, 2500, &due, false)
		assert.NoError(t, err)
		assert.Equal(t, domain.InvoiceStatusUnpaid, invoice.Status)
		assert.Contains(t, invoice.InvoiceNumber, "INV-")
	})

	t.Run("DraftStatus", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepo)
		bookingRepo := new(MockBookingRepo)
		svc := newBillingService(invoiceRepo, new(MockPaymentRepo), bookingRepo, new(MockGuestRepo), new(MockEmailService))

		bookingRepo.On("GetByID", ctx, int32(10)).Return(&domain.Booking{ID: 10}, nil)
		invoiceRepo.On("Create", ctx, mock.AnythingOfType("*domain.Invoice")).Return(nil)

		invoice, err := svc.CreateInvoice(ctx, 10, 25000, 0, nil, true)
		assert.NoError(t, err)
		assert.Equal(t, domain.InvoiceStatusDraft, invoice.Status)
	})

	t.Run("NegativeAmountRejected", func(t *testing.T) {
		svc := newBillingService(new(MockInvoiceRepo), new(MockPaymentRepo), new(MockBookingRepo), new(MockGuestRepo), new(MockEmailService))

		_, err := svc.CreateInvoice(ctx, 10, -100, 0, nil, false)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestBillingService_MarkInvoicePaid(t *testing.T) {
	ctx := context.Background()

	t.Run("VoidInvoiceRejected", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepo)
		svc := newBillingService(invoiceRepo, new(MockPaymentRepo), new(MockBookingRepo), new(MockGuestRepo), new(MockEmailService))

		invoiceRepo.On("GetByID", ctx, int32(1)).Return(&domain.Invoice{ID: 1, Status: domain.InvoiceStatusVoid}, nil)

		_, err := svc.MarkInvoicePaid(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("AlreadyPaidIsNoOp", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepo)
		svc := newBillingService(invoiceRepo, new(MockPaymentRepo), new(MockBookingRepo), new(MockGuestRepo), new(MockEmailService))

		invoiceRepo.On("GetByID", ctx, int32(2)).Return(&domain.Invoice{ID: 2, Status: domain.InvoiceStatusPaid}, nil)

		invoice, err := svc.MarkInvoicePaid(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, domain.InvoiceStatusPaid, invoice.Status)
		invoiceRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
