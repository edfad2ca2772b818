package jobs

import (
	"context"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/service"
)

// SendOverdueInvoiceReminders emails guests whose unpaid invoices are
// past their due date
func (jr *JobRunner) SendOverdueInvoiceReminders() {
	jr.runWithRecovery("SendOverdueInvoiceReminders", func() {
		ctx := context.Background()

		overdue, err := jr.store.InvoiceRepository.ListOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to list overdue invoices", "error", err)
			return
		}

		sent := 0
		for _, invoice := range overdue {
			booking, err := jr.store.BookingRepository.GetByID(ctx, invoice.BookingID)
			if err != nil {
				logger.Error("Failed to load booking for overdue invoice",
					"invoice_id", invoice.ID, "error", err)
				continue
			}
			guest, err := jr.store.GuestRepository.GetByID(ctx, booking.GuestID)
			if err != nil || guest.Email == "" {
				continue
			}

			payments, err := jr.store.PaymentRepository.ListCompletedByInvoice(ctx, invoice.ID)
			if err != nil {
				logger.Error("Failed to load payments for overdue invoice",
					"invoice_id", invoice.ID, "error", err)
				continue
			}
			totals := service.ComputeTotals(&invoice, payments)
			if totals.RemainingCents <= 0 {
				continue
			}

			err = jr.services.Email.SendOverdueInvoiceReminder(
				ctx, guest.Email, guest.FullName(), invoice.InvoiceNumber,
				totals.RemainingCents, *invoice.DueDate)
			if err != nil {
				logger.Error("Failed to send overdue reminder",
					"invoice_id", invoice.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Overdue invoice reminders sent", "count", sent, "overdue_total", len(overdue))
	})
}

// ReconcileAllInvoices sweeps every open invoice and realigns its
// status with its completed payments, catching anything missed by the
// per-payment reconciliation
func (jr *JobRunner) ReconcileAllInvoices() {
	jr.runWithRecovery("ReconcileAllInvoices", func() {
		ctx := context.Background()

		ids, err := jr.store.InvoiceRepository.ListIDsByStatuses(ctx, []domain.InvoiceStatus{
			domain.InvoiceStatusUnpaid,
			domain.InvoiceStatusPaid,
		})
		if err != nil {
			logger.Error("Failed to list invoices for reconciliation", "error", err)
			return
		}

		failed := 0
		for _, id := range ids {
			if err := jr.services.Billing.ReconcileInvoiceStatus(ctx, id); err != nil {
				logger.Error("Failed to reconcile invoice", "invoice_id", id, "error", err)
				failed++
			}
		}

		logger.Info("Invoice reconciliation sweep completed",
			"processed", len(ids), "failed", failed)
	})
}
