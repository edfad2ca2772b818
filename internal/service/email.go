package service

import (
	"context"
	"fmt"
	"time"

	"hotelier-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendgridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendgridEmailService) SendBookingConfirmation(ctx context.Context, to, guestName, roomNumber string, checkIn, checkOut time.Time) error {
	subject := "Your booking is confirmed"
	plain := fmt.Sprintf("Dear %s,\n\nYour booking for room %s from %s to %s is confirmed. We look forward to welcoming you.",
		guestName, roomNumber, checkIn.Format("Jan 2, 2006"), checkOut.Format("Jan 2, 2006"))
	html := fmt.Sprintf(`<p>Dear %s,</p><p>Your booking for room <strong>%s</strong> from <strong>%s</strong> to <strong>%s</strong> is confirmed. We look forward to welcoming you.</p>`,
		guestName, roomNumber, checkIn.Format("Jan 2, 2006"), checkOut.Format("Jan 2, 2006"))
	return s.send(ctx, to, guestName, subject, plain, html)
}

func (s *sendgridEmailService) SendPaymentReceipt(ctx context.Context, to, guestName, invoiceNumber string, amountCents int32) error {
	subject := fmt.Sprintf("Payment received for invoice %s", invoiceNumber)
	plain := fmt.Sprintf("Dear %s,\n\nWe received your payment of %s toward invoice %s. Thank you.",
		guestName, formatCents(amountCents), invoiceNumber)
	html := fmt.Sprintf(`<p>Dear %s,</p><p>We received your payment of <strong>%s</strong> toward invoice <strong>%s</strong>. Thank you.</p>`,
		guestName, formatCents(amountCents), invoiceNumber)
	return s.send(ctx, to, guestName, subject, plain, html)
}

func (s *sendgridEmailService) SendOverdueInvoiceReminder(ctx context.Context, to, guestName, invoiceNumber string, remainingCents int32, dueDate time.Time) error {
	subject := fmt.Sprintf("Invoice %s is past due", invoiceNumber)
	plain := fmt.Sprintf("Dear %s,\n\nInvoice %s was due on %s and has an outstanding balance of %s. Please arrange payment at your earliest convenience.",
		guestName, invoiceNumber, dueDate.Format("Jan 2, 2006"), formatCents(remainingCents))
	html := fmt.Sprintf(`<p>Dear %s,</p><p>Invoice <strong>%s</strong> was due on <strong>%s</strong> and has an outstanding balance of <strong>%s</strong>. Please arrange payment at your earliest convenience.</p>`,
		guestName, invoiceNumber, dueDate.Format("Jan 2, 2006"), formatCents(remainingCents))
	return s.send(ctx, to, guestName, subject, plain, html)
}

func (s *sendgridEmailService) send(ctx context.Context, to, toName, subject, plainText, htmlContent string) error {
	logger.ExternalServiceCall("sendgrid", "Send", "to", to, "subject", subject)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "Send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "Send", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "Send", nil)
	return nil
}

func formatCents(cents int32) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
