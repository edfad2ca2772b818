package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, invoice_id, amount_cents, status, COALESCE(method, ''),
	       COALESCE(transaction_id, ''), processed_at, created_at, updated_at`

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	logger.EnterMethod("paymentRepository.Create", "invoiceID", payment.InvoiceID, "amountCents", payment.AmountCents)

	query := `
		INSERT INTO payments (
			invoice_id, amount_cents, status, method, transaction_id,
			processed_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		payment.InvoiceID, payment.AmountCents, payment.Status,
		nullString(string(payment.Method)), nullString(payment.TransactionID),
		payment.ProcessedAt, now, now,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)

	if err != nil {
		logger.ExitMethodWithError("paymentRepository.Create", err, "invoiceID", payment.InvoiceID)
		return err
	}

	logger.ExitMethod("paymentRepository.Create", "paymentID", payment.ID)
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	logger.EnterMethod("paymentRepository.GetByID", "paymentID", id)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	payment := &domain.Payment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&payment.ID, &payment.InvoiceID, &payment.AmountCents, &payment.Status,
		&payment.Method, &payment.TransactionID, &payment.ProcessedAt,
		&payment.CreatedAt, &payment.UpdatedAt,
	)

	if err != nil {
		logger.ExitMethodWithError("paymentRepository.GetByID", err, "paymentID", id)
		return nil, mapNotFound(err)
	}

	logger.ExitMethod("paymentRepository.GetByID", "paymentID", id)
	return payment, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	logger.EnterMethod("paymentRepository.Update", "paymentID", payment.ID, "status", payment.Status)

	query := `
		UPDATE payments SET
			amount_cents = $1,
			status = $2,
			method = $3,
			transaction_id = $4,
			processed_at = $5,
			updated_at = $6
		WHERE id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		payment.AmountCents, payment.Status, nullString(string(payment.Method)),
		nullString(payment.TransactionID), payment.ProcessedAt, time.Now(), payment.ID,
	)
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.Update", err, "paymentID", payment.ID)
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		logger.ExitMethodWithError("paymentRepository.Update", domain.ErrNotFound, "paymentID", payment.ID)
		return domain.ErrNotFound
	}

	logger.ExitMethod("paymentRepository.Update", "paymentID", payment.ID)
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id int32) error {
	logger.EnterMethod("paymentRepository.Delete", "paymentID", id)

	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.Delete", err, "paymentID", id)
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		logger.ExitMethodWithError("paymentRepository.Delete", domain.ErrNotFound, "paymentID", id)
		return domain.ErrNotFound
	}

	logger.ExitMethod("paymentRepository.Delete", "paymentID", id)
	return nil
}

func (r *paymentRepository) ListByInvoice(ctx context.Context, invoiceID int32) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE invoice_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func (r *paymentRepository) ListCompletedByInvoice(ctx context.Context, invoiceID int32) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE invoice_id = $1 AND status = $2 ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, invoiceID, domain.PaymentStatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func scanPayments(rows *sql.Rows) ([]domain.Payment, error) {
	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(
			&p.ID, &p.InvoiceID, &p.AmountCents, &p.Status,
			&p.Method, &p.TransactionID, &p.ProcessedAt,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// Helper function to convert empty string to SQL NULL
func nullString(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
