package postgres

import (
	"context"
	"database/sql"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/repository"

	"github.com/lib/pq"
)

type invoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

const invoiceColumns = `id, booking_id, invoice_number, amount_cents, tax_cents, status,
	       issue_date, due_date, created_at, updated_at`

func (r *invoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	logger.EnterMethod("invoiceRepository.Create", "bookingID", invoice.BookingID, "number", invoice.InvoiceNumber)

	query := `
		INSERT INTO invoices (
			booking_id, invoice_number, amount_cents, tax_cents, status,
			issue_date, due_date, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		invoice.BookingID, invoice.InvoiceNumber, invoice.AmountCents, invoice.TaxCents,
		invoice.Status, invoice.IssueDate, invoice.DueDate, now, now,
	).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)

	if err != nil {
		logger.ExitMethodWithError("invoiceRepository.Create", err, "bookingID", invoice.BookingID)
		return err
	}

	logger.ExitMethod("invoiceRepository.Create", "invoiceID", invoice.ID)
	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id int32) (*domain.Invoice, error) {
	logger.EnterMethod("invoiceRepository.GetByID", "invoiceID", id)

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	invoice := &domain.Invoice{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&invoice.ID, &invoice.BookingID, &invoice.InvoiceNumber, &invoice.AmountCents,
		&invoice.TaxCents, &invoice.Status, &invoice.IssueDate, &invoice.DueDate,
		&invoice.CreatedAt, &invoice.UpdatedAt,
	)

	if err != nil {
		logger.ExitMethodWithError("invoiceRepository.GetByID", err, "invoiceID", id)
		return nil, mapNotFound(err)
	}

	logger.ExitMethod("invoiceRepository.GetByID", "invoiceID", id)
	return invoice, nil
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_number = $1`

	invoice := &domain.Invoice{}
	err := r.db.QueryRowContext(ctx, query, number).Scan(
		&invoice.ID, &invoice.BookingID, &invoice.InvoiceNumber, &invoice.AmountCents,
		&invoice.TaxCents, &invoice.Status, &invoice.IssueDate, &invoice.DueDate,
		&invoice.CreatedAt, &invoice.UpdatedAt,
	)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return invoice, nil
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id int32, status domain.InvoiceStatus) error {
	logger.EnterMethod("invoiceRepository.UpdateStatus", "invoiceID", id, "status", status)

	query := `UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		logger.ExitMethodWithError("invoiceRepository.UpdateStatus", err, "invoiceID", id)
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		logger.ExitMethodWithError("invoiceRepository.UpdateStatus", domain.ErrNotFound, "invoiceID", id)
		return domain.ErrNotFound
	}

	logger.ExitMethod("invoiceRepository.UpdateStatus", "invoiceID", id)
	return nil
}

func (r *invoiceRepository) List(ctx context.Context, status domain.InvoiceStatus, page, pageSize int32) ([]domain.Invoice, int32, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	countQuery := `SELECT count(*) FROM invoices`
	args := []interface{}{}

	if status != "" {
		query += ` WHERE status = $1 ORDER BY issue_date DESC LIMIT $2 OFFSET $3`
		countQuery += ` WHERE status = $1`
		args = append(args, status)
	} else {
		query += ` ORDER BY issue_date DESC LIMIT $1 OFFSET $2`
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	args = append(args, pageSize, offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	invoices, err := scanInvoices(rows)
	if err != nil {
		return nil, 0, err
	}
	return invoices, count, nil
}

func (r *invoiceRepository) ListByBooking(ctx context.Context, bookingID int32) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE booking_id = $1 ORDER BY issue_date DESC`

	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInvoices(rows)
}

func (r *invoiceRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE status = $1 AND due_date IS NOT NULL AND due_date < $2
		ORDER BY due_date ASC`

	rows, err := r.db.QueryContext(ctx, query, domain.InvoiceStatusUnpaid, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInvoices(rows)
}

func (r *invoiceRepository) ListIDsByStatuses(ctx context.Context, statuses []domain.InvoiceStatus) ([]int32, error) {
	statusStrs := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrs[i] = string(s)
	}

	query := `SELECT id FROM invoices WHERE status = ANY($1) ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(statusStrs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int32{}
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *invoiceRepository) RevenueSummary(ctx context.Context, from, to time.Time) (int64, int64, error) {
	var paid, outstanding int64

	query := `
		SELECT
			COALESCE(SUM(amount_cents) FILTER (WHERE status = 'PAID'), 0),
			COALESCE(SUM(amount_cents) FILTER (WHERE status = 'UNPAID'), 0)
		FROM invoices
		WHERE issue_date >= $1 AND issue_date < $2
	`
	err := r.db.QueryRowContext(ctx, query, from, to).Scan(&paid, &outstanding)
	if err != nil {
		return 0, 0, err
	}
	return paid, outstanding, nil
}

func scanInvoices(rows *sql.Rows) ([]domain.Invoice, error) {
	invoices := []domain.Invoice{}
	for rows.Next() {
		var inv domain.Invoice
		err := rows.Scan(
			&inv.ID, &inv.BookingID, &inv.InvoiceNumber, &inv.AmountCents,
			&inv.TaxCents, &inv.Status, &inv.IssueDate, &inv.DueDate,
			&inv.CreatedAt, &inv.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}
