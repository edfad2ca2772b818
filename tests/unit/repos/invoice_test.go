package repos

import (
	"context"
	"testing"
	"time"

	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var invoiceCols = []string{
	"id", "booking_id", "invoice_number", "amount_cents", "tax_cents", "status",
	"issue_date", "due_date", "created_at", "updated_at",
}

func TestInvoiceRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewInvoiceRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		invoice := &domain.Invoice{
			BookingID:     10,
			InvoiceNumber: "INV-A1B2C3D4",
			AmountCents:   45000,
			TaxCents:      4500,
			Status:        domain.InvoiceStatusUnpaid,
			IssueDate:     now,
		}

		mock.ExpectQuery("INSERT INTO invoices").
			WithArgs(invoice.BookingID, invoice.InvoiceNumber, invoice.AmountCents, invoice.TaxCents,
				invoice.Status, invoice.IssueDate, invoice.DueDate, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))

		err := repo.Create(ctx, invoice)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), invoice.ID)
	})
}

func TestInvoiceRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewInvoiceRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM invoices WHERE id").
			WithArgs(int32(1)).
			WillReturnRows(sqlmock.NewRows(invoiceCols).
				AddRow(1, 10, "INV-A1B2C3D4", 45000, 4500, "UNPAID", now, nil, now, now))

		invoice, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int32(45000), invoice.AmountCents)
		assert.Equal(t, domain.InvoiceStatusUnpaid, invoice.Status)
		assert.Nil(t, invoice.DueDate)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM invoices WHERE id").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows(invoiceCols))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestInvoiceRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewInvoiceRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE invoices SET status").
			WithArgs(domain.InvoiceStatusPaid, sqlmock.AnyArg(), int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, 1, domain.InvoiceStatusPaid)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE invoices SET status").
			WithArgs(domain.InvoiceStatusPaid, sqlmock.AnyArg(), int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, 99, domain.InvoiceStatusPaid)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestInvoiceRepository_ListOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewInvoiceRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		due := now.AddDate(0, 0, -5)
		mock.ExpectQuery("SELECT (.+) FROM invoices").
			WithArgs(domain.InvoiceStatusUnpaid, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(invoiceCols).
				AddRow(1, 10, "INV-A1B2C3D4", 45000, 4500, "UNPAID", now.AddDate(0, 0, -20), due, now, now))

		invoices, err := repo.ListOverdue(ctx, now)
		assert.NoError(t, err)
		assert.Len(t, invoices, 1)
		assert.NotNil(t, invoices[0].DueDate)
	})
}

func TestInvoiceRepository_RevenueSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewInvoiceRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery("SELECT").
			WithArgs(from, to).
			WillReturnRows(sqlmock.NewRows([]string{"paid", "outstanding"}).AddRow(250000, 80000))

		paid, outstanding, err := repo.RevenueSummary(ctx, from, to)
		assert.NoError(t, err)
		assert.Equal(t, int64(250000), paid)
		assert.Equal(t, int64(80000), outstanding)
	})
}
