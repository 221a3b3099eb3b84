package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/collections-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/collections-manager-api/internal/domain"
)

const (
	invoicesTable = "invoices"
)

var invoiceColumns = []string{
	"id",
	"customer_id",
	"invoice_number",
	"invoice_date",
	"due_date",
	"amount",
	"balance",
	"status",
	"created_at",
	"updated_at",
}

type InvoiceRepository interface {
	ListByStatus(statuses ...domain.InvoiceStatus) ([]domain.Invoice, error)
	ListByCustomerID(customerID string) ([]domain.Invoice, error)
	ListIssuedUntil(date time.Time) ([]domain.Invoice, error)
}

type invoiceRepository struct {
	conn *postgres.Connection
}

func NewInvoiceRepository(conn *postgres.Connection) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

// ListByStatus lista as faturas com um dos status informados; sem status lista todas
func (r *invoiceRepository) ListByStatus(statuses ...domain.InvoiceStatus) ([]domain.Invoice, error) {
	queryBuilder := squirrel.
		Select(invoiceColumns...).
		From(invoicesTable).
		OrderBy("due_date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, status := range statuses {
			values[i] = string(status)
		}
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": values})
	}

	return r.list(queryBuilder)
}

func (r *invoiceRepository) ListByCustomerID(customerID string) ([]domain.Invoice, error) {
	return r.list(squirrel.
		Select(invoiceColumns...).
		From(invoicesTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("due_date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar))
}

// ListIssuedUntil lista as faturas emitidas até a data informada, inclusive
func (r *invoiceRepository) ListIssuedUntil(date time.Time) ([]domain.Invoice, error) {
	return r.list(squirrel.
		Select(invoiceColumns...).
		From(invoicesTable).
		Where(squirrel.LtOrEq{"invoice_date": domain.DateOnly(date)}).
		OrderBy("invoice_date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar))
}

func (r *invoiceRepository) list(queryBuilder squirrel.SelectBuilder) ([]domain.Invoice, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar faturas: %w", err)
	}
	defer rows.Close()

	invoices := make([]domain.Invoice, 0)
	for rows.Next() {
		var invoice domain.Invoice
		err := rows.Scan(
			&invoice.ID,
			&invoice.CustomerID,
			&invoice.InvoiceNumber,
			&invoice.InvoiceDate,
			&invoice.DueDate,
			&invoice.Amount,
			&invoice.Balance,
			&invoice.Status,
			&invoice.CreatedAt,
			&invoice.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fatura: %w", err)
		}
		invoices = append(invoices, invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return invoices, nil
}
