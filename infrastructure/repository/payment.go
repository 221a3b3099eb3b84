package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/collections-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/collections-manager-api/internal/domain"
)

const (
	paymentsTable = "payments"
)

type PaymentRepository interface {
	ListUntil(date time.Time) ([]domain.Payment, error)
	ListByCustomerBetween(customerID string, start, end time.Time) ([]domain.Payment, error)
}

type paymentRepository struct {
	conn *postgres.Connection
}

func NewPaymentRepository(conn *postgres.Connection) PaymentRepository {
	return &paymentRepository{
		conn: conn,
	}
}

// ListUntil lista os pagamentos recebidos até a data informada, inclusive
func (r *paymentRepository) ListUntil(date time.Time) ([]domain.Payment, error) {
	return r.list(squirrel.LtOrEq{"payment_date": domain.DateOnly(date)})
}

func (r *paymentRepository) ListByCustomerBetween(customerID string, start, end time.Time) ([]domain.Payment, error) {
	return r.list(squirrel.And{
		squirrel.Eq{"customer_id": customerID},
		squirrel.GtOrEq{"payment_date": domain.DateOnly(start)},
		squirrel.LtOrEq{"payment_date": domain.DateOnly(end)},
	})
}

func (r *paymentRepository) list(where squirrel.Sqlizer) ([]domain.Payment, error) {
	query, args, err := squirrel.
		Select("id", "customer_id", "invoice_id", "payment_date", "amount", "payment_method", "created_at").
		From(paymentsTable).
		Where(where).
		OrderBy("payment_date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar pagamentos: %w", err)
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.CustomerID,
			&payment.InvoiceID,
			&payment.PaymentDate,
			&payment.Amount,
			&payment.Method,
			&payment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pagamento: %w", err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return payments, nil
}
