package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/collections-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/collections-manager-api/internal/domain"
)

const (
	promisesTable = "payment_promises"
)

type PromiseRepository interface {
	ListByStatus(status domain.PromiseStatus) ([]domain.Promise, error)
	ListPromisedBetween(start, end time.Time) ([]domain.Promise, error)
	UpdateResolution(promise *domain.Promise) error
}

type promiseRepository struct {
	conn *postgres.Connection
}

func NewPromiseRepository(conn *postgres.Connection) PromiseRepository {
	return &promiseRepository{
		conn: conn,
	}
}

func (r *promiseRepository) ListByStatus(status domain.PromiseStatus) ([]domain.Promise, error) {
	return r.list(squirrel.Eq{"status": string(status)})
}

// ListPromisedBetween lista as promessas com data prometida dentro do intervalo, inclusive
func (r *promiseRepository) ListPromisedBetween(start, end time.Time) ([]domain.Promise, error) {
	return r.list(squirrel.And{
		squirrel.GtOrEq{"promised_date": domain.DateOnly(start)},
		squirrel.LtOrEq{"promised_date": domain.DateOnly(end)},
	})
}

// UpdateResolution grava o status final e o pagamento apurado. Só altera promessas ainda pendentes.
func (r *promiseRepository) UpdateResolution(promise *domain.Promise) error {
	query, args, err := squirrel.
		Update(promisesTable).
		Set("status", string(promise.Status)).
		Set("actual_payment_date", promise.ActualPaymentDate).
		Set("actual_amount", promise.ActualAmount).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": promise.ID, "status": string(domain.PromiseStatusPending)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar promessa %s: %w", promise.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("promessa %s não está mais pendente", promise.ID)
	}

	return nil
}

func (r *promiseRepository) list(where squirrel.Sqlizer) ([]domain.Promise, error) {
	query, args, err := squirrel.
		Select(
			"id",
			"customer_id",
			"invoice_id",
			"promised_date",
			"promised_amount",
			"status",
			"actual_payment_date",
			"actual_amount",
			"created_at",
			"updated_at",
		).
		From(promisesTable).
		Where(where).
		OrderBy("promised_date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar promessas: %w", err)
	}
	defer rows.Close()

	promises := make([]domain.Promise, 0)
	for rows.Next() {
		var promise domain.Promise
		err := rows.Scan(
			&promise.ID,
			&promise.CustomerID,
			&promise.InvoiceID,
			&promise.PromisedDate,
			&promise.PromisedAmount,
			&promise.Status,
			&promise.ActualPaymentDate,
			&promise.ActualAmount,
			&promise.CreatedAt,
			&promise.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear promessa: %w", err)
		}
		promises = append(promises, promise)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return promises, nil
}
