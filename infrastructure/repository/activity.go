package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/collections-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/collections-manager-api/internal/domain"
)

const (
	activitiesTable = "collection_activities"
)

type ActivityRepository interface {
	ListBetween(start, end time.Time) ([]domain.Activity, error)
	Create(activity *domain.Activity) error
}

type activityRepository struct {
	conn *postgres.Connection
}

func NewActivityRepository(conn *postgres.Connection) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

// ListBetween lista as atividades realizadas dentro do intervalo, inclusive
func (r *activityRepository) ListBetween(start, end time.Time) ([]domain.Activity, error) {
	query, args, err := squirrel.
		Select(
			"id",
			"customer_id",
			"invoice_id",
			"activity_date",
			"activity_type",
			"outcome",
			"performed_by",
			"notes",
			"created_at",
		).
		From(activitiesTable).
		Where(squirrel.GtOrEq{"activity_date": domain.DateOnly(start)}).
		Where(squirrel.Lt{"activity_date": domain.DateOnly(end).AddDate(0, 0, 1)}).
		OrderBy("activity_date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar atividades: %w", err)
	}
	defer rows.Close()

	activities := make([]domain.Activity, 0)
	for rows.Next() {
		var activity domain.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.CustomerID,
			&activity.InvoiceID,
			&activity.ActivityDate,
			&activity.Type,
			&activity.Outcome,
			&activity.PerformedBy,
			&activity.Notes,
			&activity.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear atividade: %w", err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return activities, nil
}

func (r *activityRepository) Create(activity *domain.Activity) error {
	query, args, err := squirrel.
		Insert(activitiesTable).
		Columns(
			"id",
			"customer_id",
			"invoice_id",
			"activity_date",
			"activity_type",
			"outcome",
			"performed_by",
			"notes",
		).
		Values(
			activity.ID,
			activity.CustomerID,
			activity.InvoiceID,
			activity.ActivityDate,
			string(activity.Type),
			string(activity.Outcome),
			activity.PerformedBy,
			activity.Notes,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&activity.CreatedAt); err != nil {
		return fmt.Errorf("erro ao inserir atividade: %w", err)
	}

	return nil
}
