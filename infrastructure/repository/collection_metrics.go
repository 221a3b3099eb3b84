package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/collections-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/collections-manager-api/internal/domain"
)

const (
	collectionMetricsTable = "collection_metrics"
)

type CollectionMetricsRepository interface {
	Create(snapshot *domain.CollectionMetricsSnapshot) error
	List(limit int) ([]domain.CollectionMetricsSnapshot, error)
}

type collectionMetricsRepository struct {
	conn *postgres.Connection
}

func NewCollectionMetricsRepository(conn *postgres.Connection) CollectionMetricsRepository {
	return &collectionMetricsRepository{
		conn: conn,
	}
}

func (r *collectionMetricsRepository) Create(snapshot *domain.CollectionMetricsSnapshot) error {
	query, args, err := squirrel.
		Insert(collectionMetricsTable).
		Columns(
			"id",
			"period_start",
			"period_end",
			"total_receivables",
			"collected_amount",
			"collection_rate",
			"dso",
			"cei",
			"average_days_to_collect",
			"total_activities",
			"successful_contacts",
			"promises_made",
			"promises_kept",
		).
		Values(
			snapshot.ID,
			snapshot.PeriodStart,
			snapshot.PeriodEnd,
			snapshot.TotalReceivables,
			snapshot.CollectedAmount,
			snapshot.CollectionRate,
			snapshot.DSO,
			snapshot.CEI,
			snapshot.AverageDaysToCollect,
			snapshot.TotalActivities,
			snapshot.SuccessfulContacts,
			snapshot.PromisesMade,
			snapshot.PromisesKept,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&snapshot.CreatedAt); err != nil {
		return fmt.Errorf("erro ao inserir métricas de cobrança: %w", err)
	}

	return nil
}

// List retorna os snapshots mais recentes primeiro; limit <= 0 retorna todos
func (r *collectionMetricsRepository) List(limit int) ([]domain.CollectionMetricsSnapshot, error) {
	queryBuilder := squirrel.
		Select(
			"id",
			"period_start",
			"period_end",
			"total_receivables",
			"collected_amount",
			"collection_rate",
			"dso",
			"cei",
			"average_days_to_collect",
			"total_activities",
			"successful_contacts",
			"promises_made",
			"promises_kept",
			"created_at",
		).
		From(collectionMetricsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar métricas de cobrança: %w", err)
	}
	defer rows.Close()

	snapshots := make([]domain.CollectionMetricsSnapshot, 0)
	for rows.Next() {
		var snapshot domain.CollectionMetricsSnapshot
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.PeriodStart,
			&snapshot.PeriodEnd,
			&snapshot.TotalReceivables,
			&snapshot.CollectedAmount,
			&snapshot.CollectionRate,
			&snapshot.DSO,
			&snapshot.CEI,
			&snapshot.AverageDaysToCollect,
			&snapshot.TotalActivities,
			&snapshot.SuccessfulContacts,
			&snapshot.PromisesMade,
			&snapshot.PromisesKept,
			&snapshot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas de cobrança: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}
