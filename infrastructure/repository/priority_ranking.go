package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/collections-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/collections-manager-api/internal/domain"
)

const (
	priorityRankingTable = "priority_ranking pr"

	// Mantém cada INSERT abaixo do limite de 65535 parâmetros do Postgres
	rankingBatchSize = 1000
)

var priorityRankingColumns = []string{
	"pr.id",
	"pr.customer_id",
	"pr.ranking_date",
	"pr.customer_name",
	"pr.score",
	"pr.tier",
	"pr.position",
	"pr.position_change",
	"pr.previous_position",
	"pr.created_at",
	"pr.updated_at",
}

type PriorityRankingRepository interface {
	GetLatestRanking() (*domain.PriorityRankingResponse, error)
	GetRankingBefore(rankingDate string) ([]domain.PriorityRankingItem, error)
	GetByCustomerID(customerID string, rankingDate string) (*domain.PriorityRankingItem, error)
	SaveOrUpdate(rankings []*domain.PriorityRankingItem) error
}

type priorityRankingRepository struct {
	conn *postgres.Connection
}

func NewPriorityRankingRepository(conn *postgres.Connection) PriorityRankingRepository {
	return &priorityRankingRepository{
		conn: conn,
	}
}

// GetLatestRanking retorna o ranking da data mais recente gravada
func (r *priorityRankingRepository) GetLatestRanking() (*domain.PriorityRankingResponse, error) {
	queryBuilder := squirrel.
		Select(priorityRankingColumns...).
		From(priorityRankingTable).
		Where("pr.ranking_date = (SELECT MAX(ranking_date) FROM priority_ranking)").
		OrderBy("pr.position ASC").
		PlaceholderFormat(squirrel.Dollar)

	rankings, err := r.list(queryBuilder)
	if err != nil {
		return nil, err
	}

	// Manter o último update mais recente
	var lastUpdate time.Time
	for _, item := range rankings {
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	// Se não há registros, usar tempo atual para lastUpdate
	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.PriorityRankingResponse{
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

// GetRankingBefore retorna o ranking mais recente anterior à data informada (yyyy-mm-dd)
func (r *priorityRankingRepository) GetRankingBefore(rankingDate string) ([]domain.PriorityRankingItem, error) {
	queryBuilder := squirrel.
		Select(priorityRankingColumns...).
		From(priorityRankingTable).
		Where("pr.ranking_date = (SELECT MAX(ranking_date) FROM priority_ranking WHERE ranking_date < ?)", rankingDate).
		OrderBy("pr.position ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(queryBuilder)
}

// GetByCustomerID retorna a posição mais recente do cliente com ranking_date até a data informada
func (r *priorityRankingRepository) GetByCustomerID(customerID string, rankingDate string) (*domain.PriorityRankingItem, error) {
	query, args, err := squirrel.
		Select(priorityRankingColumns...).
		From(priorityRankingTable).
		Where(squirrel.Eq{"pr.customer_id": customerID}).
		Where(squirrel.LtOrEq{"pr.ranking_date": rankingDate}).
		OrderBy("pr.ranking_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	item, err := scanPriorityRankingItem(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}

	return item, nil
}

// SaveOrUpdate grava o ranking em lotes dentro de uma única transação
func (r *priorityRankingRepository) SaveOrUpdate(rankings []*domain.PriorityRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for start := 0; start < len(rankings); start += rankingBatchSize {
			end := min(start+rankingBatchSize, len(rankings))
			if err := upsertRankingBatch(tx, rankings[start:end]); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertRankingBatch(q postgres.Queryer, rankings []*domain.PriorityRankingItem) error {
	query := squirrel.StatementBuilder.
		Insert("priority_ranking").
		Columns(
			"id",
			"customer_id",
			"ranking_date",
			"customer_name",
			"score",
			"tier",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.ID,
			ranking.CustomerID,
			ranking.RankingDate,
			ranking.CustomerName,
			ranking.Score,
			string(ranking.Tier),
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (customer_id, ranking_date) DO UPDATE SET
			customer_name = EXCLUDED.customer_name,
			score = EXCLUDED.score,
			tier = EXCLUDED.tier,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = q.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *priorityRankingRepository) list(queryBuilder squirrel.SelectBuilder) ([]domain.PriorityRankingItem, error) {
	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]domain.PriorityRankingItem, 0)
	for rows.Next() {
		item, err := scanPriorityRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}
		rankings = append(rankings, *item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rankings, nil
}

func scanPriorityRankingItem(row rowScanner) (*domain.PriorityRankingItem, error) {
	item := &domain.PriorityRankingItem{}
	var rankingDate time.Time

	err := row.Scan(
		&item.ID,
		&item.CustomerID,
		&rankingDate,
		&item.CustomerName,
		&item.Score,
		&item.Tier,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.RankingDate = rankingDate.Format(time.DateOnly)

	return item, nil
}
