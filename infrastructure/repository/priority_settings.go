package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/collections-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/collections-manager-api/internal/domain"
)

const (
	prioritySettingsTable = "priority_settings"

	// Código do Postgres para violação de constraint CHECK
	pqCheckViolation = "23514"
)

type PrioritySettingsRepository interface {
	GetLatest() (*domain.PrioritySettings, error)
	Create(settings *domain.PrioritySettings) error
}

type prioritySettingsRepository struct {
	conn *postgres.Connection
}

func NewPrioritySettingsRepository(conn *postgres.Connection) PrioritySettingsRepository {
	return &prioritySettingsRepository{
		conn: conn,
	}
}

// GetLatest retorna a configuração mais recente ou nil quando nenhuma foi gravada
func (r *prioritySettingsRepository) GetLatest() (*domain.PrioritySettings, error) {
	query, args, err := squirrel.
		Select(
			"id",
			"days_overdue_weight",
			"amount_weight",
			"risk_rating_weight",
			"broken_promises_weight",
			"last_contact_weight",
			"updated_by",
			"updated_date",
		).
		From(prioritySettingsTable).
		OrderBy("updated_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var settings domain.PrioritySettings
	var daysOverdue, amount, riskRating, brokenPromises, lastContact float64

	err = r.conn.QueryRow(query, args...).Scan(
		&settings.ID,
		&daysOverdue,
		&amount,
		&riskRating,
		&brokenPromises,
		&lastContact,
		&settings.UpdatedBy,
		&settings.UpdatedDate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear configuração de prioridade: %w", err)
	}

	settings.Weights = domain.Weights{
		domain.FactorDaysOverdue:    daysOverdue,
		domain.FactorAmount:         amount,
		domain.FactorRiskRating:     riskRating,
		domain.FactorBrokenPromises: brokenPromises,
		domain.FactorLastContact:    lastContact,
	}

	return &settings, nil
}

// Create grava uma nova linha de pesos; os pesos devem estar completos
func (r *prioritySettingsRepository) Create(settings *domain.PrioritySettings) error {
	query, args, err := squirrel.
		Insert(prioritySettingsTable).
		Columns(
			"id",
			"days_overdue_weight",
			"amount_weight",
			"risk_rating_weight",
			"broken_promises_weight",
			"last_contact_weight",
			"updated_by",
		).
		Values(
			settings.ID,
			settings.Weights[domain.FactorDaysOverdue],
			settings.Weights[domain.FactorAmount],
			settings.Weights[domain.FactorRiskRating],
			settings.Weights[domain.FactorBrokenPromises],
			settings.Weights[domain.FactorLastContact],
			settings.UpdatedBy,
		).
		Suffix("RETURNING updated_date").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&settings.UpdatedDate)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqCheckViolation {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, pqErr.Message)
		}
		return fmt.Errorf("erro ao inserir configuração de prioridade: %w", err)
	}

	return nil
}
