package main

import (
	"database/sql"
	"os"
	"time"

	_ "github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/collections-manager-api/internal/config"
	"github.com/vfg2006/collections-manager-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	idLength   = 6
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	adminEmailEnv    = "ADMIN_EMAIL"
	adminPasswordEnv = "ADMIN_PASSWORD"
	adminRoleID      = 1
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name VARCHAR(120) NOT NULL,
		lastname VARCHAR(120) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		active BOOLEAN NOT NULL DEFAULT FALSE,
		role_id INT NOT NULL CHECK (role_id IN (1, 2, 3)),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id VARCHAR(32) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		company_name VARCHAR(255),
		email VARCHAR(255),
		phone VARCHAR(50),
		credit_limit NUMERIC(15, 2) NOT NULL DEFAULT 0,
		payment_terms INT NOT NULL DEFAULT 30,
		risk_rating VARCHAR(10) NOT NULL DEFAULT 'MEDIUM' CHECK (risk_rating IN ('LOW', 'MEDIUM', 'HIGH')),
		collection_priority VARCHAR(10),
		last_contact_date DATE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id VARCHAR(32) PRIMARY KEY,
		customer_id VARCHAR(32) NOT NULL REFERENCES customers(id),
		invoice_number VARCHAR(50) NOT NULL UNIQUE,
		invoice_date DATE NOT NULL,
		due_date DATE NOT NULL,
		amount NUMERIC(15, 2) NOT NULL CHECK (amount >= 0),
		balance NUMERIC(15, 2) NOT NULL CHECK (balance >= 0),
		status VARCHAR(10) NOT NULL CHECK (status IN ('OPEN', 'PARTIAL', 'PAID', 'WRITTEN_OFF', 'DISPUTED')),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_customer_status ON invoices (customer_id, status)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id VARCHAR(32) PRIMARY KEY,
		customer_id VARCHAR(32) NOT NULL REFERENCES customers(id),
		invoice_id VARCHAR(32) REFERENCES invoices(id),
		payment_date DATE NOT NULL,
		amount NUMERIC(15, 2) NOT NULL CHECK (amount > 0),
		payment_method VARCHAR(50),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_customer_date ON payments (customer_id, payment_date)`,
	`CREATE TABLE IF NOT EXISTS payment_promises (
		id VARCHAR(32) PRIMARY KEY,
		customer_id VARCHAR(32) NOT NULL REFERENCES customers(id),
		invoice_id VARCHAR(32) REFERENCES invoices(id),
		promised_date DATE NOT NULL,
		promised_amount NUMERIC(15, 2) NOT NULL CHECK (promised_amount > 0),
		status VARCHAR(10) NOT NULL DEFAULT 'PENDING' CHECK (status IN ('PENDING', 'KEPT', 'PARTIAL', 'BROKEN', 'CANCELLED')),
		actual_payment_date DATE,
		actual_amount NUMERIC(15, 2),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_promises_status ON payment_promises (status)`,
	`CREATE TABLE IF NOT EXISTS collection_activities (
		id VARCHAR(32) PRIMARY KEY,
		customer_id VARCHAR(32) NOT NULL REFERENCES customers(id),
		invoice_id VARCHAR(32) REFERENCES invoices(id),
		activity_date DATE NOT NULL,
		activity_type VARCHAR(20) NOT NULL,
		outcome VARCHAR(30),
		performed_by VARCHAR(255),
		notes TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_date ON collection_activities (activity_date)`,
	`CREATE TABLE IF NOT EXISTS priority_settings (
		id VARCHAR(32) PRIMARY KEY,
		days_overdue_weight NUMERIC(6, 3) NOT NULL CHECK (days_overdue_weight >= 0),
		amount_weight NUMERIC(6, 3) NOT NULL CHECK (amount_weight >= 0),
		risk_rating_weight NUMERIC(6, 3) NOT NULL CHECK (risk_rating_weight >= 0),
		broken_promises_weight NUMERIC(6, 3) NOT NULL CHECK (broken_promises_weight >= 0),
		last_contact_weight NUMERIC(6, 3) NOT NULL CHECK (last_contact_weight >= 0),
		updated_by VARCHAR(255),
		updated_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS priority_ranking (
		id VARCHAR(32) PRIMARY KEY,
		customer_id VARCHAR(32) NOT NULL REFERENCES customers(id),
		ranking_date DATE NOT NULL,
		customer_name VARCHAR(255) NOT NULL,
		score NUMERIC(12, 2) NOT NULL,
		tier VARCHAR(10) NOT NULL,
		position INT NOT NULL,
		position_change INT NOT NULL DEFAULT 0,
		previous_position INT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT unique_customer_ranking_date UNIQUE (customer_id, ranking_date)
	)`,
	`CREATE TABLE IF NOT EXISTS collection_metrics (
		id VARCHAR(32) PRIMARY KEY,
		period_start DATE NOT NULL,
		period_end DATE NOT NULL CHECK (period_end >= period_start),
		total_receivables NUMERIC(15, 2) NOT NULL,
		collected_amount NUMERIC(15, 2) NOT NULL,
		collection_rate NUMERIC(7, 2) NOT NULL,
		dso NUMERIC(9, 2) NOT NULL,
		cei NUMERIC(7, 2) NOT NULL,
		average_days_to_collect NUMERIC(9, 2) NOT NULL,
		total_activities INT NOT NULL,
		successful_contacts INT NOT NULL,
		promises_made INT NOT NULL,
		promises_kept INT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

func createSchema(tx *sql.Tx) error {
	logrus.Infof("Criando %d objetos do esquema de cobrança...", len(schema))
	startTime := time.Now()

	for i, statement := range schema {
		if _, err := tx.Exec(statement); err != nil {
			logrus.WithError(err).Errorf("ERRO ao executar comando [%d/%d]", i+1, len(schema))
			return err
		}
	}

	logrus.Infof("Esquema criado em %v", time.Since(startTime))
	return nil
}

// seedPrioritySettings grava os pesos padrão quando ainda não existe configuração
func seedPrioritySettings(tx *sql.Tx) error {
	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM priority_settings`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		logrus.Info("Pesos de prioridade já configurados, nada a fazer")
		return nil
	}

	weights := domain.DefaultWeights()
	_, err := tx.Exec(
		`INSERT INTO priority_settings (id, days_overdue_weight, amount_weight, risk_rating_weight, broken_promises_weight, last_contact_weight, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		generateID(),
		weights[domain.FactorDaysOverdue],
		weights[domain.FactorAmount],
		weights[domain.FactorRiskRating],
		weights[domain.FactorBrokenPromises],
		weights[domain.FactorLastContact],
		"migration",
	)
	if err != nil {
		return err
	}

	logrus.Info("Pesos padrão de prioridade gravados")
	return nil
}

// seedAdmin cria o administrador inicial a partir de ADMIN_EMAIL e ADMIN_PASSWORD
func seedAdmin(tx *sql.Tx) error {
	email, password := os.Getenv(adminEmailEnv), os.Getenv(adminPasswordEnv)
	if email == "" || password == "" {
		logrus.Warnf("%s ou %s ausentes, administrador inicial não criado", adminEmailEnv, adminPasswordEnv)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	result, err := tx.Exec(
		`INSERT INTO users (name, email, password_hash, active, role_id) VALUES ($1, $2, $3, TRUE, $4)
		ON CONFLICT (email) DO NOTHING`,
		"Administrador", email, string(hash), adminRoleID,
	)
	if err != nil {
		return err
	}

	if rows, _ := result.RowsAffected(); rows == 0 {
		logrus.WithField("email", email).Info("Administrador já cadastrado")
		return nil
	}

	logrus.WithField("email", email).Info("Administrador inicial criado")
	return nil
}

func main() {
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao abrir conexão com o banco")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco")
	}

	tx, err := db.Begin()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao iniciar transação")
	}

	steps := []func(*sql.Tx) error{createSchema, seedPrioritySettings, seedAdmin}
	for _, step := range steps {
		if err := step(tx); err != nil {
			_ = tx.Rollback()
			logrus.WithError(err).Fatal("ERRO na migração, transação desfeita")
		}
	}

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Fatal("ERRO ao confirmar transação")
	}

	logrus.Info("Migração concluída com sucesso")
}
