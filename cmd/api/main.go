package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/collections-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/collections-manager-api/infrastructure/repository"
	"github.com/vfg2006/collections-manager-api/internal/api"
	"github.com/vfg2006/collections-manager-api/internal/config"
	"github.com/vfg2006/collections-manager-api/internal/scheduler"
	"github.com/vfg2006/collections-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/collections-manager-api/internal/usecases/efficiency"
	"github.com/vfg2006/collections-manager-api/internal/usecases/prioritizing"
	"github.com/vfg2006/collections-manager-api/internal/usecases/promising"
	"github.com/vfg2006/collections-manager-api/pkg/log"
)

func main() {
	configureWorkdir()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	paymentRepo := repository.NewPaymentRepository(pgConn)
	promiseRepo := repository.NewPromiseRepository(pgConn)
	activityRepo := repository.NewActivityRepository(pgConn)
	settingsRepo := repository.NewPrioritySettingsRepository(pgConn)
	rankingRepo := repository.NewPriorityRankingRepository(pgConn)
	metricsRepo := repository.NewCollectionMetricsRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg.Auth)

	prioritizer := prioritizing.NewService(
		customerRepo,
		invoiceRepo,
		promiseRepo,
		settingsRepo,
		rankingRepo,
		cfg.Scoring,
	)

	calculator := efficiency.NewService(
		customerRepo,
		invoiceRepo,
		paymentRepo,
		promiseRepo,
		activityRepo,
		metricsRepo,
		prioritizer, // Pesos efetivos do score
		cfg,
	)

	resolver := promising.NewService(promiseRepo, paymentRepo, activityRepo, cfg.PromiseResolution)

	jobs := []scheduler.Job{
		scheduler.NewPromiseResolutionSyncService(resolver, cfg),
		scheduler.NewPriorityRankingSyncService(prioritizer, rankingRepo, cfg),
		scheduler.NewEfficiencySnapshotSyncService(calculator, cfg),
	}

	for _, job := range jobs {
		if err := job.Start(ctx); err != nil {
			logrus.WithError(err).WithField("job", job.Name()).Error("Erro ao iniciar o agendador")
			continue
		}
		logrus.WithField("job", job.Name()).Info("Agendador iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Prioritizer:   prioritizer,
		Calculator:    calculator,
		Jobs:          jobs,
		DB:            pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureWorkdir posiciona o processo no diretório do binário para achar o .env local
func configureWorkdir() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
