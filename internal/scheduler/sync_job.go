// Package scheduler contém as rotinas agendadas de cobrança
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/collections-manager-api/pkg/log"
)

// ErrJobAlreadyRunning indica que a rotina já está em execução
var ErrJobAlreadyRunning = errors.New("rotina já está em execução")

// Job é uma rotina agendada que também pode ser disparada manualmente
type Job interface {
	Name() string
	Start(ctx context.Context) error
	TriggerManualSync() error
	GetStatus() map[string]any
}

// SyncConfig representa a configuração de agendamento de uma rotina
type SyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// syncJob concentra agendamento e controle de execução única das rotinas
type syncJob struct {
	name                string
	description         string
	config              SyncConfig
	scheduler           *gocron.Scheduler
	run                 func(logger log.Logger) error
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func newSyncJob(name, description string, cfg SyncConfig, run func(logger log.Logger) error) *syncJob {
	logrus.WithFields(logrus.Fields{
		"job":           name,
		"cron_schedule": cfg.CronSchedule,
		"sync_enabled":  cfg.SyncEnabled,
	}).Infof("Configuração do agendador de %s carregada", description)

	return &syncJob{
		name:        name,
		description: description,
		config:      cfg,
		scheduler:   gocron.NewScheduler(time.Local),
		run:         run,
	}
}

func (j *syncJob) Name() string {
	return j.name
}

// Start agenda a rotina quando habilitada e a interrompe ao cancelar o contexto
func (j *syncJob) Start(ctx context.Context) error {
	if !j.config.SyncEnabled {
		logrus.Infof("Rotina de %s desabilitada por configuração", j.description)
		return nil
	}

	logrus.WithField("cron", j.config.CronSchedule).Infof("Iniciando agendador de %s", j.description)

	_, err := j.scheduler.Cron(j.config.CronSchedule).Do(func() {
		if err := j.execute(); err != nil && !errors.Is(err, ErrJobAlreadyRunning) {
			logrus.WithError(err).Errorf("Erro na rotina de %s", j.description)
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar rotina de %s: %w", j.description, err)
	}

	j.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Infof("Parando agendador de %s", j.description)
		j.scheduler.Stop()
	}()

	return nil
}

// execute roda a rotina de forma síncrona, recusando execuções simultâneas
func (j *syncJob) execute() error {
	j.syncMutex.Lock()
	if j.syncRunning {
		j.syncMutex.Unlock()
		logrus.Warnf("Rotina de %s já está em execução", j.description)
		return ErrJobAlreadyRunning
	}
	j.syncRunning = true
	j.lastSyncStartedAt = time.Now()
	j.syncMutex.Unlock()

	logger := log.ForJob(j.name)
	logger.Infof("Iniciando rotina de %s", j.description)

	err := j.run(logger)

	j.syncMutex.Lock()
	j.syncRunning = false
	j.lastSyncCompletedAt = time.Now()
	j.lastSyncError = ""
	if err != nil {
		j.lastSyncError = err.Error()
	}
	j.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logger.Infof("Rotina de %s concluída", j.description)
	return nil
}

// TriggerManualSync dispara a rotina em segundo plano
func (j *syncJob) TriggerManualSync() error {
	j.syncMutex.Lock()
	running := j.syncRunning
	j.syncMutex.Unlock()

	if running {
		logrus.Infof("Rotina de %s já em andamento, ignorando solicitação manual", j.description)
		return ErrJobAlreadyRunning
	}

	logrus.Infof("Iniciando execução manual da rotina de %s", j.description)
	go func() {
		if err := j.execute(); err != nil && !errors.Is(err, ErrJobAlreadyRunning) {
			logrus.WithError(err).Errorf("Erro na execução manual da rotina de %s", j.description)
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (j *syncJob) GetStatus() map[string]any {
	j.syncMutex.Lock()
	defer j.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           j.config.SyncEnabled,
		"sync_cron":              j.config.CronSchedule,
		"sync_running":           j.syncRunning,
		"last_sync_started_at":   j.lastSyncStartedAt,
		"last_sync_completed_at": j.lastSyncCompletedAt,
		"last_sync_error":        j.lastSyncError,
	}
}
