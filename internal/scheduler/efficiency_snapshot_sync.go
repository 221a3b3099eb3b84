package scheduler

import (
	"time"

	"github.com/vfg2006/collections-manager-api/internal/config"
	"github.com/vfg2006/collections-manager-api/internal/domain"
	"github.com/vfg2006/collections-manager-api/internal/usecases/efficiency"
	"github.com/vfg2006/collections-manager-api/pkg/log"
)

const EfficiencySnapshotJob = "efficiency-snapshot"

// EfficiencySnapshotSyncService grava os indicadores de cobrança do mês anterior
type EfficiencySnapshotSyncService struct {
	*syncJob
	calculator efficiency.Calculator
	now        func() time.Time
}

func NewEfficiencySnapshotSyncService(calculator efficiency.Calculator, cfg *config.Config) *EfficiencySnapshotSyncService {
	s := &EfficiencySnapshotSyncService{
		calculator: calculator,
		now:        time.Now,
	}

	s.syncJob = newSyncJob(EfficiencySnapshotJob, "métricas de eficiência de cobrança", SyncConfig{
		CronSchedule: cfg.EfficiencySnapshotSync.CronSchedule, // Default: dia 1 às 5h da manhã
		SyncEnabled:  cfg.EfficiencySnapshotSync.Enabled,
	}, func(logger log.Logger) error {
		_, err := s.SaveLastMonthSnapshot(logger)
		return err
	})

	return s
}

// SaveLastMonthSnapshot grava as métricas do mês fechado anterior à data atual
func (s *EfficiencySnapshotSyncService) SaveLastMonthSnapshot(logger log.Logger) (*domain.CollectionMetricsSnapshot, error) {
	period := domain.PreviousMonth(s.now())

	snapshot, err := s.calculator.SaveMetricsSnapshot(period)
	if err != nil {
		logger.WithError(err).Error("Erro ao gravar métricas de cobrança do mês anterior")
		return nil, err
	}

	logger.WithFields(log.Fields{
		"period_start": period.Start.Format(time.DateOnly),
		"period_end":   period.End.Format(time.DateOnly),
	}).Info("Métricas de cobrança do mês anterior gravadas")

	return snapshot, nil
}
