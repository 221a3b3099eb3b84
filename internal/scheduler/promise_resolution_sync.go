package scheduler

import (
	"github.com/vfg2006/collections-manager-api/internal/config"
	"github.com/vfg2006/collections-manager-api/internal/usecases/promising"
	"github.com/vfg2006/collections-manager-api/pkg/log"
)

const PromiseResolutionJob = "promise-resolution"

// PromiseResolutionSyncService apura diariamente as promessas de pagamento vencidas
type PromiseResolutionSyncService struct {
	*syncJob
	resolver promising.Resolver
}

func NewPromiseResolutionSyncService(resolver promising.Resolver, cfg *config.Config) *PromiseResolutionSyncService {
	s := &PromiseResolutionSyncService{
		resolver: resolver,
	}

	s.syncJob = newSyncJob(PromiseResolutionJob, "apuração de promessas de pagamento", SyncConfig{
		CronSchedule: cfg.PromiseResolutionSync.CronSchedule, // Default: 4h da manhã todos os dias
		SyncEnabled:  cfg.PromiseResolutionSync.Enabled,
	}, s.resolvePromises)

	return s
}

func (s *PromiseResolutionSyncService) resolvePromises(logger log.Logger) error {
	result, err := s.resolver.ProcessOverduePromises()
	if err != nil {
		logger.WithError(err).Error("Erro ao apurar promessas de pagamento")
		return err
	}

	if result.Escalations > 0 {
		logger.WithField("escalations", result.Escalations).Warn("Clientes com promessas quebradas recorrentes precisam de escalonamento")
	}

	return nil
}
