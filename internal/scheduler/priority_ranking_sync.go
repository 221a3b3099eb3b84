package scheduler

import (
	"time"

	"github.com/vfg2006/collections-manager-api/infrastructure/repository"
	"github.com/vfg2006/collections-manager-api/internal/config"
	"github.com/vfg2006/collections-manager-api/internal/domain"
	"github.com/vfg2006/collections-manager-api/internal/usecases/prioritizing"
	"github.com/vfg2006/collections-manager-api/pkg/log"
	"github.com/vfg2006/collections-manager-api/pkg/utils"
)

const PriorityRankingJob = "priority-ranking"

// PriorityRankingSyncService grava diariamente a posição de cada cliente na fila de cobrança
type PriorityRankingSyncService struct {
	*syncJob
	prioritizer prioritizing.Prioritizer
	rankingRepo repository.PriorityRankingRepository
	now         func() time.Time
}

func NewPriorityRankingSyncService(
	prioritizer prioritizing.Prioritizer,
	rankingRepo repository.PriorityRankingRepository,
	cfg *config.Config,
) *PriorityRankingSyncService {
	s := &PriorityRankingSyncService{
		prioritizer: prioritizer,
		rankingRepo: rankingRepo,
		now:         time.Now,
	}

	s.syncJob = newSyncJob(PriorityRankingJob, "ranking de prioridade de cobrança", SyncConfig{
		CronSchedule: cfg.PriorityRankingSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.PriorityRankingSync.Enabled,
	}, func(logger log.Logger) error {
		_, err := s.UpdatePriorityRanking(logger)
		return err
	})

	return s
}

// UpdatePriorityRanking calcula a lista priorizada completa e grava o ranking do dia
func (s *PriorityRankingSyncService) UpdatePriorityRanking(logger log.Logger) ([]*domain.PriorityRankingItem, error) {
	items, err := s.prioritizer.GetPrioritizedList(0)
	if err != nil {
		logger.WithError(err).Error("Erro ao calcular lista priorizada")
		return nil, err
	}

	rankingDate := s.now().Format(time.DateOnly)

	previous, err := s.rankingRepo.GetRankingBefore(rankingDate)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar ranking anterior")
		return nil, err
	}

	rankingsBeforeUpdate := make(map[string]domain.PriorityRankingItem, len(previous))
	for _, item := range previous {
		rankingsBeforeUpdate[item.CustomerID] = item
	}

	updatedRankings, err := buildRanking(items, rankingDate)
	if err != nil {
		return nil, err
	}
	updatePositions(updatedRankings, rankingsBeforeUpdate)

	if err := s.rankingRepo.SaveOrUpdate(updatedRankings); err != nil {
		logger.WithError(err).Error("Erro ao salvar ranking de prioridade atualizado")
		return nil, err
	}

	logger.WithField("total", len(updatedRankings)).Info("Ranking de prioridade atualizado")

	return updatedRankings, nil
}

// buildRanking converte a lista já ordenada em itens de ranking
func buildRanking(items []domain.PrioritizedCustomer, rankingDate string) ([]*domain.PriorityRankingItem, error) {
	rankings := make([]*domain.PriorityRankingItem, 0, len(items))
	for _, item := range items {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}

		rankings = append(rankings, &domain.PriorityRankingItem{
			ID:           id,
			CustomerID:   item.Customer.CustomerID,
			RankingDate:  rankingDate,
			CustomerName: item.Customer.Name,
			Score:        utils.RoundWithTwoDecimalPlace(item.Score.Total),
			Tier:         item.Tier,
		})
	}
	return rankings, nil
}

// updatePositions numera o ranking e compara com a posição anterior de cada cliente
func updatePositions(updatedRankings []*domain.PriorityRankingItem, rankingsBeforeUpdate map[string]domain.PriorityRankingItem) {
	for i, ranking := range updatedRankings {
		ranking.Position = i + 1

		if rankingBefore, exists := rankingsBeforeUpdate[ranking.CustomerID]; exists {
			ranking.PositionChange = rankingBefore.Position - ranking.Position
			ranking.PreviousPosition = rankingBefore.Position
		}
	}
}
