package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/collections-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/collections-manager-api/internal/domain"
	prioritizingmocks "github.com/vfg2006/collections-manager-api/internal/usecases/prioritizing/mocks"
	"github.com/vfg2006/collections-manager-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var processingDate = time.Date(2024, time.January, 16, 6, 0, 0, 0, time.UTC)

func prioritized(customerID, name string, total float64, tier domain.Tier) domain.PrioritizedCustomer {
	return domain.PrioritizedCustomer{
		Customer: domain.CustomerSnapshot{CustomerID: customerID, Name: name},
		Score:    domain.ScoreResult{Total: total},
		Tier:     tier,
	}
}

func TestPriorityRankingSyncService_UpdatePriorityRanking(t *testing.T) {
	tests := []struct {
		name     string
		items    []domain.PrioritizedCustomer
		previous []domain.PriorityRankingItem
		validate func(t *testing.T, result []*domain.PriorityRankingItem)
	}{
		{
			name: "Primeiro ranking - posições sem histórico",
			items: []domain.PrioritizedCustomer{
				prioritized("C1", "Cliente A", 612.456, domain.TierCritical),
				prioritized("C2", "Cliente B", 320.1, domain.TierHigh),
			},
			validate: func(t *testing.T, result []*domain.PriorityRankingItem) {
				require.Len(t, result, 2)
				assert.Equal(t, "C1", result[0].CustomerID)
				assert.Equal(t, "Cliente A", result[0].CustomerName)
				assert.Equal(t, "2024-01-16", result[0].RankingDate)
				assert.Equal(t, 612.46, result[0].Score)
				assert.Equal(t, domain.TierCritical, result[0].Tier)
				assert.Equal(t, 1, result[0].Position)
				assert.Equal(t, 0, result[0].PositionChange)
				assert.Equal(t, 0, result[0].PreviousPosition)
				assert.Equal(t, 2, result[1].Position)
				assert.NotEmpty(t, result[0].ID)
			},
		},
		{
			name: "Ranking com histórico - calcula variação de posição",
			items: []domain.PrioritizedCustomer{
				prioritized("C2", "Cliente B", 700, domain.TierCritical),
				prioritized("C3", "Cliente C", 400, domain.TierHigh),
				prioritized("C1", "Cliente A", 200, domain.TierMedium),
			},
			previous: []domain.PriorityRankingItem{
				{CustomerID: "C1", Position: 1},
				{CustomerID: "C2", Position: 3},
			},
			validate: func(t *testing.T, result []*domain.PriorityRankingItem) {
				require.Len(t, result, 3)

				assert.Equal(t, "C2", result[0].CustomerID)
				assert.Equal(t, 1, result[0].Position)
				assert.Equal(t, 3, result[0].PreviousPosition)
				assert.Equal(t, 2, result[0].PositionChange) // Subiu duas posições

				assert.Equal(t, "C3", result[1].CustomerID)
				assert.Equal(t, 0, result[1].PreviousPosition) // Cliente novo na fila

				assert.Equal(t, "C1", result[2].CustomerID)
				assert.Equal(t, 1, result[2].PreviousPosition)
				assert.Equal(t, -2, result[2].PositionChange) // Desceu duas posições
			},
		},
		{
			name:  "Carteira sem saldo em aberto",
			items: []domain.PrioritizedCustomer{},
			validate: func(t *testing.T, result []*domain.PriorityRankingItem) {
				assert.Empty(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPrioritizer := prioritizingmocks.NewMockPrioritizer(ctrl)
			mockRankingRepo := mocks.NewMockPriorityRankingRepository(ctrl)

			service := &PriorityRankingSyncService{
				prioritizer: mockPrioritizer,
				rankingRepo: mockRankingRepo,
				now:         func() time.Time { return processingDate },
			}

			mockPrioritizer.EXPECT().GetPrioritizedList(0).Return(tt.items, nil)
			mockRankingRepo.EXPECT().GetRankingBefore("2024-01-16").Return(tt.previous, nil)
			mockRankingRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

			result, err := service.UpdatePriorityRanking(log.L)

			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestPriorityRankingSyncService_UpdatePriorityRanking_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPrioritizer := prioritizingmocks.NewMockPrioritizer(ctrl)
	mockRankingRepo := mocks.NewMockPriorityRankingRepository(ctrl)

	service := &PriorityRankingSyncService{
		prioritizer: mockPrioritizer,
		rankingRepo: mockRankingRepo,
		now:         func() time.Time { return processingDate },
	}

	saveErr := errors.New("erro ao executar query de inserção")

	mockPrioritizer.EXPECT().GetPrioritizedList(0).Return([]domain.PrioritizedCustomer{
		prioritized("C1", "Cliente A", 100, domain.TierLow),
	}, nil)
	mockRankingRepo.EXPECT().GetRankingBefore("2024-01-16").Return(nil, nil)
	mockRankingRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(saveErr)

	result, err := service.UpdatePriorityRanking(log.L)

	assert.ErrorIs(t, err, saveErr)
	assert.Nil(t, result)
}

func TestUpdatePositions(t *testing.T) {
	rankings := []*domain.PriorityRankingItem{
		{CustomerID: "C1"},
		{CustomerID: "C2"},
	}
	before := map[string]domain.PriorityRankingItem{
		"C2": {CustomerID: "C2", Position: 2},
	}

	updatePositions(rankings, before)

	assert.Equal(t, 1, rankings[0].Position)
	assert.Equal(t, 0, rankings[0].PreviousPosition)
	assert.Equal(t, 2, rankings[1].Position)
	assert.Equal(t, 2, rankings[1].PreviousPosition)
	assert.Equal(t, 0, rankings[1].PositionChange)
}
