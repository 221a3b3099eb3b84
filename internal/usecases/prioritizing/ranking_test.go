package prioritizing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/collections-manager-api/internal/domain"
)

func portfolio(n int) []domain.CustomerSnapshot {
	ratings := []domain.RiskRating{domain.RiskRatingLow, domain.RiskRatingMedium, domain.RiskRatingHigh}
	customers := make([]domain.CustomerSnapshot, n)
	for i := 0; i < n; i++ {
		customers[i] = domain.CustomerSnapshot{
			CustomerID:         fmt.Sprintf("C%05d", i),
			RiskRating:         ratings[i%len(ratings)],
			OutstandingBalance: float64((i*7919)%100000 + 1),
			MaxDaysOverdue:     (i * 13) % 150,
			DaysSinceContact:   intPtr((i * 3) % 40),
			BrokenPromises:     i % 4,
		}
	}
	return customers
}

func TestPrioritizedList_Ordenacao(t *testing.T) {
	customers := []domain.CustomerSnapshot{
		{CustomerID: "B", RiskRating: domain.RiskRatingLow, OutstandingBalance: 100},
		{CustomerID: "A", RiskRating: domain.RiskRatingLow, OutstandingBalance: 100},
		{CustomerID: "C", RiskRating: domain.RiskRatingHigh, OutstandingBalance: 100, MaxDaysOverdue: 60},
		{CustomerID: "D", RiskRating: domain.RiskRatingLow, OutstandingBalance: 100, PriorityOverride: tierPtr(domain.TierCritical)},
	}

	items, err := PrioritizedList(customers, nil, domain.DefaultThresholds(), 0)
	require.NoError(t, err)
	require.Len(t, items, 4)

	// C tem o maior score; A, B e D empatam em score e saldo e são desempatados pelo id
	ids := []string{items[0].Customer.CustomerID, items[1].Customer.CustomerID, items[2].Customer.CustomerID, items[3].Customer.CustomerID}
	assert.Equal(t, []string{"C", "A", "B", "D"}, ids)

	// A sobrescrita de prioridade não altera score nem faixa
	assert.Equal(t, items[1].Score.Total, items[3].Score.Total)
	assert.Equal(t, items[1].Tier, items[3].Tier)
	assert.Equal(t, domain.TierCritical, *items[3].Customer.PriorityOverride)
}

func TestPrioritizedList_DesempatePorSaldo(t *testing.T) {
	// Saldos diferentes geram scores diferentes; zera o peso de valor para forçar o empate
	customers := []domain.CustomerSnapshot{
		{CustomerID: "A", RiskRating: domain.RiskRatingMedium, OutstandingBalance: 100},
		{CustomerID: "B", RiskRating: domain.RiskRatingMedium, OutstandingBalance: 900},
	}

	items, err := PrioritizedList(customers, domain.Weights{domain.FactorAmount: 0}, domain.DefaultThresholds(), 0)
	require.NoError(t, err)

	assert.Equal(t, "B", items[0].Customer.CustomerID)
	assert.Equal(t, "A", items[1].Customer.CustomerID)
}

func TestPrioritizedList_Limite(t *testing.T) {
	customers := portfolio(30)

	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{name: "Limite menor que a carteira", limit: 10, expected: 10},
		{name: "Limite maior que a carteira", limit: 100, expected: 30},
		{name: "Limite zero retorna todos", limit: 0, expected: 30},
		{name: "Limite negativo retorna todos", limit: -1, expected: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := PrioritizedList(customers, nil, domain.DefaultThresholds(), tt.limit)
			require.NoError(t, err)
			assert.Len(t, items, tt.expected)

			for i := 1; i < len(items); i++ {
				assert.GreaterOrEqual(t, items[i-1].Score.Total, items[i].Score.Total)
			}
		})
	}
}

func TestPrioritizedList_CarteiraVazia(t *testing.T) {
	items, err := PrioritizedList(nil, nil, domain.DefaultThresholds(), 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPrioritize_ParaleloIgualAoSequencial(t *testing.T) {
	large := portfolio(parallelScoringThreshold + 500)

	parallel, err := Prioritize(large, nil, domain.DefaultThresholds())
	require.NoError(t, err)

	// Avaliação sequencial em lotes abaixo do limite de paralelismo
	expected := make([]domain.PrioritizedCustomer, 0, len(large))
	for start := 0; start < len(large); start += 1000 {
		end := min(start+1000, len(large))
		part, err := Prioritize(large[start:end], nil, domain.DefaultThresholds())
		require.NoError(t, err)
		expected = append(expected, part...)
	}
	domain.SortPrioritized(expected)

	assert.Equal(t, expected, parallel)
}

func TestPrioritize_ErroDeterministico(t *testing.T) {
	large := portfolio(parallelScoringThreshold + 2000)
	large[100].RiskRating = "UNKNOWN"
	large[3000].MaxDaysOverdue = -1
	large[len(large)-1].BrokenPromises = -1

	_, err := Prioritize(large, nil, domain.DefaultThresholds())
	require.Error(t, err)
	assert.True(t, domain.IsInvalidInput(err))
	assert.Contains(t, err.Error(), large[100].CustomerID)
}

func TestCategorize_Particao(t *testing.T) {
	customers := portfolio(200)

	categories, err := Categorize(customers, nil, domain.DefaultThresholds())
	require.NoError(t, err)

	assert.Len(t, categories, len(domain.Tiers))

	seen := make(map[string]int)
	total := 0
	for _, tier := range domain.Tiers {
		ids, ok := categories[tier]
		assert.True(t, ok, "faixa %s ausente", tier)
		for _, id := range ids {
			seen[id]++
		}
		total += len(ids)
	}

	assert.Equal(t, len(customers), total)
	for _, customer := range customers {
		assert.Equal(t, 1, seen[customer.CustomerID], "cliente %s", customer.CustomerID)

		score, err := Score(customer, nil)
		require.NoError(t, err)
		tier := TierFor(score.Total, domain.DefaultThresholds())
		assert.Contains(t, categories[tier], customer.CustomerID, "cliente %s fora da faixa %s", customer.CustomerID, tier)
	}
}

func TestCategorize_FaixasVaziasPresentes(t *testing.T) {
	customers := []domain.CustomerSnapshot{
		{CustomerID: "A", RiskRating: domain.RiskRatingLow, OutstandingBalance: 10},
	}

	categories, err := Categorize(customers, nil, domain.DefaultThresholds())
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, categories[domain.TierLow])
	assert.Empty(t, categories[domain.TierCritical])
	assert.NotNil(t, categories[domain.TierCritical])
}

func TestCategorize_PesosInvalidos(t *testing.T) {
	_, err := Categorize(portfolio(3), domain.Weights{domain.FactorDaysOverdue: -1}, domain.DefaultThresholds())
	assert.True(t, domain.IsInvalidInput(err))
}

func TestDistributeWorkload(t *testing.T) {
	items, err := PrioritizedList(portfolio(7), nil, domain.DefaultThresholds(), 0)
	require.NoError(t, err)

	t.Run("Round-robin entre cobradores", func(t *testing.T) {
		workloads := DistributeWorkload(items, []string{"ana", "bruno", "carla"})

		assert.Len(t, workloads["ana"], 3)
		assert.Len(t, workloads["bruno"], 2)
		assert.Len(t, workloads["carla"], 2)

		assert.Equal(t, items[0].Customer.CustomerID, workloads["ana"][0].Customer.CustomerID)
		assert.Equal(t, items[1].Customer.CustomerID, workloads["bruno"][0].Customer.CustomerID)
		assert.Equal(t, items[3].Customer.CustomerID, workloads["ana"][1].Customer.CustomerID)
	})

	t.Run("Sem cobradores - tudo em unassigned", func(t *testing.T) {
		workloads := DistributeWorkload(items, nil)

		assert.Len(t, workloads, 1)
		assert.Len(t, workloads[UnassignedCollector], len(items))
	})

	t.Run("Mais cobradores que clientes - listas vazias", func(t *testing.T) {
		workloads := DistributeWorkload(items[:1], []string{"ana", "bruno"})

		assert.Len(t, workloads["ana"], 1)
		assert.NotNil(t, workloads["bruno"])
		assert.Empty(t, workloads["bruno"])
	})
}
