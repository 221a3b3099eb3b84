package prioritizing

import (
	"runtime"

	"github.com/vfg2006/collections-manager-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// parallelScoringThreshold define a partir de quantos clientes o score é distribuído entre goroutines
const parallelScoringThreshold = 2048

// UnassignedCollector agrupa os clientes quando não há cobradores informados
const UnassignedCollector = "unassigned"

// Prioritize calcula score, faixa e recomendações de todos os clientes e ordena o resultado.
// A ordem final não depende do número de goroutines usadas.
func Prioritize(customers []domain.CustomerSnapshot, weights domain.Weights, thresholds domain.Thresholds) ([]domain.PrioritizedCustomer, error) {
	resolved, err := weights.Resolve()
	if err != nil {
		return nil, err
	}
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}

	items := make([]domain.PrioritizedCustomer, len(customers))
	errs := make([]error, len(customers))

	evaluate := func(i int) {
		result, err := score(customers[i], resolved)
		if err != nil {
			errs[i] = err
			return
		}
		tier := TierFor(result.Total, thresholds)
		items[i] = domain.PrioritizedCustomer{
			Customer:        customers[i],
			Score:           result,
			Tier:            tier,
			Recommendations: Recommend(customers[i], tier, thresholds),
		}
	}

	if len(customers) < parallelScoringThreshold {
		for i := range customers {
			evaluate(i)
		}
	} else {
		workers := runtime.GOMAXPROCS(0)
		chunk := (len(customers) + workers - 1) / workers

		var g errgroup.Group
		g.SetLimit(workers)
		for start := 0; start < len(customers); start += chunk {
			end := min(start+chunk, len(customers))

			g.Go(func() error {
				for i := start; i < end; i++ {
					evaluate(i)
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	// Retorna o erro do menor índice para manter o resultado determinístico
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	domain.SortPrioritized(items)

	return items, nil
}

// PrioritizedList retorna no máximo limit clientes ordenados por urgência.
// limit <= 0 retorna todos.
func PrioritizedList(customers []domain.CustomerSnapshot, weights domain.Weights, thresholds domain.Thresholds, limit int) ([]domain.PrioritizedCustomer, error) {
	items, err := Prioritize(customers, weights, thresholds)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}

// Categorize distribui cada cliente em exatamente uma faixa, mantendo a ordem da lista priorizada
func Categorize(customers []domain.CustomerSnapshot, weights domain.Weights, thresholds domain.Thresholds) (map[domain.Tier][]string, error) {
	items, err := Prioritize(customers, weights, thresholds)
	if err != nil {
		return nil, err
	}

	return CategorizePrioritized(items), nil
}

// CategorizePrioritized agrupa uma lista já priorizada por faixa
func CategorizePrioritized(items []domain.PrioritizedCustomer) map[domain.Tier][]string {
	categories := make(map[domain.Tier][]string, len(domain.Tiers))
	for _, tier := range domain.Tiers {
		categories[tier] = []string{}
	}

	for _, item := range items {
		categories[item.Tier] = append(categories[item.Tier], item.Customer.CustomerID)
	}

	return categories
}

// DistributeWorkload distribui a lista priorizada entre os cobradores em round-robin,
// começando pelo cliente mais urgente
func DistributeWorkload(items []domain.PrioritizedCustomer, collectors []string) map[string][]domain.PrioritizedCustomer {
	if len(collectors) == 0 {
		return map[string][]domain.PrioritizedCustomer{UnassignedCollector: items}
	}

	workloads := make(map[string][]domain.PrioritizedCustomer, len(collectors))
	for _, collector := range collectors {
		workloads[collector] = []domain.PrioritizedCustomer{}
	}

	for i, item := range items {
		collector := collectors[i%len(collectors)]
		workloads[collector] = append(workloads[collector], item)
	}

	return workloads
}
