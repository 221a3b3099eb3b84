// Package prioritizing calcula o score de prioridade de cobrança e a lista priorizada de clientes
package prioritizing

import (
	"math"

	"github.com/vfg2006/collections-manager-api/internal/domain"
)

type rawExtractor func(c domain.CustomerSnapshot) (float64, error)

// factorTable define, na ordem de soma, como cada fator é extraído do cliente
var factorTable = []struct {
	factor domain.Factor
	raw    rawExtractor
}{
	{domain.FactorDaysOverdue, daysOverdueRaw},
	{domain.FactorAmount, amountRaw},
	{domain.FactorRiskRating, riskRatingRaw},
	{domain.FactorBrokenPromises, brokenPromisesRaw},
	{domain.FactorLastContact, lastContactRaw},
}

var riskRatingScores = map[domain.RiskRating]float64{
	domain.RiskRatingLow:    10,
	domain.RiskRatingMedium: 50,
	domain.RiskRatingHigh:   100,
}

// Score calcula o score total e o detalhamento por fator.
// Pesos não informados usam os valores padrão.
func Score(customer domain.CustomerSnapshot, weights domain.Weights) (domain.ScoreResult, error) {
	resolved, err := weights.Resolve()
	if err != nil {
		return domain.ScoreResult{}, err
	}
	return score(customer, resolved)
}

// score assume pesos já resolvidos e validados
func score(customer domain.CustomerSnapshot, weights domain.Weights) (domain.ScoreResult, error) {
	result := domain.ScoreResult{
		Breakdown: make(map[domain.Factor]domain.FactorScore, len(factorTable)),
	}

	for _, entry := range factorTable {
		raw, err := entry.raw(customer)
		if err != nil {
			return domain.ScoreResult{}, err
		}

		weight := weights[entry.factor]
		weighted := raw * weight

		result.Breakdown[entry.factor] = domain.FactorScore{
			Raw:      raw,
			Weight:   weight,
			Weighted: weighted,
		}
		result.Total += weighted
	}

	return result, nil
}

// TierFor classifica o score nas faixas, da mais alta para a mais baixa
func TierFor(total float64, thresholds domain.Thresholds) domain.Tier {
	switch {
	case total > thresholds.CriticalScore:
		return domain.TierCritical
	case total > thresholds.HighScore:
		return domain.TierHigh
	case total > thresholds.MediumScore:
		return domain.TierMedium
	default:
		return domain.TierLow
	}
}

func daysOverdueRaw(c domain.CustomerSnapshot) (float64, error) {
	if c.MaxDaysOverdue < 0 {
		return 0, domain.InvalidInputf("cliente %s com dias em atraso negativo: %d", c.CustomerID, c.MaxDaysOverdue)
	}
	return math.Min(float64(c.MaxDaysOverdue)*2, 100), nil
}

// amountRaw usa escala logarítmica; saldos <= 1 contam como 1
func amountRaw(c domain.CustomerSnapshot) (float64, error) {
	if math.IsNaN(c.OutstandingBalance) || math.IsInf(c.OutstandingBalance, 0) {
		return 0, domain.InvalidInputf("cliente %s com saldo inválido: %v", c.CustomerID, c.OutstandingBalance)
	}
	return math.Log10(math.Max(c.OutstandingBalance, 1)) * 10, nil
}

func riskRatingRaw(c domain.CustomerSnapshot) (float64, error) {
	raw, ok := riskRatingScores[c.RiskRating]
	if !ok {
		return 0, domain.InvalidInputf("cliente %s com rating de risco desconhecido: %q", c.CustomerID, c.RiskRating)
	}
	return raw, nil
}

func brokenPromisesRaw(c domain.CustomerSnapshot) (float64, error) {
	if c.BrokenPromises < 0 {
		return 0, domain.InvalidInputf("cliente %s com promessas quebradas negativas: %d", c.CustomerID, c.BrokenPromises)
	}
	return float64(c.BrokenPromises) * 20, nil
}

func lastContactRaw(c domain.CustomerSnapshot) (float64, error) {
	if c.DaysSinceContact == nil {
		return 0, nil
	}
	if *c.DaysSinceContact < 0 {
		return 0, domain.InvalidInputf("cliente %s com dias desde o último contato negativo: %d", c.CustomerID, *c.DaysSinceContact)
	}
	return float64(*c.DaysSinceContact) * 2, nil
}
