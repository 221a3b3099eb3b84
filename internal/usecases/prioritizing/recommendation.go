package prioritizing

import (
	"fmt"

	"github.com/vfg2006/collections-manager-api/internal/domain"
)

var tierRecommendations = map[domain.Tier]domain.Recommendation{
	domain.TierCritical: {Tag: domain.RecommendationCritical, Message: "CRÍTICO: ação imediata, considerar medidas judiciais"},
	domain.TierHigh:     {Tag: domain.RecommendationHigh, Message: "ALTA PRIORIDADE: tentativas de contato diárias"},
	domain.TierMedium:   {Tag: domain.RecommendationMedium, Message: "MÉDIA PRIORIDADE: contatar em 3 a 5 dias úteis"},
	domain.TierLow:      {Tag: domain.RecommendationLow, Message: "BAIXA PRIORIDADE: processo padrão de cobrança"},
}

// Recommend gera a recomendação da faixa seguida das recomendações auxiliares,
// sempre na ordem: escalonamento, bloqueio de crédito, frequência de contato,
// contato inicial e envolvimento executivo.
func Recommend(customer domain.CustomerSnapshot, tier domain.Tier, thresholds domain.Thresholds) []domain.Recommendation {
	recommendations := []domain.Recommendation{tierRecommendations[tier]}

	if customer.MaxDaysOverdue > thresholds.EscalationDaysOverdue {
		recommendations = append(recommendations, domain.Recommendation{
			Tag:     domain.RecommendationEscalation,
			Message: fmt.Sprintf("ATRASO: conta com mais de %d dias em atraso, escalar para cobrador sênior", thresholds.EscalationDaysOverdue),
		})
	}

	if customer.RiskRating == domain.RiskRatingHigh && customer.BrokenPromises > 0 {
		recommendations = append(recommendations, domain.Recommendation{
			Tag:     domain.RecommendationCreditHold,
			Message: "RISCO: cliente de alto risco com promessas quebradas, considerar bloqueio de crédito",
		})
	}

	if customer.DaysSinceContact == nil {
		recommendations = append(recommendations, domain.Recommendation{
			Tag:     domain.RecommendationInitialContact,
			Message: "CONTATO: nenhum contato registrado, realizar contato inicial",
		})
	} else if *customer.DaysSinceContact > thresholds.ContactStalenessDays {
		recommendations = append(recommendations, domain.Recommendation{
			Tag:     domain.RecommendationContactFrequency,
			Message: fmt.Sprintf("CONTATO: sem contato há mais de %d dias, follow-up imediato", thresholds.ContactStalenessDays),
		})
	}

	if customer.OutstandingBalance > thresholds.LargeBalance {
		recommendations = append(recommendations, domain.Recommendation{
			Tag:     domain.RecommendationExecutiveInvolvement,
			Message: "VALOR: saldo em aberto elevado, envolver a diretoria",
		})
	}

	return recommendations
}
