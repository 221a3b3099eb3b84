package domain

import (
	"math"
	"sort"
	"time"
)

// Factor identifica um dos fatores do score de prioridade
type Factor string

const (
	FactorDaysOverdue    Factor = "days_overdue"
	FactorAmount         Factor = "amount"
	FactorRiskRating     Factor = "risk_rating"
	FactorBrokenPromises Factor = "broken_promises"
	FactorLastContact    Factor = "last_contact"
)

// Factors lista os fatores na ordem em que são avaliados
var Factors = []Factor{
	FactorDaysOverdue,
	FactorAmount,
	FactorRiskRating,
	FactorBrokenPromises,
	FactorLastContact,
}

func (f Factor) Valid() bool {
	for _, known := range Factors {
		if f == known {
			return true
		}
	}
	return false
}

// Weights mapeia cada fator para o seu peso
type Weights map[Factor]float64

// DefaultWeights retorna os pesos padrão do score
func DefaultWeights() Weights {
	return Weights{
		FactorDaysOverdue:    2.0,
		FactorAmount:         1.5,
		FactorRiskRating:     1.8,
		FactorBrokenPromises: 2.5,
		FactorLastContact:    1.2,
	}
}

// Merge aplica as sobrescritas sobre os pesos atuais, sem alterar nenhum dos dois mapas
func (w Weights) Merge(overrides Weights) Weights {
	merged := make(Weights, len(Factors))
	for factor, weight := range w {
		merged[factor] = weight
	}
	for factor, weight := range overrides {
		merged[factor] = weight
	}
	return merged
}

// Resolve completa os fatores ausentes com os pesos padrão e valida o resultado
func (w Weights) Resolve() (Weights, error) {
	resolved := DefaultWeights().Merge(w)
	if err := resolved.Validate(); err != nil {
		return nil, err
	}
	return resolved, nil
}

func (w Weights) Validate() error {
	for factor, weight := range w {
		if !factor.Valid() {
			return InvalidInputf("fator desconhecido: %q", factor)
		}
		if math.IsNaN(weight) || math.IsInf(weight, 0) {
			return InvalidInputf("peso não finito para o fator %s", factor)
		}
		if weight < 0 {
			return InvalidInputf("peso negativo para o fator %s: %v", factor, weight)
		}
	}
	return nil
}

// Thresholds reúne os limites de faixas e das recomendações auxiliares
type Thresholds struct {
	CriticalScore         float64 `json:"critical_score"`
	HighScore             float64 `json:"high_score"`
	MediumScore           float64 `json:"medium_score"`
	LargeBalance          float64 `json:"large_balance"`
	ContactStalenessDays  int     `json:"contact_staleness_days"`
	EscalationDaysOverdue int     `json:"escalation_days_overdue"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		CriticalScore:         500,
		HighScore:             300,
		MediumScore:           150,
		LargeBalance:          50000,
		ContactStalenessDays:  14,
		EscalationDaysOverdue: 90,
	}
}

func (t Thresholds) Validate() error {
	for _, value := range []float64{t.CriticalScore, t.HighScore, t.MediumScore, t.LargeBalance} {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return InvalidInputf("limites devem ser finitos")
		}
	}
	if t.MediumScore < 0 || t.HighScore < t.MediumScore || t.CriticalScore < t.HighScore {
		return InvalidInputf("faixas de score inconsistentes: %v/%v/%v", t.CriticalScore, t.HighScore, t.MediumScore)
	}
	if t.LargeBalance < 0 || t.ContactStalenessDays < 0 || t.EscalationDaysOverdue < 0 {
		return InvalidInputf("limites de recomendação não podem ser negativos")
	}
	return nil
}

// Tier é a faixa de prioridade derivada do score
type Tier string

const (
	TierCritical Tier = "CRITICAL"
	TierHigh     Tier = "HIGH"
	TierMedium   Tier = "MEDIUM"
	TierLow      Tier = "LOW"
)

// Tiers em ordem decrescente de urgência
var Tiers = []Tier{TierCritical, TierHigh, TierMedium, TierLow}

func (t Tier) Valid() bool {
	switch t {
	case TierCritical, TierHigh, TierMedium, TierLow:
		return true
	}
	return false
}

// FactorScore detalha a contribuição de um fator
type FactorScore struct {
	Raw      float64 `json:"raw"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

type ScoreResult struct {
	Total     float64                `json:"total_score"`
	Breakdown map[Factor]FactorScore `json:"factor_breakdown"`
}

type RecommendationTag string

const (
	RecommendationCritical             RecommendationTag = "CRITICAL"
	RecommendationHigh                 RecommendationTag = "HIGH"
	RecommendationMedium               RecommendationTag = "MEDIUM"
	RecommendationLow                  RecommendationTag = "LOW"
	RecommendationEscalation           RecommendationTag = "ESCALATION"
	RecommendationCreditHold           RecommendationTag = "CREDIT_HOLD"
	RecommendationContactFrequency     RecommendationTag = "CONTACT_FREQUENCY"
	RecommendationInitialContact       RecommendationTag = "INITIAL_CONTACT"
	RecommendationExecutiveInvolvement RecommendationTag = "EXECUTIVE_INVOLVEMENT"
)

type Recommendation struct {
	Tag     RecommendationTag `json:"tag"`
	Message string            `json:"message"`
}

// PrioritizedCustomer é uma entrada da lista priorizada
type PrioritizedCustomer struct {
	Customer        CustomerSnapshot     `json:"customer"`
	Score           ScoreResult          `json:"score"`
	Tier            Tier                 `json:"tier"`
	Recommendations []Recommendation     `json:"recommendations"`
	CurrentRank     *PriorityRankingItem `json:"current_rank,omitempty"`
}

// SortPrioritized ordena por score desc, saldo em aberto desc e id asc
func SortPrioritized(items []PrioritizedCustomer) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Score.Total != b.Score.Total {
			return a.Score.Total > b.Score.Total
		}
		if a.Customer.OutstandingBalance != b.Customer.OutstandingBalance {
			return a.Customer.OutstandingBalance > b.Customer.OutstandingBalance
		}
		return a.Customer.CustomerID < b.Customer.CustomerID
	})
}

// PriorityRankingItem é a posição persistida de um cliente no ranking de cobrança
type PriorityRankingItem struct {
	ID               string    `json:"id"`
	CustomerID       string    `json:"customer_id"`
	RankingDate      string    `json:"ranking_date"` // Formato yyyy-mm-dd
	CustomerName     string    `json:"customer_name"`
	Score            float64   `json:"score"`
	Tier             Tier      `json:"tier"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type PriorityRankingResponse struct {
	Ranking    []PriorityRankingItem `json:"ranking"`
	LastUpdate time.Time             `json:"last_update"`
}

// PrioritySettings é a configuração de pesos persistida
type PrioritySettings struct {
	ID          string    `json:"id"`
	Weights     Weights   `json:"weights"`
	UpdatedBy   *string   `json:"updated_by"`
	UpdatedDate time.Time `json:"updated_date"`
}
