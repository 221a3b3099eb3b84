package domain

import "time"

// SystemPerformer identifica as atividades registradas pelos jobs automáticos
const SystemPerformer = "system"

type CollectorPerformance struct {
	Collector          string  `json:"collector"`
	TotalActivities    int     `json:"total_activities"`
	PhoneCalls         int     `json:"phone_calls"`
	Emails             int     `json:"emails"`
	SuccessfulContacts int     `json:"successful_contacts"`
	PromisesReceived   int     `json:"promises_received"`
	ContactSuccessRate float64 `json:"contact_success_rate"`
	CashCollected      float64 `json:"cash_collected"`
	PaymentsReceived   int     `json:"payments_received"`
	EfficiencyRatio    float64 `json:"efficiency_ratio"` // Valor recebido por atividade
	PerformanceScore   float64 `json:"performance_score"`
}

type TeamSummary struct {
	TotalCollectors         int     `json:"total_collectors"`
	TotalActivities         int     `json:"total_activities"`
	TotalCashCollected      float64 `json:"total_cash_collected"`
	TotalSuccessfulContacts int     `json:"total_successful_contacts"`
	TotalPromisesReceived   int     `json:"total_promises_received"`
	TeamContactRate         float64 `json:"team_contact_rate"`
	TeamPromiseRate         float64 `json:"team_promise_rate"`
	AveragePerformanceScore float64 `json:"average_performance_score"`
	CashPerActivity         float64 `json:"cash_per_activity"`
}

type CollectorPerformanceReport struct {
	Period     MetricPeriod           `json:"period"`
	Collectors []CollectorPerformance `json:"collectors"`
	Team       TeamSummary            `json:"team_summary"`
}

// TrendDirection indica o sentido da variação de um indicador entre os snapshots
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "INCREASING"
	TrendDecreasing TrendDirection = "DECREASING"
	TrendStable     TrendDirection = "STABLE"
)

// TrendMetric identifica um indicador acompanhado na análise de tendência
type TrendMetric string

const (
	TrendTotalReceivables TrendMetric = "total_receivables"
	TrendCollectedAmount  TrendMetric = "collected_amount"
	TrendCollectionRate   TrendMetric = "collection_rate"
	TrendDSO              TrendMetric = "dso"
	TrendCEI              TrendMetric = "cei"
)

var TrendMetrics = []TrendMetric{TrendTotalReceivables, TrendCollectedAmount, TrendCollectionRate, TrendDSO, TrendCEI}

type MetricTrend struct {
	Metric           TrendMetric    `json:"metric"`
	Direction        TrendDirection `json:"direction"`
	EarlierAverage   float64        `json:"earlier_average"`
	RecentAverage    float64        `json:"recent_average"`
	ChangePercentage float64        `json:"change_percentage"`
}

type TrendAdvice string

const (
	AdviceReviewCreditPolicy   TrendAdvice = "REVIEW_CREDIT_POLICY"
	AdviceIntensifyCollection  TrendAdvice = "INTENSIFY_COLLECTION"
	AdviceReviewTeam           TrendAdvice = "REVIEW_TEAM_PERFORMANCE"
	AdviceImproveEffectiveness TrendAdvice = "IMPROVE_EFFECTIVENESS"
	AdviceMaintainStrategy     TrendAdvice = "MAINTAIN_STRATEGY"
)

type MetricsTrendReport struct {
	Snapshots []CollectionMetricsSnapshot `json:"snapshots"` // Do mais antigo para o mais recente
	Trends    []MetricTrend               `json:"trends"`
	Advice    []TrendAdvice               `json:"advice"`
}

// Trend retorna a tendência do indicador, ou STABLE quando não há dados
func (r MetricsTrendReport) Trend(metric TrendMetric) MetricTrend {
	for _, trend := range r.Trends {
		if trend.Metric == metric {
			return trend
		}
	}
	return MetricTrend{Metric: metric, Direction: TrendStable}
}

type FollowUpPriority string

const (
	FollowUpUrgent FollowUpPriority = "URGENT"
	FollowUpHigh   FollowUpPriority = "HIGH"
	FollowUpNormal FollowUpPriority = "NORMAL"
)

type FollowUpAction string

const (
	ActionImmediateEscalation FollowUpAction = "IMMEDIATE_ESCALATION"
	ActionUrgentContact       FollowUpAction = "URGENT_CONTACT"
	ActionConfirmPayment      FollowUpAction = "CONFIRM_PAYMENT"
	ActionReminderCall        FollowUpAction = "REMINDER_CALL"
	ActionCourtesyReminder    FollowUpAction = "COURTESY_REMINDER"
)

// PromiseFollowUp é uma promessa pendente que precisa de acompanhamento do cobrador
type PromiseFollowUp struct {
	Promise           Promise          `json:"promise"`
	CustomerName      string           `json:"customer_name"`
	Phone             *string          `json:"phone"`
	Email             *string          `json:"email"`
	DaysUntilDue      int              `json:"days_until_due"`
	Priority          FollowUpPriority `json:"priority"`
	RecommendedAction FollowUpAction   `json:"recommended_action"`
}

type PromiseStatistics struct {
	TotalPromises   int     `json:"total_promises"`
	Kept            int     `json:"kept_promises"`
	Broken          int     `json:"broken_promises"`
	Partial         int     `json:"partial_promises"`
	Pending         int     `json:"pending_promises"`
	Cancelled       int     `json:"cancelled_promises"`
	KeepRate        float64 `json:"keep_rate"`
	TotalPromised   float64 `json:"total_promised_amount"`
	TotalReceived   float64 `json:"total_received_amount"`
	FulfillmentRate float64 `json:"fulfillment_rate"`
	AverageDelay    float64 `json:"average_delay_days"`
}

type CustomerPromiseStatistics struct {
	CustomerID    string  `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	PromiseCount  int     `json:"promise_count"`
	KeptCount     int     `json:"kept_count"`
	KeepRate      float64 `json:"keep_rate"`
	TotalPromised float64 `json:"total_promised"`
}

type PromisePerformanceReport struct {
	Period       MetricPeriod                     `json:"period"`
	GeneratedAt  time.Time                        `json:"generated_at"`
	Overall      PromiseStatistics                `json:"overall_statistics"`
	ByRiskRating map[RiskRating]PromiseStatistics `json:"by_risk_rating"`
	TopCustomers []CustomerPromiseStatistics      `json:"top_customers"`
}
