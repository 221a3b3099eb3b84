package domain

import "time"

// AgingBucketName identifica uma faixa de vencimento
type AgingBucketName string

const (
	AgingCurrent AgingBucketName = "CURRENT"
	Aging1To30   AgingBucketName = "1-30"
	Aging31To60  AgingBucketName = "31-60"
	Aging61To90  AgingBucketName = "61-90"
	Aging91To120 AgingBucketName = "91-120"
	AgingOver120 AgingBucketName = "120+"
)

// AgingBuckets lista as faixas em ordem crescente de atraso
var AgingBuckets = []AgingBucketName{AgingCurrent, Aging1To30, Aging31To60, Aging61To90, Aging91To120, AgingOver120}

// BucketForDays classifica os dias em atraso; o limite superior de cada faixa é inclusivo
func BucketForDays(daysPastDue int) AgingBucketName {
	switch {
	case daysPastDue <= 0:
		return AgingCurrent
	case daysPastDue <= 30:
		return Aging1To30
	case daysPastDue <= 60:
		return Aging31To60
	case daysPastDue <= 90:
		return Aging61To90
	case daysPastDue <= 120:
		return Aging91To120
	default:
		return AgingOver120
	}
}

type AgingBucket struct {
	Bucket            AgingBucketName `json:"aging_bucket"`
	InvoiceCount      int             `json:"invoice_count"`
	TotalAmount       float64         `json:"total_amount"`
	PercentageOfTotal float64         `json:"percentage_of_total"`
}

type AgingReport struct {
	AsOf                       time.Time     `json:"as_of_date"`
	Buckets                    []AgingBucket `json:"aging_buckets"`
	TotalBalance               float64       `json:"total_ar_balance"`
	TotalInvoices              int           `json:"total_invoices"`
	PastDuePercentage          float64       `json:"past_due_percentage"`
	SeriouslyPastDuePercentage float64       `json:"seriously_past_due_percentage"`
}

// Bucket retorna a faixa pelo nome
func (r AgingReport) Bucket(name AgingBucketName) AgingBucket {
	for _, bucket := range r.Buckets {
		if bucket.Bucket == name {
			return bucket
		}
	}
	return AgingBucket{Bucket: name}
}

// PerformanceRating é a classificação qualitativa de um indicador
type PerformanceRating string

const (
	RatingExcellent PerformanceRating = "EXCELLENT"
	RatingGood      PerformanceRating = "GOOD"
	RatingFair      PerformanceRating = "FAIR"
	RatingPoor      PerformanceRating = "POOR"
	RatingCritical  PerformanceRating = "CRITICAL"
)

type CollectionEffectivenessIndex struct {
	BeginningAR   float64           `json:"beginning_ar"`
	PeriodSales   float64           `json:"period_sales"`
	EndingAR      float64           `json:"ending_ar"`
	CashCollected float64           `json:"cash_collected"`
	Index         float64           `json:"collection_effectiveness_index"`
	Rating        PerformanceRating `json:"cei_rating"`
}

type DaysSalesOutstanding struct {
	CurrentReceivables float64           `json:"current_ar_balance"`
	SalesWindow        float64           `json:"sales_window"`
	WindowDays         int               `json:"window_days"`
	DSO                float64           `json:"days_sales_outstanding"`
	Benchmark          float64           `json:"industry_benchmark"`
	Rating             PerformanceRating `json:"dso_rating"`
}

// EfficiencyReport compõe todos os indicadores de eficiência de cobrança
type EfficiencyReport struct {
	Period                MetricPeriod                 `json:"period"`
	AsOf                  time.Time                    `json:"as_of_date"`
	StartingReceivables   float64                      `json:"starting_receivables"`
	CollectedAmount       float64                      `json:"collected_amount"`
	CollectionRate        float64                      `json:"collection_rate"`
	DSO                   DaysSalesOutstanding         `json:"days_sales_outstanding"`
	CEI                   CollectionEffectivenessIndex `json:"collection_effectiveness"`
	PromisesDue           int                          `json:"promises_due"`
	PromisesKept          int                          `json:"promises_kept"`
	PromiseKeepingRate    float64                      `json:"promise_keeping_rate"`
	TotalActivities       int                          `json:"total_activities"`
	SuccessfulContacts    int                          `json:"successful_contacts"`
	ContactSuccessRate    float64                      `json:"contact_success_rate"`
	AverageCollectionTime float64                      `json:"average_collection_time"`
	Aging                 AgingReport                  `json:"aging_report"`
	TopPriorities         []PrioritizedCustomer        `json:"top_priorities"`
}

// CollectionMetricsSnapshot é a linha persistida em collection_metrics
type CollectionMetricsSnapshot struct {
	ID                   string    `json:"id"`
	PeriodStart          time.Time `json:"period_start"`
	PeriodEnd            time.Time `json:"period_end"`
	TotalReceivables     float64   `json:"total_receivables"`
	CollectedAmount      float64   `json:"collected_amount"`
	CollectionRate       float64   `json:"collection_rate"`
	DSO                  float64   `json:"dso"`
	CEI                  float64   `json:"cei"`
	AverageDaysToCollect float64   `json:"average_days_to_collect"`
	TotalActivities      int       `json:"total_activities"`
	SuccessfulContacts   int       `json:"successful_contacts"`
	PromisesMade         int       `json:"promises_made"`
	PromisesKept         int       `json:"promises_kept"`
	CreatedAt            time.Time `json:"created_at"`
}

// NewCollectionMetricsSnapshot converte um relatório na linha persistida
func NewCollectionMetricsSnapshot(report EfficiencyReport) CollectionMetricsSnapshot {
	return CollectionMetricsSnapshot{
		PeriodStart:          report.Period.Start,
		PeriodEnd:            report.Period.End,
		TotalReceivables:     report.Aging.TotalBalance,
		CollectedAmount:      report.CollectedAmount,
		CollectionRate:       report.CollectionRate,
		DSO:                  report.DSO.DSO,
		CEI:                  report.CEI.Index,
		AverageDaysToCollect: report.AverageCollectionTime,
		TotalActivities:      report.TotalActivities,
		SuccessfulContacts:   report.SuccessfulContacts,
		PromisesMade:         report.PromisesDue,
		PromisesKept:         report.PromisesKept,
	}
}

// Ledger é o retrato do razão consumido pela calculadora de eficiência
type Ledger struct {
	Invoices   []Invoice  `json:"invoices"`
	Payments   []Payment  `json:"payments"`
	Promises   []Promise  `json:"promises"`
	Activities []Activity `json:"activities"`
}
