package efficiency

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/collections-manager-api/internal/domain"
)

const (
	// Dias após a atividade em que um pagamento da fatura é creditado ao cobrador
	attributionWindowDays = 7

	trendWindow            = 3
	trendTolerance         = 0.05
	receivablesAlertChange = 10.0

	highValuePromise   = 25000.0
	topPromiseCustomer = 10
)

// CollectorPerformance agrega as atividades do período por cobrador. Pagamentos aplicados
// à fatura da atividade até attributionWindowDays depois dela contam uma vez por cobrador.
// Atividades sem responsável ou registradas pelo sistema ficam de fora.
func CollectorPerformance(activities []domain.Activity, payments []domain.Payment, period domain.MetricPeriod) domain.CollectorPerformanceReport {
	paymentsByInvoice := make(map[string][]domain.Payment)
	for _, payment := range payments {
		if payment.InvoiceID != nil {
			paymentsByInvoice[*payment.InvoiceID] = append(paymentsByInvoice[*payment.InvoiceID], payment)
		}
	}

	stats := make(map[string]*domain.CollectorPerformance)
	credited := make(map[string]map[string]bool)

	for _, activity := range activities {
		collector := strings.TrimSpace(activity.PerformedBy)
		if collector == "" || strings.EqualFold(collector, domain.SystemPerformer) || !period.Contains(activity.ActivityDate) {
			continue
		}

		perf, ok := stats[collector]
		if !ok {
			perf = &domain.CollectorPerformance{Collector: collector}
			stats[collector] = perf
			credited[collector] = make(map[string]bool)
		}

		perf.TotalActivities++
		switch activity.Type {
		case domain.ActivityTypePhoneCall:
			perf.PhoneCalls++
		case domain.ActivityTypeEmail:
			perf.Emails++
		}
		if activity.Outcome.IsSuccessfulContact() {
			perf.SuccessfulContacts++
		}
		if activity.Outcome == domain.OutcomePromiseToPay {
			perf.PromisesReceived++
		}

		if activity.InvoiceID == nil {
			continue
		}
		for _, payment := range paymentsByInvoice[*activity.InvoiceID] {
			days := domain.DaysBetween(activity.ActivityDate, payment.PaymentDate)
			if days < 0 || days > attributionWindowDays || credited[collector][payment.ID] {
				continue
			}
			credited[collector][payment.ID] = true
			perf.CashCollected += payment.Amount
			perf.PaymentsReceived++
		}
	}

	report := domain.CollectorPerformanceReport{
		Period:     period,
		Collectors: make([]domain.CollectorPerformance, 0, len(stats)),
	}

	for _, perf := range stats {
		perf.ContactSuccessRate = percentage(float64(perf.SuccessfulContacts), float64(perf.TotalActivities))
		perf.EfficiencyRatio = perf.CashCollected / float64(perf.TotalActivities)
		perf.PerformanceScore = CollectorScore(*perf)
		report.Collectors = append(report.Collectors, *perf)
	}

	sort.Slice(report.Collectors, func(i, j int) bool {
		a, b := report.Collectors[i], report.Collectors[j]
		if a.PerformanceScore != b.PerformanceScore {
			return a.PerformanceScore > b.PerformanceScore
		}
		return a.Collector < b.Collector
	})

	report.Team = teamSummary(report.Collectors)
	return report
}

// CollectorScore pontua o cobrador de 0 a 100 partindo de 50: volume até +20, contato efetivo
// até +25, valor recebido até +30, conversão em promessas até +15 e valor por atividade de -5 a +10
func CollectorScore(perf domain.CollectorPerformance) float64 {
	score := 50.0

	switch {
	case perf.TotalActivities >= 50:
		score += 20
	case perf.TotalActivities >= 30:
		score += 15
	case perf.TotalActivities >= 20:
		score += 10
	case perf.TotalActivities >= 10:
		score += 5
	}

	score += math.Min(25, perf.ContactSuccessRate*0.4)

	switch {
	case perf.CashCollected >= 100000:
		score += 30
	case perf.CashCollected >= 50000:
		score += 25
	case perf.CashCollected >= 25000:
		score += 20
	case perf.CashCollected >= 10000:
		score += 15
	case perf.CashCollected >= 5000:
		score += 10
	case perf.CashCollected > 0:
		score += 5
	}

	if perf.TotalActivities > 0 {
		score += math.Min(15, float64(perf.PromisesReceived)/float64(perf.TotalActivities)*100)
	}

	cashPerActivity := perf.CashCollected / math.Max(1, float64(perf.TotalActivities))
	switch {
	case cashPerActivity >= 2000:
		score += 10
	case cashPerActivity >= 1000:
		score += 5
	case cashPerActivity < 100:
		score -= 5
	}

	return math.Min(100, math.Max(0, score))
}

func teamSummary(collectors []domain.CollectorPerformance) domain.TeamSummary {
	summary := domain.TeamSummary{TotalCollectors: len(collectors)}
	if len(collectors) == 0 {
		return summary
	}

	scores := 0.0
	for _, perf := range collectors {
		summary.TotalActivities += perf.TotalActivities
		summary.TotalCashCollected += perf.CashCollected
		summary.TotalSuccessfulContacts += perf.SuccessfulContacts
		summary.TotalPromisesReceived += perf.PromisesReceived
		scores += perf.PerformanceScore
	}

	activities := float64(summary.TotalActivities)
	summary.TeamContactRate = percentage(float64(summary.TotalSuccessfulContacts), activities)
	summary.TeamPromiseRate = percentage(float64(summary.TotalPromisesReceived), activities)
	summary.AveragePerformanceScore = scores / float64(len(collectors))
	if activities > 0 {
		summary.CashPerActivity = summary.TotalCashCollected / activities
	}
	return summary
}

// MetricTrends compara a média dos trendWindow snapshots mais antigos com a dos mais recentes.
// Para o mesmo período vale o snapshot gravado por último. Com menos de dois períodos não há tendência.
func MetricTrends(snapshots []domain.CollectionMetricsSnapshot) domain.MetricsTrendReport {
	latest := make(map[[2]time.Time]domain.CollectionMetricsSnapshot, len(snapshots))
	for _, snapshot := range snapshots {
		key := [2]time.Time{domain.DateOnly(snapshot.PeriodStart), domain.DateOnly(snapshot.PeriodEnd)}
		if current, ok := latest[key]; !ok || snapshot.CreatedAt.After(current.CreatedAt) {
			latest[key] = snapshot
		}
	}

	ordered := make([]domain.CollectionMetricsSnapshot, 0, len(latest))
	for _, snapshot := range latest {
		ordered = append(ordered, snapshot)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].PeriodStart.Equal(ordered[j].PeriodStart) {
			return ordered[i].PeriodStart.Before(ordered[j].PeriodStart)
		}
		return ordered[i].PeriodEnd.Before(ordered[j].PeriodEnd)
	})

	report := domain.MetricsTrendReport{
		Snapshots: ordered,
		Trends:    []domain.MetricTrend{},
		Advice:    []domain.TrendAdvice{},
	}
	if len(ordered) < 2 {
		return report
	}

	window := min(trendWindow, len(ordered))
	for _, metric := range domain.TrendMetrics {
		earlier := averageMetric(ordered[:window], metric)
		recent := averageMetric(ordered[len(ordered)-window:], metric)

		trend := domain.MetricTrend{
			Metric:         metric,
			Direction:      domain.TrendStable,
			EarlierAverage: earlier,
			RecentAverage:  recent,
		}
		switch {
		case recent > earlier*(1+trendTolerance):
			trend.Direction = domain.TrendIncreasing
		case recent < earlier*(1-trendTolerance):
			trend.Direction = domain.TrendDecreasing
		}
		if earlier > 0 {
			trend.ChangePercentage = (recent - earlier) / earlier * 100
		}

		report.Trends = append(report.Trends, trend)
	}

	report.Advice = trendAdvice(report)
	return report
}

func trendAdvice(report domain.MetricsTrendReport) []domain.TrendAdvice {
	advice := []domain.TrendAdvice{}

	receivables := report.Trend(domain.TrendTotalReceivables)
	if receivables.Direction == domain.TrendIncreasing && receivables.ChangePercentage > receivablesAlertChange {
		advice = append(advice, domain.AdviceReviewCreditPolicy)
	}
	if report.Trend(domain.TrendDSO).Direction == domain.TrendIncreasing {
		advice = append(advice, domain.AdviceIntensifyCollection)
	}
	if report.Trend(domain.TrendCollectedAmount).Direction == domain.TrendDecreasing {
		advice = append(advice, domain.AdviceReviewTeam)
	}
	if report.Trend(domain.TrendCEI).Direction == domain.TrendDecreasing {
		advice = append(advice, domain.AdviceImproveEffectiveness)
	}

	if len(advice) == 0 {
		advice = append(advice, domain.AdviceMaintainStrategy)
	}
	return advice
}

func averageMetric(snapshots []domain.CollectionMetricsSnapshot, metric domain.TrendMetric) float64 {
	total := 0.0
	for _, snapshot := range snapshots {
		total += metricValue(snapshot, metric)
	}
	return total / float64(len(snapshots))
}

func metricValue(snapshot domain.CollectionMetricsSnapshot, metric domain.TrendMetric) float64 {
	switch metric {
	case domain.TrendTotalReceivables:
		return snapshot.TotalReceivables
	case domain.TrendCollectedAmount:
		return snapshot.CollectedAmount
	case domain.TrendCollectionRate:
		return snapshot.CollectionRate
	case domain.TrendDSO:
		return snapshot.DSO
	case domain.TrendCEI:
		return snapshot.CEI
	default:
		return 0
	}
}

// PromiseFollowUps lista as promessas pendentes com vencimento até daysAhead dias após asOf,
// ordenadas por prioridade, dias até o vencimento e valor prometido
func PromiseFollowUps(promises []domain.Promise, customers map[string]domain.Customer, asOf time.Time, daysAhead int) []domain.PromiseFollowUp {
	items := []domain.PromiseFollowUp{}

	for _, promise := range promises {
		if promise.Status != domain.PromiseStatusPending {
			continue
		}

		daysUntilDue := domain.DaysBetween(asOf, promise.PromisedDate)
		if daysUntilDue > daysAhead {
			continue
		}

		item := domain.PromiseFollowUp{
			Promise:           promise,
			DaysUntilDue:      daysUntilDue,
			Priority:          followUpPriority(daysUntilDue, promise.PromisedAmount),
			RecommendedAction: followUpAction(daysUntilDue),
		}
		if customer, ok := customers[promise.CustomerID]; ok {
			item.CustomerName = customer.Name
			item.Phone = customer.Phone
			item.Email = customer.Email
		}

		items = append(items, item)
	}

	rank := map[domain.FollowUpPriority]int{domain.FollowUpUrgent: 0, domain.FollowUpHigh: 1, domain.FollowUpNormal: 2}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if rank[a.Priority] != rank[b.Priority] {
			return rank[a.Priority] < rank[b.Priority]
		}
		if a.DaysUntilDue != b.DaysUntilDue {
			return a.DaysUntilDue < b.DaysUntilDue
		}
		if a.Promise.PromisedAmount != b.Promise.PromisedAmount {
			return a.Promise.PromisedAmount > b.Promise.PromisedAmount
		}
		return a.Promise.ID < b.Promise.ID
	})

	return items
}

func followUpPriority(daysUntilDue int, amount float64) domain.FollowUpPriority {
	switch {
	case daysUntilDue < 0:
		return domain.FollowUpUrgent
	case daysUntilDue <= 1, amount >= highValuePromise:
		return domain.FollowUpHigh
	default:
		return domain.FollowUpNormal
	}
}

func followUpAction(daysUntilDue int) domain.FollowUpAction {
	switch {
	case daysUntilDue < -2:
		return domain.ActionImmediateEscalation
	case daysUntilDue < 0:
		return domain.ActionUrgentContact
	case daysUntilDue == 0:
		return domain.ActionConfirmPayment
	case daysUntilDue == 1:
		return domain.ActionReminderCall
	default:
		return domain.ActionCourtesyReminder
	}
}

// PromisePerformance resume as promessas com data prometida no período, no total,
// por rating de risco do cliente e para os clientes com ao menos duas promessas
func PromisePerformance(promises []domain.Promise, customers map[string]domain.Customer, period domain.MetricPeriod) domain.PromisePerformanceReport {
	inPeriod := make([]domain.Promise, 0, len(promises))
	byRating := make(map[domain.RiskRating][]domain.Promise)
	byCustomer := make(map[string][]domain.Promise)

	for _, promise := range promises {
		if !period.Contains(promise.PromisedDate) {
			continue
		}
		inPeriod = append(inPeriod, promise)
		byCustomer[promise.CustomerID] = append(byCustomer[promise.CustomerID], promise)
		if customer, ok := customers[promise.CustomerID]; ok {
			byRating[customer.RiskRating] = append(byRating[customer.RiskRating], promise)
		}
	}

	report := domain.PromisePerformanceReport{
		Period:       period,
		Overall:      promiseStatistics(inPeriod),
		ByRiskRating: make(map[domain.RiskRating]domain.PromiseStatistics, len(byRating)),
		TopCustomers: []domain.CustomerPromiseStatistics{},
	}
	for rating, group := range byRating {
		report.ByRiskRating[rating] = promiseStatistics(group)
	}

	for customerID, group := range byCustomer {
		if len(group) < 2 {
			continue
		}
		stats := promiseStatistics(group)
		entry := domain.CustomerPromiseStatistics{
			CustomerID:    customerID,
			PromiseCount:  stats.TotalPromises,
			KeptCount:     stats.Kept,
			KeepRate:      stats.KeepRate,
			TotalPromised: stats.TotalPromised,
		}
		if customer, ok := customers[customerID]; ok {
			entry.CustomerName = customer.Name
		}
		report.TopCustomers = append(report.TopCustomers, entry)
	}

	sort.Slice(report.TopCustomers, func(i, j int) bool {
		a, b := report.TopCustomers[i], report.TopCustomers[j]
		if a.PromiseCount != b.PromiseCount {
			return a.PromiseCount > b.PromiseCount
		}
		if a.TotalPromised != b.TotalPromised {
			return a.TotalPromised > b.TotalPromised
		}
		return a.CustomerID < b.CustomerID
	})
	if len(report.TopCustomers) > topPromiseCustomer {
		report.TopCustomers = report.TopCustomers[:topPromiseCustomer]
	}

	return report
}

func promiseStatistics(promises []domain.Promise) domain.PromiseStatistics {
	stats := domain.PromiseStatistics{TotalPromises: len(promises)}

	delayDays, delayed := 0, 0
	for _, promise := range promises {
		stats.TotalPromised += promise.PromisedAmount

		switch promise.Status {
		case domain.PromiseStatusKept:
			stats.Kept++
		case domain.PromiseStatusPartial:
			stats.Partial++
		case domain.PromiseStatusBroken:
			stats.Broken++
		case domain.PromiseStatusPending:
			stats.Pending++
		case domain.PromiseStatusCancelled:
			stats.Cancelled++
		}

		if (promise.Status == domain.PromiseStatusKept || promise.Status == domain.PromiseStatusPartial) && promise.ActualAmount != nil {
			stats.TotalReceived += *promise.ActualAmount
		}
		if promise.ActualPaymentDate != nil {
			delayDays += domain.DaysBetween(promise.PromisedDate, *promise.ActualPaymentDate)
			delayed++
		}
	}

	stats.KeepRate = percentage(float64(stats.Kept), float64(stats.TotalPromises))
	stats.FulfillmentRate = percentage(stats.TotalReceived, stats.TotalPromised)
	if delayed > 0 {
		stats.AverageDelay = float64(delayDays) / float64(delayed)
	}
	return stats
}
