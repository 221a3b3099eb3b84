package efficiency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/collections-manager-api/internal/domain"
)

func floatPtr(f float64) *float64 {
	return &f
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func collectorFixture() ([]domain.Activity, []domain.Payment) {
	activities := []domain.Activity{
		{ID: "A1", CustomerID: "C1", InvoiceID: strPtr("I1"), ActivityDate: date(2024, 3, 5), Type: domain.ActivityTypePhoneCall, Outcome: domain.OutcomeSpokeToCustomer, PerformedBy: "ana"},
		{ID: "A2", CustomerID: "C1", InvoiceID: strPtr("I1"), ActivityDate: date(2024, 3, 8), Type: domain.ActivityTypeEmail, Outcome: domain.OutcomePromiseToPay, PerformedBy: "ana"},
		{ID: "A3", CustomerID: "C2", InvoiceID: strPtr("I2"), ActivityDate: date(2024, 3, 10), Type: domain.ActivityTypePhoneCall, Outcome: domain.OutcomeNoAnswer, PerformedBy: "bruno"},
		{ID: "A4", CustomerID: "C1", InvoiceID: strPtr("I1"), ActivityDate: date(2024, 3, 6), Type: domain.ActivityTypeNote, Outcome: domain.OutcomeOther, PerformedBy: domain.SystemPerformer},
		{ID: "A5", CustomerID: "C1", ActivityDate: date(2024, 2, 20), Type: domain.ActivityTypePhoneCall, Outcome: domain.OutcomeSpokeToCustomer, PerformedBy: "ana"},
		{ID: "A6", CustomerID: "C2", ActivityDate: date(2024, 3, 11), Type: domain.ActivityTypePhoneCall, Outcome: domain.OutcomeSpokeToCustomer},
	}

	payments := []domain.Payment{
		{ID: "P1", CustomerID: "C1", InvoiceID: strPtr("I1"), PaymentDate: date(2024, 3, 10), Amount: 6000},
		{ID: "P2", CustomerID: "C1", InvoiceID: strPtr("I1"), PaymentDate: date(2024, 3, 20), Amount: 500},
		{ID: "P3", CustomerID: "C2", InvoiceID: strPtr("I2"), PaymentDate: date(2024, 3, 9), Amount: 300},
		{ID: "P4", CustomerID: "C2", InvoiceID: strPtr("I2"), PaymentDate: date(2024, 3, 17), Amount: 1200},
		{ID: "P5", CustomerID: "C2", PaymentDate: date(2024, 3, 12), Amount: 700},
	}

	return activities, payments
}

func TestCollectorPerformance(t *testing.T) {
	activities, payments := collectorFixture()

	report := CollectorPerformance(activities, payments, march)

	require.Len(t, report.Collectors, 2)

	ana := report.Collectors[0]
	assert.Equal(t, "ana", ana.Collector)
	assert.Equal(t, 2, ana.TotalActivities)
	assert.Equal(t, 1, ana.PhoneCalls)
	assert.Equal(t, 1, ana.Emails)
	assert.Equal(t, 2, ana.SuccessfulContacts)
	assert.Equal(t, 1, ana.PromisesReceived)
	assert.Equal(t, 100.0, ana.ContactSuccessRate)
	assert.Equal(t, 6000.0, ana.CashCollected, "pagamento creditado uma única vez por cobrador")
	assert.Equal(t, 1, ana.PaymentsReceived)
	assert.Equal(t, 3000.0, ana.EfficiencyRatio)
	assert.Equal(t, 100.0, ana.PerformanceScore)

	bruno := report.Collectors[1]
	assert.Equal(t, "bruno", bruno.Collector)
	assert.Equal(t, 1200.0, bruno.CashCollected, "pagamento anterior à atividade não conta")
	assert.Equal(t, 0.0, bruno.ContactSuccessRate)
	assert.Equal(t, 60.0, bruno.PerformanceScore)

	assert.Equal(t, 2, report.Team.TotalCollectors)
	assert.Equal(t, 3, report.Team.TotalActivities)
	assert.Equal(t, 7200.0, report.Team.TotalCashCollected)
	assert.InDelta(t, 200.0/3, report.Team.TeamContactRate, 1e-9)
	assert.InDelta(t, 100.0/3, report.Team.TeamPromiseRate, 1e-9)
	assert.Equal(t, 80.0, report.Team.AveragePerformanceScore)
	assert.Equal(t, 2400.0, report.Team.CashPerActivity)
}

func TestCollectorPerformance_SemAtividades(t *testing.T) {
	report := CollectorPerformance(nil, nil, march)

	assert.NotNil(t, report.Collectors)
	assert.Empty(t, report.Collectors)
	assert.Equal(t, domain.TeamSummary{}, report.Team)
}

func TestCollectorScore(t *testing.T) {
	tests := []struct {
		name     string
		perf     domain.CollectorPerformance
		expected float64
	}{
		{
			name:     "Sem atividade - penalidade por valor baixo",
			perf:     domain.CollectorPerformance{},
			expected: 45,
		},
		{
			name:     "Dez atividades com metade de contatos efetivos",
			perf:     domain.CollectorPerformance{TotalActivities: 10, ContactSuccessRate: 50},
			expected: 70,
		},
		{
			name: "Volume alto e recebimento relevante",
			perf: domain.CollectorPerformance{
				TotalActivities:    60,
				ContactSuccessRate: 10,
				PromisesReceived:   3,
				CashCollected:      30000,
			},
			expected: 99,
		},
		{
			name: "Limitado a 100",
			perf: domain.CollectorPerformance{
				TotalActivities:    50,
				ContactSuccessRate: 100,
				PromisesReceived:   25,
				CashCollected:      150000,
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CollectorScore(tt.perf), 1e-9)
		})
	}
}

func snapshotFor(month time.Month, receivables, dso, cei float64) domain.CollectionMetricsSnapshot {
	start := date(2024, month, 1)
	return domain.CollectionMetricsSnapshot{
		ID:               "S" + month.String(),
		PeriodStart:      start,
		PeriodEnd:        start.AddDate(0, 1, -1),
		TotalReceivables: receivables,
		CollectedAmount:  50,
		CollectionRate:   80,
		DSO:              dso,
		CEI:              cei,
		CreatedAt:        start.AddDate(0, 1, 1),
	}
}

func TestMetricTrends(t *testing.T) {
	staleFebruary := snapshotFor(time.February, 999, 99, 10)
	staleFebruary.ID = "S-old"
	staleFebruary.CreatedAt = date(2024, 3, 1)

	// Ordem de created_at DESC, como retornado pelo repositório
	snapshots := []domain.CollectionMetricsSnapshot{
		snapshotFor(time.June, 140, 41, 80),
		snapshotFor(time.May, 130, 41, 80),
		snapshotFor(time.April, 120, 41, 80),
		snapshotFor(time.March, 100, 40, 90),
		snapshotFor(time.February, 100, 40, 90),
		staleFebruary,
		snapshotFor(time.January, 100, 40, 90),
	}

	report := MetricTrends(snapshots)

	require.Len(t, report.Snapshots, 6)
	assert.Equal(t, date(2024, 1, 1), report.Snapshots[0].PeriodStart)
	assert.Equal(t, date(2024, 6, 1), report.Snapshots[5].PeriodStart)
	assert.Equal(t, 100.0, report.Snapshots[1].TotalReceivables)

	require.Len(t, report.Trends, len(domain.TrendMetrics))

	receivables := report.Trend(domain.TrendTotalReceivables)
	assert.Equal(t, domain.TrendIncreasing, receivables.Direction)
	assert.Equal(t, 100.0, receivables.EarlierAverage)
	assert.Equal(t, 130.0, receivables.RecentAverage)
	assert.InDelta(t, 30.0, receivables.ChangePercentage, 1e-9)

	assert.Equal(t, domain.TrendStable, report.Trend(domain.TrendCollectedAmount).Direction)
	assert.Equal(t, domain.TrendStable, report.Trend(domain.TrendDSO).Direction, "variação dentro da tolerância de 5%")
	assert.Equal(t, domain.TrendDecreasing, report.Trend(domain.TrendCEI).Direction)

	assert.Equal(t, []domain.TrendAdvice{domain.AdviceReviewCreditPolicy, domain.AdviceImproveEffectiveness}, report.Advice)
}

func TestMetricTrends_Estavel(t *testing.T) {
	report := MetricTrends([]domain.CollectionMetricsSnapshot{
		snapshotFor(time.January, 100, 40, 90),
		snapshotFor(time.February, 102, 41, 89),
	})

	for _, trend := range report.Trends {
		assert.Equal(t, domain.TrendStable, trend.Direction, trend.Metric)
	}
	assert.Equal(t, []domain.TrendAdvice{domain.AdviceMaintainStrategy}, report.Advice)
}

func TestMetricTrends_PoucosSnapshots(t *testing.T) {
	report := MetricTrends([]domain.CollectionMetricsSnapshot{snapshotFor(time.January, 100, 40, 90)})

	assert.Len(t, report.Snapshots, 1)
	assert.Empty(t, report.Trends)
	assert.Empty(t, report.Advice)
	assert.Equal(t, domain.TrendStable, report.Trend(domain.TrendDSO).Direction)
}

func TestPromiseFollowUps(t *testing.T) {
	pending := func(id string, promised time.Time, amount float64) domain.Promise {
		return domain.Promise{ID: id, CustomerID: "C1", PromisedDate: promised, PromisedAmount: amount, Status: domain.PromiseStatusPending}
	}

	promises := []domain.Promise{
		pending("F6", date(2024, 4, 4), 500),
		pending("F5", date(2024, 4, 5), 30000),
		pending("F4", date(2024, 4, 1), 80),
		pending("F3", date(2024, 3, 31), 50),
		pending("F2", date(2024, 3, 30), 200),
		pending("F1", date(2024, 3, 27), 100),
		pending("F7", date(2024, 4, 10), 100),
		{ID: "F8", CustomerID: "C1", PromisedDate: date(2024, 3, 31), PromisedAmount: 10, Status: domain.PromiseStatusKept},
	}
	customers := map[string]domain.Customer{
		"C1": {ID: "C1", Name: "Alfa", Phone: strPtr("11 99999-0000")},
	}

	items := PromiseFollowUps(promises, customers, asOf.Add(15*time.Hour), 7)

	require.Len(t, items, 6)

	expected := []struct {
		id       string
		days     int
		priority domain.FollowUpPriority
		action   domain.FollowUpAction
	}{
		{"F1", -4, domain.FollowUpUrgent, domain.ActionImmediateEscalation},
		{"F2", -1, domain.FollowUpUrgent, domain.ActionUrgentContact},
		{"F3", 0, domain.FollowUpHigh, domain.ActionConfirmPayment},
		{"F4", 1, domain.FollowUpHigh, domain.ActionReminderCall},
		{"F5", 5, domain.FollowUpHigh, domain.ActionCourtesyReminder},
		{"F6", 4, domain.FollowUpNormal, domain.ActionCourtesyReminder},
	}
	for i, want := range expected {
		assert.Equal(t, want.id, items[i].Promise.ID)
		assert.Equal(t, want.days, items[i].DaysUntilDue, want.id)
		assert.Equal(t, want.priority, items[i].Priority, want.id)
		assert.Equal(t, want.action, items[i].RecommendedAction, want.id)
	}

	assert.Equal(t, "Alfa", items[0].CustomerName)
	require.NotNil(t, items[0].Phone)
}

func TestPromisePerformance(t *testing.T) {
	customers := map[string]domain.Customer{
		"C1": {ID: "C1", Name: "Alfa", RiskRating: domain.RiskRatingHigh},
		"C2": {ID: "C2", Name: "Beta", RiskRating: domain.RiskRatingLow},
	}

	promises := []domain.Promise{
		{ID: "P1", CustomerID: "C1", PromisedDate: date(2024, 3, 5), PromisedAmount: 1000, Status: domain.PromiseStatusKept, ActualAmount: floatPtr(1000), ActualPaymentDate: timePtr(date(2024, 3, 6))},
		{ID: "P2", CustomerID: "C1", PromisedDate: date(2024, 3, 12), PromisedAmount: 500, Status: domain.PromiseStatusPartial, ActualAmount: floatPtr(450), ActualPaymentDate: timePtr(date(2024, 3, 14))},
		{ID: "P3", CustomerID: "C1", PromisedDate: date(2024, 3, 20), PromisedAmount: 300, Status: domain.PromiseStatusBroken},
		{ID: "P4", CustomerID: "C2", PromisedDate: date(2024, 3, 15), PromisedAmount: 200, Status: domain.PromiseStatusKept, ActualAmount: floatPtr(200), ActualPaymentDate: timePtr(date(2024, 3, 15))},
		{ID: "P5", CustomerID: "C2", PromisedDate: date(2024, 3, 25), PromisedAmount: 100, Status: domain.PromiseStatusPending},
		{ID: "P6", CustomerID: "C3", PromisedDate: date(2024, 3, 10), PromisedAmount: 400, Status: domain.PromiseStatusCancelled},
		{ID: "P7", CustomerID: "C2", PromisedDate: date(2024, 4, 2), PromisedAmount: 999, Status: domain.PromiseStatusKept},
	}

	report := PromisePerformance(promises, customers, march)

	overall := report.Overall
	assert.Equal(t, 6, overall.TotalPromises)
	assert.Equal(t, 2, overall.Kept)
	assert.Equal(t, 1, overall.Partial)
	assert.Equal(t, 1, overall.Broken)
	assert.Equal(t, 1, overall.Pending)
	assert.Equal(t, 1, overall.Cancelled)
	assert.Equal(t, 2500.0, overall.TotalPromised)
	assert.Equal(t, 1650.0, overall.TotalReceived)
	assert.InDelta(t, 100.0/3, overall.KeepRate, 1e-9)
	assert.InDelta(t, 66.0, overall.FulfillmentRate, 1e-9)
	assert.Equal(t, 1.0, overall.AverageDelay)

	require.Len(t, report.ByRiskRating, 2)
	assert.Equal(t, 3, report.ByRiskRating[domain.RiskRatingHigh].TotalPromises)
	assert.Equal(t, 50.0, report.ByRiskRating[domain.RiskRatingLow].KeepRate)

	require.Len(t, report.TopCustomers, 2)
	assert.Equal(t, "C1", report.TopCustomers[0].CustomerID)
	assert.Equal(t, "Alfa", report.TopCustomers[0].CustomerName)
	assert.Equal(t, 3, report.TopCustomers[0].PromiseCount)
	assert.Equal(t, 1800.0, report.TopCustomers[0].TotalPromised)
	assert.Equal(t, "C2", report.TopCustomers[1].CustomerID)
}

func TestPromisePerformance_SemPromessas(t *testing.T) {
	report := PromisePerformance(nil, nil, march)

	assert.Equal(t, 0, report.Overall.TotalPromises)
	assert.Equal(t, 0.0, report.Overall.KeepRate)
	assert.Equal(t, 0.0, report.Overall.FulfillmentRate)
	assert.NotNil(t, report.TopCustomers)
	assert.Empty(t, report.ByRiskRating)
}
