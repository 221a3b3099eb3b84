// Package efficiency calcula os indicadores de eficiência de cobrança a partir do razão de contas a receber
package efficiency

import (
	"time"

	"github.com/vfg2006/collections-manager-api/internal/domain"
	"github.com/vfg2006/collections-manager-api/internal/usecases/prioritizing"
	"github.com/vfg2006/collections-manager-api/pkg/utils"
)

// Settings parametriza o DSO, o tempo médio de recebimento e a lista de prioridades do relatório
type Settings struct {
	DSOBenchmarkDays   float64
	DSOSalesWindowDays int
	CollectionTimeDays int
	TopPrioritiesLimit int
}

func DefaultSettings() Settings {
	return Settings{
		DSOBenchmarkDays:   45,
		DSOSalesWindowDays: 90,
		CollectionTimeDays: 365,
		TopPrioritiesLimit: 10,
	}
}

// percentage retorna part/total*100, ou 0 quando o total é zero
func percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// ReceivablesBefore soma o saldo das faturas emitidas antes de cutoff,
// descontando apenas os pagamentos aplicados a elas também antes de cutoff
func ReceivablesBefore(ledger domain.Ledger, cutoff time.Time) float64 {
	cutoff = domain.DateOnly(cutoff)

	paid := make(map[string]float64)
	for _, payment := range ledger.Payments {
		if payment.InvoiceID == nil || !domain.DateOnly(payment.PaymentDate).Before(cutoff) {
			continue
		}
		paid[*payment.InvoiceID] += payment.Amount
	}

	var total float64
	for _, invoice := range ledger.Invoices {
		if !domain.DateOnly(invoice.InvoiceDate).Before(cutoff) {
			continue
		}
		if outstanding := invoice.Amount - paid[invoice.ID]; outstanding > 0 {
			total += outstanding
		}
	}

	return total
}

// StartingReceivables é o contas a receber no início do primeiro dia do período
func StartingReceivables(ledger domain.Ledger, period domain.MetricPeriod) float64 {
	return ReceivablesBefore(ledger, period.Start)
}

// EndingReceivables é o contas a receber ao final do último dia do período
func EndingReceivables(ledger domain.Ledger, period domain.MetricPeriod) float64 {
	return ReceivablesBefore(ledger, domain.DateOnly(period.End).AddDate(0, 0, 1))
}

// CollectedInPeriod soma todos os pagamentos recebidos dentro do período
func CollectedInPeriod(payments []domain.Payment, period domain.MetricPeriod) float64 {
	var total float64
	for _, payment := range payments {
		if period.Contains(payment.PaymentDate) {
			total += payment.Amount
		}
	}
	return total
}

// SalesInPeriod soma o valor original das faturas emitidas dentro do período
func SalesInPeriod(invoices []domain.Invoice, period domain.MetricPeriod) float64 {
	var total float64
	for _, invoice := range invoices {
		if period.Contains(invoice.InvoiceDate) {
			total += invoice.Amount
		}
	}
	return total
}

// CollectionRate retorna recebido no período / contas a receber inicial * 100.
// Sem contas a receber inicial a taxa é 0.
func CollectionRate(ledger domain.Ledger, period domain.MetricPeriod) (rate, starting, collected float64) {
	starting = StartingReceivables(ledger, period)
	collected = CollectedInPeriod(ledger.Payments, period)
	return percentage(collected, starting), starting, collected
}

// CurrentReceivables soma o saldo das faturas em aberto emitidas até asOf
func CurrentReceivables(invoices []domain.Invoice, asOf time.Time) float64 {
	asOf = domain.DateOnly(asOf)

	var total float64
	for _, invoice := range invoices {
		if invoice.Status.IsOpen() && !domain.DateOnly(invoice.InvoiceDate).After(asOf) {
			total += invoice.Balance
		}
	}
	return total
}

// DSORating compara o DSO com o benchmark do setor
func DSORating(dso, benchmark float64) domain.PerformanceRating {
	switch {
	case dso <= benchmark*0.8:
		return domain.RatingExcellent
	case dso <= benchmark:
		return domain.RatingGood
	case dso <= benchmark*1.2:
		return domain.RatingFair
	case dso <= benchmark*1.5:
		return domain.RatingPoor
	default:
		return domain.RatingCritical
	}
}

// DSO calcula dias de vendas em aberto: contas a receber atual / venda média diária da janela
func DSO(invoices []domain.Invoice, asOf time.Time, settings Settings) domain.DaysSalesOutstanding {
	windowDays := settings.DSOSalesWindowDays
	if windowDays <= 0 {
		windowDays = DefaultSettings().DSOSalesWindowDays
	}

	window := domain.MetricPeriod{
		Start: domain.DateOnly(asOf).AddDate(0, 0, -windowDays),
		End:   domain.DateOnly(asOf),
	}

	result := domain.DaysSalesOutstanding{
		CurrentReceivables: CurrentReceivables(invoices, asOf),
		SalesWindow:        SalesInPeriod(invoices, window),
		WindowDays:         windowDays,
		Benchmark:          settings.DSOBenchmarkDays,
	}

	if result.SalesWindow > 0 {
		result.DSO = result.CurrentReceivables / (result.SalesWindow / float64(windowDays))
	}
	result.Rating = DSORating(result.DSO, settings.DSOBenchmarkDays)

	return result
}

// CEIRating classifica o índice de efetividade de cobrança
func CEIRating(index float64) domain.PerformanceRating {
	switch {
	case index >= 95:
		return domain.RatingExcellent
	case index >= 85:
		return domain.RatingGood
	case index >= 75:
		return domain.RatingFair
	case index >= 65:
		return domain.RatingPoor
	default:
		return domain.RatingCritical
	}
}

// CollectionEffectivenessIndex calcula (inicial + vendas - final) / (inicial + vendas) * 100
func CollectionEffectivenessIndex(ledger domain.Ledger, period domain.MetricPeriod) domain.CollectionEffectivenessIndex {
	cei := domain.CollectionEffectivenessIndex{
		BeginningAR:   StartingReceivables(ledger, period),
		PeriodSales:   SalesInPeriod(ledger.Invoices, period),
		EndingAR:      EndingReceivables(ledger, period),
		CashCollected: CollectedInPeriod(ledger.Payments, period),
	}

	available := cei.BeginningAR + cei.PeriodSales
	cei.Index = percentage(available-cei.EndingAR, available)
	cei.Rating = CEIRating(cei.Index)

	return cei
}

// PromiseKeepingRate considera as promessas com data prometida dentro do período
func PromiseKeepingRate(promises []domain.Promise, period domain.MetricPeriod) (due, kept int, rate float64) {
	for _, promise := range promises {
		if !period.Contains(promise.PromisedDate) {
			continue
		}
		due++
		if promise.Status == domain.PromiseStatusKept {
			kept++
		}
	}
	return due, kept, percentage(float64(kept), float64(due))
}

// ContactSuccessRate considera as atividades realizadas dentro do período
func ContactSuccessRate(activities []domain.Activity, period domain.MetricPeriod) (total, successful int, rate float64) {
	for _, activity := range activities {
		if !period.Contains(activity.ActivityDate) {
			continue
		}
		total++
		if activity.Outcome.IsSuccessfulContact() {
			successful++
		}
	}
	return total, successful, percentage(float64(successful), float64(total))
}

// AverageCollectionTime é a média de dias entre emissão e pagamento das faturas quitadas,
// considerando os pagamentos da janela encerrada em asOf
func AverageCollectionTime(ledger domain.Ledger, asOf time.Time, windowDays int) float64 {
	window := domain.MetricPeriod{
		Start: domain.DateOnly(asOf).AddDate(0, 0, -windowDays),
		End:   domain.DateOnly(asOf),
	}

	paidInvoices := make(map[string]domain.Invoice)
	for _, invoice := range ledger.Invoices {
		if invoice.Status == domain.InvoiceStatusPaid {
			paidInvoices[invoice.ID] = invoice
		}
	}

	var totalDays, count int
	for _, payment := range ledger.Payments {
		if payment.InvoiceID == nil || !window.Contains(payment.PaymentDate) {
			continue
		}
		invoice, ok := paidInvoices[*payment.InvoiceID]
		if !ok {
			continue
		}
		totalDays += domain.DaysBetween(invoice.InvoiceDate, payment.PaymentDate)
		count++
	}

	if count == 0 {
		return 0
	}
	return float64(totalDays) / float64(count)
}

// Aging distribui as faturas em aberto nas faixas de vencimento na data de referência.
// Cada fatura em aberto cai em exatamente uma faixa, inclusive as emitidas depois de asOf.
func Aging(invoices []domain.Invoice, asOf time.Time) domain.AgingReport {
	asOf = domain.DateOnly(asOf)

	index := make(map[domain.AgingBucketName]int, len(domain.AgingBuckets))
	report := domain.AgingReport{
		AsOf:    asOf,
		Buckets: make([]domain.AgingBucket, len(domain.AgingBuckets)),
	}
	for i, name := range domain.AgingBuckets {
		index[name] = i
		report.Buckets[i] = domain.AgingBucket{Bucket: name}
	}

	for _, invoice := range invoices {
		if !invoice.Status.IsOpen() {
			continue
		}

		bucket := &report.Buckets[index[domain.BucketForDays(invoice.DaysPastDue(asOf))]]
		bucket.InvoiceCount++
		bucket.TotalAmount += invoice.Balance

		report.TotalBalance += invoice.Balance
		report.TotalInvoices++
	}

	for i := range report.Buckets {
		report.Buckets[i].PercentageOfTotal = percentage(report.Buckets[i].TotalAmount, report.TotalBalance)
	}

	pastDue := report.TotalBalance - report.Bucket(domain.AgingCurrent).TotalAmount
	seriouslyPastDue := report.Bucket(domain.Aging91To120).TotalAmount + report.Bucket(domain.AgingOver120).TotalAmount
	report.PastDuePercentage = percentage(pastDue, report.TotalBalance)
	report.SeriouslyPastDuePercentage = percentage(seriouslyPastDue, report.TotalBalance)

	return report
}

// ValidateLedger rejeita status desconhecidos e saldos fora do intervalo [0, valor]
func ValidateLedger(ledger domain.Ledger) error {
	for _, invoice := range ledger.Invoices {
		if err := invoice.Validate(); err != nil {
			return err
		}
	}
	for _, promise := range ledger.Promises {
		if err := promise.Validate(); err != nil {
			return err
		}
	}
	for _, activity := range ledger.Activities {
		if !activity.Outcome.Valid() {
			return domain.InvalidInputf("atividade %s com resultado desconhecido: %q", activity.ID, activity.Outcome)
		}
	}
	return nil
}

// GenerateEfficiencyReport compõe todos os indicadores do período e a lista dos clientes mais urgentes
func GenerateEfficiencyReport(
	ledger domain.Ledger,
	period domain.MetricPeriod,
	asOf time.Time,
	customers []domain.CustomerSnapshot,
	weights domain.Weights,
	thresholds domain.Thresholds,
	settings Settings,
) (domain.EfficiencyReport, error) {
	if err := period.Validate(); err != nil {
		return domain.EfficiencyReport{}, err
	}
	if err := ValidateLedger(ledger); err != nil {
		return domain.EfficiencyReport{}, err
	}

	topPriorities, err := prioritizing.PrioritizedList(customers, weights, thresholds, settings.TopPrioritiesLimit)
	if err != nil {
		return domain.EfficiencyReport{}, err
	}

	rate, starting, collected := CollectionRate(ledger, period)
	promisesDue, promisesKept, promiseRate := PromiseKeepingRate(ledger.Promises, period)
	activities, successful, contactRate := ContactSuccessRate(ledger.Activities, period)

	report := domain.EfficiencyReport{
		Period:                period,
		AsOf:                  domain.DateOnly(asOf),
		StartingReceivables:   utils.RoundWithTwoDecimalPlace(starting),
		CollectedAmount:       utils.RoundWithTwoDecimalPlace(collected),
		CollectionRate:        utils.RoundWithTwoDecimalPlace(rate),
		DSO:                   DSO(ledger.Invoices, asOf, settings),
		CEI:                   CollectionEffectivenessIndex(ledger, period),
		PromisesDue:           promisesDue,
		PromisesKept:          promisesKept,
		PromiseKeepingRate:    utils.RoundWithTwoDecimalPlace(promiseRate),
		TotalActivities:       activities,
		SuccessfulContacts:    successful,
		ContactSuccessRate:    utils.RoundWithTwoDecimalPlace(contactRate),
		AverageCollectionTime: utils.RoundWithTwoDecimalPlace(AverageCollectionTime(ledger, asOf, settings.CollectionTimeDays)),
		Aging:                 Aging(ledger.Invoices, asOf),
		TopPriorities:         topPriorities,
	}

	report.DSO.DSO = utils.RoundWithTwoDecimalPlace(report.DSO.DSO)
	report.CEI.Index = utils.RoundWithTwoDecimalPlace(report.CEI.Index)

	return report, nil
}
