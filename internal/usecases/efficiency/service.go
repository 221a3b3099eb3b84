package efficiency

import (
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/collections-manager-api/infrastructure/repository"
	"github.com/vfg2006/collections-manager-api/internal/config"
	"github.com/vfg2006/collections-manager-api/internal/domain"
	"github.com/vfg2006/collections-manager-api/internal/usecases/prioritizing"
	"github.com/vfg2006/collections-manager-api/pkg/apiErrors"
	"github.com/vfg2006/collections-manager-api/pkg/utils"
)

var (
	ErrFetchLedger   = errors.New("erro ao carregar o razão de contas a receber")
	ErrSaveSnapshot  = errors.New("erro ao gravar métricas de cobrança")
	ErrFetchSnapshot = errors.New("erro ao consultar métricas de cobrança")
	ErrGenerateID    = errors.New("erro ao gerar identificador")
)

// EfficiencyError é um erro com contexto adicional para os indicadores de cobrança
type EfficiencyError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *EfficiencyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *EfficiencyError) Unwrap() error {
	return e.Err
}

func NewEfficiencyError(err error, code string, details string) *EfficiencyError {
	return &EfficiencyError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// WeightsProvider fornece os pesos efetivos do score
type WeightsProvider interface {
	GetWeights() (domain.Weights, error)
}

type Calculator interface {
	GetEfficiencyReport(period domain.MetricPeriod) (*domain.EfficiencyReport, error)
	GetAgingReport() (*domain.AgingReport, error)
	SaveMetricsSnapshot(period domain.MetricPeriod) (*domain.CollectionMetricsSnapshot, error)
	ListMetricsSnapshots(limit int) ([]domain.CollectionMetricsSnapshot, error)
	GetMetricsTrend(limit int) (*domain.MetricsTrendReport, error)
	GetCollectorPerformance(period domain.MetricPeriod) (*domain.CollectorPerformanceReport, error)
	GetPromiseFollowUps(daysAhead int) ([]domain.PromiseFollowUp, error)
	GetPromisePerformance(period domain.MetricPeriod) (*domain.PromisePerformanceReport, error)
}

var _ Calculator = (*Service)(nil)

type Service struct {
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
	paymentRepo  repository.PaymentRepository
	promiseRepo  repository.PromiseRepository
	activityRepo repository.ActivityRepository
	metricsRepo  repository.CollectionMetricsRepository
	weights      WeightsProvider
	thresholds   domain.Thresholds
	settings     Settings
	now          func() time.Time
}

func NewService(
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	promiseRepo repository.PromiseRepository,
	activityRepo repository.ActivityRepository,
	metricsRepo repository.CollectionMetricsRepository,
	weights WeightsProvider,
	cfg *config.Config,
) *Service {
	return &Service{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		promiseRepo:  promiseRepo,
		activityRepo: activityRepo,
		metricsRepo:  metricsRepo,
		weights:      weights,
		thresholds:   cfg.Scoring.Thresholds(),
		settings: Settings{
			DSOBenchmarkDays:   cfg.Efficiency.DSOBenchmarkDays,
			DSOSalesWindowDays: cfg.Efficiency.DSOSalesWindowDays,
			CollectionTimeDays: cfg.Efficiency.CollectionTimeDays,
			TopPrioritiesLimit: cfg.Efficiency.TopPrioritiesLimit,
		},
		now: time.Now,
	}
}

func (s *Service) GetEfficiencyReport(period domain.MetricPeriod) (*domain.EfficiencyReport, error) {
	if err := period.Validate(); err != nil {
		return nil, NewEfficiencyError(err, apiErrors.ErrInvalidInput, "")
	}

	asOf := s.now()

	ledger, err := s.loadLedger(period, asOf)
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.List()
	if err != nil {
		return nil, NewEfficiencyError(pkgerrors.Wrap(err, ErrFetchLedger.Error()), apiErrors.ErrDatabaseOperation, "clientes")
	}

	brokenPromises, err := s.promiseRepo.ListByStatus(domain.PromiseStatusBroken)
	if err != nil {
		return nil, NewEfficiencyError(pkgerrors.Wrap(err, ErrFetchLedger.Error()), apiErrors.ErrDatabaseOperation, "promessas quebradas")
	}

	weights, err := s.weights.GetWeights()
	if err != nil {
		return nil, err
	}

	snapshots := prioritizing.BuildSnapshots(customers, ledger.Invoices, brokenPromises, asOf)

	report, err := GenerateEfficiencyReport(ledger, period, asOf, snapshots, weights, s.thresholds, s.settings)
	if err != nil {
		if domain.IsInvalidInput(err) {
			return nil, NewEfficiencyError(err, apiErrors.ErrInvalidInput, "")
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"period_start":    period.Start.Format(time.DateOnly),
		"period_end":      period.End.Format(time.DateOnly),
		"collection_rate": report.CollectionRate,
		"dso":             report.DSO.DSO,
	}).Debug("Relatório de eficiência gerado")

	return &report, nil
}

func (s *Service) GetAgingReport() (*domain.AgingReport, error) {
	asOf := s.now()

	invoices, err := s.invoiceRepo.ListByStatus(domain.InvoiceStatusOpen, domain.InvoiceStatusPartial)
	if err != nil {
		return nil, NewEfficiencyError(pkgerrors.Wrap(err, ErrFetchLedger.Error()), apiErrors.ErrDatabaseOperation, "faturas")
	}

	if err := ValidateLedger(domain.Ledger{Invoices: invoices}); err != nil {
		return nil, NewEfficiencyError(err, apiErrors.ErrInvalidInput, "")
	}

	report := Aging(invoices, asOf)
	for i := range report.Buckets {
		report.Buckets[i].TotalAmount = utils.RoundWithTwoDecimalPlace(report.Buckets[i].TotalAmount)
		report.Buckets[i].PercentageOfTotal = utils.RoundWithTwoDecimalPlace(report.Buckets[i].PercentageOfTotal)
	}
	report.TotalBalance = utils.RoundWithTwoDecimalPlace(report.TotalBalance)
	report.PastDuePercentage = utils.RoundWithTwoDecimalPlace(report.PastDuePercentage)
	report.SeriouslyPastDuePercentage = utils.RoundWithTwoDecimalPlace(report.SeriouslyPastDuePercentage)

	return &report, nil
}

// SaveMetricsSnapshot gera o relatório do período e grava o resumo em collection_metrics
func (s *Service) SaveMetricsSnapshot(period domain.MetricPeriod) (*domain.CollectionMetricsSnapshot, error) {
	report, err := s.GetEfficiencyReport(period)
	if err != nil {
		return nil, err
	}

	snapshot := domain.NewCollectionMetricsSnapshot(*report)

	snapshot.ID, err = utils.GenerateID()
	if err != nil {
		return nil, NewEfficiencyError(pkgerrors.Wrap(err, ErrGenerateID.Error()), apiErrors.ErrInternalServer, "")
	}

	if err := s.metricsRepo.Create(&snapshot); err != nil {
		return nil, NewEfficiencyError(pkgerrors.Wrap(err, ErrSaveSnapshot.Error()), apiErrors.ErrDatabaseOperation, "")
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id":  snapshot.ID,
		"period_start": period.Start.Format(time.DateOnly),
		"period_end":   period.End.Format(time.DateOnly),
	}).Info("Métricas de cobrança gravadas")

	return &snapshot, nil
}

func (s *Service) ListMetricsSnapshots(limit int) ([]domain.CollectionMetricsSnapshot, error) {
	snapshots, err := s.metricsRepo.List(limit)
	if err != nil {
		return nil, NewEfficiencyError(pkgerrors.Wrap(err, ErrFetchSnapshot.Error()), apiErrors.ErrDatabaseOperation, "")
	}
	return snapshots, nil
}

// GetMetricsTrend analisa a tendência dos últimos snapshots gravados
func (s *Service) GetMetricsTrend(limit int) (*domain.MetricsTrendReport, error) {
	snapshots, err := s.ListMetricsSnapshots(limit)
	if err != nil {
		return nil, err
	}

	report := MetricTrends(snapshots)
	for i := range report.Trends {
		report.Trends[i].EarlierAverage = utils.RoundWithTwoDecimalPlace(report.Trends[i].EarlierAverage)
		report.Trends[i].RecentAverage = utils.RoundWithTwoDecimalPlace(report.Trends[i].RecentAverage)
		report.Trends[i].ChangePercentage = utils.RoundWithTwoDecimalPlace(report.Trends[i].ChangePercentage)
	}

	return &report, nil
}

func (s *Service) GetCollectorPerformance(period domain.MetricPeriod) (*domain.CollectorPerformanceReport, error) {
	if err := period.Validate(); err != nil {
		return nil, NewEfficiencyError(err, apiErrors.ErrInvalidInput, "")
	}

	activities, err := s.activityRepo.ListBetween(period.Start, period.End)
	if err != nil {
		return nil, NewEfficiencyError(pkgerrors.Wrap(err, ErrFetchLedger.Error()), apiErrors.ErrDatabaseOperation, "atividades")
	}

	payments, err := s.paymentRepo.ListUntil(period.End.AddDate(0, 0, attributionWindowDays))
	if err != nil {
		return nil, NewEfficiencyError(pkgerrors.Wrap(err, ErrFetchLedger.Error()), apiErrors.ErrDatabaseOperation, "pagamentos")
	}

	report := CollectorPerformance(activities, payments, period)
	for i := range report.Collectors {
		collector := &report.Collectors[i]
		collector.ContactSuccessRate = utils.RoundWithTwoDecimalPlace(collector.ContactSuccessRate)
		collector.CashCollected = utils.RoundWithTwoDecimalPlace(collector.CashCollected)
		collector.EfficiencyRatio = utils.RoundWithTwoDecimalPlace(collector.EfficiencyRatio)
		collector.PerformanceScore = utils.RoundWithTwoDecimalPlace(collector.PerformanceScore)
	}
	report.Team.TotalCashCollected = utils.RoundWithTwoDecimalPlace(report.Team.TotalCashCollected)
	report.Team.TeamContactRate = utils.RoundWithTwoDecimalPlace(report.Team.TeamContactRate)
	report.Team.TeamPromiseRate = utils.RoundWithTwoDecimalPlace(report.Team.TeamPromiseRate)
	report.Team.AveragePerformanceScore = utils.RoundWithTwoDecimalPlace(report.Team.AveragePerformanceScore)
	report.Team.CashPerActivity = utils.RoundWithTwoDecimalPlace(report.Team.CashPerActivity)

	logrus.WithFields(logrus.Fields{
		"period_start": period.Start.Format(time.DateOnly),
		"period_end":   period.End.Format(time.DateOnly),
		"collectors":   report.Team.TotalCollectors,
	}).Debug("Desempenho dos cobradores calculado")

	return &report, nil
}

// GetPromiseFollowUps lista as promessas pendentes que vencem nos próximos daysAhead dias ou já venceram
func (s *Service) GetPromiseFollowUps(daysAhead int) ([]domain.PromiseFollowUp, error) {
	if daysAhead < 0 {
		return nil, NewEfficiencyError(domain.InvalidInputf("dias à frente não pode ser negativo: %d", daysAhead), apiErrors.ErrInvalidInput, "")
	}

	promises, err := s.promiseRepo.ListByStatus(domain.PromiseStatusPending)
	if err != nil {
		return nil, NewEfficiencyError(pkgerrors.Wrap(err, ErrFetchLedger.Error()), apiErrors.ErrDatabaseOperation, "promessas")
	}

	customers, err := s.customersByID()
	if err != nil {
		return nil, err
	}

	return PromiseFollowUps(promises, customers, s.now(), daysAhead), nil
}

func (s *Service) GetPromisePerformance(period domain.MetricPeriod) (*domain.PromisePerformanceReport, error) {
	if err := period.Validate(); err != nil {
		return nil, NewEfficiencyError(err, apiErrors.ErrInvalidInput, "")
	}

	promises, err := s.promiseRepo.ListPromisedBetween(period.Start, period.End)
	if err != nil {
		return nil, NewEfficiencyError(pkgerrors.Wrap(err, ErrFetchLedger.Error()), apiErrors.ErrDatabaseOperation, "promessas")
	}

	if err := ValidateLedger(domain.Ledger{Promises: promises}); err != nil {
		return nil, NewEfficiencyError(err, apiErrors.ErrInvalidInput, "")
	}

	customers, err := s.customersByID()
	if err != nil {
		return nil, err
	}

	report := PromisePerformance(promises, customers, period)
	report.GeneratedAt = s.now()
	report.Overall = roundPromiseStatistics(report.Overall)
	for rating, stats := range report.ByRiskRating {
		report.ByRiskRating[rating] = roundPromiseStatistics(stats)
	}
	for i := range report.TopCustomers {
		report.TopCustomers[i].KeepRate = utils.RoundWithTwoDecimalPlace(report.TopCustomers[i].KeepRate)
		report.TopCustomers[i].TotalPromised = utils.RoundWithTwoDecimalPlace(report.TopCustomers[i].TotalPromised)
	}

	return &report, nil
}

func roundPromiseStatistics(stats domain.PromiseStatistics) domain.PromiseStatistics {
	stats.KeepRate = utils.RoundWithTwoDecimalPlace(stats.KeepRate)
	stats.TotalPromised = utils.RoundWithTwoDecimalPlace(stats.TotalPromised)
	stats.TotalReceived = utils.RoundWithTwoDecimalPlace(stats.TotalReceived)
	stats.FulfillmentRate = utils.RoundWithTwoDecimalPlace(stats.FulfillmentRate)
	stats.AverageDelay = utils.RoundWithTwoDecimalPlace(stats.AverageDelay)
	return stats
}

func (s *Service) customersByID() (map[string]domain.Customer, error) {
	customers, err := s.customerRepo.List()
	if err != nil {
		return nil, NewEfficiencyError(pkgerrors.Wrap(err, ErrFetchLedger.Error()), apiErrors.ErrDatabaseOperation, "clientes")
	}

	byID := make(map[string]domain.Customer, len(customers))
	for _, customer := range customers {
		byID[customer.ID] = customer
	}
	return byID, nil
}

// loadLedger carrega o razão necessário para os indicadores do período e da data de referência
func (s *Service) loadLedger(period domain.MetricPeriod, asOf time.Time) (domain.Ledger, error) {
	cutoff := asOf
	if period.End.After(cutoff) {
		cutoff = period.End
	}

	invoices, err := s.invoiceRepo.ListIssuedUntil(cutoff)
	if err != nil {
		return domain.Ledger{}, NewEfficiencyError(pkgerrors.Wrap(err, ErrFetchLedger.Error()), apiErrors.ErrDatabaseOperation, "faturas")
	}

	payments, err := s.paymentRepo.ListUntil(cutoff)
	if err != nil {
		return domain.Ledger{}, NewEfficiencyError(pkgerrors.Wrap(err, ErrFetchLedger.Error()), apiErrors.ErrDatabaseOperation, "pagamentos")
	}

	promises, err := s.promiseRepo.ListPromisedBetween(period.Start, period.End)
	if err != nil {
		return domain.Ledger{}, NewEfficiencyError(pkgerrors.Wrap(err, ErrFetchLedger.Error()), apiErrors.ErrDatabaseOperation, "promessas")
	}

	activities, err := s.activityRepo.ListBetween(period.Start, period.End)
	if err != nil {
		return domain.Ledger{}, NewEfficiencyError(pkgerrors.Wrap(err, ErrFetchLedger.Error()), apiErrors.ErrDatabaseOperation, "atividades")
	}

	return domain.Ledger{
		Invoices:   invoices,
		Payments:   payments,
		Promises:   promises,
		Activities: activities,
	}, nil
}
