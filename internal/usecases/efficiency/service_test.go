package efficiency

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/collections-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/collections-manager-api/internal/domain"
	"github.com/vfg2006/collections-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type staticWeights struct {
	weights domain.Weights
	err     error
}

func (s staticWeights) GetWeights() (domain.Weights, error) {
	return s.weights, s.err
}

type serviceMocks struct {
	customerRepo *mocks.MockCustomerRepository
	invoiceRepo  *mocks.MockInvoiceRepository
	paymentRepo  *mocks.MockPaymentRepository
	promiseRepo  *mocks.MockPromiseRepository
	activityRepo *mocks.MockActivityRepository
	metricsRepo  *mocks.MockCollectionMetricsRepository
}

func newTestService(ctrl *gomock.Controller) (*Service, serviceMocks) {
	m := serviceMocks{
		customerRepo: mocks.NewMockCustomerRepository(ctrl),
		invoiceRepo:  mocks.NewMockInvoiceRepository(ctrl),
		paymentRepo:  mocks.NewMockPaymentRepository(ctrl),
		promiseRepo:  mocks.NewMockPromiseRepository(ctrl),
		activityRepo: mocks.NewMockActivityRepository(ctrl),
		metricsRepo:  mocks.NewMockCollectionMetricsRepository(ctrl),
	}

	service := &Service{
		customerRepo: m.customerRepo,
		invoiceRepo:  m.invoiceRepo,
		paymentRepo:  m.paymentRepo,
		promiseRepo:  m.promiseRepo,
		activityRepo: m.activityRepo,
		metricsRepo:  m.metricsRepo,
		weights:      staticWeights{weights: domain.DefaultWeights()},
		thresholds:   domain.DefaultThresholds(),
		settings:     DefaultSettings(),
		now:          func() time.Time { return asOf.Add(9 * time.Hour) },
	}

	return service, m
}

func (m serviceMocks) expectLedger() {
	ledger := ledgerFixture()

	m.invoiceRepo.EXPECT().ListIssuedUntil(gomock.Any()).Return(ledger.Invoices, nil)
	m.paymentRepo.EXPECT().ListUntil(gomock.Any()).Return(ledger.Payments, nil)
	m.promiseRepo.EXPECT().ListPromisedBetween(march.Start, march.End).Return(ledger.Promises, nil)
	m.activityRepo.EXPECT().ListBetween(march.Start, march.End).Return(ledger.Activities, nil)
	m.customerRepo.EXPECT().List().Return([]domain.Customer{
		{ID: "C1", RiskRating: domain.RiskRatingHigh},
		{ID: "C2", RiskRating: domain.RiskRatingLow},
	}, nil)
	m.promiseRepo.EXPECT().ListByStatus(domain.PromiseStatusBroken).Return(nil, nil)
}

func TestService_GetEfficiencyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	m.expectLedger()

	report, err := service.GetEfficiencyReport(march)
	require.NoError(t, err)

	assert.Equal(t, 73.33, report.CollectionRate)
	assert.Equal(t, asOf, report.AsOf)
	require.Len(t, report.TopPriorities, 2)
	assert.Equal(t, "C1", report.TopPriorities[0].Customer.CustomerID)
}

func TestService_GetEfficiencyReport_PeriodoInvertido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	_, err := service.GetEfficiencyReport(domain.MetricPeriod{Start: march.End, End: march.Start})

	var efficiencyErr *EfficiencyError
	require.True(t, errors.As(err, &efficiencyErr))
	assert.Equal(t, apiErrors.ErrInvalidInput, efficiencyErr.Code)
	assert.True(t, domain.IsInvalidInput(err))
}

func TestService_GetEfficiencyReport_ErroNoBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	m.invoiceRepo.EXPECT().ListIssuedUntil(gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := service.GetEfficiencyReport(march)

	var efficiencyErr *EfficiencyError
	require.True(t, errors.As(err, &efficiencyErr))
	assert.Equal(t, apiErrors.ErrDatabaseOperation, efficiencyErr.Code)
}

func TestService_GetAgingReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	m.invoiceRepo.EXPECT().
		ListByStatus(domain.InvoiceStatusOpen, domain.InvoiceStatusPartial).
		Return([]domain.Invoice{
			{ID: "I1", InvoiceDate: date(2024, 1, 1), DueDate: date(2024, 3, 21), Amount: 100, Balance: 100, Status: domain.InvoiceStatusOpen},
			{ID: "I2", InvoiceDate: date(2024, 1, 1), DueDate: date(2024, 2, 29), Amount: 200, Balance: 200, Status: domain.InvoiceStatusOpen},
		}, nil)

	report, err := service.GetAgingReport()
	require.NoError(t, err)

	assert.Equal(t, 1, report.Bucket(domain.Aging1To30).InvoiceCount)
	assert.Equal(t, 1, report.Bucket(domain.Aging31To60).InvoiceCount)
	assert.Equal(t, 33.33, report.Bucket(domain.Aging1To30).PercentageOfTotal)
	assert.Equal(t, 100.0, report.PastDuePercentage)
}

func TestService_SaveMetricsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	m.expectLedger()
	m.metricsRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(snapshot *domain.CollectionMetricsSnapshot) error {
			assert.NotEmpty(t, snapshot.ID)
			assert.Equal(t, 1100.0, snapshot.CollectedAmount)
			assert.Equal(t, 3, snapshot.TotalActivities)
			assert.Equal(t, 2, snapshot.SuccessfulContacts)
			return nil
		})

	snapshot, err := service.SaveMetricsSnapshot(march)
	require.NoError(t, err)
	assert.Equal(t, march.End, snapshot.PeriodEnd)
}

func TestService_GetCollectorPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activities, payments := collectorFixture()

	service, m := newTestService(ctrl)
	m.activityRepo.EXPECT().ListBetween(march.Start, march.End).Return(activities, nil)
	m.paymentRepo.EXPECT().ListUntil(date(2024, 4, 7)).Return(payments, nil)

	report, err := service.GetCollectorPerformance(march)
	require.NoError(t, err)

	require.Len(t, report.Collectors, 2)
	assert.Equal(t, "ana", report.Collectors[0].Collector)
	assert.Equal(t, 66.67, report.Team.TeamContactRate)
	assert.Equal(t, 33.33, report.Team.TeamPromiseRate)
}

func TestService_GetCollectorPerformance_PeriodoInvertido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	_, err := service.GetCollectorPerformance(domain.MetricPeriod{Start: march.End, End: march.Start})

	var efficiencyErr *EfficiencyError
	require.True(t, errors.As(err, &efficiencyErr))
	assert.Equal(t, apiErrors.ErrInvalidInput, efficiencyErr.Code)
}

func TestService_GetMetricsTrend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	m.metricsRepo.EXPECT().List(6).Return([]domain.CollectionMetricsSnapshot{
		snapshotFor(time.March, 110, 40, 90),
		snapshotFor(time.February, 100, 40, 90),
		snapshotFor(time.January, 105, 40, 90),
	}, nil)

	report, err := service.GetMetricsTrend(6)
	require.NoError(t, err)

	assert.Len(t, report.Snapshots, 3)
	assert.Equal(t, 105.0, report.Trend(domain.TrendTotalReceivables).EarlierAverage)
	assert.Equal(t, []domain.TrendAdvice{domain.AdviceMaintainStrategy}, report.Advice)
}

func TestService_GetMetricsTrend_ErroNoBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	m.metricsRepo.EXPECT().List(12).Return(nil, errors.New("conexão perdida"))

	_, err := service.GetMetricsTrend(12)

	var efficiencyErr *EfficiencyError
	require.True(t, errors.As(err, &efficiencyErr))
	assert.Equal(t, apiErrors.ErrDatabaseOperation, efficiencyErr.Code)
}

func TestService_GetPromiseFollowUps(t *testing.T) {
	t.Run("Lista promessas pendentes com dados do cliente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newTestService(ctrl)
		m.promiseRepo.EXPECT().ListByStatus(domain.PromiseStatusPending).Return([]domain.Promise{
			{ID: "PR1", CustomerID: "C1", PromisedDate: date(2024, 4, 2), PromisedAmount: 300, Status: domain.PromiseStatusPending},
			{ID: "PR2", CustomerID: "C2", PromisedDate: date(2024, 5, 2), PromisedAmount: 300, Status: domain.PromiseStatusPending},
		}, nil)
		m.customerRepo.EXPECT().List().Return([]domain.Customer{{ID: "C1", Name: "Alfa"}}, nil)

		items, err := service.GetPromiseFollowUps(7)
		require.NoError(t, err)

		require.Len(t, items, 1)
		assert.Equal(t, "PR1", items[0].Promise.ID)
		assert.Equal(t, "Alfa", items[0].CustomerName)
		assert.Equal(t, 2, items[0].DaysUntilDue)
	})

	t.Run("Dias negativos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newTestService(ctrl)

		_, err := service.GetPromiseFollowUps(-1)
		assert.True(t, domain.IsInvalidInput(err))
	})
}

func TestService_GetPromisePerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	m.promiseRepo.EXPECT().ListPromisedBetween(march.Start, march.End).Return(ledgerFixture().Promises, nil)
	m.customerRepo.EXPECT().List().Return([]domain.Customer{
		{ID: "C1", Name: "Alfa", RiskRating: domain.RiskRatingHigh},
		{ID: "C2", Name: "Beta", RiskRating: domain.RiskRatingLow},
	}, nil)

	report, err := service.GetPromisePerformance(march)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Overall.TotalPromises)
	assert.Equal(t, 50.0, report.Overall.KeepRate)
	assert.Equal(t, asOf.Add(9*time.Hour), report.GeneratedAt)
	assert.Empty(t, report.TopCustomers)
}
