package promising

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/collections-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/collections-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	promiseRepo  *mocks.MockPromiseRepository
	paymentRepo  *mocks.MockPaymentRepository
	activityRepo *mocks.MockActivityRepository
}

func newTestService(ctrl *gomock.Controller) (*Service, serviceMocks) {
	m := serviceMocks{
		promiseRepo:  mocks.NewMockPromiseRepository(ctrl),
		paymentRepo:  mocks.NewMockPaymentRepository(ctrl),
		activityRepo: mocks.NewMockActivityRepository(ctrl),
	}

	service := &Service{
		promiseRepo:  m.promiseRepo,
		paymentRepo:  m.paymentRepo,
		activityRepo: m.activityRepo,
		settings:     DefaultSettings(),
		now:          func() time.Time { return referenceDate.Add(10 * time.Hour) },
	}

	return service, m
}

func TestService_ProcessOverduePromises(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)
	invoiceID := strPtr("INV1")

	pending := []domain.Promise{
		pendingPromise("P1", "C1", invoiceID, 10, 1000),
		pendingPromise("P2", "C1", nil, 19, 500),
		pendingPromise("P3", "C2", nil, 5, 800),
		pendingPromise("P4", "C3", nil, 8, 200),
	}
	broken := []domain.Promise{
		{ID: "B1", CustomerID: "C2", Status: domain.PromiseStatusBroken, PromisedDate: day(1)},
		{ID: "B2", CustomerID: "C2", Status: domain.PromiseStatusBroken, PromisedDate: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)},
	}

	m.promiseRepo.EXPECT().ListByStatus(domain.PromiseStatusPending).Return(pending, nil)
	m.promiseRepo.EXPECT().ListByStatus(domain.PromiseStatusBroken).Return(broken, nil)

	m.paymentRepo.EXPECT().ListByCustomerBetween("C1", day(10), day(15)).Return([]domain.Payment{
		payment("PAY1", "C1", invoiceID, 12, 1000),
	}, nil)
	m.paymentRepo.EXPECT().ListByCustomerBetween("C2", day(5), day(10)).Return(nil, nil)
	m.paymentRepo.EXPECT().ListByCustomerBetween("C3", day(8), day(13)).Return(nil, errors.New("conexão perdida"))

	updated := map[string]domain.PromiseStatus{}
	m.promiseRepo.EXPECT().UpdateResolution(gomock.Any()).DoAndReturn(func(promise *domain.Promise) error {
		updated[promise.ID] = promise.Status
		return nil
	}).Times(2)

	var activities []*domain.Activity
	m.activityRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(activity *domain.Activity) error {
		activities = append(activities, activity)
		return nil
	}).Times(2)

	result, err := service.ProcessOverduePromises()

	require.NoError(t, err)
	assert.Equal(t, 3, result.Overdue)
	assert.Equal(t, 1, result.Kept)
	assert.Equal(t, 0, result.Partial)
	assert.Equal(t, 1, result.Broken)
	assert.Equal(t, 1, result.Escalations)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Resolutions, 2)

	assert.Equal(t, domain.PromiseStatusKept, updated["P1"])
	assert.Equal(t, domain.PromiseStatusBroken, updated["P3"])
	assert.True(t, result.Resolutions[1].EscalationRequired)

	require.Len(t, activities, 2)
	assert.Equal(t, domain.OutcomePaymentReceived, activities[0].Outcome)
	assert.Equal(t, domain.OutcomeOther, activities[1].Outcome)
	assert.Equal(t, domain.SystemPerformer, activities[1].PerformedBy)
	assert.NotEmpty(t, activities[1].ID)
}

func TestService_ProcessOverduePromises_UpdateFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.promiseRepo.EXPECT().ListByStatus(domain.PromiseStatusPending).Return([]domain.Promise{
		pendingPromise("P1", "C1", nil, 10, 100),
	}, nil)
	m.promiseRepo.EXPECT().ListByStatus(domain.PromiseStatusBroken).Return(nil, nil)
	m.paymentRepo.EXPECT().ListByCustomerBetween("C1", day(10), day(15)).Return(nil, nil)
	m.promiseRepo.EXPECT().UpdateResolution(gomock.Any()).Return(errors.New("nenhuma promessa pendente atualizada"))

	result, err := service.ProcessOverduePromises()

	require.NoError(t, err)
	assert.Equal(t, 1, result.Overdue)
	assert.Equal(t, 1, result.Failed)
	assert.Empty(t, result.Resolutions)
}

func TestService_ProcessOverduePromises_FetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.promiseRepo.EXPECT().ListByStatus(domain.PromiseStatusPending).Return(nil, errors.New("timeout"))

	result, err := service.ProcessOverduePromises()

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, ErrFetchPromises.Error())
}
