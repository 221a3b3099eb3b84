package promising

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/collections-manager-api/internal/domain"
)

var referenceDate = time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func pendingPromise(id, customerID string, invoiceID *string, promisedDay int, amount float64) domain.Promise {
	return domain.Promise{
		ID:             id,
		CustomerID:     customerID,
		InvoiceID:      invoiceID,
		PromisedDate:   day(promisedDay),
		PromisedAmount: amount,
		Status:         domain.PromiseStatusPending,
	}
}

func payment(id, customerID string, invoiceID *string, paymentDay int, amount float64) domain.Payment {
	return domain.Payment{
		ID:          id,
		CustomerID:  customerID,
		InvoiceID:   invoiceID,
		PaymentDate: day(paymentDay),
		Amount:      amount,
	}
}

func TestIsOverdue(t *testing.T) {
	settings := DefaultSettings()

	tests := []struct {
		name     string
		promise  domain.Promise
		expected bool
	}{
		{
			name:     "Dentro da carência",
			promise:  pendingPromise("P1", "C1", nil, 17, 100),
			expected: false,
		},
		{
			name:     "Carência expirada",
			promise:  pendingPromise("P2", "C1", nil, 16, 100),
			expected: true,
		},
		{
			name: "Promessa já apurada",
			promise: func() domain.Promise {
				p := pendingPromise("P3", "C1", nil, 1, 100)
				p.Status = domain.PromiseStatusKept
				return p
			}(),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsOverdue(tt.promise, referenceDate, settings))
		})
	}
}

func TestResolvePromise(t *testing.T) {
	settings := DefaultSettings()
	invoiceID := strPtr("INV1")

	tests := []struct {
		name             string
		promise          domain.Promise
		payments         []domain.Payment
		expectedStatus   domain.PromiseStatus
		expectedReceived float64
		expectedLastDay  int
	}{
		{
			name:    "Pagamento integral na janela",
			promise: pendingPromise("P1", "C1", invoiceID, 10, 1000),
			payments: []domain.Payment{
				payment("PAY1", "C1", invoiceID, 11, 500),
				payment("PAY2", "C1", invoiceID, 14, 495),
				payment("PAY3", "C1", invoiceID, 16, 300),
				payment("PAY4", "C1", strPtr("INV2"), 12, 300),
			},
			expectedStatus:   domain.PromiseStatusKept,
			expectedReceived: 995,
			expectedLastDay:  14,
		},
		{
			name:    "Pagamento parcial acima do mínimo",
			promise: pendingPromise("P2", "C1", invoiceID, 10, 1000),
			payments: []domain.Payment{
				payment("PAY1", "C1", invoiceID, 15, 920),
			},
			expectedStatus:   domain.PromiseStatusPartial,
			expectedReceived: 920,
			expectedLastDay:  15,
		},
		{
			name:    "Pagamento insuficiente",
			promise: pendingPromise("P3", "C1", invoiceID, 10, 1000),
			payments: []domain.Payment{
				payment("PAY1", "C1", invoiceID, 9, 1000),
				payment("PAY2", "C1", invoiceID, 10, 100),
			},
			expectedStatus:   domain.PromiseStatusBroken,
			expectedReceived: 100,
			expectedLastDay:  10,
		},
		{
			name:    "Promessa sem fatura usa todos os pagamentos do cliente",
			promise: pendingPromise("P4", "C1", nil, 10, 600),
			payments: []domain.Payment{
				payment("PAY1", "C1", strPtr("INV1"), 12, 300),
				payment("PAY2", "C1", nil, 13, 300),
				payment("PAY3", "C2", nil, 13, 300),
			},
			expectedStatus:   domain.PromiseStatusKept,
			expectedReceived: 600,
			expectedLastDay:  13,
		},
		{
			name:             "Nenhum pagamento",
			promise:          pendingPromise("P5", "C1", nil, 10, 600),
			expectedStatus:   domain.PromiseStatusBroken,
			expectedReceived: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolution, err := ResolvePromise(tt.promise, tt.payments, settings)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resolution.Status)
			assert.InDelta(t, tt.expectedReceived, resolution.ReceivedAmount, 0.001)
			if tt.expectedLastDay == 0 {
				assert.Nil(t, resolution.LastPaymentDate)
			} else {
				require.NotNil(t, resolution.LastPaymentDate)
				assert.Equal(t, day(tt.expectedLastDay), *resolution.LastPaymentDate)
			}
		})
	}
}

func TestResolvePromise_InvalidInput(t *testing.T) {
	settings := DefaultSettings()

	kept := pendingPromise("P1", "C1", nil, 10, 100)
	kept.Status = domain.PromiseStatusKept

	unknown := pendingPromise("P2", "C1", nil, 10, 100)
	unknown.Status = "LOST"

	zero := pendingPromise("P3", "C1", nil, 10, 0)

	for _, promise := range []domain.Promise{kept, unknown, zero} {
		t.Run(promise.ID, func(t *testing.T) {
			_, err := ResolvePromise(promise, nil, settings)

			require.Error(t, err)
			assert.True(t, domain.IsInvalidInput(err))
		})
	}
}

func TestResolution_Apply(t *testing.T) {
	promise := pendingPromise("P1", "C1", nil, 10, 1000)
	lastPayment := day(12)

	resolved := Resolution{
		Status:          domain.PromiseStatusPartial,
		ReceivedAmount:  950,
		LastPaymentDate: &lastPayment,
	}.Apply(promise)

	assert.Equal(t, domain.PromiseStatusPartial, resolved.Status)
	require.NotNil(t, resolved.ActualAmount)
	assert.Equal(t, 950.0, *resolved.ActualAmount)
	assert.Equal(t, &lastPayment, resolved.ActualPaymentDate)
	assert.Equal(t, domain.PromiseStatusPending, promise.Status)
	assert.Nil(t, promise.ActualAmount)

	broken := Resolution{Status: domain.PromiseStatusBroken}.Apply(promise)
	assert.Nil(t, broken.ActualAmount)
	assert.Nil(t, broken.ActualPaymentDate)
}

func TestRecentBrokenCount(t *testing.T) {
	promises := []domain.Promise{
		{ID: "P1", CustomerID: "C1", Status: domain.PromiseStatusBroken, PromisedDate: day(1)},
		{ID: "P2", CustomerID: "C1", Status: domain.PromiseStatusBroken, PromisedDate: referenceDate.AddDate(0, 0, -90)},
		{ID: "P3", CustomerID: "C1", Status: domain.PromiseStatusBroken, PromisedDate: referenceDate.AddDate(0, 0, -91)},
		{ID: "P4", CustomerID: "C1", Status: domain.PromiseStatusKept, PromisedDate: day(2)},
		{ID: "P5", CustomerID: "C2", Status: domain.PromiseStatusBroken, PromisedDate: day(3)},
	}

	assert.Equal(t, 2, RecentBrokenCount(promises, "C1", referenceDate))
	assert.Equal(t, 1, RecentBrokenCount(promises, "C2", referenceDate))
	assert.Equal(t, 0, RecentBrokenCount(promises, "C3", referenceDate))
}
