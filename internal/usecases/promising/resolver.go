// Package promising apura as promessas de pagamento vencidas
package promising

import (
	"time"

	"github.com/vfg2006/collections-manager-api/internal/domain"
)

const escalationLookbackDays = 90

type Settings struct {
	GraceDays         int
	PaymentWindowDays int
	KeptRatio         float64
	PartialRatio      float64
	EscalationCount   int
}

func DefaultSettings() Settings {
	return Settings{
		GraceDays:         3,
		PaymentWindowDays: 5,
		KeptRatio:         0.99,
		PartialRatio:      0.9,
		EscalationCount:   3,
	}
}

// Resolution é o resultado da apuração de uma promessa
type Resolution struct {
	PromiseID          string               `json:"promise_id"`
	CustomerID         string               `json:"customer_id"`
	InvoiceID          *string              `json:"invoice_id"`
	PromisedAmount     float64              `json:"promised_amount"`
	ReceivedAmount     float64              `json:"received_amount"`
	Status             domain.PromiseStatus `json:"status"`
	LastPaymentDate    *time.Time           `json:"last_payment_date"`
	EscalationRequired bool                 `json:"escalation_required"`
}

// Apply devolve uma cópia da promessa com o status final e o pagamento apurado
func (r Resolution) Apply(promise domain.Promise) domain.Promise {
	resolved := promise
	resolved.Status = r.Status
	if r.ReceivedAmount > 0 {
		amount := r.ReceivedAmount
		resolved.ActualAmount = &amount
		resolved.ActualPaymentDate = r.LastPaymentDate
	}
	return resolved
}

// PaymentWindow retorna o intervalo de datas em que os pagamentos contam para a promessa
func PaymentWindow(promise domain.Promise, settings Settings) (time.Time, time.Time) {
	start := domain.DateOnly(promise.PromisedDate)
	return start, start.AddDate(0, 0, settings.PaymentWindowDays)
}

// IsOverdue indica se a promessa pendente já passou da carência
func IsOverdue(promise domain.Promise, asOf time.Time, settings Settings) bool {
	if promise.Status != domain.PromiseStatusPending {
		return false
	}
	return domain.DaysBetween(promise.PromisedDate, asOf) > settings.GraceDays
}

// ResolvePromise classifica uma promessa pendente a partir dos pagamentos do cliente.
// Quando a promessa referencia uma fatura, somente os pagamentos aplicados nela contam.
func ResolvePromise(promise domain.Promise, payments []domain.Payment, settings Settings) (Resolution, error) {
	if err := promise.Validate(); err != nil {
		return Resolution{}, err
	}
	if promise.Status != domain.PromiseStatusPending {
		return Resolution{}, domain.InvalidInputf("promessa %s já apurada com status %s", promise.ID, promise.Status)
	}
	if promise.PromisedAmount <= 0 {
		return Resolution{}, domain.InvalidInputf("promessa %s com valor prometido inválido: %.2f", promise.ID, promise.PromisedAmount)
	}

	start, end := PaymentWindow(promise, settings)

	var received float64
	var lastPayment *time.Time
	for _, payment := range payments {
		if payment.CustomerID != promise.CustomerID {
			continue
		}
		if promise.InvoiceID != nil && !payment.AppliesTo(*promise.InvoiceID) {
			continue
		}

		date := domain.DateOnly(payment.PaymentDate)
		if date.Before(start) || date.After(end) {
			continue
		}

		received += payment.Amount
		if lastPayment == nil || date.After(*lastPayment) {
			paidAt := date
			lastPayment = &paidAt
		}
	}

	status := classify(received/promise.PromisedAmount, settings)
	if !promise.Status.CanTransitionTo(status) {
		return Resolution{}, domain.InvalidInputf("transição inválida da promessa %s: %s -> %s", promise.ID, promise.Status, status)
	}

	return Resolution{
		PromiseID:       promise.ID,
		CustomerID:      promise.CustomerID,
		InvoiceID:       promise.InvoiceID,
		PromisedAmount:  promise.PromisedAmount,
		ReceivedAmount:  received,
		Status:          status,
		LastPaymentDate: lastPayment,
	}, nil
}

func classify(ratio float64, settings Settings) domain.PromiseStatus {
	switch {
	case ratio >= settings.KeptRatio:
		return domain.PromiseStatusKept
	case ratio >= settings.PartialRatio:
		return domain.PromiseStatusPartial
	default:
		return domain.PromiseStatusBroken
	}
}

// RecentBrokenCount conta as promessas quebradas do cliente nos últimos 90 dias
func RecentBrokenCount(promises []domain.Promise, customerID string, asOf time.Time) int {
	count := 0
	for _, promise := range promises {
		if promise.CustomerID != customerID || promise.Status != domain.PromiseStatusBroken {
			continue
		}
		days := domain.DaysBetween(promise.PromisedDate, asOf)
		if days >= 0 && days <= escalationLookbackDays {
			count++
		}
	}
	return count
}
