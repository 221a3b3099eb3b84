package domain

import "time"

type PromiseStatus string

const (
	PromiseStatusPending   PromiseStatus = "PENDING"
	PromiseStatusKept      PromiseStatus = "KEPT"
	PromiseStatusBroken    PromiseStatus = "BROKEN"
	PromiseStatusPartial   PromiseStatus = "PARTIAL"
	PromiseStatusCancelled PromiseStatus = "CANCELLED"
)

func (s PromiseStatus) Valid() bool {
	switch s {
	case PromiseStatusPending, PromiseStatusKept, PromiseStatusBroken, PromiseStatusPartial, PromiseStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo permite apenas PENDING -> estado final
func (s PromiseStatus) CanTransitionTo(next PromiseStatus) bool {
	if s != PromiseStatusPending || !next.Valid() {
		return false
	}
	return next != PromiseStatusPending
}

type Promise struct {
	ID                string        `json:"id"`
	CustomerID        string        `json:"customer_id"`
	InvoiceID         *string       `json:"invoice_id"`
	PromisedDate      time.Time     `json:"promised_date"`
	PromisedAmount    float64       `json:"promised_amount"`
	Status            PromiseStatus `json:"status"`
	ActualPaymentDate *time.Time    `json:"actual_payment_date"`
	ActualAmount      *float64      `json:"actual_amount"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func (p Promise) Validate() error {
	if !p.Status.Valid() {
		return InvalidInputf("promessa %s com status desconhecido: %q", p.ID, p.Status)
	}
	return nil
}
