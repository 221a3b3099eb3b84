package domain

import "time"

type RiskRating string

const (
	RiskRatingLow    RiskRating = "LOW"
	RiskRatingMedium RiskRating = "MEDIUM"
	RiskRatingHigh   RiskRating = "HIGH"
)

// Valid verifica se o rating de risco é conhecido
func (r RiskRating) Valid() bool {
	switch r {
	case RiskRatingLow, RiskRatingMedium, RiskRatingHigh:
		return true
	}
	return false
}

type Customer struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	CompanyName        *string    `json:"company_name"`
	Email              *string    `json:"email"`
	Phone              *string    `json:"phone"`
	CreditLimit        float64    `json:"credit_limit"`
	PaymentTerms       int        `json:"payment_terms"`
	RiskRating         RiskRating `json:"risk_rating"`
	CollectionPriority *Tier      `json:"collection_priority"`
	LastContactDate    *time.Time `json:"last_contact_date"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// CustomerSnapshot é a visão agregada de um cliente consumida pelo score de prioridade
type CustomerSnapshot struct {
	CustomerID         string     `json:"customer_id"`
	Name               string     `json:"name"`
	RiskRating         RiskRating `json:"risk_rating"`
	OutstandingBalance float64    `json:"outstanding_balance"`
	OverdueBalance     float64    `json:"overdue_balance"`
	MaxDaysOverdue     int        `json:"max_days_overdue"`
	DaysSinceContact   *int       `json:"days_since_contact"` // nil quando nunca houve contato
	BrokenPromises     int        `json:"broken_promises"`
	PriorityOverride   *Tier      `json:"priority_override,omitempty"`
}

// NewCustomerSnapshot agrega faturas e promessas de um cliente na data de referência
func NewCustomerSnapshot(customer Customer, invoices []Invoice, promises []Promise, asOf time.Time) CustomerSnapshot {
	snapshot := CustomerSnapshot{
		CustomerID:       customer.ID,
		Name:             customer.Name,
		RiskRating:       customer.RiskRating,
		PriorityOverride: customer.CollectionPriority,
	}

	for _, invoice := range invoices {
		if invoice.CustomerID != customer.ID || !invoice.Status.IsOpen() {
			continue
		}

		snapshot.OutstandingBalance += invoice.Balance

		days := invoice.DaysPastDue(asOf)
		if days > 0 {
			snapshot.OverdueBalance += invoice.Balance
		}
		if days > snapshot.MaxDaysOverdue {
			snapshot.MaxDaysOverdue = days
		}
	}

	for _, promise := range promises {
		if promise.CustomerID == customer.ID && promise.Status == PromiseStatusBroken {
			snapshot.BrokenPromises++
		}
	}

	if customer.LastContactDate != nil {
		days := DaysBetween(*customer.LastContactDate, asOf)
		if days < 0 {
			days = 0
		}
		snapshot.DaysSinceContact = &days
	}

	return snapshot
}
