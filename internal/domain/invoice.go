package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusOpen       InvoiceStatus = "OPEN"
	InvoiceStatusPartial    InvoiceStatus = "PARTIAL"
	InvoiceStatusPaid       InvoiceStatus = "PAID"
	InvoiceStatusWrittenOff InvoiceStatus = "WRITTEN_OFF"
	InvoiceStatusDisputed   InvoiceStatus = "DISPUTED"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusOpen, InvoiceStatusPartial, InvoiceStatusPaid, InvoiceStatusWrittenOff, InvoiceStatusDisputed:
		return true
	}
	return false
}

// IsOpen indica se a fatura ainda compõe o contas a receber em aberto
func (s InvoiceStatus) IsOpen() bool {
	return s == InvoiceStatusOpen || s == InvoiceStatusPartial
}

type Invoice struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	InvoiceNumber string        `json:"invoice_number"`
	InvoiceDate   time.Time     `json:"invoice_date"`
	DueDate       time.Time     `json:"due_date"`
	Amount        float64       `json:"amount"`
	Balance       float64       `json:"balance"`
	Status        InvoiceStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// DaysPastDue retorna os dias em atraso na data de referência, nunca negativo
func (i Invoice) DaysPastDue(asOf time.Time) int {
	days := DaysBetween(i.DueDate, asOf)
	if days < 0 {
		return 0
	}
	return days
}

// Validate verifica as invariantes de saldo e status
func (i Invoice) Validate() error {
	if !i.Status.Valid() {
		return InvalidInputf("fatura %s com status desconhecido: %q", i.ID, i.Status)
	}
	if i.Balance < 0 || i.Balance > i.Amount {
		return InvalidInputf("fatura %s com saldo %.2f fora do intervalo [0, %.2f]", i.ID, i.Balance, i.Amount)
	}
	return nil
}
