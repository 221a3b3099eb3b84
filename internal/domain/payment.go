package domain

import "time"

type Payment struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	InvoiceID   *string   `json:"invoice_id"` // nil para pagamentos não aplicados
	PaymentDate time.Time `json:"payment_date"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	CreatedAt   time.Time `json:"created_at"`
}

// AppliesTo verifica se o pagamento foi aplicado na fatura informada
func (p Payment) AppliesTo(invoiceID string) bool {
	return p.InvoiceID != nil && *p.InvoiceID == invoiceID
}
