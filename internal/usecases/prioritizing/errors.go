package prioritizing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de priorização
var (
	ErrCustomerNotFound  = errors.New("cliente não encontrado")
	ErrCustomerIDMissing = errors.New("ID do cliente é obrigatório")

	// Erros de banco de dados
	ErrFetchPortfolio = errors.New("erro ao carregar a carteira de clientes")
	ErrFetchSettings  = errors.New("erro ao carregar a configuração de pesos")
	ErrSaveSettings   = errors.New("erro ao gravar a configuração de pesos")
	ErrFetchRanking   = errors.New("erro ao carregar o ranking de prioridade")

	ErrGenerateID = errors.New("erro ao gerar identificador")
)

// PrioritizingError é um erro com contexto adicional para a priorização de cobrança
type PrioritizingError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CustomerID string // ID do cliente envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PrioritizingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PrioritizingError) Unwrap() error {
	return e.Err
}

func NewPrioritizingError(err error, code string, details string) *PrioritizingError {
	return &PrioritizingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCustomerPrioritizingError(err error, code string, customerID string, details string) *PrioritizingError {
	return &PrioritizingError{
		Err:        err,
		Code:       code,
		CustomerID: customerID,
		Details:    details,
	}
}
