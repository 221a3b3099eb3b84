// Package domain contém as estruturas de dados do domínio de cobrança
package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indica dados malformados enviados pelo chamador
// (enum desconhecido, período invertido, peso negativo).
var ErrInvalidInput = errors.New("entrada inválida")

// InvalidInputf cria um erro que envolve ErrInvalidInput com detalhes
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// IsInvalidInput verifica se o erro é de entrada inválida
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
