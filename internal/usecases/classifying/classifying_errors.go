package classifying

import (
	"errors"
	"fmt"
)

var (
	ErrIntegration       = errors.New("falha na integração com o Google Ads")
	ErrDatabaseOperation = errors.New("erro de operação no banco de dados")
	ErrInvalidAccountID  = errors.New("identificador de conta inválido")
	ErrInvalidDateRange  = errors.New("janela de datas inválida")
	ErrEmptyCache        = errors.New("cache de contas vazio, execute a atualização de contas antes")
)

// ClassificationError carrega o código de API e detalhes de um erro de classificação
type ClassificationError struct {
	Err     error
	Code    string
	Details string
}

func (e *ClassificationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ClassificationError) Unwrap() error {
	return e.Err
}

func NewClassificationError(err error, code string, details string) *ClassificationError {
	return &ClassificationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
