package deploying

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyBatch         = errors.New("nenhum item informado para implantação")
	ErrBatchTooLarge      = errors.New("lote excede o tamanho máximo de implantação")
	ErrDuplicateFinalURLs = errors.New("URLs finais duplicadas no lote")
	ErrNotEnoughReady     = errors.New("contas prontas insuficientes para o lote")
	ErrSelectionMismatch  = errors.New("quantidade de contas selecionadas difere do tamanho do lote")
	ErrMissingTemplate    = errors.New("template de campanha não informado")
)

// DeployError invalida o lote inteiro antes de qualquer chamada remota
type DeployError struct {
	Err     error
	Code    string
	Details string
}

func (e *DeployError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DeployError) Unwrap() error {
	return e.Err
}

func NewDeployError(err error, code string, details string) *DeployError {
	return &DeployError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
