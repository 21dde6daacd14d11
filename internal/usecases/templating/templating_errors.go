package templating

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de templates
var (
	ErrTemplateNotFound   = errors.New("template não encontrado")
	ErrScheduleNotFound   = errors.New("programação de anúncio não encontrada")
	ErrInvalidTemplate    = errors.New("template inválido")
	ErrInvalidSchedule    = errors.New("programação de anúncio inválida")
	ErrBuiltinImmutable   = errors.New("programações embutidas não podem ser alteradas")
	ErrDatabaseOperation  = errors.New("erro ao realizar operação no banco de dados")
	ErrGenerateID         = errors.New("erro ao gerar ID")
)

// TemplateError é um erro com contexto adicional para templates
type TemplateError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	TemplateID string // ID do template envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *TemplateError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *TemplateError) Unwrap() error {
	return e.Err
}

// NewTemplateError cria um novo TemplateError
func NewTemplateError(err error, code string, details string) *TemplateError {
	return &TemplateError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
