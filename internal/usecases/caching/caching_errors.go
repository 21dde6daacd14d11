package caching

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de cache
var (
	ErrRefreshInProgress = errors.New("atualização já em andamento")
	ErrIntegration       = errors.New("erro ao consultar o Google Ads")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// CacheError é um erro com contexto adicional para rotinas de cache
type CacheError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CacheError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CacheError) Unwrap() error {
	return e.Err
}

// NewCacheError cria um novo CacheError
func NewCacheError(err error, code string, details string) *CacheError {
	return &CacheError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
