package tracking

import (
	"errors"
	"fmt"
)

var (
	ErrIntegration        = errors.New("falha na integração com o Google Ads")
	ErrDatabaseOperation  = errors.New("erro de operação no banco de dados")
	ErrCampaignNotFound   = errors.New("campanha dummy não encontrada")
	ErrNoDummyTemplates   = errors.New("nenhum template de campanha dummy cadastrado")
	ErrAccountNotEligible = errors.New("conta já possui campanhas, não é elegível para campanha dummy")
	ErrGenerateID         = errors.New("falha ao gerar identificador")
)

// TrackingError carrega o código de API e detalhes de um erro do ciclo de
// vida de campanhas dummy
type TrackingError struct {
	Err     error
	Code    string
	Details string
}

func (e *TrackingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *TrackingError) Unwrap() error {
	return e.Err
}

func NewTrackingError(err error, code string, details string) *TrackingError {
	return &TrackingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
