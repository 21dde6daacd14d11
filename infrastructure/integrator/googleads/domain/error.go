package domain

import (
	"fmt"
	"strings"
)

// ErrorResponse representa a estrutura de erro da API do Google Ads
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Google Ads
type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// APIError é o erro retornado pelo client quando a API responde com falha
type APIError struct {
	HTTPStatus int
	Code       int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("google ads api error (%d %s): %s", e.HTTPStatus, e.Status, e.Message)
}

// IsTransient indica se vale a pena repetir a chamada uma vez.
// Cobre limites de quota, rate limit e indisponibilidade temporária.
func (e *APIError) IsTransient() bool {
	if e.HTTPStatus == 429 || e.HTTPStatus == 503 {
		return true
	}

	message := strings.ToLower(e.Message)
	for _, marker := range []string{"quota", "rate", "timeout", "temporar"} {
		if strings.Contains(message, marker) {
			return true
		}
	}

	return false
}
