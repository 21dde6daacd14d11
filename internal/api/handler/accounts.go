package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/classifying"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/tracking"
	"github.com/vfg2006/mcc-manager-api/pkg/apiErrors"
)

type ManualLoadRequest struct {
	AccountIDs []string `json:"accountIds"`
}

// SuspendedAccounts detecta contas suspensas ao vivo, sem passar pelo cache
func SuspendedAccounts(service classifying.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		suspended, summary, err := service.DetectSuspended()
		if err != nil {
			writeClassificationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"suspendedAccounts": suspended,
			"summary":           summary,
		})
	}
}

// EligibleAccounts lista contas sem campanhas, elegíveis para campanha dummy
func EligibleAccounts(service classifying.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.EligibleAccounts(r.Context())
		if err != nil {
			writeClassificationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// AccountSpend avalia o gasto por conta em uma janela de datas
func AccountSpend(service classifying.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		dateRange := domain.DateRange{
			StartDate: query.Get("start"),
			EndDate:   query.Get("end"),
		}

		minSpend, err := parseOptionalFloat(query.Get("min"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro min inválido", nil)
			return
		}
		maxSpend, err := parseOptionalFloat(query.Get("max"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro max inválido", nil)
			return
		}

		spends, err := service.AccountSpend(r.Context(), dateRange, minSpend, maxSpend)
		if err != nil {
			writeClassificationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"accounts": spends,
			"total":    len(spends),
		})
	}
}

// ToBeDeletedAccounts lista contas candidatas a limpeza pelo gestor
func ToBeDeletedAccounts(service classifying.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.ToBeDeleted(r.Context())
		if err != nil {
			writeClassificationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"accounts": accounts,
			"total":    len(accounts),
		})
	}
}

// ManualLoad valida contas informadas manualmente pelo operador
func ManualLoad(service classifying.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ManualLoadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		results, err := service.ManualLoad(r.Context(), req.AccountIDs)
		if err != nil {
			writeClassificationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"accounts": results,
		})
	}
}

// ReadyForRealAccounts agrega as contas prontas para receber campanha real
func ReadyForRealAccounts(service tracking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		policy := domain.PolicyStrict
		if query.Get("policy") == string(domain.PolicyAllowRealCampaigns) {
			policy = domain.PolicyAllowRealCampaigns
		}

		updatePerformance := query.Get("updatePerformance") == "true"

		result, err := service.AccountsReadyForReal(r.Context(), policy, updatePerformance)
		if err != nil {
			writeTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func writeClassificationError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var classErr *classifying.ClassificationError
	if errors.As(err, &classErr) {
		apiErrors.WriteError(w, classErr.Code, classErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao classificar contas", nil)
}

func writeTrackingError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var trackErr *tracking.TrackingError
	if errors.As(err, &trackErr) {
		apiErrors.WriteError(w, trackErr.Code, trackErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar campanhas dummy", nil)
}
