package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/deploying"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/tracking"
	"github.com/vfg2006/mcc-manager-api/pkg/apiErrors"
)

type CreateDummyCampaignRequest struct {
	AccountID         string `json:"accountId"`
	TemplateID        string `json:"templateId,omitempty"`
	UseRandomTemplate bool   `json:"useRandomTemplate,omitempty"`
}

// CreateDummyCampaign cria uma campanha dummy em uma conta sem campanhas
func CreateDummyCampaign(service tracking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateDummyCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.AccountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "accountId é obrigatório", nil)
			return
		}
		if req.TemplateID == "" && !req.UseRandomTemplate {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe templateId ou useRandomTemplate", nil)
			return
		}

		dummy, err := service.CreateDummyCampaign(r.Context(), req.AccountID, req.TemplateID, req.UseRandomTemplate)
		if err != nil {
			writeTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dummy)
	}
}

// ListDummyCampaigns lista as campanhas dummy acompanhadas, opcionalmente por conta
func ListDummyCampaigns(service tracking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := service.ListDummyCampaigns(r.URL.Query().Get("accountId"))
		if err != nil {
			writeTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"dummyCampaigns": campaigns,
			"total":          len(campaigns),
		})
	}
}

// DeleteDummyCampaign remove o registro de acompanhamento de uma campanha dummy
func DeleteDummyCampaign(service tracking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		if err := service.DeleteDummyCampaign(id); err != nil {
			writeTrackingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// BulkDeploy implanta campanhas reais em lote, uma por conta
func BulkDeploy(service deploying.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.BulkDeployRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		response, err := service.BulkDeploy(r.Context(), &req)
		if err != nil {
			logrus.Error(err)

			var deployErr *deploying.DeployError
			if errors.As(err, &deployErr) {
				apiErrors.WriteError(w, deployErr.Code, deployErr.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao implantar campanhas", nil)
			return
		}

		// Falhas por item ficam embutidas nos resultados; o lote em si é 200
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}
