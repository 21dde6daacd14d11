package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/caching"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/tracking"
	"github.com/vfg2006/mcc-manager-api/pkg/apiErrors"
)

// CachedSuspendedAccounts serve as contas suspensas direto do cache,
// acompanhadas do estado da última atualização
func CachedSuspendedAccounts(service caching.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		suspended, meta, err := service.SuspendedFromCache()
		if err != nil {
			writeCacheError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"suspendedAccounts": suspended,
			"total":             len(suspended),
			"meta":              meta,
		})
	}
}

// RefreshSuspendedCache atualiza o cache completo de contas de forma síncrona.
// Invocável tanto por sessão autenticada quanto pelo agendador externo.
func RefreshSuspendedCache(service caching.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, prune, err := service.RefreshSuspended(r.Context())
		if err != nil {
			writeCacheError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"summary": summary,
			"pruned":  prune,
		})
	}
}

// RefreshCampaignCountsCache recalcula as contagens de campanha das contas ativas
func RefreshCampaignCountsCache(service caching.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updated, err := service.RefreshCampaignCounts(r.Context())
		if err != nil {
			writeCacheError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"updated": updated,
		})
	}
}

// RefreshRealOver20Cache reavalia quais contas já possuem campanha real
func RefreshRealOver20Cache(service caching.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updated, err := service.RefreshRealOver20(r.Context())
		if err != nil {
			writeCacheError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"updated": updated,
		})
	}
}

type RefreshDummyPerformanceRequest struct {
	AccountIDs []string `json:"accountIds"`
}

// RefreshDummyPerformance atualiza o histórico de performance das campanhas
// dummy, de todas as contas ou das contas informadas
func RefreshDummyPerformance(service tracking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshDummyPerformanceRequest
		if r.Method == http.MethodPost && r.Body != nil {
			// Corpo vazio significa todas as contas
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		updated, err := service.RefreshPerformance(r.Context(), req.AccountIDs)
		if err != nil {
			writeTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"updated": updated,
		})
	}
}

// CacheStatus lista o estado de todas as rotinas de atualização de cache
func CacheStatus(service caching.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metas, err := service.Status()
		if err != nil {
			writeCacheError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"refreshes": metas,
		})
	}
}

func writeCacheError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	if errors.Is(err, caching.ErrRefreshInProgress) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Atualização já em andamento", nil)
		return
	}

	var cacheErr *caching.CacheError
	if errors.As(err, &cacheErr) {
		apiErrors.WriteError(w, cacheErr.Code, cacheErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao atualizar cache de contas", nil)
}
