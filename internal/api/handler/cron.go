package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcc-manager-api/internal/scheduler"
	"github.com/vfg2006/mcc-manager-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSuspended        = "suspended"
	CronJobTypeCampaignCounts   = "campaign-counts"
	CronJobTypeRealOver20       = "real-over-20"
	CronJobTypeDummyPerformance = "dummy-performance"
	CronJobTypeAll              = "all"
)

// CronJobServices contém os serviços de sincronização de cache para execução manual
type CronJobServices struct {
	SuspendedSyncService        *scheduler.CacheSyncService
	CampaignCountSyncService    *scheduler.CacheSyncService
	RealOver20SyncService       *scheduler.CacheSyncService
	DummyPerformanceSyncService *scheduler.CacheSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSuspended:
			if services.SuspendedSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de contas suspensas não disponível", nil)
				return
			}
			services.SuspendedSyncService.TriggerManualSync()

		case CronJobTypeCampaignCounts:
			if services.CampaignCountSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de contagem de campanhas não disponível", nil)
				return
			}
			services.CampaignCountSyncService.TriggerManualSync()

		case CronJobTypeRealOver20:
			if services.RealOver20SyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de campanhas reais não disponível", nil)
				return
			}
			services.RealOver20SyncService.TriggerManualSync()

		case CronJobTypeDummyPerformance:
			if services.DummyPerformanceSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de performance dummy não disponível", nil)
				return
			}
			services.DummyPerformanceSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.SuspendedSyncService != nil {
				services.SuspendedSyncService.TriggerManualSync()
			}
			if services.CampaignCountSyncService != nil {
				services.CampaignCountSyncService.TriggerManualSync()
			}
			if services.RealOver20SyncService != nil {
				services.RealOver20SyncService.TriggerManualSync()
			}
			if services.DummyPerformanceSyncService != nil {
				services.DummyPerformanceSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: suspended, campaign-counts, real-over-20, dummy-performance, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"suspended":         services.SuspendedSyncService.GetStatus(),
			"campaign-counts":   services.CampaignCountSyncService.GetStatus(),
			"real-over-20":      services.RealOver20SyncService.GetStatus(),
			"dummy-performance": services.DummyPerformanceSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
