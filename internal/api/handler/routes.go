package handler

import (
	"net/http"

	"github.com/vfg2006/mcc-manager-api/internal/api/handler/router"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/caching"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/classifying"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/deploying"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/templating"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/tracking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
	}
}

func Accounts(classifier classifying.Service, tracker tracking.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/suspended",
			Method:  http.MethodGet,
			Handler: SuspendedAccounts(classifier),
		},
		{
			Path:    "/v1/accounts/eligible",
			Method:  http.MethodGet,
			Handler: EligibleAccounts(classifier),
		},
		{
			Path:    "/v1/accounts/spend",
			Method:  http.MethodGet,
			Handler: AccountSpend(classifier),
		},
		{
			Path:    "/v1/accounts/to-be-deleted",
			Method:  http.MethodGet,
			Handler: ToBeDeletedAccounts(classifier),
		},
		{
			Path:    "/v1/accounts/ready-for-real",
			Method:  http.MethodGet,
			Handler: ReadyForRealAccounts(tracker),
		},
		{
			Path:    "/v1/accounts/manual-load",
			Method:  http.MethodPost,
			Handler: ManualLoad(classifier),
		},
	}
}

func Cache(cache caching.Service, tracker tracking.Service) []router.Route {
	routes := []router.Route{
		{
			Path:    "/v1/cache/accounts/suspended",
			Method:  http.MethodGet,
			Handler: CachedSuspendedAccounts(cache),
		},
		{
			Path:    "/v1/cache/status",
			Method:  http.MethodGet,
			Handler: CacheStatus(cache),
		},
	}

	// Agendadores externos só conseguem disparar GET, então as rotas de
	// atualização aceitam os dois métodos
	refreshes := []struct {
		path    string
		handler http.HandlerFunc
	}{
		{"/v1/cache/accounts/suspended/refresh", RefreshSuspendedCache(cache)},
		{"/v1/cache/accounts/campaign-counts/refresh", RefreshCampaignCountsCache(cache)},
		{"/v1/cache/accounts/real-over-20/refresh", RefreshRealOver20Cache(cache)},
		{"/v1/cache/dummy/performance/refresh", RefreshDummyPerformance(tracker)},
	}
	for _, refresh := range refreshes {
		routes = append(routes,
			router.Route{Path: refresh.path, Method: http.MethodPost, Handler: refresh.handler},
			router.Route{Path: refresh.path, Method: http.MethodGet, Handler: refresh.handler},
		)
	}

	return routes
}

func Campaigns(tracker tracking.Service, deployer deploying.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dummy-campaigns",
			Method:  http.MethodPost,
			Handler: CreateDummyCampaign(tracker),
		},
		{
			Path:    "/v1/dummy-campaigns",
			Method:  http.MethodGet,
			Handler: ListDummyCampaigns(tracker),
		},
		{
			Path:    "/v1/dummy-campaigns/:id",
			Method:  http.MethodDelete,
			Handler: DeleteDummyCampaign(tracker),
		},
		{
			Path:    "/v1/campaigns/bulk-deploy",
			Method:  http.MethodPost,
			Handler: BulkDeploy(deployer),
		},
	}
}

func Templates(service templating.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/templates",
			Method:  http.MethodGet,
			Handler: ListTemplates(service),
		},
		{
			Path:    "/v1/templates",
			Method:  http.MethodPost,
			Handler: CreateTemplate(service),
		},
		{
			Path:    "/v1/templates/:id",
			Method:  http.MethodGet,
			Handler: GetTemplate(service),
		},
		{
			Path:    "/v1/templates/:id",
			Method:  http.MethodPut,
			Handler: UpdateTemplate(service),
		},
		{
			Path:    "/v1/templates/:id",
			Method:  http.MethodDelete,
			Handler: DeleteTemplate(service),
		},
		{
			Path:    "/v1/templates/:id/duplicate",
			Method:  http.MethodPost,
			Handler: DuplicateTemplate(service),
		},
		{
			Path:    "/v1/ad-schedules",
			Method:  http.MethodGet,
			Handler: ListAdSchedules(service),
		},
		{
			Path:    "/v1/ad-schedules",
			Method:  http.MethodPost,
			Handler: CreateAdSchedule(service),
		},
		{
			Path:    "/v1/ad-schedules/:id",
			Method:  http.MethodDelete,
			Handler: DeleteAdSchedule(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
