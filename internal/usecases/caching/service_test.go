package caching_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gadomain "github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads/domain"
	gamocks "github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads/mocks"
	repomocks "github.com/vfg2006/mcc-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/mcc-manager-api/internal/config"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/caching"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	integrator  *gamocks.MockIntegrator
	accountRepo *repomocks.MockAccountCacheRepository
	metaRepo    *repomocks.MockCacheMetaRepository
	dummyRepo   *repomocks.MockDummyCampaignRepository
}

func newService(t *testing.T, cfg *config.Config) (caching.Service, *testDeps) {
	ctrl := gomock.NewController(t)

	deps := &testDeps{
		integrator:  gamocks.NewMockIntegrator(ctrl),
		accountRepo: repomocks.NewMockAccountCacheRepository(ctrl),
		metaRepo:    repomocks.NewMockCacheMetaRepository(ctrl),
		dummyRepo:   repomocks.NewMockDummyCampaignRepository(ctrl),
	}

	return caching.NewService(cfg, deps.integrator, deps.accountRepo, deps.metaRepo, deps.dummyRepo), deps
}

func testConfig() *config.Config {
	return &config.Config{
		GoogleAds: config.GoogleAds{
			MccID:            "1234567890",
			HiddenAccountIDs: []string{"9999999999"},
		},
		Classification: config.Classification{
			RealBudgetCeiling: 20.0,
			CacheTTLHours:     24,
		},
		CampaignCountSync: config.CampaignCountSync{MaxConcurrency: 3},
		RealOver20Sync:    config.RealOver20Sync{MaxConcurrency: 8},
	}
}

func account(id string, status domain.AccountStatus) *domain.CachedAccount {
	return &domain.CachedAccount{
		MccID:       "1234567890",
		AccountID:   id,
		Name:        "Conta " + id,
		Currency:    "EUR",
		TimeZone:    "Europe/Amsterdam",
		Status:      status,
		IsSuspended: domain.IsSuspendedStatus(status),
	}
}

func TestRefreshSuspended(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(deps *testDeps)
		validate func(t *testing.T, summary *domain.SuspendedSummary, prune *domain.PruneResult, err error)
	}{
		{
			name: "ClassificaContasESalvaNoCache",
			setup: func(deps *testDeps) {
				deps.integrator.EXPECT().ListClientAccounts().Return([]*domain.CachedAccount{
					account("1111111111", domain.AccountStatusEnabled),
					account("2222222222", domain.AccountStatusSuspended),
					account("3333333333", domain.AccountStatusCanceled),
				}, nil)
				deps.accountRepo.EXPECT().
					SaveOrUpdateAccounts(gomock.Len(3)).
					Return(nil)
				deps.accountRepo.EXPECT().
					ListAccounts("1234567890").
					Return([]*domain.CachedAccount{
						account("1111111111", domain.AccountStatusEnabled),
						account("2222222222", domain.AccountStatusSuspended),
						account("3333333333", domain.AccountStatusCanceled),
					}, nil)
				deps.metaRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(2)
			},
			validate: func(t *testing.T, summary *domain.SuspendedSummary, prune *domain.PruneResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, summary.TotalSuspended)
				assert.Equal(t, 1, summary.Suspended)
				assert.Equal(t, 1, summary.Canceled)
				assert.Equal(t, 0, prune.RemovedAccounts)
				assert.Empty(t, prune.AffectedAccounts)
			},
		},
		{
			name: "IgnoraContasOcultas",
			setup: func(deps *testDeps) {
				deps.integrator.EXPECT().ListClientAccounts().Return([]*domain.CachedAccount{
					account("1111111111", domain.AccountStatusEnabled),
					account("9999999999", domain.AccountStatusSuspended),
				}, nil)
				deps.accountRepo.EXPECT().
					SaveOrUpdateAccounts(gomock.Len(1)).
					Return(nil)
				deps.accountRepo.EXPECT().
					ListAccounts("1234567890").
					Return([]*domain.CachedAccount{account("1111111111", domain.AccountStatusEnabled)}, nil)
				deps.metaRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(2)
			},
			validate: func(t *testing.T, summary *domain.SuspendedSummary, _ *domain.PruneResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0, summary.TotalSuspended)
			},
		},
		{
			name: "RemoveContasAusentesESuasCampanhas",
			setup: func(deps *testDeps) {
				deps.integrator.EXPECT().ListClientAccounts().Return([]*domain.CachedAccount{
					account("1111111111", domain.AccountStatusEnabled),
				}, nil)
				deps.accountRepo.EXPECT().SaveOrUpdateAccounts(gomock.Any()).Return(nil)
				deps.accountRepo.EXPECT().
					ListAccounts("1234567890").
					Return([]*domain.CachedAccount{
						account("1111111111", domain.AccountStatusEnabled),
						account("5555555555", domain.AccountStatusEnabled),
					}, nil)
				deps.dummyRepo.EXPECT().
					DeleteByAccounts([]string{"5555555555"}).
					Return(2, nil)
				deps.accountRepo.EXPECT().
					PruneMissing("1234567890", []string{"1111111111"}).
					Return(1, nil)
				deps.metaRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(2)
			},
			validate: func(t *testing.T, _ *domain.SuspendedSummary, prune *domain.PruneResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, prune.RemovedAccounts)
				assert.Equal(t, 2, prune.RemovedCampaigns)
				assert.Equal(t, []string{"5555555555"}, prune.AffectedAccounts)
			},
		},
		{
			name: "FalhaDeIntegracaoRegistraErroNoMeta",
			setup: func(deps *testDeps) {
				deps.integrator.EXPECT().
					ListClientAccounts().
					Return(nil, errors.New("quota exceeded"))
				deps.metaRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
				deps.metaRepo.EXPECT().
					Upsert(metaWithStatus(domain.CacheStatusError)).
					Return(nil)
			},
			validate: func(t *testing.T, _ *domain.SuspendedSummary, _ *domain.PruneResult, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, caching.ErrIntegration)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newService(t, testConfig())
			tt.setup(deps)

			summary, prune, err := svc.RefreshSuspended(context.Background())
			tt.validate(t, summary, prune, err)
		})
	}
}

func TestSuspendedFromCache(t *testing.T) {
	svc, deps := newService(t, testConfig())

	completedAt := time.Now()
	deps.accountRepo.EXPECT().
		ListSuspended("1234567890").
		Return([]*domain.CachedAccount{
			account("2222222222", domain.AccountStatusSuspended),
			account("3333333333", domain.AccountStatusCanceled),
			account("9999999999", domain.AccountStatusSuspended),
		}, nil)
	deps.metaRepo.EXPECT().
		Get("1234567890", domain.CacheMetaSuspended).
		Return(&domain.CacheMeta{
			MccID:       "1234567890",
			Type:        domain.CacheMetaSuspended,
			Status:      domain.CacheStatusComplete,
			CompletedAt: &completedAt,
		}, nil)

	suspended, meta, err := svc.SuspendedFromCache()
	require.NoError(t, err)

	// Canceladas e ocultas ficam de fora da listagem
	require.Len(t, suspended, 1)
	assert.Equal(t, "2222222222", suspended[0].AccountID)
	assert.Equal(t, domain.AccountStatusSuspended, suspended[0].Status)
	assert.Equal(t, domain.CacheStatusComplete, meta.Status)
}

func TestRefreshCampaignCounts(t *testing.T) {
	svc, deps := newService(t, testConfig())

	deps.accountRepo.EXPECT().
		ListAccounts("1234567890").
		Return([]*domain.CachedAccount{
			account("1111111111", domain.AccountStatusEnabled),
			account("2222222222", domain.AccountStatusSuspended),
			account("4444444444", domain.AccountStatusEnabled),
		}, nil)

	// Contas suspensas não são consultadas
	deps.integrator.EXPECT().CountCampaigns("1111111111").Return(3, nil)
	deps.integrator.EXPECT().CountCampaigns("4444444444").Return(0, errInt())

	deps.accountRepo.EXPECT().
		UpdateCampaignCount("1234567890", "1111111111", 3, gomock.Any()).
		Return(nil)
	deps.metaRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(2)

	updated, err := svc.RefreshCampaignCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestRefreshCampaignCountsPulaContagensDentroDoTTL(t *testing.T) {
	svc, deps := newService(t, testConfig())

	fresh := account("1111111111", domain.AccountStatusEnabled)
	freshCount := 2
	freshAt := time.Now().Add(-1 * time.Hour)
	fresh.CampaignCount = &freshCount
	fresh.CampaignCountUpdatedAt = &freshAt

	expired := account("4444444444", domain.AccountStatusEnabled)
	expiredCount := 1
	expiredAt := time.Now().Add(-30 * time.Hour)
	expired.CampaignCount = &expiredCount
	expired.CampaignCountUpdatedAt = &expiredAt

	deps.accountRepo.EXPECT().
		ListAccounts("1234567890").
		Return([]*domain.CachedAccount{fresh, expired}, nil)

	// A conta com contagem recente não volta à API
	deps.integrator.EXPECT().CountCampaigns("4444444444").Return(5, nil)
	deps.accountRepo.EXPECT().
		UpdateCampaignCount("1234567890", "4444444444", 5, gomock.Any()).
		Return(nil)

	deps.metaRepo.EXPECT().Upsert(metaWithStatus(domain.CacheStatusRunning)).Return(nil)
	deps.metaRepo.EXPECT().
		Upsert(gomock.Cond(func(x any) bool {
			meta, ok := x.(*domain.CacheMeta)
			return ok && meta.Status == domain.CacheStatusComplete &&
				meta.Counts["updated"] == 1 && meta.Counts["skipped"] == 1
		})).
		Return(nil)

	updated, err := svc.RefreshCampaignCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestRefreshRealOver20(t *testing.T) {
	svc, deps := newService(t, testConfig())

	deps.accountRepo.EXPECT().
		ListAccounts("1234567890").
		Return([]*domain.CachedAccount{
			account("1111111111", domain.AccountStatusEnabled),
			account("4444444444", domain.AccountStatusEnabled),
		}, nil)

	deps.integrator.EXPECT().ListCampaigns("1111111111").Return([]gadomain.Campaign{
		{ID: "100", Name: "Dummy", BudgetAmountMicros: 3_000_000},
	}, nil)
	deps.integrator.EXPECT().ListCampaigns("4444444444").Return([]gadomain.Campaign{
		{ID: "200", Name: "Real", BudgetAmountMicros: 25_000_000},
	}, nil)

	deps.accountRepo.EXPECT().
		UpdateRealOver20("1234567890", "1111111111", false, gomock.Any()).
		Return(nil)
	deps.accountRepo.EXPECT().
		UpdateRealOver20("1234567890", "4444444444", true, gomock.Any()).
		Return(nil)
	deps.metaRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(2)

	updated, err := svc.RefreshRealOver20(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, updated)
}

func errInt() error {
	return errors.New("internal error")
}

// metaWithStatus casa um Upsert cujo CacheMeta tem o status esperado
func metaWithStatus(status domain.CacheMetaStatus) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		meta, ok := x.(*domain.CacheMeta)
		return ok && meta.Status == status
	})
}
