package classifying_test

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
	"github.com/vfg2006/mcc-manager-api/internal/usecases/classifying"
	"go.uber.org/mock/gomock"
)

// stubRefresher registra os disparos de atualização em background
type stubRefresher struct {
	triggered chan struct{}
}

func newStubRefresher() *stubRefresher {
	return &stubRefresher{triggered: make(chan struct{}, 1)}
}

func (s *stubRefresher) RefreshCampaignCounts(_ context.Context) (int, error) {
	select {
	case s.triggered <- struct{}{}:
	default:
	}
	return 0, nil
}

func (s *stubRefresher) waitTriggered(t *testing.T) {
	t.Helper()
	select {
	case <-s.triggered:
	case <-time.After(2 * time.Second):
		t.Fatal("atualização em background não foi disparada")
	}
}

type testDeps struct {
	integrator  *gamocks.MockIntegrator
	accountRepo *repomocks.MockAccountCacheRepository
	refresher   *stubRefresher
}

func newService(t *testing.T) (classifying.Service, *testDeps) {
	ctrl := gomock.NewController(t)

	deps := &testDeps{
		integrator:  gamocks.NewMockIntegrator(ctrl),
		accountRepo: repomocks.NewMockAccountCacheRepository(ctrl),
		refresher:   newStubRefresher(),
	}

	return classifying.NewService(testConfig(), deps.integrator, deps.accountRepo, deps.refresher), deps
}

func testConfig() *config.Config {
	return &config.Config{
		GoogleAds: config.GoogleAds{
			MccID:            "1234567890",
			HiddenAccountIDs: []string{"9999999999"},
		},
		Classification: config.Classification{
			DummyPartitionCeiling: 10.0,
			RealBudgetCeiling:     20.0,
			ToBeDeletedFloorEuros: 50.0,
			CacheTTLHours:         24,
			EligibleSampleSize:    40,
			EligibleConcurrency:   5,
			SpendConcurrency:      8,
		},
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

func accountWithCount(id string, count int, updatedAt time.Time) *domain.CachedAccount {
	a := account(id, domain.AccountStatusEnabled)
	a.CampaignCount = &count
	a.CampaignCountUpdatedAt = &updatedAt
	return a
}

func TestDetectSuspended(t *testing.T) {
	svc, deps := newService(t)

	deps.integrator.EXPECT().ListClientAccounts().Return([]*domain.CachedAccount{
		account("1111111111", domain.AccountStatusEnabled),
		account("2222222222", domain.AccountStatusSuspended),
		account("3333333333", domain.AccountStatusCanceled),
		account("9999999999", domain.AccountStatusSuspended),
	}, nil)

	suspended, summary, err := svc.DetectSuspended()
	require.NoError(t, err)

	// Contas ocultas ficam fora mesmo quando suspensas
	require.Len(t, suspended, 2)
	assert.Equal(t, "2222222222", suspended[0].AccountID)
	assert.Equal(t, "3333333333", suspended[1].AccountID)
	assert.Equal(t, 2, summary.TotalSuspended)
	assert.Equal(t, 1, summary.Suspended)
	assert.Equal(t, 1, summary.Canceled)
}

func TestEligibleAccounts(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(deps *testDeps)
		validate func(t *testing.T, result *domain.EligibleResult, err error)
	}{
		{
			name: "ContagemFrescaVemDoCache",
			setup: func(deps *testDeps) {
				deps.accountRepo.EXPECT().ListAccounts("1234567890").Return([]*domain.CachedAccount{
					accountWithCount("1111111111", 0, time.Now()),
					accountWithCount("2222222222", 3, time.Now()),
					account("5555555555", domain.AccountStatusSuspended),
				}, nil)
			},
			validate: func(t *testing.T, result *domain.EligibleResult, err error) {
				require.NoError(t, err)
				require.Len(t, result.Accounts, 1)
				assert.Equal(t, "1111111111", result.Accounts[0].AccountID)
				assert.True(t, result.Accounts[0].FromCache)
				assert.Equal(t, 2, result.TotalChecked)
				assert.Equal(t, 0, result.SampledLive)
				assert.False(t, result.RefreshTriggered)
			},
		},
		{
			name: "ContagemVencidaAmostraAoVivo",
			setup: func(deps *testDeps) {
				old := time.Now().Add(-48 * time.Hour)
				deps.accountRepo.EXPECT().ListAccounts("1234567890").Return([]*domain.CachedAccount{
					accountWithCount("1111111111", 0, old),
				}, nil)
				deps.integrator.EXPECT().CountCampaigns("1111111111").Return(0, nil)
				deps.accountRepo.EXPECT().
					UpdateCampaignCount("1234567890", "1111111111", 0, gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, result *domain.EligibleResult, err error) {
				require.NoError(t, err)
				require.Len(t, result.Accounts, 1)
				assert.False(t, result.Accounts[0].FromCache)
				assert.Equal(t, 1, result.SampledLive)
				assert.True(t, result.RefreshTriggered)
			},
		},
		{
			name: "ErroPorContaNaoAbortaALeva",
			setup: func(deps *testDeps) {
				old := time.Now().Add(-48 * time.Hour)
				deps.accountRepo.EXPECT().ListAccounts("1234567890").Return([]*domain.CachedAccount{
					accountWithCount("1111111111", 0, old),
					accountWithCount("2222222222", 0, old),
				}, nil)
				deps.integrator.EXPECT().CountCampaigns("1111111111").Return(0, errors.New("rate limit"))
				deps.integrator.EXPECT().CountCampaigns("2222222222").Return(0, nil)
				deps.accountRepo.EXPECT().
					UpdateCampaignCount("1234567890", "2222222222", 0, gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, result *domain.EligibleResult, err error) {
				require.NoError(t, err)
				require.Len(t, result.Accounts, 1)
				assert.Equal(t, "2222222222", result.Accounts[0].AccountID)
				assert.Equal(t, 1, result.SampledLive)
			},
		},
		{
			name: "CacheVazioRetornaErro",
			setup: func(deps *testDeps) {
				deps.accountRepo.EXPECT().ListAccounts("1234567890").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.EligibleResult, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, classifying.ErrEmptyCache)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newService(t)
			tt.setup(deps)

			result, err := svc.EligibleAccounts(context.Background())
			tt.validate(t, result, err)

			if result != nil && result.RefreshTriggered {
				deps.refresher.waitTriggered(t)
			}
		})
	}
}

func TestAccountSpend(t *testing.T) {
	svc, deps := newService(t)

	deps.accountRepo.EXPECT().ListAccounts("1234567890").Return([]*domain.CachedAccount{
		account("1111111111", domain.AccountStatusEnabled),
		account("2222222222", domain.AccountStatusEnabled),
		account("3333333333", domain.AccountStatusEnabled),
	}, nil)

	dateRange := domain.DateRange{StartDate: "2026-08-01", EndDate: "2026-08-31"}
	deps.integrator.EXPECT().AccountSpendMicros("1111111111", dateRange).Return(int64(5_000_000), nil)
	deps.integrator.EXPECT().AccountSpendMicros("2222222222", dateRange).Return(int64(55_000_000), nil)
	deps.integrator.EXPECT().AccountSpendMicros("3333333333", dateRange).Return(int64(150_000_000), nil)

	minSpend := 10.0
	maxSpend := 100.0
	spends, err := svc.AccountSpend(context.Background(), dateRange, &minSpend, &maxSpend)
	require.NoError(t, err)

	require.Len(t, spends, 1)
	assert.Equal(t, "2222222222", spends[0].AccountID)
	assert.Equal(t, 55.0, spends[0].Spend)
}

func TestAccountSpendJanelaInvalida(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.AccountSpend(context.Background(), domain.DateRange{StartDate: "2026-08-31", EndDate: "2026-08-01"}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, classifying.ErrInvalidDateRange)
}

func TestToBeDeleted(t *testing.T) {
	svc, deps := newService(t)

	deps.accountRepo.EXPECT().ListAccounts("1234567890").Return([]*domain.CachedAccount{
		account("1111111111", domain.AccountStatusEnabled),
		account("2222222222", domain.AccountStatusEnabled),
		account("3333333333", domain.AccountStatusEnabled),
	}, nil)

	// 1111111111: gastou muito e parou de entregar
	gomock.InOrder(
		deps.integrator.EXPECT().
			AccountSpendMicros("1111111111", gomock.Any()).
			Return(int64(80_000_000), nil),
		deps.integrator.EXPECT().
			AccountSpendMicros("1111111111", gomock.Any()).
			Return(int64(0), nil),
		deps.integrator.EXPECT().
			AccountSpendMicros("1111111111", gomock.Any()).
			Return(int64(0), nil),
	)
	// 2222222222: abaixo da marca, só a primeira janela é consultada
	deps.integrator.EXPECT().
		AccountSpendMicros("2222222222", gomock.Any()).
		Return(int64(20_000_000), nil)
	// 3333333333: gastou muito mas ainda entrega
	gomock.InOrder(
		deps.integrator.EXPECT().
			AccountSpendMicros("3333333333", gomock.Any()).
			Return(int64(90_000_000), nil),
		deps.integrator.EXPECT().
			AccountSpendMicros("3333333333", gomock.Any()).
			Return(int64(2_000_000), nil),
		deps.integrator.EXPECT().
			AccountSpendMicros("3333333333", gomock.Any()).
			Return(int64(1_000_000), nil),
	)

	toBeDeleted, err := svc.ToBeDeleted(context.Background())
	require.NoError(t, err)

	require.Len(t, toBeDeleted, 1)
	assert.Equal(t, "1111111111", toBeDeleted[0].AccountID)
	assert.Equal(t, 80.0, toBeDeleted[0].Last30DaysCost)
}

func TestPartitionCampaigns(t *testing.T) {
	svc, _ := newService(t)

	campaigns := []gadomain.Campaign{
		{ID: "1", BudgetAmountMicros: 3_000_000},
		{ID: "2", BudgetAmountMicros: 10_000_000},
		{ID: "3", BudgetAmountMicros: 10_010_000},
		{ID: "4", BudgetAmountMicros: 25_000_000},
	}

	dummy, real := svc.PartitionCampaigns(campaigns)

	// Teto de €10 é inclusivo para dummy
	require.Len(t, dummy, 2)
	assert.Equal(t, "1", dummy[0].ID)
	assert.Equal(t, "2", dummy[1].ID)
	require.Len(t, real, 2)
	assert.Equal(t, "3", real[0].ID)
	assert.Equal(t, "4", real[1].ID)
}

func TestManualLoad(t *testing.T) {
	svc, deps := newService(t)

	deps.accountRepo.EXPECT().
		GetAccount("1234567890", gomock.Any()).
		Return(nil, errors.New("não encontrada")).
		AnyTimes()

	deps.integrator.EXPECT().ListCampaigns("1111111111").Return(nil, nil)
	deps.integrator.EXPECT().ListCampaigns("2222222222").Return([]gadomain.Campaign{
		{ID: "10", BudgetAmountMicros: 3_000_000},
	}, nil)
	deps.integrator.EXPECT().ListCampaigns("3333333333").Return([]gadomain.Campaign{
		{ID: "20", BudgetAmountMicros: 25_000_000},
	}, nil)

	results, err := svc.ManualLoad(context.Background(), []string{
		"1111111111", "2222222222", "3333333333", "abc",
	})
	require.NoError(t, err)
	require.Len(t, results, 4)

	byID := make(map[string]domain.ManualAccount, len(results))
	for _, r := range results {
		byID[r.ID] = r
	}

	assert.Equal(t, domain.ManualAccountReady, byID["1111111111"].Status)

	deployed := byID["2222222222"]
	assert.Equal(t, domain.ManualAccountDeployed, deployed.Status)
	require.NotNil(t, deployed.HasRealCampaigns)
	assert.False(t, *deployed.HasRealCampaigns)

	withReal := byID["3333333333"]
	require.NotNil(t, withReal.HasRealCampaigns)
	assert.True(t, *withReal.HasRealCampaigns)

	assert.Equal(t, domain.ManualAccountError, byID["abc"].Status)
	assert.NotEmpty(t, byID["abc"].Error)
}
