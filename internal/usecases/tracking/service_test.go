package tracking_test

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
	templatingmocks "github.com/vfg2006/mcc-manager-api/internal/usecases/templating/mocks"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/tracking"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	integrator  *gamocks.MockIntegrator
	dummyRepo   *repomocks.MockDummyCampaignRepository
	accountRepo *repomocks.MockAccountCacheRepository
	templates   *templatingmocks.MockService
}

func newService(t *testing.T) (tracking.Service, *testDeps) {
	ctrl := gomock.NewController(t)

	deps := &testDeps{
		integrator:  gamocks.NewMockIntegrator(ctrl),
		dummyRepo:   repomocks.NewMockDummyCampaignRepository(ctrl),
		accountRepo: repomocks.NewMockAccountCacheRepository(ctrl),
		templates:   templatingmocks.NewMockService(ctrl),
	}

	cfg := &config.Config{
		GoogleAds: config.GoogleAds{MccID: "1234567890"},
		Classification: config.Classification{
			DummyCampaignBudgetEuros: 3.0,
			ReadyMinSpendEuros:       10.0,
			ReadySpendWindowDays:     30,
			ReadyTrailingDays:        7,
		},
		DummyPerformanceSync: config.DummyPerformanceSync{MaxConcurrency: 6},
	}

	return tracking.NewService(cfg, deps.integrator, deps.dummyRepo, deps.accountRepo, deps.templates), deps
}

func dummyTemplate() *domain.CampaignTemplate {
	return &domain.CampaignTemplate{
		ID:     "tpl001",
		Name:   "Laser NL",
		Family: domain.TemplateFamilyDummy,
	}
}

func entriesFor(dates []string, spentEach int64) []domain.PerformanceEntry {
	entries := make([]domain.PerformanceEntry, 0, len(dates))
	for _, d := range dates {
		entries = append(entries, domain.PerformanceEntry{Date: d, SpentMicros: spentEach})
	}
	return entries
}

// lastDays retorna as últimas n datas incluindo hoje, em ordem crescente
func lastDays(n int) []string {
	dates := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		dates = append(dates, time.Now().AddDate(0, 0, -i).Format("2006-01-02"))
	}
	return dates
}

func TestCreateDummyCampaign(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(deps *testDeps)
		validate func(t *testing.T, dummy *domain.DummyCampaign, err error)
	}{
		{
			name: "CriaCampanhaERegistraAcompanhamento",
			setup: func(deps *testDeps) {
				deps.integrator.EXPECT().CountCampaigns("1111111111").Return(0, nil)
				deps.templates.EXPECT().GetTemplate("tpl001").Return(dummyTemplate(), nil)
				deps.dummyRepo.EXPECT().ListByAccount("1111111111").Return(nil, nil)

				budget := 3.0
				expectedName := domain.CampaignName("Laser NL", time.Now(), 1)
				deps.templates.EXPECT().
					Resolve("tpl001", expectedName, &domain.TemplateOverrides{Budget: &budget}).
					Return(&gadomain.CampaignSpec{Name: expectedName, BudgetAmountMicros: 3_000_000}, nil)

				deps.integrator.EXPECT().
					CreateCampaign("1111111111", gomock.Any()).
					Return(&gadomain.CreatedCampaign{
						CampaignID:   "987",
						CampaignName: expectedName,
						BudgetID:     "654",
					}, nil)

				deps.dummyRepo.EXPECT().Create(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, dummy *domain.DummyCampaign, err error) {
				require.NoError(t, err)
				assert.Equal(t, "1111111111", dummy.AccountID)
				assert.Equal(t, "987", dummy.CampaignID)
				assert.Equal(t, "654", dummy.BudgetID)
				assert.Equal(t, "Laser NL", dummy.TemplateName)
				assert.NotEmpty(t, dummy.ID)
			},
		},
		{
			name: "ContaComCampanhasNaoEhElegivel",
			setup: func(deps *testDeps) {
				deps.integrator.EXPECT().CountCampaigns("1111111111").Return(2, nil)
			},
			validate: func(t *testing.T, dummy *domain.DummyCampaign, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, tracking.ErrAccountNotEligible)
				assert.Nil(t, dummy)
			},
		},
		{
			name: "SemTemplatesDummyRetornaErro",
			setup: func(deps *testDeps) {
				deps.integrator.EXPECT().CountCampaigns("1111111111").Return(0, nil)
				deps.templates.EXPECT().
					ListTemplates(domain.TemplateFamilyDummy, domain.TemplateCategory("")).
					Return(nil, nil)
			},
			validate: func(t *testing.T, _ *domain.DummyCampaign, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, tracking.ErrNoDummyTemplates)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newService(t)
			tt.setup(deps)

			templateID := "tpl001"
			useRandom := tt.name == "SemTemplatesDummyRetornaErro"
			if useRandom {
				templateID = ""
			}

			dummy, err := svc.CreateDummyCampaign(context.Background(), "1111111111", templateID, useRandom)
			tt.validate(t, dummy, err)
		})
	}
}

func TestRefreshPerformance(t *testing.T) {
	svc, deps := newService(t)

	tracked := &domain.DummyCampaign{
		ID:         "dc0001",
		AccountID:  "1111111111",
		CampaignID: "987",
	}

	fetched := entriesFor(lastDays(5), 3_000_000)

	deps.dummyRepo.EXPECT().ListAll().Return([]*domain.DummyCampaign{tracked}, nil)
	deps.integrator.EXPECT().
		CampaignDailyMetrics("1111111111", "987", gomock.Any()).
		Return(fetched, nil)
	deps.dummyRepo.EXPECT().UpsertPerformance("dc0001", fetched).Return(nil)
	deps.dummyRepo.EXPECT().
		UpdateTracking("dc0001", gomock.Any(), int64(15_000_000), true).
		Return(nil)

	updated, err := svc.RefreshPerformance(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestRefreshPerformanceAbaixoDoLimiarNaoFicaPronta(t *testing.T) {
	svc, deps := newService(t)

	tracked := &domain.DummyCampaign{
		ID:         "dc0001",
		AccountID:  "1111111111",
		CampaignID: "987",
	}

	// €9,99 nos últimos dias não atinge o limiar de €10,00
	fetched := []domain.PerformanceEntry{
		{Date: time.Now().Format("2006-01-02"), SpentMicros: 9_990_000},
	}

	deps.dummyRepo.EXPECT().ListAll().Return([]*domain.DummyCampaign{tracked}, nil)
	deps.integrator.EXPECT().
		CampaignDailyMetrics("1111111111", "987", gomock.Any()).
		Return(fetched, nil)
	deps.dummyRepo.EXPECT().UpsertPerformance("dc0001", fetched).Return(nil)
	deps.dummyRepo.EXPECT().
		UpdateTracking("dc0001", gomock.Any(), int64(9_990_000), false).
		Return(nil)

	updated, err := svc.RefreshPerformance(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestRefreshPerformanceSobrescreveEntradaDeHoje(t *testing.T) {
	svc, deps := newService(t)

	today := time.Now().Format("2006-01-02")
	tracked := &domain.DummyCampaign{
		ID:         "dc0001",
		AccountID:  "1111111111",
		CampaignID: "987",
		History: []domain.PerformanceEntry{
			{Date: today, SpentMicros: 2_000_000},
		},
	}

	fetched := []domain.PerformanceEntry{
		{Date: today, SpentMicros: 5_000_000},
	}

	deps.dummyRepo.EXPECT().ListAll().Return([]*domain.DummyCampaign{tracked}, nil)
	deps.integrator.EXPECT().
		CampaignDailyMetrics("1111111111", "987", gomock.Any()).
		Return(fetched, nil)
	deps.dummyRepo.EXPECT().UpsertPerformance("dc0001", fetched).Return(nil)
	// A entrada de hoje é sobrescrita, não duplicada
	deps.dummyRepo.EXPECT().
		UpdateTracking("dc0001", gomock.Any(), int64(5_000_000), false).
		Return(nil)

	updated, err := svc.RefreshPerformance(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestAccountsReadyForReal(t *testing.T) {
	svc, deps := newService(t)

	readyHistory := entriesFor(lastDays(5), 3_000_000)   // €15 na janela
	notReadyHistory := entriesFor(lastDays(2), 1_000_000) // €2 na janela

	deps.dummyRepo.EXPECT().ListAll().Return([]*domain.DummyCampaign{
		{ID: "dc0001", AccountID: "1111111111", CampaignID: "10", TemplateName: "Laser NL", History: readyHistory},
		{ID: "dc0002", AccountID: "2222222222", CampaignID: "20", TemplateName: "Laser NL", History: notReadyHistory},
		{ID: "dc0003", AccountID: "3333333333", CampaignID: "30", TemplateName: "Laser NL", History: readyHistory},
	}, nil)

	hasReal := true
	deps.accountRepo.EXPECT().
		GetAccount("1234567890", "1111111111").
		Return(&domain.CachedAccount{AccountID: "1111111111", Name: "Conta pronta"}, nil).
		Times(2)
	// Conta 3333333333 já tem campanha real, fica fora na política estrita
	deps.accountRepo.EXPECT().
		GetAccount("1234567890", "3333333333").
		Return(&domain.CachedAccount{AccountID: "3333333333", HasRealCampaignOver20: &hasReal}, nil)

	result, err := svc.AccountsReadyForReal(context.Background(), domain.PolicyStrict, false)
	require.NoError(t, err)

	require.Len(t, result.ReadyAccounts, 1)
	assert.Equal(t, "1111111111", result.ReadyAccounts[0].AccountID)
	assert.Equal(t, "Conta pronta", result.ReadyAccounts[0].AccountName)
	assert.Equal(t, 15.0, result.ReadyAccounts[0].TotalSpentLast7Days)
	assert.Equal(t, 1, result.TotalReadyAccounts)
	assert.Equal(t, 10.0, result.Criteria.MinSpendLast7Days)
	assert.Equal(t, domain.PolicyStrict, result.Criteria.Policy)
}

func TestAccountsReadyForRealPoliticaPermissiva(t *testing.T) {
	svc, deps := newService(t)

	readyHistory := entriesFor(lastDays(5), 3_000_000)

	deps.dummyRepo.EXPECT().ListAll().Return([]*domain.DummyCampaign{
		{ID: "dc0003", AccountID: "3333333333", CampaignID: "30", TemplateName: "Laser NL", History: readyHistory},
	}, nil)

	deps.accountRepo.EXPECT().
		GetAccount("1234567890", "3333333333").
		Return(&domain.CachedAccount{AccountID: "3333333333", Name: "Com real"}, nil)

	result, err := svc.AccountsReadyForReal(context.Background(), domain.PolicyAllowRealCampaigns, false)
	require.NoError(t, err)

	require.Len(t, result.ReadyAccounts, 1)
	assert.Equal(t, "3333333333", result.ReadyAccounts[0].AccountID)
}

func TestDeleteDummyCampaign(t *testing.T) {
	svc, deps := newService(t)

	deps.dummyRepo.EXPECT().GetByID("dc0404").Return(nil, nil)

	err := svc.DeleteDummyCampaign("dc0404")
	require.Error(t, err)
	assert.ErrorIs(t, err, tracking.ErrCampaignNotFound)
}

func TestRefreshPerformanceErroPorCampanhaNaoAborta(t *testing.T) {
	svc, deps := newService(t)

	deps.dummyRepo.EXPECT().ListAll().Return([]*domain.DummyCampaign{
		{ID: "dc0001", AccountID: "1111111111", CampaignID: "10"},
		{ID: "dc0002", AccountID: "2222222222", CampaignID: "20"},
	}, nil)

	deps.integrator.EXPECT().
		CampaignDailyMetrics("1111111111", "10", gomock.Any()).
		Return(nil, errors.New("rate limit"))
	deps.integrator.EXPECT().
		CampaignDailyMetrics("2222222222", "20", gomock.Any()).
		Return(nil, nil)
	deps.dummyRepo.EXPECT().
		UpdateTracking("dc0002", gomock.Any(), int64(0), false).
		Return(nil)

	updated, err := svc.RefreshPerformance(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}
