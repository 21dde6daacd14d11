package tracking

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/mcc-manager-api/infrastructure/repository"
	"github.com/vfg2006/mcc-manager-api/internal/config"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/templating"
	errorcodes "github.com/vfg2006/mcc-manager-api/pkg/apiErrors"
	"github.com/vfg2006/mcc-manager-api/pkg/fanout"
	"github.com/vfg2006/mcc-manager-api/pkg/utils"
)

type Service interface {
	CreateDummyCampaign(ctx context.Context, accountID, templateID string, useRandomTemplate bool) (*domain.DummyCampaign, error)
	ListDummyCampaigns(accountID string) ([]*domain.DummyCampaign, error)
	DeleteDummyCampaign(id string) error
	RefreshPerformance(ctx context.Context, accountIDs []string) (int, error)
	AccountsReadyForReal(ctx context.Context, policy domain.DeploymentPolicy, updatePerformance bool) (*domain.ReadyAccountsResult, error)
}

type service struct {
	cfg         *config.Config
	integrator  googleads.Integrator
	dummyRepo   repository.DummyCampaignRepository
	accountRepo repository.AccountCacheRepository
	templates   templating.Service
}

func NewService(
	cfg *config.Config,
	integrator googleads.Integrator,
	dummyRepo repository.DummyCampaignRepository,
	accountRepo repository.AccountCacheRepository,
	templates templating.Service,
) Service {
	return &service{
		cfg:         cfg,
		integrator:  integrator,
		dummyRepo:   dummyRepo,
		accountRepo: accountRepo,
		templates:   templates,
	}
}

// CreateDummyCampaign cria uma campanha dummy de orçamento baixo em uma conta
// sem campanhas e registra o acompanhamento dela.
func (s *service) CreateDummyCampaign(ctx context.Context, accountID, templateID string, useRandomTemplate bool) (*domain.DummyCampaign, error) {
	count, err := s.integrator.CountCampaigns(accountID)
	if err != nil {
		return nil, NewTrackingError(ErrIntegration, errorcodes.ErrExternalService, err.Error())
	}
	if count > 0 {
		return nil, NewTrackingError(ErrAccountNotEligible, errorcodes.ErrInvalidRequest, accountID)
	}

	template, err := s.pickTemplate(templateID, useRandomTemplate)
	if err != nil {
		return nil, err
	}

	existing, err := s.dummyRepo.ListByAccount(accountID)
	if err != nil {
		return nil, NewTrackingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, err.Error())
	}

	campaignName := domain.CampaignName(template.Name, time.Now(), len(existing)+1)

	budget := s.cfg.Classification.DummyCampaignBudgetEuros
	spec, err := s.templates.Resolve(template.ID, campaignName, &domain.TemplateOverrides{Budget: &budget})
	if err != nil {
		return nil, err
	}

	created, err := s.integrator.CreateCampaign(accountID, spec)
	if err != nil {
		return nil, NewTrackingError(ErrIntegration, errorcodes.ErrExternalService, err.Error())
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewTrackingError(ErrGenerateID, errorcodes.ErrInternalServer, err.Error())
	}

	dummy := &domain.DummyCampaign{
		ID:           id,
		AccountID:    accountID,
		CampaignID:   created.CampaignID,
		CampaignName: created.CampaignName,
		BudgetID:     created.BudgetID,
		TemplateName: template.Name,
		CreatedAt:    time.Now(),
	}

	if err := s.dummyRepo.Create(dummy); err != nil {
		// A campanha já existe no Google Ads; o registro perdido fica
		// visível no próximo RefreshSuspended
		return nil, NewTrackingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  accountID,
		"campaign_id": created.CampaignID,
		"template":    template.Name,
	}).Info("Campanha dummy criada")

	return dummy, nil
}

func (s *service) pickTemplate(templateID string, useRandom bool) (*domain.CampaignTemplate, error) {
	if templateID != "" && !useRandom {
		return s.templates.GetTemplate(templateID)
	}

	candidates, err := s.templates.ListTemplates(domain.TemplateFamilyDummy, "")
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, NewTrackingError(ErrNoDummyTemplates, errorcodes.ErrInvalidRequest, "")
	}

	return candidates[rand.Intn(len(candidates))], nil
}

func (s *service) ListDummyCampaigns(accountID string) ([]*domain.DummyCampaign, error) {
	if accountID == "" {
		return s.dummyRepo.ListAll()
	}
	return s.dummyRepo.ListByAccount(accountID)
}

func (s *service) DeleteDummyCampaign(id string) error {
	dummy, err := s.dummyRepo.GetByID(id)
	if err != nil {
		return NewTrackingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, err.Error())
	}
	if dummy == nil {
		return NewTrackingError(ErrCampaignNotFound, errorcodes.ErrResourceNotFound, id)
	}
	return s.dummyRepo.Delete(id)
}

// RefreshPerformance atualiza o histórico diário das campanhas dummy e
// reavalia a prontidão de cada uma. Uma entrada por data; a data de hoje é
// sobrescrita a cada passada.
func (s *service) RefreshPerformance(ctx context.Context, accountIDs []string) (int, error) {
	campaigns, err := s.trackedCampaigns(accountIDs)
	if err != nil {
		return 0, err
	}

	windowStart := time.Now().AddDate(0, 0, -s.cfg.Classification.ReadySpendWindowDays)
	dateRange := domain.DateRange{
		StartDate: windowStart.Format("2006-01-02"),
		EndDate:   time.Now().Format("2006-01-02"),
	}

	concurrency := utils.Clamp(s.cfg.DummyPerformanceSync.MaxConcurrency, 1, 10)

	results := fanout.Run(ctx, campaigns, concurrency, func(_ context.Context, dummy *domain.DummyCampaign) (bool, error) {
		return s.refreshCampaign(dummy, dateRange)
	})

	updated := 0
	for _, r := range results {
		if r.Err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  r.Item.AccountID,
				"campaign_id": r.Item.CampaignID,
				"error":       r.Err.Error(),
			}).Warn("Falha ao atualizar performance da campanha dummy")
			continue
		}
		updated++
	}

	return updated, nil
}

func (s *service) refreshCampaign(dummy *domain.DummyCampaign, dateRange domain.DateRange) (bool, error) {
	entries, err := s.integrator.CampaignDailyMetrics(dummy.AccountID, dummy.CampaignID, dateRange)
	if err != nil {
		return false, err
	}

	if len(entries) > 0 {
		if err := s.dummyRepo.UpsertPerformance(dummy.ID, entries); err != nil {
			return false, err
		}
	}

	merged := mergeHistory(dummy.History, entries)
	dummy.History = merged

	var total int64
	for _, e := range merged {
		total += e.SpentMicros
	}

	cutoff := time.Now().AddDate(0, 0, -s.cfg.Classification.ReadyTrailingDays).Format("2006-01-02")
	last7 := dummy.SpentSince(cutoff)
	ready := last7 >= utils.EurosToMicros(s.cfg.Classification.ReadyMinSpendEuros)

	if err := s.dummyRepo.UpdateTracking(dummy.ID, time.Now(), total, ready); err != nil {
		return false, err
	}

	return ready, nil
}

// mergeHistory combina o histórico existente com as entradas recém-buscadas,
// mantendo no máximo uma entrada por data
func mergeHistory(history, fetched []domain.PerformanceEntry) []domain.PerformanceEntry {
	byDate := make(map[string]domain.PerformanceEntry, len(history)+len(fetched))
	for _, e := range history {
		byDate[e.Date] = e
	}
	for _, e := range fetched {
		byDate[e.Date] = e
	}

	merged := make([]domain.PerformanceEntry, 0, len(byDate))
	for _, e := range byDate {
		merged = append(merged, e)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Date < merged[j].Date })

	return merged
}

func (s *service) trackedCampaigns(accountIDs []string) ([]*domain.DummyCampaign, error) {
	if len(accountIDs) == 0 {
		campaigns, err := s.dummyRepo.ListAll()
		if err != nil {
			return nil, NewTrackingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, err.Error())
		}
		return campaigns, nil
	}

	campaigns := make([]*domain.DummyCampaign, 0)
	for _, accountID := range accountIDs {
		byAccount, err := s.dummyRepo.ListByAccount(accountID)
		if err != nil {
			return nil, NewTrackingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, err.Error())
		}
		campaigns = append(campaigns, byAccount...)
	}

	return campaigns, nil
}

// AccountsReadyForReal agrupa as campanhas dummy por conta recomputando o
// gasto dos últimos dias na hora da consulta, sem confiar apenas no flag
// armazenado. Na política estrita, contas que já possuem campanha real acima
// do teto ficam de fora.
func (s *service) AccountsReadyForReal(ctx context.Context, policy domain.DeploymentPolicy, updatePerformance bool) (*domain.ReadyAccountsResult, error) {
	if policy == "" {
		policy = domain.PolicyStrict
	}

	if updatePerformance {
		if _, err := s.RefreshPerformance(ctx, nil); err != nil {
			return nil, err
		}
	}

	campaigns, err := s.dummyRepo.ListAll()
	if err != nil {
		return nil, NewTrackingError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, err.Error())
	}

	cutoff := time.Now().AddDate(0, 0, -s.cfg.Classification.ReadyTrailingDays).Format("2006-01-02")
	minSpendMicros := utils.EurosToMicros(s.cfg.Classification.ReadyMinSpendEuros)

	byAccount := make(map[string][]*domain.DummyCampaign)
	for _, dummy := range campaigns {
		byAccount[dummy.AccountID] = append(byAccount[dummy.AccountID], dummy)
	}

	result := &domain.ReadyAccountsResult{
		ReadyAccounts: make([]domain.ReadyAccount, 0),
		Criteria: domain.ReadyCriteria{
			MinSpendLast7Days: s.cfg.Classification.ReadyMinSpendEuros,
			TrailingDays:      s.cfg.Classification.ReadyTrailingDays,
			Policy:            policy,
		},
	}

	for accountID, dummies := range byAccount {
		var totalLast7 int64
		accountReady := false
		readyCampaigns := make([]domain.ReadyCampaign, 0, len(dummies))

		for _, dummy := range dummies {
			last7 := dummy.SpentSince(cutoff)
			totalLast7 += last7
			if last7 >= minSpendMicros {
				accountReady = true
			}

			readyCampaigns = append(readyCampaigns, domain.ReadyCampaign{
				CampaignID:     dummy.CampaignID,
				CampaignName:   dummy.CampaignName,
				SpentLast7Days: utils.RoundWithTwoDecimalPlace(utils.MicrosToEuros(last7)),
				TemplateName:   dummy.TemplateName,
			})
		}

		if !accountReady {
			continue
		}

		if policy == domain.PolicyStrict && s.hasRealCampaigns(accountID) {
			continue
		}

		ready := domain.ReadyAccount{
			AccountID:           accountID,
			CampaignCount:       len(dummies),
			TotalSpentLast7Days: utils.RoundWithTwoDecimalPlace(utils.MicrosToEuros(totalLast7)),
			DummyCampaigns:      readyCampaigns,
		}

		if cached, err := s.accountRepo.GetAccount(s.cfg.GoogleAds.MccID, accountID); err == nil && cached != nil {
			ready.AccountName = cached.Name
		}

		result.ReadyAccounts = append(result.ReadyAccounts, ready)
	}

	sort.Slice(result.ReadyAccounts, func(i, j int) bool {
		return result.ReadyAccounts[i].AccountID < result.ReadyAccounts[j].AccountID
	})
	result.TotalReadyAccounts = len(result.ReadyAccounts)

	return result, nil
}

func (s *service) hasRealCampaigns(accountID string) bool {
	cached, err := s.accountRepo.GetAccount(s.cfg.GoogleAds.MccID, accountID)
	if err != nil || cached == nil || cached.HasRealCampaignOver20 == nil {
		return false
	}
	return *cached.HasRealCampaignOver20
}
