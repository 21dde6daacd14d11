package classifying

import (
	"context"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads"
	gadomain "github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/mcc-manager-api/infrastructure/repository"
	"github.com/vfg2006/mcc-manager-api/internal/config"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
	errorcodes "github.com/vfg2006/mcc-manager-api/pkg/apiErrors"
	"github.com/vfg2006/mcc-manager-api/pkg/fanout"
	"github.com/vfg2006/mcc-manager-api/pkg/utils"
)

var accountIDPattern = regexp.MustCompile(`^\d{10}$`)

// CountsRefresher dispara a atualização completa das contagens de campanha.
// Satisfeita pelo serviço de cache.
type CountsRefresher interface {
	RefreshCampaignCounts(ctx context.Context) (int, error)
}

type Service interface {
	DetectSuspended() ([]*domain.SuspendedAccount, *domain.SuspendedSummary, error)
	EligibleAccounts(ctx context.Context) (*domain.EligibleResult, error)
	AccountSpend(ctx context.Context, dateRange domain.DateRange, minSpend, maxSpend *float64) ([]domain.AccountSpend, error)
	ToBeDeleted(ctx context.Context) ([]domain.ToBeDeletedAccount, error)
	PartitionCampaigns(campaigns []gadomain.Campaign) (dummy, real []gadomain.Campaign)
	ManualLoad(ctx context.Context, accountIDs []string) ([]domain.ManualAccount, error)
}

type service struct {
	cfg         *config.Config
	integrator  googleads.Integrator
	accountRepo repository.AccountCacheRepository
	cache       CountsRefresher
}

func NewService(
	cfg *config.Config,
	integrator googleads.Integrator,
	accountRepo repository.AccountCacheRepository,
	cache CountsRefresher,
) Service {
	return &service{
		cfg:         cfg,
		integrator:  integrator,
		accountRepo: accountRepo,
		cache:       cache,
	}
}

// DetectSuspended consulta a listagem da MCC ao vivo e retorna as contas
// suspensas ou canceladas, sem passar pelo cache.
func (s *service) DetectSuspended() ([]*domain.SuspendedAccount, *domain.SuspendedSummary, error) {
	accounts, err := s.integrator.ListClientAccounts()
	if err != nil {
		return nil, nil, NewClassificationError(ErrIntegration, errorcodes.ErrExternalService, err.Error())
	}

	detectedAt := time.Now().Format(time.RFC3339)
	suspended := make([]*domain.SuspendedAccount, 0)
	summary := &domain.SuspendedSummary{DetectedAt: detectedAt}

	for _, account := range accounts {
		if s.cfg.GoogleAds.IsHiddenAccount(account.AccountID) {
			continue
		}
		if !domain.IsSuspendedStatus(account.Status) {
			continue
		}

		switch account.Status {
		case domain.AccountStatusSuspended:
			summary.Suspended++
		case domain.AccountStatusCanceled:
			summary.Canceled++
		}

		suspended = append(suspended, &domain.SuspendedAccount{
			AccountID:        account.AccountID,
			Name:             account.Name,
			Currency:         account.Currency,
			TimeZone:         account.TimeZone,
			Status:           account.Status,
			SuspensionReason: "Conta com status " + string(account.Status) + " no Google Ads",
			DetectedAt:       detectedAt,
		})
	}

	summary.TotalSuspended = summary.Suspended + summary.Canceled

	return suspended, summary, nil
}

// EligibleAccounts lista contas ENABLED com zero campanhas. Usa a contagem
// em cache quando fresca; o restante é amostrado ao vivo até o limite
// configurado, e uma atualização completa é disparada em background.
func (s *service) EligibleAccounts(ctx context.Context) (*domain.EligibleResult, error) {
	mccID := s.cfg.GoogleAds.MccID

	accounts, err := s.accountRepo.ListAccounts(mccID)
	if err != nil {
		return nil, NewClassificationError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, err.Error())
	}
	if len(accounts) == 0 {
		return nil, NewClassificationError(ErrEmptyCache, errorcodes.ErrInvalidRequest, mccID)
	}

	ttl := time.Duration(s.cfg.Classification.CacheTTLHours) * time.Hour
	now := time.Now()

	result := &domain.EligibleResult{MccID: mccID, Accounts: make([]domain.EligibleAccount, 0)}
	stale := make([]*domain.CachedAccount, 0)

	for _, account := range accounts {
		if account.Status != domain.AccountStatusEnabled {
			continue
		}
		if s.cfg.GoogleAds.IsHiddenAccount(account.AccountID) {
			continue
		}

		result.TotalChecked++

		if account.CampaignCountFresh(ttl, now) {
			if *account.CampaignCount == 0 {
				result.Accounts = append(result.Accounts, eligibleAccount(account, 0, true))
			}
			continue
		}

		stale = append(stale, account)
	}

	// Amostragem ao vivo limitada para não travar a requisição interativa
	sample := stale
	if len(sample) > s.cfg.Classification.EligibleSampleSize {
		sample = sample[:s.cfg.Classification.EligibleSampleSize]
	}

	if len(sample) > 0 {
		concurrency := utils.Clamp(s.cfg.Classification.EligibleConcurrency, 1, 10)
		checkedAt := time.Now()

		results := fanout.Run(ctx, sample, concurrency, func(_ context.Context, account *domain.CachedAccount) (int, error) {
			count, err := s.integrator.CountCampaigns(account.AccountID)
			if err != nil {
				return 0, err
			}

			if err := s.accountRepo.UpdateCampaignCount(account.MccID, account.AccountID, count, checkedAt); err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id": account.AccountID,
					"error":      err.Error(),
				}).Warn("Falha ao salvar contagem de campanhas amostrada")
			}

			return count, nil
		})

		for _, r := range results {
			if r.Err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id": r.Item.AccountID,
					"error":      r.Err.Error(),
				}).Warn("Falha ao amostrar contagem de campanhas da conta")
				continue
			}

			result.SampledLive++
			if r.Value == 0 {
				result.Accounts = append(result.Accounts, eligibleAccount(r.Item, 0, false))
			}
		}
	}

	result.TotalEligible = len(result.Accounts)

	// Contas além da amostra ficam para a atualização completa em background
	if len(stale) > 0 {
		result.RefreshTriggered = true
		go s.refreshCountsInBackground()
	}

	return result, nil
}

// refreshCountsInBackground dispara a atualização completa de contagens.
// Erros são engolidos e ficam visíveis apenas no cache_meta.
func (s *service) refreshCountsInBackground() {
	if _, err := s.cache.RefreshCampaignCounts(context.Background()); err != nil {
		logrus.WithField("error", err.Error()).
			Warn("Atualização de contagem de campanhas em background falhou")
	}
}

// AccountSpend avalia o gasto das contas ativas em uma janela de datas,
// com filtros opcionais de gasto mínimo e máximo em euros.
func (s *service) AccountSpend(ctx context.Context, dateRange domain.DateRange, minSpend, maxSpend *float64) ([]domain.AccountSpend, error) {
	if dateRange.StartDate == "" || dateRange.EndDate == "" || dateRange.StartDate > dateRange.EndDate {
		return nil, NewClassificationError(ErrInvalidDateRange, errorcodes.ErrInvalidRequest, dateRange.StartDate+".."+dateRange.EndDate)
	}
	for _, date := range []string{dateRange.StartDate, dateRange.EndDate} {
		if _, err := utils.ParseDate(date); err != nil {
			return nil, NewClassificationError(ErrInvalidDateRange, errorcodes.ErrInvalidRequest, date)
		}
	}

	accounts, err := s.enabledAccounts()
	if err != nil {
		return nil, err
	}

	concurrency := utils.Clamp(s.cfg.Classification.SpendConcurrency, 1, 16)

	results := fanout.Run(ctx, accounts, concurrency, func(_ context.Context, account *domain.CachedAccount) (int64, error) {
		return s.integrator.AccountSpendMicros(account.AccountID, dateRange)
	})

	spends := make([]domain.AccountSpend, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": r.Item.AccountID,
				"error":      r.Err.Error(),
			}).Warn("Falha ao avaliar gasto da conta")
			continue
		}

		spend := utils.RoundWithTwoDecimalPlace(utils.MicrosToEuros(r.Value))
		if minSpend != nil && spend < *minSpend {
			continue
		}
		if maxSpend != nil && spend > *maxSpend {
			continue
		}

		spends = append(spends, domain.AccountSpend{
			AccountID:   r.Item.AccountID,
			AccountName: r.Item.Name,
			Spend:       spend,
		})
	}

	return spends, nil
}

// ToBeDeleted encontra contas ativas que gastaram acima da marca nos últimos
// 30 dias (sem contar hoje) mas zeraram o gasto ontem e hoje.
func (s *service) ToBeDeleted(ctx context.Context) ([]domain.ToBeDeletedAccount, error) {
	accounts, err := s.enabledAccounts()
	if err != nil {
		return nil, err
	}

	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)
	windowStart := today.AddDate(0, 0, -30)

	last30Range := domain.DateRange{
		StartDate: windowStart.Format("2006-01-02"),
		EndDate:   yesterday.Format("2006-01-02"),
	}
	yesterdayRange := domain.DateRange{
		StartDate: yesterday.Format("2006-01-02"),
		EndDate:   yesterday.Format("2006-01-02"),
	}
	todayRange := domain.DateRange{
		StartDate: today.Format("2006-01-02"),
		EndDate:   today.Format("2006-01-02"),
	}

	floorMicros := utils.EurosToMicros(s.cfg.Classification.ToBeDeletedFloorEuros)
	concurrency := utils.Clamp(s.cfg.Classification.SpendConcurrency, 1, 16)

	type spendWindow struct {
		last30    int64
		yesterday int64
		today     int64
	}

	results := fanout.Run(ctx, accounts, concurrency, func(_ context.Context, account *domain.CachedAccount) (spendWindow, error) {
		var w spendWindow
		var err error

		if w.last30, err = s.integrator.AccountSpendMicros(account.AccountID, last30Range); err != nil {
			return w, err
		}
		if w.last30 <= floorMicros {
			// Abaixo da marca, janelas recentes não importam
			return w, nil
		}
		if w.yesterday, err = s.integrator.AccountSpendMicros(account.AccountID, yesterdayRange); err != nil {
			return w, err
		}
		w.today, err = s.integrator.AccountSpendMicros(account.AccountID, todayRange)
		return w, err
	})

	toBeDeleted := make([]domain.ToBeDeletedAccount, 0)
	for _, r := range results {
		if r.Err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": r.Item.AccountID,
				"error":      r.Err.Error(),
			}).Warn("Falha ao avaliar conta para remoção")
			continue
		}

		if r.Value.last30 <= floorMicros || r.Value.yesterday != 0 || r.Value.today != 0 {
			continue
		}

		toBeDeleted = append(toBeDeleted, domain.ToBeDeletedAccount{
			AccountID:       r.Item.AccountID,
			AccountName:     r.Item.Name,
			Last30DaysCost:  utils.RoundWithTwoDecimalPlace(utils.MicrosToEuros(r.Value.last30)),
			YesterdayCost:   0,
			TodayCost:       0,
			DetectionReason: "Gasto alto nos últimos 30 dias com entrega zerada ontem e hoje",
		})
	}

	return toBeDeleted, nil
}

// PartitionCampaigns separa campanhas dummy de campanhas reais pelo teto
// de orçamento diário de campanha dummy.
func (s *service) PartitionCampaigns(campaigns []gadomain.Campaign) (dummy, real []gadomain.Campaign) {
	ceilingMicros := utils.EurosToMicros(s.cfg.Classification.DummyPartitionCeiling)

	for _, campaign := range campaigns {
		if campaign.BudgetAmountMicros > ceilingMicros {
			real = append(real, campaign)
			continue
		}
		dummy = append(dummy, campaign)
	}

	return dummy, real
}

// ManualLoad valida uma lista de contas informadas manualmente, classificando
// cada uma pelo estado atual das suas campanhas. Erros por conta não abortam
// o lote.
func (s *service) ManualLoad(ctx context.Context, accountIDs []string) ([]domain.ManualAccount, error) {
	if len(accountIDs) == 0 {
		return nil, NewClassificationError(ErrInvalidAccountID, errorcodes.ErrMissingRequiredData, "nenhuma conta informada")
	}

	results := fanout.Run(ctx, accountIDs, utils.Clamp(s.cfg.Classification.SpendConcurrency, 1, 16), s.loadManualAccount)

	manual := make([]domain.ManualAccount, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			manual = append(manual, domain.ManualAccount{
				ID:     r.Item,
				Status: domain.ManualAccountError,
				Error:  r.Err.Error(),
			})
			continue
		}
		manual = append(manual, *r.Value)
	}

	return manual, nil
}

func (s *service) loadManualAccount(_ context.Context, accountID string) (*domain.ManualAccount, error) {
	if !accountIDPattern.MatchString(accountID) {
		return nil, ErrInvalidAccountID
	}

	account := &domain.ManualAccount{ID: accountID, Name: accountID}

	if cached, err := s.accountRepo.GetAccount(s.cfg.GoogleAds.MccID, accountID); err == nil && cached != nil {
		account.Name = cached.Name
	}

	campaigns, err := s.integrator.ListCampaigns(accountID)
	if err != nil {
		return nil, err
	}

	if len(campaigns) == 0 {
		account.Status = domain.ManualAccountReady
		return account, nil
	}

	_, real := s.PartitionCampaigns(campaigns)
	hasReal := len(real) > 0

	account.Status = domain.ManualAccountDeployed
	account.HasRealCampaigns = &hasReal

	return account, nil
}

func (s *service) enabledAccounts() ([]*domain.CachedAccount, error) {
	accounts, err := s.accountRepo.ListAccounts(s.cfg.GoogleAds.MccID)
	if err != nil {
		return nil, NewClassificationError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, err.Error())
	}
	if len(accounts) == 0 {
		return nil, NewClassificationError(ErrEmptyCache, errorcodes.ErrInvalidRequest, s.cfg.GoogleAds.MccID)
	}

	enabled := make([]*domain.CachedAccount, 0, len(accounts))
	for _, account := range accounts {
		if account.Status != domain.AccountStatusEnabled {
			continue
		}
		if s.cfg.GoogleAds.IsHiddenAccount(account.AccountID) {
			continue
		}
		enabled = append(enabled, account)
	}

	return enabled, nil
}

func eligibleAccount(account *domain.CachedAccount, count int, fromCache bool) domain.EligibleAccount {
	return domain.EligibleAccount{
		AccountID:     account.AccountID,
		Name:          account.Name,
		Currency:      account.Currency,
		TimeZone:      account.TimeZone,
		CampaignCount: count,
		FromCache:     fromCache,
	}
}
