package caching

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/mcc-manager-api/infrastructure/repository"
	"github.com/vfg2006/mcc-manager-api/internal/config"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
	errorcodes "github.com/vfg2006/mcc-manager-api/pkg/apiErrors"
	"github.com/vfg2006/mcc-manager-api/pkg/fanout"
	"github.com/vfg2006/mcc-manager-api/pkg/utils"
)

type Service interface {
	RefreshSuspended(ctx context.Context) (*domain.SuspendedSummary, *domain.PruneResult, error)
	SuspendedFromCache() ([]*domain.SuspendedAccount, *domain.CacheMeta, error)
	RefreshCampaignCounts(ctx context.Context) (int, error)
	RefreshRealOver20(ctx context.Context) (int, error)
	Status() ([]*domain.CacheMeta, error)
}

type service struct {
	cfg         *config.Config
	integrator  googleads.Integrator
	accountRepo repository.AccountCacheRepository
	metaRepo    repository.CacheMetaRepository
	dummyRepo   repository.DummyCampaignRepository

	// Garante uma única atualização em andamento por tipo
	mu      sync.Mutex
	running map[domain.CacheMetaType]bool
}

func NewService(
	cfg *config.Config,
	integrator googleads.Integrator,
	accountRepo repository.AccountCacheRepository,
	metaRepo repository.CacheMetaRepository,
	dummyRepo repository.DummyCampaignRepository,
) Service {
	return &service{
		cfg:         cfg,
		integrator:  integrator,
		accountRepo: accountRepo,
		metaRepo:    metaRepo,
		dummyRepo:   dummyRepo,
		running:     make(map[domain.CacheMetaType]bool),
	}
}

// RefreshSuspended atualiza o cache completo de contas a partir da listagem
// da MCC, removendo contas que não existem mais e suas campanhas dummy.
func (s *service) RefreshSuspended(ctx context.Context) (*domain.SuspendedSummary, *domain.PruneResult, error) {
	release, err := s.acquire(domain.CacheMetaSuspended)
	if err != nil {
		return nil, nil, err
	}

	var summary *domain.SuspendedSummary
	var prune *domain.PruneResult

	err = s.run(domain.CacheMetaSuspended, release, func() (map[string]int, error) {
		accounts, err := s.integrator.ListClientAccounts()
		if err != nil {
			return nil, NewCacheError(ErrIntegration, errorcodes.ErrExternalService, err.Error())
		}

		visible := make([]*domain.CachedAccount, 0, len(accounts))
		presentIDs := make([]string, 0, len(accounts))
		suspendedCount := 0
		canceledCount := 0

		for _, account := range accounts {
			if s.cfg.GoogleAds.IsHiddenAccount(account.AccountID) {
				continue
			}

			visible = append(visible, account)
			presentIDs = append(presentIDs, account.AccountID)

			switch account.Status {
			case domain.AccountStatusSuspended:
				suspendedCount++
			case domain.AccountStatusCanceled:
				canceledCount++
			}
		}

		if err := s.accountRepo.SaveOrUpdateAccounts(visible); err != nil {
			return nil, NewCacheError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, err.Error())
		}

		prune, err = s.pruneMissing(presentIDs)
		if err != nil {
			return nil, err
		}

		summary = &domain.SuspendedSummary{
			TotalSuspended: suspendedCount + canceledCount,
			Suspended:      suspendedCount,
			Canceled:       canceledCount,
			DetectedAt:     time.Now().Format(time.RFC3339),
		}

		return map[string]int{
			"accounts":        len(visible),
			"suspended":       suspendedCount,
			"canceled":        canceledCount,
			"prunedAccounts":  prune.RemovedAccounts,
			"prunedCampaigns": prune.RemovedCampaigns,
		}, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return summary, prune, nil
}

// pruneMissing remove do cache as contas ausentes da listagem e, em cascata
// lógica, os registros de campanhas dummy dessas contas.
func (s *service) pruneMissing(presentIDs []string) (*domain.PruneResult, error) {
	mccID := s.cfg.GoogleAds.MccID

	cached, err := s.accountRepo.ListAccounts(mccID)
	if err != nil {
		return nil, NewCacheError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, err.Error())
	}

	present := make(map[string]struct{}, len(presentIDs))
	for _, id := range presentIDs {
		present[id] = struct{}{}
	}

	missing := make([]string, 0)
	for _, account := range cached {
		if _, ok := present[account.AccountID]; !ok {
			missing = append(missing, account.AccountID)
		}
	}

	result := &domain.PruneResult{AffectedAccounts: missing}

	if len(missing) == 0 {
		return result, nil
	}

	removedCampaigns, err := s.dummyRepo.DeleteByAccounts(missing)
	if err != nil {
		return nil, NewCacheError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, err.Error())
	}

	removedAccounts, err := s.accountRepo.PruneMissing(mccID, presentIDs)
	if err != nil {
		return nil, NewCacheError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, err.Error())
	}

	result.RemovedAccounts = removedAccounts
	result.RemovedCampaigns = removedCampaigns

	logrus.WithFields(logrus.Fields{
		"removed_accounts":  removedAccounts,
		"removed_campaigns": removedCampaigns,
	}).Info("Contas ausentes removidas do cache")

	return result, nil
}

// SuspendedFromCache lê as contas suspensas do cache sem tocar na API.
// Contas canceladas ficam de fora da listagem de suspensas.
func (s *service) SuspendedFromCache() ([]*domain.SuspendedAccount, *domain.CacheMeta, error) {
	mccID := s.cfg.GoogleAds.MccID

	accounts, err := s.accountRepo.ListSuspended(mccID)
	if err != nil {
		return nil, nil, NewCacheError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, err.Error())
	}

	suspended := make([]*domain.SuspendedAccount, 0, len(accounts))
	for _, account := range accounts {
		if account.Status == domain.AccountStatusCanceled {
			continue
		}
		if s.cfg.GoogleAds.IsHiddenAccount(account.AccountID) {
			continue
		}

		suspended = append(suspended, &domain.SuspendedAccount{
			AccountID:        account.AccountID,
			Name:             account.Name,
			Currency:         account.Currency,
			TimeZone:         account.TimeZone,
			Status:           account.Status,
			SuspensionReason: "Conta com status " + string(account.Status) + " no Google Ads",
		})
	}

	meta, err := s.metaRepo.Get(mccID, domain.CacheMetaSuspended)
	if err != nil {
		return nil, nil, NewCacheError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, err.Error())
	}

	return suspended, meta, nil
}

// RefreshCampaignCounts recalcula a contagem de campanhas das contas ativas
// em paralelo. Retorna quantas contas foram atualizadas.
func (s *service) RefreshCampaignCounts(ctx context.Context) (int, error) {
	release, err := s.acquire(domain.CacheMetaCampaignCounts)
	if err != nil {
		return 0, err
	}

	updated := 0

	err = s.run(domain.CacheMetaCampaignCounts, release, func() (map[string]int, error) {
		accounts, err := s.activeAccounts()
		if err != nil {
			return nil, err
		}

		concurrency := utils.Clamp(s.cfg.CampaignCountSync.MaxConcurrency, 1, 5)
		ttl := time.Duration(s.cfg.Classification.CacheTTLHours) * time.Hour
		now := time.Now()

		// Contas com contagem ainda dentro do TTL não voltam à API
		skipped := 0
		stale := make([]*domain.CachedAccount, 0, len(accounts))
		for _, account := range accounts {
			if account.CampaignCountFresh(ttl, now) {
				skipped++
				continue
			}
			stale = append(stale, account)
		}

		results := fanout.Run(ctx, stale, concurrency, func(_ context.Context, account *domain.CachedAccount) (int, error) {
			count, err := s.integrator.CountCampaigns(account.AccountID)
			if err != nil {
				return 0, err
			}

			if err := s.accountRepo.UpdateCampaignCount(account.MccID, account.AccountID, count, now); err != nil {
				return 0, err
			}

			return count, nil
		})

		failed := 0
		for _, result := range results {
			if result.Err != nil {
				failed++
				logrus.WithFields(logrus.Fields{
					"account_id": result.Item.AccountID,
					"error":      result.Err.Error(),
				}).Warn("Falha ao atualizar contagem de campanhas da conta")
				continue
			}
			updated++
		}

		return map[string]int{"updated": updated, "failed": failed, "skipped": skipped}, nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}

// RefreshRealOver20 verifica, conta a conta, se existe alguma campanha com
// orçamento acima do teto de campanha real.
func (s *service) RefreshRealOver20(ctx context.Context) (int, error) {
	release, err := s.acquire(domain.CacheMetaRealOver20)
	if err != nil {
		return 0, err
	}

	updated := 0

	err = s.run(domain.CacheMetaRealOver20, release, func() (map[string]int, error) {
		accounts, err := s.activeAccounts()
		if err != nil {
			return nil, err
		}

		concurrency := utils.Clamp(s.cfg.RealOver20Sync.MaxConcurrency, 1, 10)
		ceilingMicros := utils.EurosToMicros(s.cfg.Classification.RealBudgetCeiling)
		now := time.Now()

		results := fanout.Run(ctx, accounts, concurrency, func(_ context.Context, account *domain.CachedAccount) (bool, error) {
			campaigns, err := s.integrator.ListCampaigns(account.AccountID)
			if err != nil {
				return false, err
			}

			hasReal := false
			for _, campaign := range campaigns {
				if campaign.BudgetAmountMicros > ceilingMicros {
					hasReal = true
					break
				}
			}

			if err := s.accountRepo.UpdateRealOver20(account.MccID, account.AccountID, hasReal, now); err != nil {
				return false, err
			}

			return hasReal, nil
		})

		failed := 0
		withReal := 0
		for _, result := range results {
			if result.Err != nil {
				failed++
				logrus.WithFields(logrus.Fields{
					"account_id": result.Item.AccountID,
					"error":      result.Err.Error(),
				}).Warn("Falha ao verificar campanhas reais da conta")
				continue
			}
			updated++
			if result.Value {
				withReal++
			}
		}

		return map[string]int{"updated": updated, "failed": failed, "withRealCampaigns": withReal}, nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}

func (s *service) Status() ([]*domain.CacheMeta, error) {
	return s.metaRepo.ListByMcc(s.cfg.GoogleAds.MccID)
}

func (s *service) activeAccounts() ([]*domain.CachedAccount, error) {
	accounts, err := s.accountRepo.ListAccounts(s.cfg.GoogleAds.MccID)
	if err != nil {
		return nil, NewCacheError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, err.Error())
	}

	active := make([]*domain.CachedAccount, 0, len(accounts))
	for _, account := range accounts {
		if account.IsSuspended {
			continue
		}
		active = append(active, account)
	}

	return active, nil
}

// acquire marca o tipo como em execução, falhando se já houver atualização
// em andamento.
func (s *service) acquire(metaType domain.CacheMetaType) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running[metaType] {
		return nil, NewCacheError(ErrRefreshInProgress, errorcodes.ErrInvalidRequest, string(metaType))
	}

	s.running[metaType] = true

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.running[metaType] = false
	}, nil
}

// run executa a atualização registrando início, fim e erro no cache_meta
func (s *service) run(metaType domain.CacheMetaType, release func(), fn func() (map[string]int, error)) error {
	defer release()

	mccID := s.cfg.GoogleAds.MccID
	startedAt := time.Now()

	s.upsertMeta(&domain.CacheMeta{
		MccID:     mccID,
		Type:      metaType,
		Status:    domain.CacheStatusRunning,
		StartedAt: &startedAt,
	})

	counts, err := fn()
	completedAt := time.Now()

	if err != nil {
		s.upsertMeta(&domain.CacheMeta{
			MccID:       mccID,
			Type:        metaType,
			Status:      domain.CacheStatusError,
			StartedAt:   &startedAt,
			CompletedAt: &completedAt,
			Error:       err.Error(),
		})
		return err
	}

	s.upsertMeta(&domain.CacheMeta{
		MccID:       mccID,
		Type:        metaType,
		Status:      domain.CacheStatusComplete,
		StartedAt:   &startedAt,
		CompletedAt: &completedAt,
		Counts:      counts,
	})

	logrus.WithFields(logrus.Fields{
		"type":     metaType,
		"duration": completedAt.Sub(startedAt).String(),
		"counts":   counts,
	}).Info("Atualização de cache concluída")

	return nil
}

func (s *service) upsertMeta(meta *domain.CacheMeta) {
	if err := s.metaRepo.Upsert(meta); err != nil {
		logrus.WithFields(logrus.Fields{
			"type":  meta.Type,
			"error": err.Error(),
		}).Warn("Falha ao registrar estado da atualização de cache")
	}
}
