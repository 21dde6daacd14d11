package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcc-manager-api/infrastructure/repository"
	"github.com/vfg2006/mcc-manager-api/internal/config"
	"github.com/vfg2006/mcc-manager-api/internal/domain"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/caching"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/tracking"
)

// CacheSyncConfig representa a configuração de um agendador de atualização de cache
type CacheSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CacheSyncService agenda e executa uma rotina de atualização de cache.
// Cada rotina (suspensas, contagens, campanhas reais, performance dummy) é
// uma instância com seu próprio cron e trava de execução.
type CacheSyncService struct {
	name                string
	syncType            domain.CacheMetaType
	scheduler           *gocron.Scheduler
	config              CacheSyncConfig
	run                 func(ctx context.Context) error
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func newCacheSyncService(name string, syncType domain.CacheMetaType, syncConfig CacheSyncConfig, run func(ctx context.Context) error) *CacheSyncService {
	logrus.WithFields(logrus.Fields{
		"sync":          name,
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização de cache carregada")

	return &CacheSyncService{
		name:      name,
		syncType:  syncType,
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		run:       run,
	}
}

// NewSuspendedSyncService agenda a atualização completa do cache de contas
func NewSuspendedSyncService(appConfig *config.Config, cache caching.Service) *CacheSyncService {
	return newCacheSyncService(
		"contas suspensas",
		domain.CacheMetaSuspended,
		CacheSyncConfig{
			CronSchedule: appConfig.SuspendedSync.CronSchedule,
			SyncEnabled:  appConfig.SuspendedSync.Enabled,
		},
		func(ctx context.Context) error {
			_, _, err := cache.RefreshSuspended(ctx)
			return err
		},
	)
}

// NewCampaignCountSyncService agenda a atualização das contagens de campanha
func NewCampaignCountSyncService(appConfig *config.Config, cache caching.Service) *CacheSyncService {
	return newCacheSyncService(
		"contagem de campanhas",
		domain.CacheMetaCampaignCounts,
		CacheSyncConfig{
			CronSchedule: appConfig.CampaignCountSync.CronSchedule,
			SyncEnabled:  appConfig.CampaignCountSync.Enabled,
		},
		func(ctx context.Context) error {
			_, err := cache.RefreshCampaignCounts(ctx)
			return err
		},
	)
}

// NewRealOver20SyncService agenda a verificação de campanhas reais acima do teto
func NewRealOver20SyncService(appConfig *config.Config, cache caching.Service) *CacheSyncService {
	return newCacheSyncService(
		"campanhas reais acima do teto",
		domain.CacheMetaRealOver20,
		CacheSyncConfig{
			CronSchedule: appConfig.RealOver20Sync.CronSchedule,
			SyncEnabled:  appConfig.RealOver20Sync.Enabled,
		},
		func(ctx context.Context) error {
			_, err := cache.RefreshRealOver20(ctx)
			return err
		},
	)
}

// NewDummyPerformanceSyncService agenda a atualização de performance das
// campanhas dummy. Diferente das rotinas de cache de contas, o serviço de
// acompanhamento não registra cache_meta sozinho, então o registro é feito aqui.
func NewDummyPerformanceSyncService(appConfig *config.Config, tracker tracking.Service, metaRepo repository.CacheMetaRepository) *CacheSyncService {
	mccID := appConfig.GoogleAds.MccID

	return newCacheSyncService(
		"performance de campanhas dummy",
		domain.CacheMetaDummyPerformance,
		CacheSyncConfig{
			CronSchedule: appConfig.DummyPerformanceSync.CronSchedule,
			SyncEnabled:  appConfig.DummyPerformanceSync.Enabled,
		},
		func(ctx context.Context) error {
			startedAt := time.Now()
			upsertMeta(metaRepo, &domain.CacheMeta{
				MccID:     mccID,
				Type:      domain.CacheMetaDummyPerformance,
				Status:    domain.CacheStatusRunning,
				StartedAt: &startedAt,
			})

			updated, err := tracker.RefreshPerformance(ctx, nil)
			completedAt := time.Now()

			if err != nil {
				upsertMeta(metaRepo, &domain.CacheMeta{
					MccID:       mccID,
					Type:        domain.CacheMetaDummyPerformance,
					Status:      domain.CacheStatusError,
					StartedAt:   &startedAt,
					CompletedAt: &completedAt,
					Error:       err.Error(),
				})
				return err
			}

			upsertMeta(metaRepo, &domain.CacheMeta{
				MccID:       mccID,
				Type:        domain.CacheMetaDummyPerformance,
				Status:      domain.CacheStatusComplete,
				StartedAt:   &startedAt,
				CompletedAt: &completedAt,
				Counts:      map[string]int{"updated": updated},
			})
			return nil
		},
	)
}

func upsertMeta(metaRepo repository.CacheMetaRepository, meta *domain.CacheMeta) {
	if err := metaRepo.Upsert(meta); err != nil {
		logrus.WithFields(logrus.Fields{
			"type":  meta.Type,
			"error": err.Error(),
		}).Warn("Falha ao registrar estado da atualização agendada")
	}
}

// Start inicia o agendador
func (s *CacheSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.WithField("sync", s.name).Info("Atualização agendada desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"sync": s.name,
		"cron": s.config.CronSchedule,
	}).Info("Iniciando agendador de atualização de cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de %s: %w", s.name, err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("sync", s.name).Info("Parando agendador de atualização de cache")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CacheSyncService) runSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("sync", s.name).Info("Atualização já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	s.lastSyncStartedAt = time.Now()
	s.lastSyncError = ""

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("sync", s.name).Info("Iniciando atualização agendada")

	if err := s.run(ctx); err != nil {
		// Outra origem (requisição interativa) pode ter chegado primeiro
		if errors.Is(err, caching.ErrRefreshInProgress) {
			logrus.WithField("sync", s.name).Info("Atualização já em andamento em outra origem, ignorando")
			return
		}

		s.lastSyncError = err.Error()
		logrus.WithFields(logrus.Fields{
			"sync":  s.name,
			"error": err.Error(),
		}).Error("Atualização agendada falhou")
		return
	}

	s.lastSyncCompletedAt = time.Now()
	logrus.WithFields(logrus.Fields{
		"sync":     s.name,
		"duration": s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String(),
	}).Info("Atualização agendada concluída")
}

// TriggerManualSync inicia manualmente uma atualização em background
func (s *CacheSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("sync", s.name).Info("Atualização já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.WithField("sync", s.name).Info("Iniciando atualização manual")
	go s.runSync(context.Background())
}

// Type retorna o tipo de cache que este agendador atualiza
func (s *CacheSyncService) Type() domain.CacheMetaType {
	return s.syncType
}

// Name retorna o nome do agendador
func (s *CacheSyncService) Name() string {
	return s.name
}

// GetStatus retorna o status atual do agendador
func (s *CacheSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync":                   s.name,
		"type":                   string(s.syncType),
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
