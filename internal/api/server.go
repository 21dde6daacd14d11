package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcc-manager-api/internal/api/handler"
	"github.com/vfg2006/mcc-manager-api/internal/api/handler/router"
	"github.com/vfg2006/mcc-manager-api/internal/config"
	"github.com/vfg2006/mcc-manager-api/internal/scheduler"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/caching"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/classifying"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/deploying"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/templating"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/tracking"
	"github.com/vfg2006/mcc-manager-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	classifier classifying.Service,
	cacheService caching.Service,
	tracker tracking.Service,
	deployer deploying.Service,
	templater templating.Service,
	authenticator authenticating.Authenticator,
	suspendedSyncService *scheduler.CacheSyncService,
	campaignCountSyncService *scheduler.CacheSyncService,
	realOver20SyncService *scheduler.CacheSyncService,
	dummyPerformanceSyncService *scheduler.CacheSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SuspendedSyncService:        suspendedSyncService,
		CampaignCountSyncService:    campaignCountSyncService,
		RealOver20SyncService:       realOver20SyncService,
		DummyPerformanceSyncService: dummyPerformanceSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Accounts(classifier, tracker)...),
		router.WithRoutes(handler.Cache(cacheService, tracker)...),
		router.WithRoutes(handler.Campaigns(tracker, deployer)...),
		router.WithRoutes(handler.Templates(templater)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator, config),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
