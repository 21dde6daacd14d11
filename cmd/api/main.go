package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mcc-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/mcc-manager-api/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/mcc-manager-api/infrastructure/repository"
	"github.com/vfg2006/mcc-manager-api/internal/api"
	"github.com/vfg2006/mcc-manager-api/internal/config"
	"github.com/vfg2006/mcc-manager-api/internal/scheduler"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/caching"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/classifying"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/deploying"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/templating"
	"github.com/vfg2006/mcc-manager-api/internal/usecases/tracking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountCacheRepository(pgConn)
	metaRepo := repository.NewCacheMetaRepository(pgConn)
	dummyRepo := repository.NewDummyCampaignRepository(pgConn)
	templateRepo := repository.NewTemplateRepository(pgConn)
	scheduleRepo := repository.NewAdScheduleRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	adsClient := adsclient.NewClient(cfg)
	integrator := googleads.New(cfg, adsClient)

	templater := templating.NewService(templateRepo, scheduleRepo)
	cacheService := caching.NewService(cfg, integrator, accountRepo, metaRepo, dummyRepo)
	classifier := classifying.NewService(cfg, integrator, accountRepo, cacheService)
	tracker := tracking.NewService(cfg, integrator, dummyRepo, accountRepo, templater)
	deployer := deploying.NewService(cfg, integrator, templater, tracker)

	// Inicializa os agendadores de sincronização de cache
	suspendedSyncService := scheduler.NewSuspendedSyncService(cfg, cacheService)
	campaignCountSyncService := scheduler.NewCampaignCountSyncService(cfg, cacheService)
	realOver20SyncService := scheduler.NewRealOver20SyncService(cfg, cacheService)
	dummyPerformanceSyncService := scheduler.NewDummyPerformanceSyncService(cfg, tracker, metaRepo)

	syncServices := []*scheduler.CacheSyncService{
		suspendedSyncService,
		campaignCountSyncService,
		realOver20SyncService,
		dummyPerformanceSyncService,
	}
	for _, syncService := range syncServices {
		if err := syncService.Start(ctx); err != nil {
			logrus.WithError(err).WithField("sync", syncService.Name()).Error("Erro ao iniciar o agendador de sincronização")
		} else {
			logrus.WithField("sync", syncService.Name()).Info("Agendador de sincronização iniciado com sucesso")
		}
	}

	server, err := api.New(
		cfg,
		classifier,
		cacheService,
		tracker,
		deployer,
		templater,
		authenticator,
		suspendedSyncService,
		campaignCountSyncService,
		realOver20SyncService,
		dummyPerformanceSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
