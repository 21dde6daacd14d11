package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                  App                  `mapstructure:",squash"`
	Server               Server               `mapstructure:",squash"`
	Database             Database             `mapstructure:",squash"`
	GoogleAds            GoogleAds            `mapstructure:",squash"`
	Auth                 Auth                 `mapstructure:",squash"`
	Classification       Classification       `mapstructure:",squash"`
	BulkDeploy           BulkDeploy           `mapstructure:",squash"`
	SuspendedSync        SuspendedSync        `mapstructure:",squash"`
	CampaignCountSync    CampaignCountSync    `mapstructure:",squash"`
	RealOver20Sync       RealOver20Sync       `mapstructure:",squash"`
	DummyPerformanceSync DummyPerformanceSync `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type GoogleAds struct {
	BaseURL          string   `mapstructure:"google_ads_base_url"`
	Version          string   `mapstructure:"google_ads_version"`
	URL              string   `mapstructure:"-"`
	ClientID         string   `mapstructure:"google_ads_client_id"`
	ClientSecret     string   `mapstructure:"google_ads_client_secret"`
	DeveloperToken   string   `mapstructure:"google_ads_developer_token"`
	RefreshToken     string   `mapstructure:"google_ads_refresh_token"`
	TokenURL         string   `mapstructure:"google_ads_token_url"`
	MccID            string   `mapstructure:"google_ads_mcc_id"`
	HiddenAccountIDs []string `mapstructure:"google_ads_hidden_account_ids"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret        string `mapstructure:"auth_secret"`
	CronSecret    string `mapstructure:"cron_secret"`
	TokenTTLHours int    `mapstructure:"auth_token_ttl_hours"`
}

// Classification concentra os limiares de classificação de campanhas e
// contas. Os três tetos de orçamento são intencionalmente distintos, cada
// um serve um caso de uso diferente.
type Classification struct {
	DummyCampaignBudgetEuros float64 `mapstructure:"dummy_campaign_budget_euros"`
	DummyPartitionCeiling    float64 `mapstructure:"dummy_partition_ceiling_euros"`
	RealBudgetCeiling        float64 `mapstructure:"real_budget_ceiling_euros"`
	ReadyMinSpendEuros       float64 `mapstructure:"ready_min_spend_euros"`
	ReadySpendWindowDays     int     `mapstructure:"ready_spend_window_days"`
	ReadyTrailingDays        int     `mapstructure:"ready_trailing_days"`
	ToBeDeletedFloorEuros    float64 `mapstructure:"to_be_deleted_floor_euros"`
	CacheTTLHours            int     `mapstructure:"cache_ttl_hours"`
	EligibleSampleSize       int     `mapstructure:"eligible_sample_size"`
	EligibleConcurrency      int     `mapstructure:"eligible_concurrency"`
	SpendConcurrency         int     `mapstructure:"spend_concurrency"`
}

type BulkDeploy struct {
	MaxBatch       int `mapstructure:"bulk_deploy_max_batch"`
	MaxConcurrency int `mapstructure:"bulk_deploy_max_concurrency"`
}

type SuspendedSync struct {
	CronSchedule string `mapstructure:"suspended_sync_cron"`
	Enabled      bool   `mapstructure:"suspended_sync_enabled"`
}

type CampaignCountSync struct {
	CronSchedule   string `mapstructure:"campaign_count_sync_cron"`
	Enabled        bool   `mapstructure:"campaign_count_sync_enabled"`
	MaxConcurrency int    `mapstructure:"campaign_count_sync_max_concurrency"`
}

type RealOver20Sync struct {
	CronSchedule   string `mapstructure:"real_over20_sync_cron"`
	Enabled        bool   `mapstructure:"real_over20_sync_enabled"`
	MaxConcurrency int    `mapstructure:"real_over20_sync_max_concurrency"`
}

type DummyPerformanceSync struct {
	CronSchedule   string `mapstructure:"dummy_performance_sync_cron"`
	Enabled        bool   `mapstructure:"dummy_performance_sync_enabled"`
	MaxConcurrency int    `mapstructure:"dummy_performance_sync_max_concurrency"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/mcc_manager")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "your_developer_token")
	viper.SetDefault("GOOGLE_ADS_REFRESH_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_MCC_ID", "")
	viper.SetDefault("GOOGLE_ADS_HIDDEN_ACCOUNT_IDS", "")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("CRON_SECRET", "")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 12)

	// Limiares de classificação
	viper.SetDefault("DUMMY_CAMPAIGN_BUDGET_EUROS", 3.0)    // orçamento usado na criação de dummy
	viper.SetDefault("DUMMY_PARTITION_CEILING_EUROS", 10.0) // teto da partição dummy/real por conta
	viper.SetDefault("REAL_BUDGET_CEILING_EUROS", 20.0)     // acima disso a campanha é tratada como real
	viper.SetDefault("READY_MIN_SPEND_EUROS", 10.0)
	viper.SetDefault("READY_SPEND_WINDOW_DAYS", 30)
	viper.SetDefault("READY_TRAILING_DAYS", 7)
	viper.SetDefault("TO_BE_DELETED_FLOOR_EUROS", 50.0)
	viper.SetDefault("CACHE_TTL_HOURS", 24)
	viper.SetDefault("ELIGIBLE_SAMPLE_SIZE", 40)
	viper.SetDefault("ELIGIBLE_CONCURRENCY", 5)
	viper.SetDefault("SPEND_CONCURRENCY", 8)

	viper.SetDefault("BULK_DEPLOY_MAX_BATCH", 20)
	viper.SetDefault("BULK_DEPLOY_MAX_CONCURRENCY", 3)

	// Defaults para sincronização de cache
	viper.SetDefault("SUSPENDED_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("SUSPENDED_SYNC_ENABLED", false)

	viper.SetDefault("CAMPAIGN_COUNT_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("CAMPAIGN_COUNT_SYNC_ENABLED", false)
	viper.SetDefault("CAMPAIGN_COUNT_SYNC_MAX_CONCURRENCY", 3)

	viper.SetDefault("REAL_OVER20_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("REAL_OVER20_SYNC_ENABLED", false)
	viper.SetDefault("REAL_OVER20_SYNC_MAX_CONCURRENCY", 8)

	viper.SetDefault("DUMMY_PERFORMANCE_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("DUMMY_PERFORMANCE_SYNC_ENABLED", false)
	viper.SetDefault("DUMMY_PERFORMANCE_SYNC_MAX_CONCURRENCY", 6)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	// IDs ocultos podem vir com espaços ou entradas vazias na lista
	cleaned := make([]string, 0, len(config.GoogleAds.HiddenAccountIDs))
	for _, id := range config.GoogleAds.HiddenAccountIDs {
		id = strings.TrimSpace(id)
		if id != "" {
			cleaned = append(cleaned, id)
		}
	}
	config.GoogleAds.HiddenAccountIDs = cleaned

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// IsHiddenAccount indica se a conta está na lista de exclusão configurada
func (g GoogleAds) IsHiddenAccount(accountID string) bool {
	for _, id := range g.HiddenAccountIDs {
		if id == accountID {
			return true
		}
	}
	return false
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
