package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Meta              Meta              `mapstructure:",squash"`
	Shopify           Shopify           `mapstructure:",squash"`
	Gemini            Gemini            `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	OptimizationCycle OptimizationCycle `mapstructure:",squash"`
	PerformanceSync   PerformanceSync   `mapstructure:",squash"`
	DailyAnalysis     DailyAnalysis     `mapstructure:",squash"`
	SecretKey         string            `mapstructure:"secret_key"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
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

type Meta struct {
	BaseURL               string    `mapstructure:"meta_base_url"`
	URL                   string    `mapstructure:"-"`
	Version               string    `mapstructure:"meta_version"`
	AccessToken           string    `mapstructure:"meta_access_token"`
	LongLivedToken        string    `mapstructure:"meta_long_lived_token"`
	TokenExpiresAt        time.Time `mapstructure:"-"`
	AppID                 string    `mapstructure:"meta_app_id"`
	AppSecret             string    `mapstructure:"meta_app_secret"`
	RequestTimeoutSeconds int       `mapstructure:"meta_request_timeout_seconds"`
}

type Shopify struct {
	APIVersion            string `mapstructure:"shopify_api_version"`
	RequestTimeoutSeconds int    `mapstructure:"shopify_request_timeout_seconds"`
}

type Gemini struct {
	BaseURL               string `mapstructure:"gemini_base_url"`
	Model                 string `mapstructure:"gemini_model"`
	APIKey                string `mapstructure:"gemini_api_key"`
	RequestTimeoutSeconds int    `mapstructure:"gemini_request_timeout_seconds"`
}

type Auth struct {
	TokenTTLHours int `mapstructure:"auth_token_ttl_hours"`
}

// OptimizationCycle configura o ciclo de otimização automática de campanhas
type OptimizationCycle struct {
	CronSchedule     string `mapstructure:"optimization_cycle_cron"`
	Enabled          bool   `mapstructure:"optimization_cycle_enabled"`
	RecentSampleDays int    `mapstructure:"optimization_cycle_recent_sample_days"`
	MinSamples       int    `mapstructure:"optimization_cycle_min_samples"`
}

// PerformanceSync configura a coleta periódica de métricas da plataforma
type PerformanceSync struct {
	CronSchedule        string `mapstructure:"performance_sync_cron"`
	Enabled             bool   `mapstructure:"performance_sync_enabled"`
	RequestDelaySeconds int    `mapstructure:"performance_sync_request_delay_seconds"`
}

// DailyAnalysis configura a análise diária de contas e seus alertas
type DailyAnalysis struct {
	CronSchedule          string  `mapstructure:"daily_analysis_cron"`
	Enabled               bool    `mapstructure:"daily_analysis_enabled"`
	DefaultSpendThreshold float64 `mapstructure:"daily_analysis_default_spend_threshold"`
	MinSpendForRoasAlert  float64 `mapstructure:"daily_analysis_min_spend_for_roas_alert"`
	RoasAlertThreshold    float64 `mapstructure:"daily_analysis_roas_alert_threshold"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "4000")

	viper.SetDefault("DATABASE_DRIVER", "postgresql")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_URL", "localhost:5432/autopilot?sslmode=disable")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v18.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_LONG_LIVED_TOKEN", "")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 30)

	viper.SetDefault("SHOPIFY_API_VERSION", "2024-01")
	viper.SetDefault("SHOPIFY_REQUEST_TIMEOUT_SECONDS", 30)

	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("GEMINI_MODEL", "gemini-pro")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_REQUEST_TIMEOUT_SECONDS", 60)

	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)

	// Defaults dos agendadores
	viper.SetDefault("OPTIMIZATION_CYCLE_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("OPTIMIZATION_CYCLE_ENABLED", false)
	viper.SetDefault("OPTIMIZATION_CYCLE_RECENT_SAMPLE_DAYS", 7) // Janela de amostras recentes
	viper.SetDefault("OPTIMIZATION_CYCLE_MIN_SAMPLES", 2)        // Mínimo de amostras para otimizar

	viper.SetDefault("PERFORMANCE_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("PERFORMANCE_SYNC_ENABLED", false)
	viper.SetDefault("PERFORMANCE_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições

	viper.SetDefault("DAILY_ANALYSIS_CRON", "0 9 * * *") // Todos os dias às 9h da manhã
	viper.SetDefault("DAILY_ANALYSIS_ENABLED", false)
	viper.SetDefault("DAILY_ANALYSIS_DEFAULT_SPEND_THRESHOLD", 1000.0)
	viper.SetDefault("DAILY_ANALYSIS_MIN_SPEND_FOR_ROAS_ALERT", 50.0)
	viper.SetDefault("DAILY_ANALYSIS_ROAS_ALERT_THRESHOLD", 2.0)

	viper.SetDefault("SECRET_KEY", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o arquivo .env das localizações mais prováveis
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
