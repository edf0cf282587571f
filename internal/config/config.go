package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fontes de registros suportadas
const (
	DataSourceSynthetic = "synthetic"
	DataSourceMeta      = "meta"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	DataSource     DataSource     `mapstructure:",squash"`
	Meta           Meta           `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	DashboardCache DashboardCache `mapstructure:",squash"`
	RecordSync     RecordSync     `mapstructure:",squash"`
	Realtime       Realtime       `mapstructure:",squash"`
	Billing        Billing        `mapstructure:",squash"`
	Export         Export         `mapstructure:",squash"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	Env            string   `mapstructure:"app_env"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	Enabled         bool          `mapstructure:"database_enabled"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type DataSource struct {
	Kind string `mapstructure:"data_source"`
	// Seed zero usa uma semente aleatória a cada execução
	Seed int64 `mapstructure:"data_source_seed"`
}

type Meta struct {
	BaseURL      string        `mapstructure:"meta_base_url"`
	URL          string        `mapstructure:"meta_url"`
	Version      string        `mapstructure:"meta_version"`
	AccessToken  string        `mapstructure:"meta_access_token"`
	AdAccountIDs []string      `mapstructure:"meta_ad_account_ids"`
	Timeout      time.Duration `mapstructure:"meta_timeout"`

	// Com app id e secret o token é trocado por um de longa duração e renovado
	AppID                string        `mapstructure:"meta_app_id"`
	AppSecret            string        `mapstructure:"meta_app_secret"`
	LongLivedToken       string        `mapstructure:"meta_long_lived_token"`
	TokenRefreshInterval time.Duration `mapstructure:"meta_token_refresh_interval"`
}

type Redis struct {
	Enabled  bool   `mapstructure:"redis_enabled"`
	URL      string `mapstructure:"redis_url"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
	PoolSize int    `mapstructure:"redis_pool_size"`
}

type DashboardCache struct {
	TTL  time.Duration `mapstructure:"dashboard_cache_ttl"`
	Size int           `mapstructure:"dashboard_cache_size"`
}

type RecordSync struct {
	CronSchedule      string        `mapstructure:"record_sync_cron"`
	LookbackDays      int           `mapstructure:"record_sync_lookback_days"`
	MaxConcurrentJobs int           `mapstructure:"record_sync_max_concurrent_jobs"`
	RetentionDays     int           `mapstructure:"record_sync_retention_days"`
	TriggerDebounce   time.Duration `mapstructure:"record_sync_trigger_debounce"`
	Enabled           bool          `mapstructure:"record_sync_enabled"`
}

type Realtime struct {
	ThrottleInterval time.Duration `mapstructure:"realtime_throttle_interval"`
	// CacheSize limita as chaves de filtro acompanhadas pelo throttle e pelos snapshots
	CacheSize int `mapstructure:"realtime_cache_size"`
}

type Billing struct {
	SuccessRate     float64       `mapstructure:"billing_success_rate"`
	ProcessingDelay time.Duration `mapstructure:"billing_processing_delay"`
}

type Export struct {
	DefaultFormat string `mapstructure:"export_default_format"`
	PrettyPrint   bool   `mapstructure:"export_pretty_print"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/analytics?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("DATA_SOURCE", DataSourceSynthetic)
	viper.SetDefault("DATA_SOURCE_SEED", 0)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_AD_ACCOUNT_IDS", "")
	viper.SetDefault("META_TIMEOUT", "30s")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_LONG_LIVED_TOKEN", "")
	viper.SetDefault("META_TOKEN_REFRESH_INTERVAL", "23h") // renova antes de completar 24h

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_POOL_SIZE", 10)

	viper.SetDefault("DASHBOARD_CACHE_TTL", "5m")
	viper.SetDefault("DASHBOARD_CACHE_SIZE", 256)

	// Sincronização de registros da fonte para o banco
	viper.SetDefault("RECORD_SYNC_CRON", "0 3 * * *")         // Todos os dias às 3h da manhã
	viper.SetDefault("RECORD_SYNC_LOOKBACK_DAYS", 7)          // 7 dias para buscar dados
	viper.SetDefault("RECORD_SYNC_MAX_CONCURRENT_JOBS", 5)    // 5 dias buscados em paralelo
	viper.SetDefault("RECORD_SYNC_RETENTION_DAYS", 400)       // um pouco mais que a maior janela de consulta
	viper.SetDefault("RECORD_SYNC_TRIGGER_DEBOUNCE", "300ms") // agrupa disparos manuais seguidos
	viper.SetDefault("RECORD_SYNC_ENABLED", false)

	viper.SetDefault("REALTIME_THROTTLE_INTERVAL", "1000ms")
	viper.SetDefault("REALTIME_CACHE_SIZE", 1024)

	viper.SetDefault("BILLING_SUCCESS_RATE", 0.9)
	viper.SetDefault("BILLING_PROCESSING_DELAY", "500ms")

	viper.SetDefault("EXPORT_DEFAULT_FORMAT", "csv")
	viper.SetDefault("EXPORT_PRETTY_PRINT", false)

	viper.SetDefault("LOG_LEVEL", "debug")
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

	config.normalize()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize deriva os campos calculados e limpa listas vindas do ambiente
func (c *Config) normalize() {
	if c.Meta.URL == "" {
		c.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimRight(c.Meta.BaseURL, "/"), c.Meta.Version)
	}

	c.Meta.AdAccountIDs = compact(c.Meta.AdAccountIDs)
	c.App.AllowedOrigins = compact(c.App.AllowedOrigins)
	c.DataSource.Kind = strings.ToLower(strings.TrimSpace(c.DataSource.Kind))

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

// Validate confere as combinações que impedem a inicialização
func (c *Config) Validate() error {
	switch c.DataSource.Kind {
	case DataSourceSynthetic:
	case DataSourceMeta:
		if c.Meta.AccessToken == "" && c.Meta.LongLivedToken == "" {
			return fmt.Errorf("META_ACCESS_TOKEN ou META_LONG_LIVED_TOKEN é obrigatório quando DATA_SOURCE=%s", DataSourceMeta)
		}
		if len(c.Meta.AdAccountIDs) == 0 {
			return fmt.Errorf("META_AD_ACCOUNT_IDS é obrigatório quando DATA_SOURCE=%s", DataSourceMeta)
		}
	default:
		return fmt.Errorf("DATA_SOURCE inválido: %q", c.DataSource.Kind)
	}

	if c.Billing.SuccessRate < 0 || c.Billing.SuccessRate > 1 {
		return fmt.Errorf("BILLING_SUCCESS_RATE deve estar entre 0 e 1: %v", c.Billing.SuccessRate)
	}

	if c.RecordSync.Enabled && !c.Database.Enabled {
		return fmt.Errorf("RECORD_SYNC_ENABLED exige DATABASE_ENABLED")
	}

	return nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
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

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
