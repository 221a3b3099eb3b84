package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/collections-manager-api/internal/domain"
)

type Config struct {
	App                    App                    `mapstructure:",squash"`
	Server                 Server                 `mapstructure:",squash"`
	Database               Database               `mapstructure:",squash"`
	Auth                   Auth                   `mapstructure:",squash"`
	Scoring                Scoring                `mapstructure:",squash"`
	Efficiency             Efficiency             `mapstructure:",squash"`
	PromiseResolution      PromiseResolution      `mapstructure:",squash"`
	PriorityRankingSync    PriorityRankingSync    `mapstructure:",squash"`
	EfficiencySnapshotSync EfficiencySnapshotSync `mapstructure:",squash"`
	PromiseResolutionSync  PromiseResolutionSync  `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret        string `mapstructure:"auth_secret"`
	TokenTTLHours int    `mapstructure:"auth_token_ttl_hours"`
}

// Scoring contém os pesos e limites padrão do score de prioridade
type Scoring struct {
	DaysOverdueWeight     float64 `mapstructure:"scoring_weight_days_overdue"`
	AmountWeight          float64 `mapstructure:"scoring_weight_amount"`
	RiskRatingWeight      float64 `mapstructure:"scoring_weight_risk_rating"`
	BrokenPromisesWeight  float64 `mapstructure:"scoring_weight_broken_promises"`
	LastContactWeight     float64 `mapstructure:"scoring_weight_last_contact"`
	CriticalScore         float64 `mapstructure:"scoring_critical_score"`
	HighScore             float64 `mapstructure:"scoring_high_score"`
	MediumScore           float64 `mapstructure:"scoring_medium_score"`
	LargeBalance          float64 `mapstructure:"scoring_large_balance"`
	ContactStalenessDays  int     `mapstructure:"scoring_contact_staleness_days"`
	EscalationDaysOverdue int     `mapstructure:"scoring_escalation_days_overdue"`
	DefaultListLimit      int     `mapstructure:"scoring_default_list_limit"`
}

// Weights converte a configuração no mapa de pesos do domínio
func (s Scoring) Weights() domain.Weights {
	return domain.Weights{
		domain.FactorDaysOverdue:    s.DaysOverdueWeight,
		domain.FactorAmount:         s.AmountWeight,
		domain.FactorRiskRating:     s.RiskRatingWeight,
		domain.FactorBrokenPromises: s.BrokenPromisesWeight,
		domain.FactorLastContact:    s.LastContactWeight,
	}
}

func (s Scoring) Thresholds() domain.Thresholds {
	return domain.Thresholds{
		CriticalScore:         s.CriticalScore,
		HighScore:             s.HighScore,
		MediumScore:           s.MediumScore,
		LargeBalance:          s.LargeBalance,
		ContactStalenessDays:  s.ContactStalenessDays,
		EscalationDaysOverdue: s.EscalationDaysOverdue,
	}
}

type Efficiency struct {
	DSOBenchmarkDays   float64 `mapstructure:"efficiency_dso_benchmark_days"`
	DSOSalesWindowDays int     `mapstructure:"efficiency_dso_sales_window_days"`
	CollectionTimeDays int     `mapstructure:"efficiency_collection_time_days"`
	TopPrioritiesLimit int     `mapstructure:"efficiency_top_priorities_limit"`
}

type PromiseResolution struct {
	GraceDays         int     `mapstructure:"promise_grace_days"`
	PaymentWindowDays int     `mapstructure:"promise_payment_window_days"`
	KeptRatio         float64 `mapstructure:"promise_kept_ratio"`
	PartialRatio      float64 `mapstructure:"promise_partial_ratio"`
	EscalationCount   int     `mapstructure:"promise_escalation_count"`
}

type PriorityRankingSync struct {
	CronSchedule string `mapstructure:"priority_ranking_sync_cron"`
	Enabled      bool   `mapstructure:"priority_ranking_sync_enabled"`
}

type EfficiencySnapshotSync struct {
	CronSchedule string `mapstructure:"efficiency_snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"efficiency_snapshot_sync_enabled"`
}

type PromiseResolutionSync struct {
	CronSchedule string `mapstructure:"promise_resolution_sync_cron"`
	Enabled      bool   `mapstructure:"promise_resolution_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/collections?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)

	// Pesos do score de prioridade
	viper.SetDefault("SCORING_WEIGHT_DAYS_OVERDUE", 2.0)
	viper.SetDefault("SCORING_WEIGHT_AMOUNT", 1.5)
	viper.SetDefault("SCORING_WEIGHT_RISK_RATING", 1.8)
	viper.SetDefault("SCORING_WEIGHT_BROKEN_PROMISES", 2.5)
	viper.SetDefault("SCORING_WEIGHT_LAST_CONTACT", 1.2)

	// Faixas de prioridade e limites das recomendações
	viper.SetDefault("SCORING_CRITICAL_SCORE", 500)
	viper.SetDefault("SCORING_HIGH_SCORE", 300)
	viper.SetDefault("SCORING_MEDIUM_SCORE", 150)
	viper.SetDefault("SCORING_LARGE_BALANCE", 50000)
	viper.SetDefault("SCORING_CONTACT_STALENESS_DAYS", 14)
	viper.SetDefault("SCORING_ESCALATION_DAYS_OVERDUE", 90)
	viper.SetDefault("SCORING_DEFAULT_LIST_LIMIT", 50)

	viper.SetDefault("EFFICIENCY_DSO_BENCHMARK_DAYS", 45.0)  // Benchmark típico B2B
	viper.SetDefault("EFFICIENCY_DSO_SALES_WINDOW_DAYS", 90) // Janela de vendas do DSO
	viper.SetDefault("EFFICIENCY_COLLECTION_TIME_DAYS", 365) // Janela do tempo médio de recebimento
	viper.SetDefault("EFFICIENCY_TOP_PRIORITIES_LIMIT", 10)

	viper.SetDefault("PROMISE_GRACE_DAYS", 3)
	viper.SetDefault("PROMISE_PAYMENT_WINDOW_DAYS", 5)
	viper.SetDefault("PROMISE_KEPT_RATIO", 0.99)
	viper.SetDefault("PROMISE_PARTIAL_RATIO", 0.9)
	viper.SetDefault("PROMISE_ESCALATION_COUNT", 3) // Promessas quebradas em 90 dias antes de escalar

	viper.SetDefault("PRIORITY_RANKING_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("PRIORITY_RANKING_SYNC_ENABLED", false)

	viper.SetDefault("EFFICIENCY_SNAPSHOT_SYNC_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("EFFICIENCY_SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("PROMISE_RESOLUTION_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("PROMISE_RESOLUTION_SYNC_ENABLED", false)

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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate garante que pesos e limites configurados são utilizáveis pelo score
func (c *Config) Validate() error {
	if err := c.Scoring.Weights().Validate(); err != nil {
		return fmt.Errorf("config: pesos de score inválidos: %w", err)
	}
	if err := c.Scoring.Thresholds().Validate(); err != nil {
		return fmt.Errorf("config: limites de score inválidos: %w", err)
	}
	if c.PromiseResolution.PartialRatio > c.PromiseResolution.KeptRatio {
		return fmt.Errorf("config: %w: promise_partial_ratio maior que promise_kept_ratio", domain.ErrInvalidInput)
	}
	return nil
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
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
