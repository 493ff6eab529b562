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
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	StreamWatch StreamWatch `mapstructure:",squash"`
	Aggregation Aggregation `mapstructure:",squash"`
	Scoring     Scoring     `mapstructure:",squash"`
	ScoreSync   ScoreSync   `mapstructure:",squash"`
}

type App struct {
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

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// StreamWatch configura a fonte efêmera de analytics de streaming.
// A leitura é sempre em memória e limitada por timeout — ver o integrador.
type StreamWatch struct {
	URL            string        `mapstructure:"streamwatch_url"`
	AccessToken    string        `mapstructure:"streamwatch_access_token"`
	RequestTimeout time.Duration `mapstructure:"streamwatch_request_timeout"`
}

type Aggregation struct {
	WindowDays int `mapstructure:"aggregation_window_days"`
}

type Scoring struct {
	DefaultWindowHours int `mapstructure:"scoring_default_window_hours"`
	MaxWindowHours     int `mapstructure:"scoring_max_window_hours"`
}

type ScoreSync struct {
	CronSchedule      string `mapstructure:"score_sync_cron"`
	WindowHours       int    `mapstructure:"score_sync_window_hours"`
	MaxConcurrentJobs int    `mapstructure:"score_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"score_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ghoste")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("STREAMWATCH_URL", "https://api.streamwatch.example.com/v1")
	viper.SetDefault("STREAMWATCH_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("STREAMWATCH_REQUEST_TIMEOUT", "10s")

	viper.SetDefault("AGGREGATION_WINDOW_DAYS", 7)

	viper.SetDefault("SCORING_DEFAULT_WINDOW_HOURS", 168) // 7 dias
	viper.SetDefault("SCORING_MAX_WINDOW_HOURS", 720)     // 30 dias

	// Defaults para o recomputo periódico de scores
	viper.SetDefault("SCORE_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("SCORE_SYNC_WINDOW_HOURS", 168)
	viper.SetDefault("SCORE_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("SCORE_SYNC_ENABLED", false)

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

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o .env das localizações usuais de
// desenvolvimento. Em produção as variáveis vêm do ambiente.
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
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando variáveis de ambiente")
}
