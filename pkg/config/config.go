package config

import (
	"errors"
	"io/fs"
	"log"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	APIAddress     string   `mapstructure:"API_ADDRESS"`
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	PostgresAddress  string `mapstructure:"POSTGRES_DB_ADDRESS"`
	PostgresUser     string `mapstructure:"POSTGRES_USER"`
	PostgresPassword string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresDB       string `mapstructure:"POSTGRES_DB"`

	JWTSecret   string `mapstructure:"JWT_SECRET"`
	AppTimezone string `mapstructure:"APP_TIMEZONE"`

	AnalyzerWebhookURL string        `mapstructure:"ANALYZER_WEBHOOK_URL"`
	AnalyzerTimeout    time.Duration `mapstructure:"ANALYZER_TIMEOUT"`

	RedisAddr         string        `mapstructure:"REDIS_ADDR"`
	RedisPassword     string        `mapstructure:"REDIS_PASSWORD"`
	AnalyzeRateLimit  int           `mapstructure:"ANALYZE_RATE_LIMIT"`
	AnalyzeRateWindow time.Duration `mapstructure:"ANALYZE_RATE_WINDOW"`

	S3Bucket    string `mapstructure:"S3_BUCKET"`
	S3Region    string `mapstructure:"S3_REGION"`
	S3PublicURL string `mapstructure:"S3_PUBLIC_URL"`

	LogLevel      string `mapstructure:"LOG_LEVEL"`
	LogFile       string `mapstructure:"LOG_FILE"`
	LogMaxSizeMB  int    `mapstructure:"LOG_MAX_SIZE_MB"`
	LogMaxBackups int    `mapstructure:"LOG_MAX_BACKUPS"`
	LogMaxAgeDays int    `mapstructure:"LOG_MAX_AGE_DAYS"`
}

var defaults = map[string]any{
	"API_ADDRESS":          ":8080",
	"ALLOWED_ORIGINS":      "*",
	"POSTGRES_DB_ADDRESS":  "localhost:5432",
	"POSTGRES_USER":        "",
	"POSTGRES_PASSWORD":    "",
	"POSTGRES_DB":          "calai",
	"JWT_SECRET":           "",
	"APP_TIMEZONE":         "UTC",
	"ANALYZER_WEBHOOK_URL": "",
	"ANALYZER_TIMEOUT":     "30s",
	"REDIS_ADDR":           "",
	"REDIS_PASSWORD":       "",
	"ANALYZE_RATE_LIMIT":   10,
	"ANALYZE_RATE_WINDOW":  "1m",
	"S3_BUCKET":            "",
	"S3_REGION":            "",
	"S3_PUBLIC_URL":        "",
	"LOG_LEVEL":            "info",
	"LOG_FILE":             "",
	"LOG_MAX_SIZE_MB":      100,
	"LOG_MAX_BACKUPS":      3,
	"LOG_MAX_AGE_DAYS":     28,
}

// New loads the process config once. Startup can't continue without it.
func New() *Config {
	once.Do(func() {
		cfg, err := Load(envFile)
		if err != nil {
			log.Fatal("loading config error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads envPath into the environment (a missing file is fine, real
// environment wins) and decodes the known keys.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		err := godotenv.Load(envPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.New("loading envs error: " + err.Error())
		}
	}
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
		v.BindEnv(key)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New("decoding config error: " + err.Error())
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location is the time zone a user's "today" is taken in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.AppTimezone)
	if err != nil {
		return nil, errors.New("invalid APP_TIMEZONE: " + err.Error())
	}
	return loc, nil
}
