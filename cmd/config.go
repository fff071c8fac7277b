package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort   string `mapstructure:"HTTP_PORT"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSslMode  string `mapstructure:"DB_SSLMODE"`

	// RedisAddr enables the cross-instance allocation lock. Empty keeps
	// locks in process.
	RedisAddr string `mapstructure:"REDIS_ADDR"`

	SequenceMode          string `mapstructure:"SEQUENCE_MODE"`
	SequenceMaxAttempts   int    `mapstructure:"SEQUENCE_MAX_ATTEMPTS"`
	PricingMirrorAttempts int    `mapstructure:"PRICING_MIRROR_ATTEMPTS"`
	BookingLookupTimeout  int    `mapstructure:"BOOKING_LOOKUP_TIMEOUT_MS"`

	LogLevel string `mapstructure:"LOG_LEVEL"`

	StaleDocumentHours    int    `mapstructure:"STALE_DOCUMENT_HOURS"`
	StaleDocumentSchedule string `mapstructure:"STALE_DOCUMENT_SCHEDULE"`
}

var defaults = map[string]any{
	"HTTP_PORT":                 "8080",
	"DB_HOST":                   "localhost",
	"DB_PORT":                   "5432",
	"DB_USER":                   "postgres",
	"DB_PASSWORD":               "",
	"DB_NAME":                   "hubops",
	"DB_SSLMODE":                "disable",
	"REDIS_ADDR":                "",
	"SEQUENCE_MODE":             "sequential",
	"SEQUENCE_MAX_ATTEMPTS":     8,
	"PRICING_MIRROR_ATTEMPTS":   3,
	"BOOKING_LOOKUP_TIMEOUT_MS": 3000,
	"LOG_LEVEL":                 "info",
	"STALE_DOCUMENT_HOURS":      12,
	"STALE_DOCUMENT_SCHEDULE":   "0 */15 * * * *",
}

// LoadConfig reads envFile when it exists, then the process environment,
// then an optional config.yaml in configDir. Environment wins over the file.
func LoadConfig(envFile string, configDir string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if configDir != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=%v",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSslMode)
}

func (c Config) StaleDocumentAge() time.Duration {
	return time.Duration(c.StaleDocumentHours) * time.Hour
}

func (c Config) LookupTimeout() time.Duration {
	return time.Duration(c.BookingLookupTimeout) * time.Millisecond
}

// NewLogger builds the JSON logrus logger at LOG_LEVEL.
func (c Config) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(level)
	return logger, nil
}
