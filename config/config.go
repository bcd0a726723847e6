package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	ThemeStoreMemory   = "memory"
	ThemeStoreRedis    = "redis"
	ThemeStorePostgres = "postgres"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	Env         string
	LogLevel    string
	HTTPTimeout int32

	OpenWeatherMapAPIKey  string
	OpenWeatherMapBaseURL string
	OpenWeatherMapIconURL string

	ThemeStore      string
	QueryLogEnabled bool

	SessionTTL             time.Duration
	SessionCleanupInterval time.Duration
}

// LoadConfig reads the process environment after merging an optional .env file
// into it. Variables already set in the environment win over the file.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Warn().Str("file", file).Msg("No .env file found, using environment variables only")
				continue
			}
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Info().Str("file", file).Msg("Config file loaded")
	}

	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-widget")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 10)
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("OPENWEATHERMAP_BASE_URL", "https://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("OPENWEATHERMAP_ICON_URL", "https://openweathermap.org/img/wn")
	v.SetDefault("THEME_STORE", ThemeStoreMemory)
	v.SetDefault("QUERY_LOG_ENABLED", false)
	v.SetDefault("SESSION_TTL", 24*time.Hour)
	v.SetDefault("SESSION_CLEANUP_INTERVAL", 10*time.Minute)

	v.AutomaticEnv()

	config := &Config{
		ServiceName:            v.GetString("SERVICE_NAME"),
		ServerAddress:          v.GetString("SERVER_ADDRESS"),
		DBName:                 v.GetString("DATABASE_NAME"),
		DBPassword:             v.GetString("DATABASE_PASSWORD"),
		DBUser:                 v.GetString("DATABASE_USER"),
		DBPort:                 v.GetString("DATABASE_PORT"),
		DBHost:                 v.GetString("DATABASE_HOST"),
		RedisAddr:              v.GetString("REDIS_ADDR"),
		RedisPassword:          v.GetString("REDIS_PASSWORD"),
		RedisDB:                v.GetInt("REDIS_DB"),
		Env:                    v.GetString("ENV"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		HTTPTimeout:            v.GetInt32("HTTP_TIMEOUT"),
		OpenWeatherMapAPIKey:   v.GetString("OPENWEATHERMAP_API_KEY"),
		OpenWeatherMapBaseURL:  v.GetString("OPENWEATHERMAP_BASE_URL"),
		OpenWeatherMapIconURL:  v.GetString("OPENWEATHERMAP_ICON_URL"),
		ThemeStore:             strings.ToLower(v.GetString("THEME_STORE")),
		QueryLogEnabled:        v.GetBool("QUERY_LOG_ENABLED"),
		SessionTTL:             v.GetDuration("SESSION_TTL"),
		SessionCleanupInterval: v.GetDuration("SESSION_CLEANUP_INTERVAL"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	switch c.ThemeStore {
	case ThemeStoreMemory, ThemeStoreRedis, ThemeStorePostgres:
	default:
		return fmt.Errorf("unsupported THEME_STORE %q", c.ThemeStore)
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %d", c.HTTPTimeout)
	}
	if c.SessionTTL <= 0 || c.SessionCleanupInterval <= 0 {
		return errors.New("SESSION_TTL and SESSION_CLEANUP_INTERVAL must be positive")
	}

	if c.OpenWeatherMapAPIKey == "" {
		log.Warn().Msg("OPENWEATHERMAP_API_KEY is empty, every lookup will be rejected by the provider")
	}

	return nil
}

// NeedsDatabase reports whether any component is backed by postgres.
func (c *Config) NeedsDatabase() bool {
	return c.ThemeStore == ThemeStorePostgres || c.QueryLogEnabled
}

func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
