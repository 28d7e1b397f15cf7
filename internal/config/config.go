package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/yukikurage/notes-api/internal/constants"
)

type Config struct {
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RedisHost     string
	RedisPort     string
	SessionSecret string
	GinMode       string
	Port          string
	LogLevel      string
	LogFormat     string

	DictionaryBaseURL   string
	DictionaryCacheTTL  time.Duration
	DictionaryRateLimit float64

	PasswordResetTTL time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("Failed to load .env file")
	}

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "notesuser"),
		DBPassword:    getEnv("DB_PASSWORD", "notespassword"),
		DBName:        getEnv("DB_NAME", "notes"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),

		DictionaryBaseURL:   getEnv("DICTIONARY_BASE_URL", constants.DefaultDictionaryBaseURL),
		DictionaryCacheTTL:  getEnvDuration("DICTIONARY_CACHE_TTL", 24*time.Hour),
		DictionaryRateLimit: getEnvFloat("DICTIONARY_RATE_LIMIT", 5),

		PasswordResetTTL: getEnvDuration("PASSWORD_RESET_TTL", constants.PasswordResetTTL),
	}
}

// RedisAddr returns the host:port pair used by both the session store and the
// dictionary cache.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logrus.WithField("key", key).WithError(err).Warn("Invalid duration, using default")
		return defaultValue
	}
	return d
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithField("key", key).WithError(err).Warn("Invalid number, using default")
		return defaultValue
	}
	return f
}
