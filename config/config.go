package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
	Locale  LocaleConfig
}

type ServerConfig struct {
	AppEnv string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	Backend  string // sqlite, redis
	DBPath   string
	RedisKey string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type LocaleConfig struct {
	Language string
}

const (
	SessionBackendSQLite = "sqlite"
	SessionBackendRedis  = "redis"
)

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv: getEnv("APP_ENV", "dev"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", true),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:3333"),
			Timeout: getEnvDuration("API_TIMEOUT", 15*time.Second),
		},
		Session: SessionConfig{
			Backend:  getEnv("SESSION_BACKEND", SessionBackendSQLite),
			DBPath:   getEnv("SESSION_DB_PATH", defaultSessionPath()),
			RedisKey: getEnv("SESSION_REDIS_KEY", "labela:session"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Locale: LocaleConfig{
			Language: getEnv("LOCALE", "pt-BR"),
		},
	}
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "labela-session.db"
	}
	return filepath.Join(home, ".labela", "session.db")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
