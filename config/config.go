package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Gemini   GeminiConfig
	Reminder ReminderConfig
}

type AppConfig struct {
	Port           string
	Env            string
	RequestTimeout time.Duration
	AllowedOrigins []string
}

type DBConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// GeminiConfig holds the AI assistant settings. An empty APIKey disables the chat endpoint.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type ReminderConfig struct {
	DispatchInterval time.Duration
	Channel          string
}

var defaults = map[string]interface{}{
	"APP_PORT":                   "5000",
	"APP_ENV":                    "development",
	"APP_REQUEST_TIMEOUT":        "15s",
	"CORS_ALLOWED_ORIGINS":       "http://127.0.0.1:5500,http://localhost:5000,http://127.0.0.1:5000,http://127.0.0.1:5001,http://localhost:5001",
	"DB_HOST":                    "localhost",
	"DB_PORT":                    "5432",
	"DB_USER":                    "postgres",
	"DB_PASSWORD":                "1234",
	"DB_NAME":                    "sehat",
	"DB_CONNECT_TIMEOUT":         "5s",
	"REDIS_HOST":                 "localhost",
	"REDIS_PORT":                 "6379",
	"REDIS_PASSWORD":             "",
	"REDIS_DB":                   0,
	"JWT_SECRET":                 "",
	"JWT_ACCESS_EXPIRY":          "15m",
	"JWT_REFRESH_EXPIRY":         "168h",
	"GEMINI_API_KEY":             "",
	"GEMINI_MODEL":               "gemini-1.5-flash",
	"GEMINI_TIMEOUT":             "30s",
	"REMINDER_DISPATCH_INTERVAL": "1m",
	"REMINDER_CHANNEL":           "reminders:due",
}

// LoadConfig reads .env (when present) and the process environment into a Config.
func LoadConfig() (*Config, error) {
	return load(viper.New(), ".env")
}

func load(v *viper.Viper, envFile string) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !isMissingFile(err) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:           v.GetString("APP_PORT"),
			Env:            v.GetString("APP_ENV"),
			RequestTimeout: duration(v, "APP_REQUEST_TIMEOUT", 15*time.Second),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetString("DB_PORT"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			Name:           v.GetString("DB_NAME"),
			ConnectTimeout: duration(v, "DB_CONNECT_TIMEOUT", 5*time.Second),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			AccessExpiry:  duration(v, "JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: duration(v, "JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Gemini: GeminiConfig{
			APIKey:  strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
			Model:   v.GetString("GEMINI_MODEL"),
			Timeout: duration(v, "GEMINI_TIMEOUT", 30*time.Second),
		},
		Reminder: ReminderConfig{
			DispatchInterval: duration(v, "REMINDER_DISPATCH_INTERVAL", time.Minute),
			Channel:          v.GetString("REMINDER_CHANNEL"),
		},
	}

	if config.JWT.Secret == "" {
		if config.App.Env == "production" {
			return nil, errors.New("JWT_SECRET is required in production")
		}
		config.JWT.Secret = "dev-secret-change-me"
	}

	return config, nil
}

func duration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isMissingFile(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
