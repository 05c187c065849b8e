package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	APIBaseURL         string
	APITimeout         time.Duration
	SessionCookieName  string
	SessionTTL         time.Duration
	CookieSecure       bool
	DefaultLocale      string
	GeoIPDBPath        string
	AllowedOrigins     []string
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
	NewsRefreshMaxWait time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		APIBaseURL:         os.Getenv("API_BASE_URL"),
		APITimeout:         time.Second * time.Duration(getEnvInt("API_TIMEOUT_SECONDS", 15)),
		SessionCookieName:  getEnv("SESSION_COOKIE_NAME", "funsomex_token"),
		SessionTTL:         time.Hour * time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)),
		DefaultLocale:      getEnv("DEFAULT_LOCALE", "es"),
		GeoIPDBPath:        os.Getenv("GEOIP_DB_PATH"),
		AllowedOrigins:     splitCSV(getEnv("CORS_ORIGINS", "")),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:    getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		NewsRefreshMaxWait: time.Second * time.Duration(getEnvInt("NEWS_REFRESH_MAX_WAIT_SECONDS", 45)),
	}
	cfg.CookieSecure = cfg.AppEnv != "development"

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitCSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
