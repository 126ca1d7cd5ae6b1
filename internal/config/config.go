package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	APIBaseURL string
	LogLevel   string

	HTTPTimeoutSeconds int

	WatchIntervalSeconds int
	WatchMaxRefreshRPS   float64

	ChatViewportRows int

	MetricsPort string
}

// Load resolves configuration in three layers: built-in defaults, then an
// optional YAML file named by CONFIG_FILE, then environment variables.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	cfg.APIBaseURL = envOr("API_BASE_URL", cfg.APIBaseURL)
	cfg.LogLevel = envOr("LOG_LEVEL", cfg.LogLevel)
	cfg.HTTPTimeoutSeconds = envOrInt("HTTP_TIMEOUT_SECONDS", cfg.HTTPTimeoutSeconds)
	cfg.WatchIntervalSeconds = envOrInt("WATCH_INTERVAL_SECONDS", cfg.WatchIntervalSeconds)
	cfg.WatchMaxRefreshRPS = envOrFloat("WATCH_MAX_REFRESH_RPS", cfg.WatchMaxRefreshRPS)
	cfg.ChatViewportRows = envOrInt("CHAT_VIEWPORT_ROWS", cfg.ChatViewportRows)
	cfg.MetricsPort = envOr("METRICS_PORT", cfg.MetricsPort)

	return cfg, nil
}

func defaults() Config {
	return Config{
		APIBaseURL:           "http://localhost/n8n/webhook",
		LogLevel:             "info",
		HTTPTimeoutSeconds:   120,
		WatchIntervalSeconds: 5,
		WatchMaxRefreshRPS:   1,
		ChatViewportRows:     20,
		MetricsPort:          "",
	}
}

type fileConfig struct {
	APIBaseURL           *string  `yaml:"api_base_url"`
	LogLevel             *string  `yaml:"log_level"`
	HTTPTimeoutSeconds   *int     `yaml:"http_timeout_seconds"`
	WatchIntervalSeconds *int     `yaml:"watch_interval_seconds"`
	WatchMaxRefreshRPS   *float64 `yaml:"watch_max_refresh_rps"`
	ChatViewportRows     *int     `yaml:"chat_viewport_rows"`
	MetricsPort          *string  `yaml:"metrics_port"`
}

func applyFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.APIBaseURL != nil {
		cfg.APIBaseURL = *fc.APIBaseURL
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.HTTPTimeoutSeconds != nil {
		cfg.HTTPTimeoutSeconds = *fc.HTTPTimeoutSeconds
	}
	if fc.WatchIntervalSeconds != nil {
		cfg.WatchIntervalSeconds = *fc.WatchIntervalSeconds
	}
	if fc.WatchMaxRefreshRPS != nil {
		cfg.WatchMaxRefreshRPS = *fc.WatchMaxRefreshRPS
	}
	if fc.ChatViewportRows != nil {
		cfg.ChatViewportRows = *fc.ChatViewportRows
	}
	if fc.MetricsPort != nil {
		cfg.MetricsPort = *fc.MetricsPort
	}
	return nil
}

func envOr(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envOrInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envOrFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
