package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration. It merges file defaults and
// environment overrides so both local and deployed runs bootstrap the same way.
type Config struct {
	ServiceName string
	HTTPPort    int

	// DatabaseURL may be empty; the runtime then falls back to the in-memory
	// store, which is enough for local development against the hosted gateway
	// sandbox.
	DatabaseURL string
	MaxDBConns  int

	TossSecretKey  string
	TossAPIBaseURL string
	GatewayTimeout time.Duration

	LicenseValidityDays int
	DefaultCurrency     string
}

// configFile mirrors the YAML schema used by configs/default.yaml.
type configFile struct {
	Service struct {
		Name     string `yaml:"name"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL string `yaml:"postgres_url"`
	} `yaml:"dependencies"`
	Gateway struct {
		SecretKey      string `yaml:"secret_key"`
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"gateway"`
	Licensing struct {
		ValidityDays    int    `yaml:"validity_days"`
		DefaultCurrency string `yaml:"default_currency"`
	} `yaml:"licensing"`
}

// LoadConfig resolves configuration in priority order: defaults -> file -> env.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceName:         "license-marketplace",
		HTTPPort:            8080,
		MaxDBConns:          20,
		TossAPIBaseURL:      "https://api.tosspayments.com",
		GatewayTimeout:      10 * time.Second,
		LicenseValidityDays: 365,
		DefaultCurrency:     "USD",
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.Name != "" {
			cfg.ServiceName = f.Service.Name
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Gateway.SecretKey != "" {
			cfg.TossSecretKey = f.Gateway.SecretKey
		}
		if f.Gateway.BaseURL != "" {
			cfg.TossAPIBaseURL = f.Gateway.BaseURL
		}
		if f.Gateway.TimeoutSeconds > 0 {
			cfg.GatewayTimeout = time.Duration(f.Gateway.TimeoutSeconds) * time.Second
		}
		if f.Licensing.ValidityDays > 0 {
			cfg.LicenseValidityDays = f.Licensing.ValidityDays
		}
		if f.Licensing.DefaultCurrency != "" {
			cfg.DefaultCurrency = f.Licensing.DefaultCurrency
		}
	}

	cfg.DatabaseURL = envOrDefault("DB_URL", envOrDefault("POSTGRES_URL", cfg.DatabaseURL))
	cfg.TossSecretKey = envOrDefault("TOSS_SECRET_KEY", cfg.TossSecretKey)
	cfg.TossAPIBaseURL = envOrDefault("TOSS_API_BASE_URL", cfg.TossAPIBaseURL)
	cfg.DefaultCurrency = envOrDefault("DEFAULT_CURRENCY", cfg.DefaultCurrency)

	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.MaxDBConns = envInt("DB_MAX_CONNS", cfg.MaxDBConns)
	cfg.LicenseValidityDays = envInt("LICENSE_VALIDITY_DAYS", cfg.LicenseValidityDays)
	cfg.GatewayTimeout = time.Duration(envInt("GATEWAY_TIMEOUT_SECONDS", int(cfg.GatewayTimeout.Seconds()))) * time.Second

	if cfg.TossSecretKey == "" {
		return Config{}, fmt.Errorf("missing TOSS_SECRET_KEY")
	}

	return cfg, nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
