// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/imi-inventory/internal/i18n"
)

type Config struct {
	Environment string
	LogLevel    string
	Catalog     CatalogConfig
	Pricing     PricingConfig
	I18n        I18nConfig
}

type CatalogConfig struct {
	Path string
}

type PricingConfig struct {
	ConfirmTimeout int // in seconds
}

// ConfirmTimeoutDuration is how long a price decrease waits for an answer. Zero means no limit.
func (p PricingConfig) ConfirmTimeoutDuration() time.Duration {
	return time.Duration(p.ConfirmTimeout) * time.Second
}

type I18nConfig struct {
	DefaultLocale string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", "data/products.json"),
		},
		Pricing: PricingConfig{
			ConfirmTimeout: getEnvAsInt("CONFIRM_TIMEOUT", 60),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", i18n.DefaultLocale),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid LOG_LEVEL")
	}

	if c.Catalog.Path == "" {
		return errors.New("CATALOG_PATH is required")
	}

	if c.Pricing.ConfirmTimeout <= 0 {
		return errors.Errorf("CONFIRM_TIMEOUT must be positive, got %d", c.Pricing.ConfirmTimeout)
	}

	if !i18n.IsSupported(c.I18n.DefaultLocale) {
		return errors.Errorf("unsupported DEFAULT_LOCALE %q (supported: %v)", c.I18n.DefaultLocale, i18n.GetSupportedLanguages())
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
