package config

import (
	"fmt"
	"os"
	"strings"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/pricing"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	DataSourceJSON     = "json"
	DataSourcePostgres = "postgres"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Data     DataConfig     `yaml:"data"`
	Pricing  PricingConfig  `yaml:"pricing"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// DataConfig selects where cars and categories are read from
type DataConfig struct {
	Source string `yaml:"source"` // "json" or "postgres"
	Dir    string `yaml:"dir"`    // For json source
}

// PricingConfig contains currency display and the age tax table
type PricingConfig struct {
	Locale      string             `yaml:"locale"`
	Currency    string             `yaml:"currency"`
	TaxBrackets []TaxBracketConfig `yaml:"tax_brackets"`
}

// TaxBracketConfig is the YAML form of a tax bracket. Multiplier is kept as
// text so it is parsed exactly.
type TaxBracketConfig struct {
	From       int    `yaml:"from"`
	To         int    `yaml:"to"`
	Multiplier string `yaml:"multiplier"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, applies environment overrides and defaults, then validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Data
	if val := os.Getenv("DATA_SOURCE"); val != "" {
		c.Data.Source = val
	}
	if val := os.Getenv("DATA_DIR"); val != "" {
		c.Data.Dir = val
	}

	// Pricing
	if val := os.Getenv("PRICING_LOCALE"); val != "" {
		c.Pricing.Locale = val
	}
	if val := os.Getenv("PRICING_CURRENCY"); val != "" {
		c.Pricing.Currency = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	c.Data.Source = strings.ToLower(strings.TrimSpace(c.Data.Source))
	if c.Data.Source == "" {
		c.Data.Source = DataSourceJSON
	}
	if c.Data.Dir == "" {
		c.Data.Dir = "./database"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Pricing.Locale == "" {
		c.Pricing.Locale = "pt-BR"
	}
	if c.Pricing.Currency == "" {
		c.Pricing.Currency = "BRL"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Data.Source {
	case DataSourceJSON:
		if c.Data.Dir == "" {
			return fmt.Errorf("data directory is required for json source")
		}
	case DataSourcePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
	default:
		return fmt.Errorf("unsupported data source: %s", c.Data.Source)
	}

	if _, err := pricing.NewFormatter(c.Pricing.Locale, c.Pricing.Currency); err != nil {
		return err
	}

	brackets, err := c.Pricing.Brackets()
	if err != nil {
		return err
	}
	return pricing.ValidateBrackets(brackets)
}

// Brackets converts the configured table, falling back to the default table
// when none is configured.
func (p PricingConfig) Brackets() ([]domain.TaxBracket, error) {
	if len(p.TaxBrackets) == 0 {
		return pricing.DefaultTaxBrackets(), nil
	}
	out := make([]domain.TaxBracket, 0, len(p.TaxBrackets))
	for i, b := range p.TaxBrackets {
		m, err := decimal.NewFromString(b.Multiplier)
		if err != nil {
			return nil, fmt.Errorf("tax bracket %d: invalid multiplier %q: %w", i, b.Multiplier, err)
		}
		out = append(out, domain.TaxBracket{From: b.From, To: b.To, Multiplier: m})
	}
	return out, nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
