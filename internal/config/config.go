package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the workspace configuration file.
const FileName = "shopbook.yaml"

// Environment overrides applied after loading.
const (
	EnvCurrency = "SHOPBOOK_CURRENCY"
	EnvLowStock = "SHOPBOOK_LOW_STOCK"
	EnvLogLevel = "SHOPBOOK_LOG_LEVEL"
)

// Config represents the top-level shopbook.yaml configuration.
type Config struct {
	Business  BusinessConfig  `yaml:"business"`
	Fiscal    FiscalConfig    `yaml:"fiscal"`
	Inventory InventoryConfig `yaml:"inventory"`
	Tax       TaxConfig       `yaml:"tax"`
	Git       GitConfig       `yaml:"git"`
	Log       LogConfig       `yaml:"log"`
}

// BusinessConfig identifies the shop.
type BusinessConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"` // ISO 4217 code, e.g. "USD"
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// InventoryConfig controls stock alerts.
type InventoryConfig struct {
	LowStockThreshold int `yaml:"low_stock_threshold"`
}

// TaxConfig selects the tax rate applied by default.
type TaxConfig struct {
	DefaultRateID string `yaml:"default_rate_id,omitempty"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Load reads a shopbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:     businessName,
			Currency: "USD",
		},
		Fiscal: FiscalConfig{
			YearStart: "01-01",
		},
		Inventory: InventoryConfig{
			LowStockThreshold: 20,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Shopbook",
			AuthorEmail: "books@shopbook.dev",
		},
	}
}

// ApplyEnv loads envFile when it exists and then applies the SHOPBOOK_*
// overrides from the environment. Variables already set in the environment
// win over the file.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		c.Business.Currency = strings.ToUpper(v)
	}
	if v := os.Getenv(EnvLowStock); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvLowStock, err)
		}
		c.Inventory.LowStockThreshold = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	return nil
}

var yearStart = regexp.MustCompile(`^(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Business.Name) == "" {
		errs = append(errs, errors.New("business.name is required"))
	}
	if money.GetCurrency(c.Business.Currency) == nil {
		errs = append(errs, fmt.Errorf("business.currency %q is not a known ISO 4217 code", c.Business.Currency))
	}
	if !yearStart.MatchString(c.Fiscal.YearStart) {
		errs = append(errs, fmt.Errorf("fiscal.year_start %q must be MM-DD", c.Fiscal.YearStart))
	}
	if c.Inventory.LowStockThreshold < 0 {
		errs = append(errs, fmt.Errorf("inventory.low_stock_threshold %d cannot be negative", c.Inventory.LowStockThreshold))
	}
	if c.Git.AutoCommit && c.Git.AuthorName == "" {
		errs = append(errs, errors.New("git.author_name is required when git.auto_commit is set"))
	}
	return errors.Join(errs...)
}
