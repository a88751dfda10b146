package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"StockForecast/internal/sarima"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		StartDate string `yaml:"start_date"`
	} `yaml:"data_source"`
	Model struct {
		Order      sarima.Order `yaml:"order"`
		Difference bool         `yaml:"difference"`
	} `yaml:"model"`
	Forecast struct {
		Years int `yaml:"years"`
	} `yaml:"forecast"`
	Cache struct {
		TTL string `yaml:"ttl"`
	} `yaml:"cache"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Stocks map[string]string `yaml:"stocks"`
	Proxy  string            `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("START_DATE"); v != "" {
		cfg.DataSource.StartDate = v
	}
	if v := os.Getenv("FORECAST_YEARS"); v != "" {
		if years, err := strconv.Atoi(v); err == nil {
			cfg.Forecast.Years = years
		}
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		cfg.Cache.TTL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.StartDate == "" {
		cfg.DataSource.StartDate = "2012-01-01"
	}
	if cfg.Forecast.Years == 0 {
		cfg.Forecast.Years = 1
	}
	if cfg.Cache.TTL == "" {
		cfg.Cache.TTL = "1h"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/forecast_history.db"
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 0 18 * * 1-5"
	}
	if (cfg.Model.Order == sarima.Order{}) {
		cfg.Model.Order = sarima.DefaultOrder()
	}

	return cfg, nil
}

// Validate checks that all fields are usable.
func (c *Config) Validate() error {
	if _, err := c.StartTime(); err != nil {
		return fmt.Errorf("data_source.start_date: %w", err)
	}
	if c.Forecast.Years < 1 || c.Forecast.Years > 10 {
		return fmt.Errorf("forecast.years must be in [1,10], got %d", c.Forecast.Years)
	}
	if _, err := c.CacheTTL(); err != nil {
		return fmt.Errorf("cache.ttl: %w", err)
	}
	if err := c.Model.Order.Validate(); err != nil {
		return fmt.Errorf("model.order: %w", err)
	}
	return nil
}

// StartTime parses the configured history start date.
func (c *Config) StartTime() (time.Time, error) {
	return time.Parse("2006-01-02", c.DataSource.StartDate)
}

// CacheTTL parses the configured cache TTL.
func (c *Config) CacheTTL() (time.Duration, error) {
	return time.ParseDuration(c.Cache.TTL)
}

// HorizonDays derives the forecast horizon from the configured year count.
func (c *Config) HorizonDays() int {
	return c.Forecast.Years * 365
}
