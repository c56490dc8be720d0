// Package config loads the service configuration from YAML with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Paths struct {
		ReportsDir   string `yaml:"reports_dir"`
		DataCacheDir string `yaml:"data_cache_dir"`
		PaperDir     string `yaml:"paper_dir"`
		UniverseFile string `yaml:"universe_file"`
		TemplatesDir string `yaml:"templates_dir"`
	} `yaml:"paths"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Stooq struct {
		Enabled   bool   `yaml:"enabled"`
		BaseURL   string `yaml:"base_url"`
		RateLimit int    `yaml:"rate_limit"`
	} `yaml:"stooq"`
	Picks struct {
		ReasonKeywords []string `yaml:"reason_keywords"`
	} `yaml:"picks"`
	News struct {
		FeedURL         string `yaml:"feed_url"`
		CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	} `yaml:"news"`
}

// PathFromEnv returns the config file location, CONFIG_PATH or the default.
func PathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "config.yaml"
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults are applied afterwards.
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
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("REPORTS_DIR"); v != "" {
		cfg.Paths.ReportsDir = v
	}
	if v := os.Getenv("DATA_CACHE_DIR"); v != "" {
		cfg.Paths.DataCacheDir = v
	}
	if v := os.Getenv("PAPER_DIR"); v != "" {
		cfg.Paths.PaperDir = v
	}
	if v := os.Getenv("UNIVERSE_FILE"); v != "" {
		cfg.Paths.UniverseFile = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("STOOQ_ENABLED"); v != "" {
		cfg.Stooq.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("STOOQ_BASE_URL"); v != "" {
		cfg.Stooq.BaseURL = v
	}
	if v := os.Getenv("NEWS_FEED_URL"); v != "" {
		cfg.News.FeedURL = v
	}

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8787
	}
	if cfg.Paths.ReportsDir == "" {
		cfg.Paths.ReportsDir = "reports"
	}
	if cfg.Paths.DataCacheDir == "" {
		cfg.Paths.DataCacheDir = "data_cache"
	}
	if cfg.Paths.PaperDir == "" {
		cfg.Paths.PaperDir = "paper"
	}
	if cfg.Paths.UniverseFile == "" {
		cfg.Paths.UniverseFile = "universe.csv"
	}
	if cfg.Paths.TemplatesDir == "" {
		cfg.Paths.TemplatesDir = "web/templates"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "./dashboard.db"
	}
	if cfg.Stooq.BaseURL == "" {
		cfg.Stooq.BaseURL = "https://stooq.com/q/d/l"
	}
	if cfg.Stooq.RateLimit <= 0 {
		cfg.Stooq.RateLimit = 5
	}
	if len(cfg.Picks.ReasonKeywords) == 0 {
		cfg.Picks.ReasonKeywords = []string{"momentum", "动量", "EMA", "vol", "波动率"}
	}
	if cfg.News.FeedURL == "" {
		cfg.News.FeedURL = "https://news.google.com/rss/search?q=%s&hl=ja&gl=JP&ceid=JP:ja"
	}
	if cfg.News.CacheTTLSeconds <= 0 {
		cfg.News.CacheTTLSeconds = 600
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Paths.ReportsDir == "" {
		return fmt.Errorf("paths.reports_dir is required")
	}
	if c.Paths.DataCacheDir == "" {
		return fmt.Errorf("paths.data_cache_dir is required")
	}
	if c.Database.SQLitePath == "" {
		return fmt.Errorf("database.sqlite_path is required")
	}
	if c.Stooq.Enabled && c.Stooq.BaseURL == "" {
		return fmt.Errorf("stooq.base_url is required when stooq.enabled is true")
	}
	if len(c.Picks.ReasonKeywords) == 0 {
		return fmt.Errorf("picks.reason_keywords must not be empty")
	}
	return nil
}
