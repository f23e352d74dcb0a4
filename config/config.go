package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// MaxResultsLimit is the hard cap on movies shown per search
const MaxResultsLimit = 10

// Load loads the configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".popcorn"))
		}

		// Check /etc
		v.AddConfigPath("/etc/popcorn/")
	}

	// Read config file. Without an explicit path the file is optional and the
	// environment alone can configure the bot.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Catalog defaults
	v.SetDefault("yts.base_url", "https://yts.mx/api/v2")
	v.SetDefault("yts.timeout", "60s")

	// Discord defaults
	v.SetDefault("discord.token", "")
	v.SetDefault("discord.prefix", "?")

	// Search defaults
	v.SetDefault("search.min_term_length", 4)
	v.SetDefault("search.max_results", MaxResultsLimit)
	v.SetDefault("search.message_delay", "1s")
	v.SetDefault("search.workers", 4)
	v.SetDefault("search.filter", "")

	// qBittorrent defaults
	v.SetDefault("qbittorrent.enabled", false)
	v.SetDefault("qbittorrent.url", "http://localhost:8080")
	v.SetDefault("qbittorrent.username", "")
	v.SetDefault("qbittorrent.password", "")
	v.SetDefault("qbittorrent.category", "popcorn")

	// API defaults
	v.SetDefault("api.enabled", false)
	v.SetDefault("api.addr", ":8484")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
	v.SetDefault("logging.file", "")
}

// bindEnv maps POPCORN_* variables onto config keys and keeps the legacy
// DISCORD_TOKEN and MOVIES_API_BASE_URL names working.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("popcorn")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("discord.token", "POPCORN_DISCORD_TOKEN", "DISCORD_TOKEN")
	_ = v.BindEnv("yts.base_url", "POPCORN_YTS_BASE_URL", "MOVIES_API_BASE_URL")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.YTS.BaseURL == "" {
		return fmt.Errorf("yts.base_url is required")
	}
	if u, err := url.Parse(cfg.YTS.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid yts.base_url: %s", cfg.YTS.BaseURL)
	}

	if cfg.YTS.Timeout <= 0 {
		return fmt.Errorf("yts.timeout must be positive")
	}

	if strings.TrimSpace(cfg.Discord.Prefix) == "" {
		return fmt.Errorf("discord.prefix must not be empty")
	}

	if cfg.Search.MinTermLength < 1 {
		return fmt.Errorf("search.min_term_length must be at least 1")
	}

	if cfg.Search.MaxResults < 1 || cfg.Search.MaxResults > MaxResultsLimit {
		return fmt.Errorf("invalid search.max_results: %d (must be between 1 and %d)", cfg.Search.MaxResults, MaxResultsLimit)
	}

	if cfg.Search.MessageDelay < 0 {
		return fmt.Errorf("search.message_delay must not be negative")
	}

	if cfg.Search.Workers < 1 {
		return fmt.Errorf("search.workers must be at least 1")
	}

	if cfg.QBittorrent.Enabled && cfg.QBittorrent.URL == "" {
		return fmt.Errorf("qbittorrent.url is required when qbittorrent is enabled")
	}

	if cfg.API.Enabled && cfg.API.Addr == "" {
		return fmt.Errorf("api.addr is required when the api is enabled")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// ValidateDiscord checks the settings only the bot needs
func (c *Config) ValidateDiscord() error {
	if strings.TrimSpace(c.Discord.Token) == "" {
		return fmt.Errorf("discord.token is required (set DISCORD_TOKEN or discord.token)")
	}
	return nil
}
