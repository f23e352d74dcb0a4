package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	YTS         YTSConfig         `mapstructure:"yts"`
	Discord     DiscordConfig     `mapstructure:"discord"`
	Search      SearchConfig      `mapstructure:"search"`
	QBittorrent QBittorrentConfig `mapstructure:"qbittorrent"`
	API         APIConfig         `mapstructure:"api"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// YTSConfig holds the movie catalog connection details
type YTSConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DiscordConfig holds the bot credentials and command prefix
type DiscordConfig struct {
	Token  string `mapstructure:"token"`
	Prefix string `mapstructure:"prefix"`
}

// SearchConfig controls how search results are presented
type SearchConfig struct {
	MinTermLength int           `mapstructure:"min_term_length"`
	MaxResults    int           `mapstructure:"max_results"`
	MessageDelay  time.Duration `mapstructure:"message_delay"`
	Workers       int           `mapstructure:"workers"`
	Filter        string        `mapstructure:"filter"`
}

// QBittorrentConfig holds qBittorrent connection details
type QBittorrentConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	URL      string `mapstructure:"url"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Category string `mapstructure:"category"`
}

// APIConfig controls the optional HTTP API
type APIConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
	File   string `mapstructure:"file"`
}
