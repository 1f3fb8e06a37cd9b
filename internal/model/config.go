package model

import "time"

// Config holds all runtime configuration
type Config struct {
	Source       SourceConfig       `yaml:"source" mapstructure:"source"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
}

// SourceConfig describes where SOTD threads are fetched from
type SourceConfig struct {
	BaseURL       string        `yaml:"base_url" mapstructure:"base_url"`
	Subreddit     string        `yaml:"subreddit" mapstructure:"subreddit"`
	TitleMarker   string        `yaml:"title_marker" mapstructure:"title_marker"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	SearchLimit   int           `yaml:"search_limit" mapstructure:"search_limit"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
	HTTPProxy     string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy       string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// CacheConfig controls caching of fetched thread data
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig controls the classification worker pool
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// RateLimitingConfig throttles requests per host
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
	Top     int  `yaml:"top" mapstructure:"top"` // rows per table in Markdown, 0 = all
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			BaseURL:       "https://www.reddit.com",
			Subreddit:     "wetshaving",
			TitleMarker:   " SOTD Thread -",
			UserAgent:     "sotd/0.1 (+https://github.com/ppiankov/sotd)",
			Timeout:       30 * time.Second,
			MaxBodyBytes:  20_000_000,
			SearchLimit:   100,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".sotd-cache",
			MemoryTTL: time.Hour,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitingConfig{
			// Reddit allows roughly one unauthenticated request per second
			RequestsPerSecond: 1,
			BurstSize:         2,
		},
		Output: OutputConfig{
			Top: 50,
		},
	}
}
