package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultEndpoint is the hosted GraphQL API holding the show list
const DefaultEndpoint = "https://watch-this-db-1.herokuapp.com/v1/graphql"

// Config holds all application configuration
type Config struct {
	Endpoint EndpointConfig `mapstructure:"endpoint"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// EndpointConfig holds the GraphQL endpoint configuration
type EndpointConfig struct {
	URL     string            `mapstructure:"url"`
	Timeout time.Duration     `mapstructure:"timeout"`
	Headers map[string]string `mapstructure:"headers"` // Sent with every request
}

// CacheConfig holds the show list cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"` // 0 keeps the list until a mutation invalidates it
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Endpoint: EndpointConfig{
			URL:     DefaultEndpoint,
			Timeout: 30 * time.Second,
			Headers: map[string]string{},
		},
		Cache: CacheConfig{
			TTL: 0,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "watchthis", "watchthis.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "watchthis", "watchthis.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "watchthis")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "watchthis")
	}
}

// LoadConfig loads configuration from the default locations and environment
func LoadConfig() (*Config, error) {
	return Load(viper.New(), defaultConfigPath(), ".")
}

// Load reads config.yaml from the given directories (first match wins) and
// applies WATCHTHIS_* environment overrides on top of the defaults.
func Load(v *viper.Viper, paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Environment variable overrides, e.g. WATCHTHIS_ENDPOINT_URL
	v.SetEnvPrefix("WATCHTHIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper already knows about
	v.SetDefault("endpoint.url", cfg.Endpoint.URL)
	v.SetDefault("endpoint.timeout", cfg.Endpoint.Timeout)
	v.SetDefault("cache.ttl", cfg.Cache.TTL)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the client cannot run with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Endpoint.URL) == "" {
		return fmt.Errorf("endpoint url is required")
	}
	if c.Endpoint.Timeout < 0 {
		return fmt.Errorf("endpoint timeout must not be negative: %s", c.Endpoint.Timeout)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache ttl must not be negative: %s", c.Cache.TTL)
	}
	return nil
}
