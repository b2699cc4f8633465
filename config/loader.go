package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	internalErrors "github.com/gcbaptista/go-textrank/internal/errors"
)

// ServerConfig holds process-level options.
type ServerConfig struct {
	Port          string `yaml:"port"`
	LogLevel      string `yaml:"log_level"`      // debug, info, warn, error
	Development   bool   `yaml:"development"`    // human-readable logs
	MaxWorkers    int    `yaml:"max_workers"`    // concurrent async analyses
	MaxBodyBytes  int64  `yaml:"max_body_bytes"` // request body limit
	MaxTextBytes  int    `yaml:"max_text_bytes"` // largest text accepted for analysis
	StopwordsFile string `yaml:"stopwords_file"` // optional newline-separated stopword list
}

// Config is the full service configuration.
type Config struct {
	Server  ServerConfig    `yaml:"server"`
	Analyze AnalyzeSettings `yaml:"analyze"`
}

// DefaultServerConfig returns the server defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:         "8080",
		LogLevel:     "info",
		MaxWorkers:   4,
		MaxBodyBytes: 4 << 20,
		MaxTextBytes: 1 << 20,
	}
}

// Default returns a Config with every default applied.
func Default() *Config {
	return &Config{
		Server:  DefaultServerConfig(),
		Analyze: DefaultAnalyzeSettings(),
	}
}

// Load builds the configuration from defaults, an optional YAML file at path
// and TEXTRANK_* environment variables, in that order. A .env file in the
// working directory is loaded first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator's command line
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, internalErrors.NewConfigurationError("file", path, err.Error())
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.Analyze.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks server and analysis options.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return internalErrors.NewConfigurationError("server.port", c.Server.Port, "cannot be empty")
	}
	switch strings.ToLower(c.Server.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return internalErrors.NewConfigurationError("server.log_level", c.Server.LogLevel, "must be one of debug, info, warn, error")
	}
	if c.Server.MaxWorkers <= 0 {
		return internalErrors.NewConfigurationError("server.max_workers", strconv.Itoa(c.Server.MaxWorkers), "must be positive")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return internalErrors.NewConfigurationError("server.max_body_bytes", strconv.FormatInt(c.Server.MaxBodyBytes, 10), "must be positive")
	}
	if c.Server.MaxTextBytes <= 0 {
		return internalErrors.NewConfigurationError("server.max_text_bytes", strconv.Itoa(c.Server.MaxTextBytes), "must be positive")
	}
	return c.Analyze.Validate()
}

func (c *Config) applyEnv() error {
	c.Server.Port = getEnv("TEXTRANK_PORT", c.Server.Port)
	c.Server.LogLevel = getEnv("TEXTRANK_LOG_LEVEL", c.Server.LogLevel)
	c.Server.StopwordsFile = getEnv("TEXTRANK_STOPWORDS_FILE", c.Server.StopwordsFile)

	var err error
	if c.Server.Development, err = getEnvBool("TEXTRANK_DEVELOPMENT", c.Server.Development); err != nil {
		return err
	}
	if c.Server.MaxWorkers, err = getEnvInt("TEXTRANK_MAX_WORKERS", c.Server.MaxWorkers); err != nil {
		return err
	}
	maxBody, err := getEnvInt("TEXTRANK_MAX_BODY_BYTES", int(c.Server.MaxBodyBytes))
	if err != nil {
		return err
	}
	c.Server.MaxBodyBytes = int64(maxBody)
	if c.Server.MaxTextBytes, err = getEnvInt("TEXTRANK_MAX_TEXT_BYTES", c.Server.MaxTextBytes); err != nil {
		return err
	}
	if c.Analyze.Window, err = getEnvInt("TEXTRANK_WINDOW", c.Analyze.Window); err != nil {
		return err
	}
	if c.Analyze.PageRank.Damping, err = getEnvFloat("TEXTRANK_DAMPING", c.Analyze.PageRank.Damping); err != nil {
		return err
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, internalErrors.NewConfigurationError(key, value, "must be an integer")
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, internalErrors.NewConfigurationError(key, value, "must be a number")
	}
	return f, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, internalErrors.NewConfigurationError(key, value, "must be a boolean")
	}
	return b, nil
}
