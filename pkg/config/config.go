// Package config loads application configuration from YAML or TOML files
// with environment-variable overrides. The engine itself never reads it;
// command-line callers translate it into constructor arguments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Dess457/search-server/internal/document"
)

// Config is the top-level application configuration.
type Config struct {
	Engine  EngineConfig  `yaml:"engine" toml:"engine"`
	Search  SearchConfig  `yaml:"search" toml:"search"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`
}

// EngineConfig holds the stop words and the corpus to load at startup.
// StopWordsText, when set, is split on spaces and added to StopWords.
type EngineConfig struct {
	StopWords     []string `yaml:"stopWords" toml:"stopWords"`
	StopWordsText string   `yaml:"stopWordsText" toml:"stopWordsText"`
	Corpus        string   `yaml:"corpus" toml:"corpus"`
}

// SearchConfig controls query defaults.
type SearchConfig struct {
	DefaultStatus string `yaml:"defaultStatus" toml:"defaultStatus"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// MetricsConfig controls the Prometheus registry dump.
type MetricsConfig struct {
	Enabled    bool `yaml:"enabled" toml:"enabled"`
	DumpOnExit bool `yaml:"dumpOnExit" toml:"dumpOnExit"`
}

// Load reads a config file (if provided) and applies environment-variable
// overrides. The file format follows the extension: .yaml, .yml or .toml.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		case ".toml":
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		default:
			return nil, fmt.Errorf("config file %s: unsupported extension %q", path, ext)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			DefaultStatus: document.StatusActive.String(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate checks values that cannot be checked by decoding alone.
func (c *Config) Validate() error {
	if _, err := document.ParseStatus(c.Search.DefaultStatus); err != nil {
		return fmt.Errorf("search.defaultStatus: %w", err)
	}
	switch c.Logging.Format {
	case "json", "text", "pretty":
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}
	return nil
}

// DefaultStatus returns the parsed search.defaultStatus.
func (c *Config) DefaultStatus() document.Status {
	status, _ := document.ParseStatus(c.Search.DefaultStatus)
	return status
}

// AllStopWords merges StopWords with the words of StopWordsText.
func (e EngineConfig) AllStopWords() []string {
	words := make([]string, 0, len(e.StopWords))
	words = append(words, e.StopWords...)
	for _, w := range strings.Split(e.StopWordsText, " ") {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// applyEnvOverrides reads SS_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SS_STOP_WORDS"); v != "" {
		cfg.Engine.StopWordsText = v
		cfg.Engine.StopWords = nil
	}
	if v := os.Getenv("SS_CORPUS"); v != "" {
		cfg.Engine.Corpus = v
	}
	if v := os.Getenv("SS_DEFAULT_STATUS"); v != "" {
		cfg.Search.DefaultStatus = v
	}
	if v := os.Getenv("SS_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SS_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("SS_METRICS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = enabled
		}
	}
}
