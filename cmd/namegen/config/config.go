// Package config resolves namegen's configuration.
//
// Values are layered, later layers winning:
//
//   - built-in defaults (internal/config)
//   - a YAML file given with --config
//   - NAMEGEN_* environment variables, after an optional .env is loaded
//   - flags the user set explicitly on the command line
//
// The resolved configuration lives in Global for the rest of the run.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	configDefaults "github.com/concave-dev/namegen/internal/config"
	"github.com/concave-dev/namegen/internal/logging"
)

// ConfigField represents a configuration field that can be explicitly set
type ConfigField int

const (
	// Configuration field identifiers
	CorpusField ConfigField = iota
	LogLevelField
	SeedField
)

const (
	DefaultLogLevel = configDefaults.DefaultLogLevel // Default log level
)

// Config holds all namegen configuration values
type Config struct {
	// Template used when none is given as an argument
	Format string `yaml:"format"`
	// Directory holding the noun, adjective and color lists
	CorpusDir string `yaml:"corpus" env:"CORPUS" validate:"required"`
	// Log level: DEBUG, INFO, WARN, ERROR
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" validate:"required,oneof=DEBUG INFO WARN ERROR"`
	// Fixed random seed; nil draws a fresh one
	Seed *uint64 `yaml:"seed" env:"SEED"`

	ConfigFile string `yaml:"-"` // YAML file passed with --config
	Check      bool   `yaml:"-"` // Validate the template instead of rendering it

	// Flags to track if values were explicitly set by user
	corpusExplicitlySet   bool
	logLevelExplicitlySet bool
	seedExplicitlySet     bool
}

// Global configuration instance
var Global Config

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		CorpusDir: configDefaults.DefaultCorpusDir(),
		LogLevel:  DefaultLogLevel,
	}
}

// SetExplicitlySet marks a configuration field as explicitly set by the user.
func (c *Config) SetExplicitlySet(field ConfigField, value bool) {
	switch field {
	case CorpusField:
		c.corpusExplicitlySet = value
	case LogLevelField:
		c.logLevelExplicitlySet = value
	case SeedField:
		c.seedExplicitlySet = value
	}
}

// IsExplicitlySet returns whether a configuration field was explicitly set by the user.
func (c *Config) IsExplicitlySet(field ConfigField) bool {
	switch field {
	case CorpusField:
		return c.corpusExplicitlySet
	case LogLevelField:
		return c.logLevelExplicitlySet
	case SeedField:
		return c.seedExplicitlySet
	}
	return false
}

// Resolve layers defaults, the config file named by flags.ConfigFile, the
// given environment and the explicitly set values of flags.
func Resolve(flags Config, environ map[string]string) (Config, error) {
	cfg := Defaults()

	if flags.ConfigFile != "" {
		if err := loadFile(flags.ConfigFile, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      configDefaults.EnvPrefix,
		Environment: environ,
	}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if flags.IsExplicitlySet(CorpusField) {
		cfg.CorpusDir = flags.CorpusDir
	}
	if flags.IsExplicitlySet(LogLevelField) {
		cfg.LogLevel = flags.LogLevel
	}
	if flags.IsExplicitlySet(SeedField) {
		cfg.Seed = flags.Seed
	}

	cfg.ConfigFile = flags.ConfigFile
	cfg.Check = flags.Check
	cfg.corpusExplicitlySet = flags.corpusExplicitlySet
	cfg.logLevelExplicitlySet = flags.logLevelExplicitlySet
	cfg.seedExplicitlySet = flags.seedExplicitlySet

	return cfg, nil
}

// InitializeConfig loads an optional .env file and resolves Global against
// the process environment.
func InitializeConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Warn("Ignoring unreadable .env file: %v", err)
	}

	cfg, err := Resolve(Global, nil)
	if err != nil {
		return err
	}
	Global = cfg

	logging.Debug("Corpus directory: %s", Global.CorpusDir)
	if Global.Seed != nil {
		logging.Debug("Random seed: %d", *Global.Seed)
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
