// Package config provides default configuration values shared by namegen
// components.
//
// These are the lowest layer of configuration. The CLI starts from them and
// overrides them, in increasing priority, from a YAML config file, NAMEGEN_
// environment variables (optionally loaded from a .env file) and explicit
// command-line flags.
//
// DEFAULT LOCATIONS:
//   - Corpus directory: $XDG_DATA_HOME/namegen, resolved through adrg/xdg
//   - Log level: WARN, so a normal render leaves stderr empty
//
// Nothing in this package reads flags or the environment itself.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// DefaultLogLevel keeps stderr quiet during normal renders.
	DefaultLogLevel = "WARN"

	// AppDirName is the directory under the XDG data home that holds the
	// default corpus.
	AppDirName = "namegen"

	// EnvPrefix prefixes every environment variable namegen reads.
	EnvPrefix = "NAMEGEN_"
)

// DefaultCorpusDir returns $XDG_DATA_HOME/namegen, falling back to the
// platform data directory when XDG_DATA_HOME is unset.
func DefaultCorpusDir() string {
	return filepath.Join(xdg.DataHome, AppDirName)
}
