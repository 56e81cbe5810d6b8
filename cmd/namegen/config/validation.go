package config

import (
	"fmt"
	"strings"

	"github.com/concave-dev/namegen/internal/logging"
	"github.com/concave-dev/namegen/internal/validate"
)

// ValidateConfig validates Global after InitializeConfig. Log level names
// are normalized to upper case first so that --log-level=debug works.
func ValidateConfig() error {
	Global.LogLevel = strings.ToUpper(strings.TrimSpace(Global.LogLevel))
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return err
	}

	Global.CorpusDir = strings.TrimSpace(Global.CorpusDir)
	if err := validate.ValidateRequiredString(Global.CorpusDir, "corpus directory"); err != nil {
		logging.Error("Configuration rejected: %v", err)
		return err
	}

	if err := validate.ValidateStruct(Global); err != nil {
		logging.Error("Configuration rejected: %v", err)
		return err
	}
	return nil
}

// ResolveFormat picks the template to render: the positional argument when
// given, otherwise the format from the config file.
func ResolveFormat(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if Global.Format != "" {
		return Global.Format, nil
	}
	return "", fmt.Errorf("no format given: pass FORMAT or set format in the config file")
}
