package logging

import "fmt"

// ValidLogLevels is the set of level names SetLevel understands. Names are
// case-sensitive and uppercase:
//   - DEBUG: corpus loads and resolved configuration
//   - INFO:  general progress, e.g. corpus initialization
//   - WARN:  recoverable oddities such as an unreadable .env file
//   - ERROR: failures that end the run
var ValidLogLevels = map[string]bool{
	"DEBUG": true,
	"INFO":  true,
	"WARN":  true,
	"ERROR": true,
}

// IsValidLogLevel reports whether level is one of ValidLogLevels.
func IsValidLogLevel(level string) bool {
	return ValidLogLevels[level]
}

// ValidateLogLevel returns an error naming level when it is not valid.
func ValidateLogLevel(level string) error {
	if !IsValidLogLevel(level) {
		return fmt.Errorf("invalid log level: %s (must be DEBUG, INFO, WARN or ERROR)", level)
	}
	return nil
}
