package config

import (
	"fmt"
	"strings"
)

var (
	supportedLevels  = []string{"debug", "info", "warn", "error"}
	supportedFormats = []string{"console", "json"}
)

// Validate checks the configuration for values the demonstration cannot use.
func (fc *FileConfig) Validate() error {
	if strings.TrimSpace(fc.Subject.Name) == "" {
		return fmt.Errorf("subject.name must not be empty")
	}
	if fc.Subject.Age < 0 {
		return fmt.Errorf("subject.age must not be negative, got %d", fc.Subject.Age)
	}
	if fc.Logging.Level != "" && !contains(supportedLevels, strings.ToLower(fc.Logging.Level)) {
		return fmt.Errorf("invalid logging.level '%s'. Supported levels are: %s", fc.Logging.Level, strings.Join(supportedLevels, ", "))
	}
	if fc.Logging.Format != "" && !contains(supportedFormats, fc.Logging.Format) {
		return fmt.Errorf("invalid logging.format '%s'. Supported formats are: %s", fc.Logging.Format, strings.Join(supportedFormats, ", "))
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
