package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/metaprop/modules/timemachine"
)

// Assignment is a property write requested before printing.
type Assignment struct {
	Property string
	Value    string
}

// ParseAssignment splits "name=value". The value may be empty or contain
// further '=' characters.
func ParseAssignment(s string) (Assignment, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return Assignment{}, fmt.Errorf("invalid assignment %q: expected name=value", s)
	}
	return Assignment{Property: name, Value: value}, nil
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ClassName     string
	ManifestsPath string // hcl files with extra classes, optional
	Assignments   []Assignment

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ClassName == "" {
		cfg.ClassName = timemachine.ClassName
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	for _, a := range cfg.Assignments {
		if a.Property == "" {
			return nil, errors.New("assignment has an empty property name")
		}
	}

	return &cfg, nil
}
