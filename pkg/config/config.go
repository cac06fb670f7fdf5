// Package config holds process-wide arbor settings.
//
// Settings are optional: a missing arbor.yaml resolves to defaults. The
// current settings are read by the animation package whenever a LifeTime is
// constructed without an explicit refresh interval.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up by LoadOptional.
const FileName = "arbor.yaml"

// DefaultRefreshInterval is used when no setting overrides it (about 60Hz).
const DefaultRefreshInterval = 16 * time.Millisecond

// Settings represents the optional arbor.yaml configuration.
type Settings struct {
	// RefreshInterval is the default timer interval for new animations.
	RefreshInterval time.Duration `yaml:"refresh_interval,omitempty"`
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	LogLevel string `yaml:"log_level,omitempty"`
	// VerboseErrors attaches stack traces to logged animation errors.
	VerboseErrors bool `yaml:"verbose_errors,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		RefreshInterval: DefaultRefreshInterval,
		LogLevel:        "info",
	}
}

var current atomic.Pointer[Settings]

func init() {
	s := Defaults()
	current.Store(&s)
}

// Current returns a copy of the active settings.
func Current() Settings {
	return *current.Load()
}

// Set replaces the active settings after resolving defaults and returns the
// previous settings.
func Set(s Settings) Settings {
	s = s.resolved()
	prev := current.Swap(&s)
	return *prev
}

// RefreshInterval returns the active default refresh interval.
func RefreshInterval() time.Duration {
	return current.Load().RefreshInterval
}

// LoadOptional reads arbor.yaml from dir if present. A missing file yields
// the defaults.
func LoadOptional(dir string) (Settings, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads settings from path, resolving unset fields to defaults.
// A missing file yields the defaults.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Settings{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML settings and resolves unset fields to defaults.
func Parse(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if s.RefreshInterval < 0 {
		return Settings{}, fmt.Errorf("refresh_interval must not be negative, got %s", s.RefreshInterval)
	}
	if _, err := parseLevel(s.LogLevel); err != nil {
		return Settings{}, err
	}
	return s.resolved(), nil
}

// Marshal encodes settings as YAML.
func Marshal(s Settings) ([]byte, error) {
	return yaml.Marshal(s)
}

// ApplyLogLevel sets the zerolog global level from the settings.
func ApplyLogLevel(s Settings) error {
	level, err := parseLevel(s.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

func (s Settings) resolved() Settings {
	if s.RefreshInterval <= 0 {
		s.RefreshInterval = DefaultRefreshInterval
	}
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	return s
}

func parseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log_level %q: %w", name, err)
	}
	return level, nil
}
