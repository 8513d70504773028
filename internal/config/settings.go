package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidMinutes     = errors.New("default minutes must be a multiple of 5 between 5 and 60")
	ErrNoSuggestions      = errors.New("at least one task suggestion is required")
	ErrTooManySuggestions = errors.New("too many task suggestions")
)

// MaxSuggestions bounds the suggestion list shown under the task field.
const MaxSuggestions = 10

// Settings is the runtime configuration. Values are layered as
// defaults, then the YAML file, then POMO_* environment variables.
type Settings struct {
	DefaultMinutes int      `yaml:"default_minutes"`
	Theme          string   `yaml:"theme"`
	Suggestions    []string `yaml:"suggestions"`
	ReportDir      string   `yaml:"report_dir"`
	LogFile        string   `yaml:"log_file"`
}

func Defaults() Settings {
	return Settings{
		DefaultMinutes: DefaultMinutes,
		Theme:          DefaultTheme,
		Suggestions:    append([]string(nil), DefaultSuggestions...),
	}
}

// Load reads the YAML file at path (if path is non-empty) over the
// defaults and applies environment overrides.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := s.ApplyEnv(os.LookupEnv); err != nil {
		return s, err
	}
	return s, s.Validate()
}

// LoadDotEnv loads each existing file into the process environment.
// Variables already set are not overridden.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overlays POMO_* variables using lookup.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "DEFAULT_MINUTES"); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sDEFAULT_MINUTES: %w", EnvPrefix, err)
		}
		s.DefaultMinutes = n
	}
	if v, ok := lookup(EnvPrefix + "THEME"); ok && strings.TrimSpace(v) != "" {
		s.Theme = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvPrefix + "SUGGESTIONS"); ok && strings.TrimSpace(v) != "" {
		var out []string
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		s.Suggestions = out
	}
	if v, ok := lookup(EnvPrefix + "REPORT_DIR"); ok && strings.TrimSpace(v) != "" {
		s.ReportDir = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvPrefix + "LOG_FILE"); ok && strings.TrimSpace(v) != "" {
		s.LogFile = strings.TrimSpace(v)
	}
	return nil
}

func (s Settings) Validate() error {
	if s.DefaultMinutes < MinMinutes || s.DefaultMinutes > MaxMinutes || s.DefaultMinutes%MinutesStep != 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidMinutes, s.DefaultMinutes)
	}
	if len(s.Suggestions) == 0 {
		return ErrNoSuggestions
	}
	if len(s.Suggestions) > MaxSuggestions {
		return fmt.Errorf("%w: %d > %d", ErrTooManySuggestions, len(s.Suggestions), MaxSuggestions)
	}
	return nil
}
