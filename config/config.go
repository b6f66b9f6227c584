// Package config holds the arrowmaze CLI settings and loads them from a YAML
// file, an optional .env file and ARROWMAZE_* environment variables.
//
// Precedence, lowest first: Default, YAML file, environment, command-line
// flags (applied by the caller before Validate).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/arrowmaze/maze"
)

// Environment variables read by ApplyEnv.
const (
	EnvStrategy  = "ARROWMAZE_STRATEGY"
	EnvLogLevel  = "ARROWMAZE_LOG_LEVEL"
	EnvLogFormat = "ARROWMAZE_LOG_FORMAT"
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full CLI configuration.
type Config struct {
	// Strategy names the search: "any" or "min-hops".
	Strategy string    `yaml:"strategy"`
	Log      LogConfig `yaml:"log"`
}

// LogConfig controls the slog handler installed by the CLI.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Strategy: maze.StrategyAnyPath.String(),
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
	}
}

// Load overlays the YAML file at path onto Default. Keys absent from the
// file keep their defaults; unknown keys are an error. An empty path
// returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDotEnv exports the variables of a .env file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from the ARROWMAZE_* variables that are set
// and non-empty.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvStrategy)); v != "" {
		c.Strategy = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		c.Log.Format = v
	}
}

// Validate checks every field and wraps ErrInvalid on failure.
func (c Config) Validate() error {
	if _, err := maze.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: strategy: %w", ErrInvalid, err)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log.format %q (want %s or %s)", ErrInvalid, c.Log.Format, FormatText, FormatJSON)
	}
	return nil
}

// SolverStrategy returns the parsed strategy. Call Validate first.
func (c Config) SolverStrategy() maze.Strategy {
	s, _ := maze.ParseStrategy(c.Strategy)
	return s
}

// SlogLevel parses Level as understood by slog ("debug", "INFO", "warn+2" ...).
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(l.Level))
	return lvl, err
}

// Sources runs the standard loading sequence: YAML file, then the .env
// file, then the environment. Flags and Validate are left to the caller.
func Sources(path, dotenv string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	if dotenv != "" {
		if err = LoadDotEnv(dotenv); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyEnv()
	return cfg, nil
}
