package querykit

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/biyonik/go-query-kit/dialect"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvDriver   = "QUERYKIT_DRIVER"
	EnvTable    = "QUERYKIT_TABLE"
	EnvColor    = "QUERYKIT_COLOR"
	EnvLogLevel = "QUERYKIT_LOG_LEVEL"
)

// Config holds the settings a Builder can be constructed from.
type Config struct {
	Driver   string `yaml:"driver" validate:"omitempty,dialect"`
	Table    string `yaml:"table"`
	Color    bool   `yaml:"color"`
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		Driver:   string(dialect.Default),
		Color:    true,
		LogLevel: "debug",
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
//
//	driver: pgsql
//	table: users
//	color: false
//	log_level: info
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("querykit: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return cfg, cfg.Validate()
}

// ConfigFromEnv builds a Config from QUERYKIT_* variables. The optional dotenv
// files are read first; values already present in the process environment win.
func ConfigFromEnv(files ...string) (Config, error) {
	cfg := DefaultConfig()

	values := map[string]string{}
	if len(files) > 0 {
		read, err := godotenv.Read(files...)
		if err != nil {
			return cfg, fmt.Errorf("querykit: read env files: %w", err)
		}
		values = read
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}

	if v, ok := lookup(EnvDriver); ok {
		cfg.Driver = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvTable); ok {
		cfg.Table = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvColor); ok {
		color, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvColor, v)
		}
		cfg.Color = color
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}

	return cfg, cfg.Validate()
}

// configValidator is shared by every Validate call; validator caches struct
// metadata per instance.
var configValidator = sync.OnceValues(func() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("dialect", func(fl validator.FieldLevel) bool {
		return slices.Contains(dialect.Names(), strings.ToLower(fl.Field().String()))
	})
	if err != nil {
		return nil, fmt.Errorf("querykit: register dialect validation: %w", err)
	}
	return v, nil
})

// Validate checks the struct tags of the config.
func (c Config) Validate() error {
	v, err := configValidator()
	if err != nil {
		return err
	}
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Options converts the config into builder options. The config is assumed valid.
func (c Config) Options() []Option {
	opts := []Option{WithColor(c.Color)}
	if c.Driver != "" {
		if d, err := dialect.Parse(c.Driver); err == nil {
			opts = append(opts, WithDriver(string(d)))
		}
	}
	if c.Table != "" {
		opts = append(opts, WithTable(c.Table))
	}
	if c.LogLevel != "" {
		opts = append(opts, WithLogger(NewSlogLogger(slog.Default(), parseLevel(c.LogLevel))))
	}
	return opts
}

// NewFromConfig validates cfg and builds a Builder from it. Extra options are
// applied after the config and can override it.
func NewFromConfig(cfg Config, opts ...Option) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(append(cfg.Options(), opts...)...), nil
}

func parseLevel(name string) slog.Level {
	switch name {
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
