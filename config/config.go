// Package config loads run settings from defaults, an optional YAML file and
// SIMGRAPH_* environment variables, and builds the process logger.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/simgraph/dataset"
)

// EnvPrefix prefixes every environment override, e.g. SIMGRAPH_THRESHOLD.
const EnvPrefix = "SIMGRAPH"

// ErrInvalid is returned (wrapped) when a loaded Config fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all run configuration.
type Config struct {
	Threshold float64       `mapstructure:"threshold" validate:"gte=-1,lte=1"`
	Input     string        `mapstructure:"input" validate:"required"`
	Output    string        `mapstructure:"output"`
	Format    string        `mapstructure:"format" validate:"oneof=text json yaml yml"`
	Top       int           `mapstructure:"top" validate:"gte=0"`
	Columns   ColumnsConfig `mapstructure:"columns"`
	Log       LogConfig     `mapstructure:"log"`
}

// ColumnsConfig describes the input table layout.
type ColumnsConfig struct {
	ID      string   `mapstructure:"id" validate:"required"`
	Group   string   `mapstructure:"group"`
	Exclude []string `mapstructure:"exclude"`
}

// LogConfig selects logger level and encoding, and an optional rotating
// log file written in addition to stderr.
type LogConfig struct {
	Level   string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format  string `mapstructure:"format" validate:"oneof=console json"`
	File    string `mapstructure:"file"`
	MaxSize int    `mapstructure:"max_size" validate:"gte=0"` // megabytes
	MaxAge  int    `mapstructure:"max_age" validate:"gte=0"`  // days
}

// New returns a viper instance carrying defaults and environment binding.
// Callers may bind CLI flags onto it before LoadFrom.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("threshold", 0.5)
	v.SetDefault("input", "")
	v.SetDefault("output", "output_results.txt")
	v.SetDefault("format", "text")
	v.SetDefault("top", 5)
	v.SetDefault("columns.id", dataset.DefaultIDColumn)
	v.SetDefault("columns.group", dataset.DefaultGroupColumn)
	v.SetDefault("columns.exclude", dataset.DefaultExcludedColumns)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_age", 28)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads configuration from path (optional) and the environment.
func Load(path string) (*Config, error) {
	return LoadFrom(New(), path)
}

// LoadFrom reads path (skipped when empty) into v, unmarshals and validates.
func LoadFrom(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate checks field constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// DatasetOptions maps the column layout onto dataset options.
func (c *Config) DatasetOptions() []dataset.Option {
	return []dataset.Option{
		dataset.WithIDColumn(c.Columns.ID),
		dataset.WithGroupColumn(c.Columns.Group),
		dataset.WithExcludedColumns(c.Columns.Exclude...),
	}
}
