// Package config loads numkit settings from an optional YAML file, an
// optional .env file, NUMKIT_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/numkit/bench"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

const envPrefix = "NUMKIT"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved numkit configuration.
type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Workers  int          `mapstructure:"workers"`
	Seed     int64        `mapstructure:"seed"`
	Output   Output       `mapstructure:"output"`
	Suite    []bench.Case `mapstructure:"suite"`
}

// Output controls where suite reports go.
type Output struct {
	Format      string `mapstructure:"format"`       // text | yaml
	Path        string `mapstructure:"path"`         // empty = stdout
	MetricsPath string `mapstructure:"metrics_path"` // empty = no metrics file
}

// flagKeys maps CLI flag names onto config keys.
var flagKeys = map[string]string{
	"log-level":    "log_level",
	"workers":      "workers",
	"seed":         "seed",
	"format":       "output.format",
	"output":       "output.path",
	"metrics-file": "output.metrics_path",
}

// DefaultSuite is used when the configuration lists no cases.
func DefaultSuite() []bench.Case {
	return []bench.Case{
		{Routine: bench.RoutinePower, Base: 2, Arg: 30},
		{Routine: bench.RoutineFibonacci, Arg: 90},
		{Routine: bench.RoutineSort, Arg: 1_000_000},
		{Routine: bench.RoutineMatrix, Arg: 200},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "*:INFO")
	v.SetDefault("workers", 0)
	v.SetDefault("seed", 0)
	v.SetDefault("output.format", FormatText)
	v.SetDefault("output.path", "")
	v.SetDefault("output.metrics_path", "")
}

// Load resolves the configuration. path may be empty, in which case
// ./config.yaml is used if present. flags may be nil; only flags that were
// explicitly set override file and environment values.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	// a missing .env is not an error, a malformed one is
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if len(cfg.Suite) == 0 {
		cfg.Suite = DefaultSuite()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges and every suite case.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, c.Output.Format)
	}
	for i, cs := range c.Suite {
		if err := cs.Validate(); err != nil {
			return fmt.Errorf("%w: suite[%d]: %w", ErrInvalidConfig, i, err)
		}
	}

	return nil
}
