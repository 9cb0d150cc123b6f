// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

// Package config loads ringtale settings from defaults, a YAML file and flags.
//
// None of these settings change the story itself; they only control logging,
// the optional farewell line and where the transcript and metrics go.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/ringtale/ringtale/internal/narrative"
	"github.com/ringtale/ringtale/internal/xdg"
)

// LogLevels lists the accepted log levels. Levels are lowercase in files and flags alike.
var LogLevels = []string{"debug", "info", "warn", "error"}

// FileName is the name of the config file inside the XDG config directory.
const FileName = "config.yaml"

// Log holds logger settings.
type Log struct {
	Level  string `koanf:"level" json:"level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	Format string `koanf:"format" json:"format,omitempty" jsonschema:"enum=json,enum=text"`
}

// Transcript holds transcript export settings.
type Transcript struct {
	// Path of the export file. Empty disables the export.
	Path   string `koanf:"path" json:"path,omitempty"`
	Format string `koanf:"format" json:"format,omitempty" jsonschema:"enum=json,enum=yaml"`
}

// Config is the full ringtale configuration.
type Config struct {
	Log        Log        `koanf:"log" json:"log,omitempty"`
	Farewell   bool       `koanf:"farewell" json:"farewell,omitempty" jsonschema:"description=Narrate a farewell line after each death"`
	Transcript Transcript `koanf:"transcript" json:"transcript,omitempty"`
	Metrics    bool       `koanf:"metrics" json:"metrics,omitempty" jsonschema:"description=Dump Prometheus metrics to stderr after the run"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: Log{
			Level:  "warn",
			Format: "json",
		},
		Transcript: Transcript{
			Format: string(narrative.FormatJSON),
		},
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if !lo.Contains(LogLevels, c.Log.Level) {
		return oops.Code("CONFIG_INVALID").
			With("field", "log.level").
			Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return oops.Code("CONFIG_INVALID").
			With("field", "log.format").
			Errorf("log.format must be 'json' or 'text', got %q", c.Log.Format)
	}
	switch narrative.Format(c.Transcript.Format) {
	case narrative.FormatJSON, narrative.FormatYAML:
	default:
		return oops.Code("CONFIG_INVALID").
			With("field", "transcript.format").
			Errorf("transcript.format must be 'json' or 'yaml', got %q", c.Transcript.Format)
	}
	return nil
}

// flagKeys maps flag names to config keys. Flags absent from the map are not
// configuration (for example --config itself).
var flagKeys = map[string]string{
	"log-level":         "log.level",
	"log-format":        "log.format",
	"farewell":          "farewell",
	"transcript":        "transcript.path",
	"transcript-format": "transcript.format",
	"metrics":           "metrics",
}

// RegisterFlags adds the configuration flags to flags. Flag defaults match Default.
func RegisterFlags(flags *pflag.FlagSet) {
	d := Default()
	flags.String("log-level", d.Log.Level, "log level (debug, info, warn or error)")
	flags.String("log-format", d.Log.Format, "log format (json or text)")
	flags.Bool("farewell", d.Farewell, "narrate a farewell line after each death")
	flags.String("transcript", d.Transcript.Path, "write the run transcript to this file")
	flags.String("transcript-format", d.Transcript.Format, "transcript format (json or yaml)")
	flags.Bool("metrics", d.Metrics, "dump Prometheus metrics to stderr after the run")
}

// DefaultPath returns the config file looked up when none is given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigDir(), FileName)
}

// Load builds the configuration: defaults, then the YAML file at path, then
// flags that were explicitly set.
//
// An empty path falls back to DefaultPath, which may be missing. An explicit
// path must exist. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if err := loadFile(k, path, explicit); err != nil {
		return Config{}, err
	}

	if flags != nil {
		provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return Config{}, oops.Code("CONFIG_LOAD_FAILED").With("source", "flags").Wrap(err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, oops.Code("CONFIG_LOAD_FAILED").With("path", path).Wrap(err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(k *koanf.Koanf, path string, required bool) error {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return oops.Code("CONFIG_READ_FAILED").With("path", path).Wrap(err)
	}
	if err := ValidateSchema(data); err != nil {
		return oops.Code("CONFIG_SCHEMA_INVALID").With("path", path).Wrap(err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
		return oops.Code("CONFIG_LOAD_FAILED").With("path", path).Wrap(err)
	}
	return nil
}
