// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ringtale Contributors

package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringtale/ringtale/internal/config"
	"github.com/ringtale/ringtale/pkg/errutil"
)

// isolate points the XDG config home at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "config file path")
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_DefaultsWithUnsetFlags(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("", newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_DefaultPathFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "ringtale", config.FileName), "farewell: true\nlog:\n  format: text\n")

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.Farewell)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "warn", cfg.Log.Level, "unset keys keep defaults")
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "log:\n  level: info\ntranscript:\n  path: /tmp/a.json\n  format: json\n")

	cfg, err := config.Load(path, newFlags(t, "--log-level=debug", "--transcript-format=yaml", "--metrics"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/a.json", cfg.Transcript.Path, "unset flag does not clobber file value")
	assert.Equal(t, "yaml", cfg.Transcript.Format)
	assert.True(t, cfg.Metrics)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
		code    string
	}{
		{name: "unknown key", content: "colour: red\n", code: "CONFIG_SCHEMA_INVALID"},
		{name: "bad enum in file", content: "log:\n  format: xml\n", code: "CONFIG_SCHEMA_INVALID"},
		{name: "wrong type", content: "farewell: sometimes\n", code: "CONFIG_SCHEMA_INVALID"},
		{name: "malformed yaml", content: "log: [\n", code: "CONFIG_SCHEMA_INVALID"},
		{name: "bad flag value", content: "", args: []string{"--log-format=xml"}, code: "CONFIG_INVALID"},
		{name: "bad level flag", content: "", args: []string{"--log-level=loud"}, code: "CONFIG_INVALID"},
		{name: "uppercase level in file", content: "log:\n  level: WARN\n", code: "CONFIG_SCHEMA_INVALID"},
		{name: "uppercase level flag", content: "", args: []string{"--log-level=WARN"}, code: "CONFIG_INVALID"},
		{name: "bad transcript flag", content: "", args: []string{"--transcript-format=csv"}, code: "CONFIG_INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "config.yaml")
			writeFile(t, path, tt.content)

			_, err := config.Load(path, newFlags(t, tt.args...))
			require.Error(t, err)
			errutil.AssertErrorCode(t, err, tt.code)
		})
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	dir := isolate(t)

	_, err := config.Load(filepath.Join(dir, "nope.yaml"), nil)
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "CONFIG_READ_FAILED")
	errutil.AssertErrorContext(t, err, "path", filepath.Join(dir, "nope.yaml"))
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	cfg.Log.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	errutil.AssertErrorContext(t, err, "field", "log.format")

	cfg = config.Default()
	cfg.Log.Level = "Info"
	err = cfg.Validate()
	require.Error(t, err)
	errutil.AssertErrorContext(t, err, "field", "log.level")
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/etc/xdg")
	assert.Equal(t, "/etc/xdg/ringtale/config.yaml", config.DefaultPath())
}

func TestGenerateSchema(t *testing.T) {
	data, err := config.GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, config.SchemaID, schema["$id"])
	assert.Equal(t, "Ringtale Configuration", schema["title"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"log", "farewell", "transcript", "metrics"} {
		assert.Contains(t, props, key)
	}
}

func TestValidateSchema(t *testing.T) {
	assert.NoError(t, config.ValidateSchema([]byte("")))
	assert.NoError(t, config.ValidateSchema([]byte("metrics: true\ntranscript:\n  format: yaml\n")))
	assert.Error(t, config.ValidateSchema([]byte("transcript:\n  format: csv\n")))
}
