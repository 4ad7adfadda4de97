// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"znkr.io/lcsdiff/message"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("mode", "m", "L", "")
	flags.Bool("ignore-whitespace", true, "")
	flags.Bool("case-sensitive", false, "")
	flags.IntP("context", "U", 3, "")
	flags.String("log-level", "info", "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "L", cfg.Mode)
	assert.True(t, cfg.IgnoreWhitespace)
	assert.False(t, cfg.CaseSensitive)
	assert.Equal(t, 3, cfg.Context)
	assert.Equal(t, FormatText, cfg.Format)
	assert.False(t, cfg.Color)
	assert.Equal(t, LogConfig{Level: "info", Format: "console"}, cfg.Log)
	assert.Empty(t, cfg.Preset())
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := writeFile(t, "lcsdiff.yaml", `
mode: W
ignore_whitespace: false
context: 1
log:
  level: debug
  format: json
`)
	t.Setenv("LCSDIFF_MODE", "C")
	t.Setenv("LCSDIFF_CONTEXT", "2")
	t.Setenv("LCSDIFF_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path, testFlags(t, "--context=5", "--case-sensitive"))
	require.NoError(t, err)

	assert.Equal(t, "C", cfg.Mode, "env overrides file")
	assert.False(t, cfg.IgnoreWhitespace, "file overrides default")
	assert.True(t, cfg.CaseSensitive, "flag overrides default")
	assert.Equal(t, 5, cfg.Context, "flag overrides env")
	assert.Equal(t, LogConfig{Level: "warn", Format: "json"}, cfg.Log)
	assert.Equal(t, message.Message{
		message.DiffMode:      "C",
		message.IgnoreWS:      false,
		message.CaseSensitive: true,
	}, cfg.Preset())
}

func TestLoadConfigUnchangedFlagsAreIgnored(t *testing.T) {
	t.Setenv("LCSDIFF_MODE", "W")
	cfg, err := LoadConfig("", testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "W", cfg.Mode)
	assert.Equal(t, message.Message{message.DiffMode: "W"}, cfg.Preset())
}

func TestLoadConfigEnvBool(t *testing.T) {
	t.Setenv("LCSDIFF_IGNORE_WHITESPACE", "false")
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.False(t, cfg.IgnoreWhitespace)
	assert.Equal(t, message.Message{message.IgnoreWS: false}, cfg.Preset())
}

func TestLoadConfigUnusableComparisonSettings(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		env        map[string]string
		want       Config
		wantPreset message.Message
	}{
		{
			name:       "empty-string",
			file:       "ignore_whitespace: \"\"\n",
			want:       Config{Mode: "L", IgnoreWhitespace: true, CaseSensitive: false},
			wantPreset: message.Message{message.IgnoreWS: ""},
		},
		{
			name:       "wrong-type",
			file:       "case_sensitive: [1]\nmode: 7\n",
			want:       Config{Mode: "L", IgnoreWhitespace: true, CaseSensitive: false},
			wantPreset: message.Message{message.CaseSensitive: []any{1}, message.DiffMode: 7},
		},
		{
			name:       "env-not-a-bool",
			env:        map[string]string{"LCSDIFF_IGNORE_WHITESPACE": "yes", "LCSDIFF_CASE_SENSITIVE": " "},
			want:       Config{Mode: "L", IgnoreWhitespace: true, CaseSensitive: false},
			wantPreset: message.Message{message.IgnoreWS: "yes", message.CaseSensitive: " "},
		},
		{
			name:       "unknown-mode",
			env:        map[string]string{"LCSDIFF_MODE": "word"},
			want:       Config{Mode: "L", IgnoreWhitespace: true, CaseSensitive: false},
			wantPreset: message.Message{message.DiffMode: "word"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfgFile := ""
			if tt.file != "" {
				cfgFile = writeFile(t, "lcsdiff.yaml", tt.file)
			}
			cfg, err := LoadConfig(cfgFile, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Mode, cfg.Mode)
			assert.Equal(t, tt.want.IgnoreWhitespace, cfg.IgnoreWhitespace)
			assert.Equal(t, tt.want.CaseSensitive, cfg.CaseSensitive)
			assert.Equal(t, tt.wantPreset, cfg.Preset())
		})
	}
}

func TestEnvToValue(t *testing.T) {
	tests := []struct {
		name, value string
		wantKey     string
		wantValue   any
	}{
		{"LCSDIFF_IGNORE_WHITESPACE", "false", "ignore_whitespace", false},
		{"LCSDIFF_CASE_SENSITIVE", " true ", "case_sensitive", true},
		{"LCSDIFF_CASE_SENSITIVE", "yes", "case_sensitive", "yes"},
		{"LCSDIFF_MODE", "W", "mode", "W"},
		{"LCSDIFF_LOG_LEVEL", "debug", "log.level", "debug"},
	}
	for _, tt := range tests {
		key, value := envToValue(tt.name, tt.value)
		assert.Equal(t, tt.wantKey, key, "envToValue(%q, %q)", tt.name, tt.value)
		assert.Equal(t, tt.wantValue, value, "envToValue(%q, %q)", tt.name, tt.value)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr string
	}{
		{
			name:    "format",
			file:    "format: html\n",
			wantErr: `invalid format "html"`,
		},
		{
			name:    "context",
			file:    "context: -1\n",
			wantErr: "invalid context -1",
		},
		{
			name:    "log-format",
			file:    "log:\n  format: xml\n",
			wantErr: `invalid log format "xml"`,
		},
		{
			name:    "yaml",
			file:    "mode: [",
			wantErr: "reading config file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "lcsdiff.yaml", tt.file), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "ignore_whitespace", envToKey("LCSDIFF_IGNORE_WHITESPACE"))
	assert.Equal(t, "log.level", envToKey("LCSDIFF_LOG_LEVEL"))
	assert.Equal(t, "case_sensitive", flagKey("case-sensitive"))
	assert.Equal(t, "log.format", flagKey("log-format"))
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		logger, err := NewLogger(LogConfig{Level: "debug", Format: format})
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel), "debug enabled for %s", format)
	}
	logger, err := NewLogger(LogConfig{Level: "bogus", Format: "json"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel), "unknown levels default to info")
}
