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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"znkr.io/lcsdiff/internal/config"
	"znkr.io/lcsdiff/message"
)

// DefaultConfigFile is read from the working directory if no --config flag is given.
const DefaultConfigFile = "lcsdiff.yaml"

// EnvPrefix is the prefix of all environment variables that configure lcsdiff.
const EnvPrefix = "LCSDIFF_"

// Output formats of the diff command.
const (
	FormatText   = "text"
	FormatInline = "inline"
	FormatJSON   = "json"
)

// Config is the effective configuration of a command.
//
// The comparison settings are not decoded like the other fields. They are resolved the same way as
// message fields, so a value of the wrong type falls back to the default instead of failing.
type Config struct {
	Mode             string    `koanf:"-" yaml:"mode"`
	IgnoreWhitespace bool      `koanf:"-" yaml:"ignore_whitespace"`
	CaseSensitive    bool      `koanf:"-" yaml:"case_sensitive"`
	Context          int       `koanf:"context" yaml:"context"`
	Format           string    `koanf:"format" yaml:"format"`
	Color            bool      `koanf:"color" yaml:"color"`
	Log              LogConfig `koanf:"log" yaml:"log"`

	// preset holds the comparison settings that were configured explicitly, in message form.
	preset message.Message
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level"`   // debug, info, warn, or error
	Format string `koanf:"format" yaml:"format"` // console or json
}

func defaults() map[string]any {
	return map[string]any{
		"context":    config.Default.Context,
		"format":     FormatText,
		"color":      false,
		"log.level":  "info",
		"log.format": "console",
	}
}

// LoadConfig loads the configuration. Precedence (highest to lowest): flags, environment,
// config file, defaults. An explicitly named config file must exist, the default one is optional.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// user holds everything that wasn't defaulted, it becomes the preset for messages.
	user := koanf.New(".")

	path := cfgFile
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		if err := user.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	// LCSDIFF_IGNORE_WHITESPACE -> ignore_whitespace, LCSDIFF_LOG_LEVEL -> log.level
	if err := user.Load(env.ProviderWithValue(EnvPrefix, ".", envToValue), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		if err := user.Load(posflag.ProviderWithFlag(flags, ".", user, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return flagKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	if err := k.Merge(user); err != nil {
		return nil, fmt.Errorf("merging config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Raw values, message.Resolve classifies them.
	cfg.preset = message.Message{}
	for key, field := range presetFields {
		if user.Exists(key) {
			cfg.preset[field] = user.Get(key)
		}
	}
	settings := message.Resolve(nil, cfg.preset)
	cfg.Mode = settings.Mode.Letter()
	cfg.IgnoreWhitespace = settings.IgnoreWhitespace
	cfg.CaseSensitive = settings.CaseSensitive
	return &cfg, nil
}

// presetFields maps config keys to the message fields they preset.
var presetFields = map[string]string{
	"mode":              message.DiffMode,
	"ignore_whitespace": message.IgnoreWS,
	"case_sensitive":    message.CaseSensitive,
}

// Validate checks the values that can't fall back to a default.
func (c *Config) Validate() error {
	if c.Context < 0 {
		return fmt.Errorf("invalid context %d: must not be negative", c.Context)
	}
	switch c.Format {
	case FormatText, FormatInline, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q: must be one of %s, %s, %s", c.Format, FormatText, FormatInline, FormatJSON)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be console or json", c.Log.Format)
	}
	return nil
}

// Preset returns the explicitly configured comparison settings. Message fields take priority over
// the preset, and settings missing from both use the built-in defaults.
func (c *Config) Preset() message.Message {
	return c.preset
}

func envToKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}
	return key
}

// envToValue maps an environment variable to its config key. Boolean comparison settings are
// parsed, values that don't parse are kept as strings and resolve to the default.
func envToValue(name, value string) (string, any) {
	key := envToKey(name)
	switch key {
	case "ignore_whitespace", "case_sensitive":
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return key, b
		}
	}
	return key, value
}

func flagKey(name string) string {
	key := strings.ReplaceAll(name, "-", "_")
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}
	return key
}
