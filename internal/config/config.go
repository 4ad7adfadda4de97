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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// lcsdiff.Option.
package config

// Mode describes how a text is split into tokens.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Mode -trimprefix=Mode
type Mode int

const (
	// One token per line.
	ModeLine Mode = iota

	// One token per run of non-whitespace characters.
	ModeWord

	// One token per character.
	ModeChar
)

// ParseMode parses the single letter mode names L, W, and C.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "L":
		return ModeLine, true
	case "W":
		return ModeWord, true
	case "C":
		return ModeChar, true
	default:
		return ModeLine, false
	}
}

// Letter returns the single letter name of m, the inverse of [ParseMode].
func (m Mode) Letter() string {
	switch m {
	case ModeLine:
		return "L"
	case ModeWord:
		return "W"
	case ModeChar:
		return "C"
	default:
		panic("unknown mode: " + m.String())
	}
}

// ColorConfig holds the ANSI escape sequences used for colored output.
type ColorConfig struct {
	HunkHeader string
	Match      string
	Delete     string
	Insert     string
}

// DefaultColors are used when colors are enabled without explicit overrides.
var DefaultColors = ColorConfig{
	HunkHeader: "\033[36m",
	Match:      "",
	Delete:     "\033[31m",
	Insert:     "\033[32m",
}

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Tokenization mode.
	Mode Mode

	// If set, line tokenization drops blank lines and line comparison ignores differences in
	// whitespace.
	IgnoreWhitespace bool

	// If unset, tokens are compared after case folding.
	CaseSensitive bool

	// Context is the number of matches to include as a prefix and postfix for hunks returned.
	Context int

	// If non-nil, textdiff output is colored.
	Color *ColorConfig
}

// Default is the default configuration.
var Default = Config{
	Mode:             ModeLine,
	IgnoreWhitespace: true,
	CaseSensitive:    false,
	Context:          3,
	Color:            nil,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by the function they are passed to.
type Flag int

const (
	Split Flag = 1 << iota
	IgnoreWhitespace
	CaseSensitive
	Context
	Color
)

// Comparison is the set of flags that influence tokenization and comparison.
const Comparison = Split | IgnoreWhitespace | CaseSensitive

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options. Unknown modes are replaced by
// ModeLine.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	switch cfg.Mode {
	case ModeLine, ModeWord, ModeChar:
	default:
		cfg.Mode = ModeLine
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Split:
		return "lcsdiff.Split"
	case IgnoreWhitespace:
		return "lcsdiff.IgnoreWhitespace"
	case CaseSensitive:
		return "lcsdiff.CaseSensitive"
	case Context:
		return "lcsdiff.Context"
	case Color:
		return "textdiff.Color"
	default:
		panic("never reached")
	}
}
