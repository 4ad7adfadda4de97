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

package lcsdiff

import "znkr.io/lcsdiff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Mode describes how texts are split into tokens.
type Mode = config.Mode

const (
	Line = config.ModeLine // Split on line breaks ("\n" or "\r\n").
	Word = config.ModeWord // Split on runs of whitespace.
	Char = config.ModeChar // Split into individual characters.
)

// Split sets how texts are split into tokens. The default is [Line], unknown modes are treated as
// [Line] too.
func Split(m Mode) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Mode = m
		return config.Split
	}
}

// IgnoreWhitespace controls whitespace handling for [Line] mode. The default is true.
//
// If set, the text is trimmed before it is split, blank lines are dropped, and lines that only
// differ in whitespace compare equal. Note that this drops all blank lines, including the ones
// that separate paragraphs.
//
// If unset, all lines are kept as they are, except for the empty line after a final line break.
//
// [Word] and [Char] mode are unaffected.
func IgnoreWhitespace(ignore bool) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreWhitespace = ignore
		return config.IgnoreWhitespace
	}
}

// CaseSensitive controls if upper and lower case letters are distinguished when tokens are
// compared. The default is false.
func CaseSensitive(sensitive bool) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.CaseSensitive = sensitive
		return config.CaseSensitive
	}
}

// Context sets the number of matches to include as a prefix and postfix for hunks returned in
// [Hunks]. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}
