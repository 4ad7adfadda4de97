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

package tokenize

import (
	"strings"

	"znkr.io/lcsdiff/internal/config"
)

// Normalizer returns a function that maps a token to its comparison key. Two tokens are equal
// under the configured comparison iff their keys are equal.
//
//   - Without case sensitivity, tokens are case folded.
//   - In line mode with ignoreWhitespace, whitespace runs collapse to a single space and the token
//     is trimmed.
//   - Word and char tokens get no further normalization.
func Normalizer(mode config.Mode, ignoreWhitespace, caseSensitive bool) func(string) string {
	var collapse bool
	switch mode {
	case config.ModeLine:
		collapse = ignoreWhitespace
	case config.ModeWord, config.ModeChar:
	default:
		panic("unknown mode: " + mode.String())
	}

	switch {
	case !caseSensitive && collapse:
		return func(s string) string { return collapseSpace(strings.ToLower(s)) }
	case !caseSensitive:
		return strings.ToLower
	case collapse:
		return collapseSpace
	default:
		return identity
	}
}

// Keys normalizes all tokens.
func Keys(tokens []string, norm func(string) string) []string {
	keys := make([]string, len(tokens))
	for i, t := range tokens {
		keys[i] = norm(t)
	}
	return keys
}

// Equal reports whether a and b compare equal under the given comparison.
func Equal(a, b string, mode config.Mode, ignoreWhitespace, caseSensitive bool) bool {
	norm := Normalizer(mode, ignoreWhitespace, caseSensitive)
	return norm(a) == norm(b)
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func identity(s string) string { return s }
