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

// Package tokenize splits texts into comparable tokens and normalizes tokens for comparison.
package tokenize

import (
	"strings"
	"unicode/utf8"

	"znkr.io/lcsdiff/internal/config"
)

// Split splits text into tokens according to mode.
//
// An empty text always yields nil. The ignoreWhitespace flag only affects line mode: if set, the
// text is trimmed and blank lines are dropped, otherwise only a single trailing empty line (caused
// by a final line break) is dropped.
func Split(text string, mode config.Mode, ignoreWhitespace bool) []string {
	if text == "" {
		return nil
	}
	switch mode {
	case config.ModeLine:
		if ignoreWhitespace {
			return dropEmpty(lines(strings.TrimSpace(text)))
		}
		l := lines(text)
		if l[len(l)-1] == "" {
			l = l[:len(l)-1]
		}
		return l
	case config.ModeWord:
		return strings.Fields(text)
	case config.ModeChar:
		return chars(text)
	default:
		panic("unknown mode: " + mode.String())
	}
}

// lines splits s after "\n" and "\r\n" line breaks. The result always has at least one element.
func lines(s string) []string {
	l := strings.Split(s, "\n")
	// The last element is not followed by "\n", a trailing "\r" is part of the content.
	for i := range len(l) - 1 {
		l[i] = strings.TrimSuffix(l[i], "\r")
	}
	return l
}

// dropEmpty removes all empty strings from l in place.
func dropEmpty(l []string) []string {
	out := l[:0]
	for _, s := range l {
		if s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// chars returns one token per UTF-8 encoded code point. Invalid encodings become one token per
// byte so that no input is lost.
func chars(s string) []string {
	out := make([]string, 0, utf8.RuneCountInString(s))
	for len(s) > 0 {
		_, n := utf8.DecodeRuneInString(s)
		out = append(out, s[:n])
		s = s[n:]
	}
	return out
}
