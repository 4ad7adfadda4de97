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

// Package textdiff renders the differences between two texts in human readable form.
package textdiff

import (
	"fmt"
	"strings"

	"znkr.io/lcsdiff"
	"znkr.io/lcsdiff/internal/config"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

const (
	openDelete  = "[-"
	closeDelete = "-]"
	openInsert  = "{+"
	closeInsert = "+}"
)

const reset = "\033[0m"

// Unified compares x and y and returns the changes necessary to convert from one to the other in
// a format similar to a unified diff. Every token is written on a line of its own, prefixed by
// " ", "-", or "+". Hunk headers use 1-based token positions.
//
// If x and y compare equal, the output is empty.
//
// The following options are supported: [lcsdiff.Split], [lcsdiff.IgnoreWhitespace],
// [lcsdiff.CaseSensitive], [lcsdiff.Context], [Color]
func Unified(x, y string, opts ...lcsdiff.Option) string {
	cfg := config.FromOptions(opts, config.Comparison|config.Context|config.Color)
	res := diff(x, y, cfg)
	colors := colorsOf(cfg)

	var b strings.Builder
	for _, h := range lcsdiff.Hunks(res.Edits, lcsdiff.Context(cfg.Context)) {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", start(h.PosOld, h.EndOld), h.EndOld-h.PosOld, start(h.PosNew, h.EndNew), h.EndNew-h.PosNew)
		paint(&b, colors.HunkHeader, header)
		b.WriteByte('\n')
		for _, r := range h.Edits {
			switch r.Kind {
			case lcsdiff.Match:
				paint(&b, colors.Match, prefixMatch+r.OldText)
			case lcsdiff.Removed:
				paint(&b, colors.Delete, prefixDelete+r.OldText)
			case lcsdiff.Added:
				paint(&b, colors.Insert, prefixInsert+r.NewText)
			default:
				panic("never reached")
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Inline compares x and y and returns the new text with the changes marked inline, similar to
// git's word diff: Runs of removed tokens are enclosed in "[-" and "-]", runs of added tokens in
// "{+" and "+}". Matching tokens are written as they appear in y.
//
// Tokens are joined by a line break in [lcsdiff.Line] mode, by a single space in [lcsdiff.Word]
// mode and without separator in [lcsdiff.Char] mode. The output has no trailing line break.
//
// The following options are supported: [lcsdiff.Split], [lcsdiff.IgnoreWhitespace],
// [lcsdiff.CaseSensitive], [Color]
func Inline(x, y string, opts ...lcsdiff.Option) string {
	cfg := config.FromOptions(opts, config.Comparison|config.Color)
	res := diff(x, y, cfg)
	colors := colorsOf(cfg)
	sep := separator(cfg.Mode)

	var b strings.Builder
	edits := res.Edits
	for i := 0; i < len(edits); {
		if i > 0 {
			b.WriteString(sep)
		}
		r := edits[i]
		if r.Kind == lcsdiff.Match {
			paint(&b, colors.Match, r.NewText)
			i++
			continue
		}
		j := i + 1
		for j < len(edits) && edits[j].Kind == r.Kind {
			j++
		}
		texts := make([]string, 0, j-i)
		for _, e := range edits[i:j] {
			if r.Kind == lcsdiff.Removed {
				texts = append(texts, e.OldText)
			} else {
				texts = append(texts, e.NewText)
			}
		}
		switch r.Kind {
		case lcsdiff.Removed:
			paint(&b, colors.Delete, openDelete+strings.Join(texts, sep)+closeDelete)
		case lcsdiff.Added:
			paint(&b, colors.Insert, openInsert+strings.Join(texts, sep)+closeInsert)
		default:
			panic("never reached")
		}
		i = j
	}
	return b.String()
}

// start returns the 1-based start line of a hunk range. An empty range names the line before it,
// 0 if there is none.
func start(pos, end int) int {
	if pos == end {
		return pos
	}
	return pos + 1
}

func diff(x, y string, cfg config.Config) lcsdiff.Result {
	return lcsdiff.Diff(x, y,
		lcsdiff.Split(cfg.Mode),
		lcsdiff.IgnoreWhitespace(cfg.IgnoreWhitespace),
		lcsdiff.CaseSensitive(cfg.CaseSensitive),
	)
}

func separator(mode config.Mode) string {
	switch mode {
	case config.ModeLine:
		return "\n"
	case config.ModeWord:
		return " "
	case config.ModeChar:
		return ""
	default:
		panic("unknown mode: " + mode.String())
	}
}

func colorsOf(cfg config.Config) config.ColorConfig {
	if cfg.Color == nil {
		return config.ColorConfig{}
	}
	return *cfg.Color
}

// paint writes s, enclosed in the escape sequence code and a reset if code is not empty.
func paint(b *strings.Builder, code, s string) {
	if code == "" {
		b.WriteString(s)
		return
	}
	b.WriteString(code)
	b.WriteString(s)
	b.WriteString(reset)
}
