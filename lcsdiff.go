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

import (
	"znkr.io/lcsdiff/internal/config"
	"znkr.io/lcsdiff/internal/lcs"
	"znkr.io/lcsdiff/internal/tokenize"
)

// Result is the outcome of comparing two texts.
type Result struct {
	Old, New []string // Tokens of the old and new text.
	Edits    []Record // Edit script to convert Old into New.
}

// Tokenize splits text into tokens.
//
// The following options are supported: [Split], [IgnoreWhitespace]
func Tokenize(text string, opts ...Option) []string {
	cfg := config.FromOptions(opts, config.Split|config.IgnoreWhitespace)
	return tokenize.Split(text, cfg.Mode, cfg.IgnoreWhitespace)
}

// Align compares the token sequences x and y and returns the edit script to convert from one to
// the other.
//
// Align returns one record for every token in x and y, except that matching tokens share a
// record. If x and y are identical, the output consists of a match for every token. The records
// are in document order, their positions increase monotonically.
//
// The following options are supported: [Split], [IgnoreWhitespace], [CaseSensitive]
func Align(x, y []string, opts ...Option) []Record {
	cfg := config.FromOptions(opts, config.Comparison)
	return align(x, y, cfg)
}

// Diff splits oldText and newText into tokens and aligns them.
//
// The following options are supported: [Split], [IgnoreWhitespace], [CaseSensitive]
func Diff(oldText, newText string, opts ...Option) Result {
	cfg := config.FromOptions(opts, config.Comparison)
	x := tokenize.Split(oldText, cfg.Mode, cfg.IgnoreWhitespace)
	y := tokenize.Split(newText, cfg.Mode, cfg.IgnoreWhitespace)
	return Result{
		Old:   x,
		New:   y,
		Edits: align(x, y, cfg),
	}
}

func align(x, y []string, cfg config.Config) []Record {
	// Comparing normalized keys is equivalent to normalizing both tokens on every comparison,
	// but only normalizes every token once.
	norm := tokenize.Normalizer(cfg.Mode, cfg.IgnoreWhitespace, cfg.CaseSensitive)
	steps := lcs.Script(tokenize.Keys(x, norm), tokenize.Keys(y, norm))
	if len(steps) == 0 {
		return nil
	}
	out := make([]Record, len(steps))
	for i, st := range steps {
		switch st.Op {
		case lcs.Match:
			out[i] = Record{
				Kind:    Match,
				Old:     Pos(st.S + 1),
				New:     Pos(st.T + 1),
				OldText: x[st.S],
				NewText: y[st.T],
			}
		case lcs.Delete:
			out[i] = Record{
				Kind:    Removed,
				Old:     Pos(st.S + 1),
				OldText: x[st.S],
			}
		case lcs.Insert:
			out[i] = Record{
				Kind:    Added,
				New:     Pos(st.T + 1),
				NewText: y[st.T],
			}
		default:
			panic("never reached")
		}
	}
	return out
}
