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
	"slices"

	"znkr.io/lcsdiff/internal/config"
	"znkr.io/lcsdiff/internal/edits"
	"znkr.io/lcsdiff/internal/lcs"
)

// Hunk describes a sequence of consecutive edit records.
type Hunk struct {
	PosOld, EndOld int      // Start and end position in the old tokens (0-based, exclusive end).
	PosNew, EndNew int      // Start and end position in the new tokens (0-based, exclusive end).
	Edits          []Record // Records to transform old[PosOld:EndOld] to new[PosNew:EndNew]
}

// Hunks groups an edit script as returned by [Align] or [Diff] into hunks. A hunk represents a
// contiguous block of changes (insertions and deletions) along with some surrounding context. The
// amount of context can be configured using [Context].
//
// If the edit script only consists of matches, the output has length zero.
//
// The following option is supported: [Context]
func Hunks(script []Record, opts ...Option) []Hunk {
	cfg := config.FromOptions(opts, config.Context)
	return hunks(script, cfg)
}

func hunks(script []Record, cfg config.Config) []Hunk {
	ops := make([]lcs.Op, len(script))
	for i, r := range script {
		switch r.Kind {
		case Match:
			ops[i] = lcs.Match
		case Removed:
			ops[i] = lcs.Delete
		case Added:
			ops[i] = lcs.Insert
		default:
			panic("never reached")
		}
	}

	var out []Hunk
	for h := range edits.Hunks(ops, cfg.Context) {
		out = append(out, Hunk{
			PosOld: h.S0,
			EndOld: h.S1,
			PosNew: h.T0,
			EndNew: h.T1,
			Edits:  slices.Clip(script[h.R0:h.R1]),
		})
	}
	return out
}
