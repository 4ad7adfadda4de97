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

// Package edits groups edit scripts into hunks.
package edits

import (
	"iter"

	"znkr.io/lcsdiff/internal/lcs"
)

// Hunk describes a contiguous block of edits.
type Hunk struct {
	R0, R1 int // Start and end of the hunk in the edit script.
	S0, S1 int // Start and end of the hunk in x.
	T0, T1 int // Start and end of the hunk in y.
}

// Hunks returns the hunks of an edit script. Every hunk contains at least one deletion or
// insertion, surrounded by up to context matches on both sides. Hunks whose context would overlap
// are merged.
func Hunks(ops []lcs.Op, context int) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		r, n := 0, len(ops)
		s, t := 0, 0 // current index into x, y
		done := 0    // end of the previous hunk in ops
		for r < n {
			if ops[r] == lcs.Match {
				r++
				s++
				t++
				continue
			}

			// Start of a new hunk, include up to context preceding matches that are not part of
			// the previous hunk.
			k := min(context, r-done)
			r0, s0, t0 := r-k, s-k, t-k

			run := 0 // number of consecutive matches
			for r < n && run <= 2*context {
				switch ops[r] {
				case lcs.Match:
					s++
					t++
					run++
				case lcs.Delete:
					s++
					run = 0
				case lcs.Insert:
					t++
					run = 0
				}
				r++
			}

			// Trailing matches beyond the context belong to no hunk (or the next one).
			Δ := max(0, run-context)
			if !yield(Hunk{r0, r - Δ, s0, s - Δ, t0, t - Δ}) {
				return
			}
			done = r - Δ
		}
	}
}
