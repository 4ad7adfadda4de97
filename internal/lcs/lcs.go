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

// Package lcs computes edit scripts from a full longest common subsequence table.
//
// Unlike Myers' algorithm, this always needs O(NM) time and space, but the reported alignment is
// fully determined by the backtrace rule below which makes the output stable:
//
// The table is walked backwards from (N, M). Matching elements are always consumed diagonally. If
// the elements don't match, an insertion is preferred whenever T[s][t-1] >= T[s-1][t], otherwise
// a deletion is emitted.
package lcs

import "slices"

// Op describes an edit operation.
type Op int

const (
	Match  Op = iota // x[S] matches y[T]
	Delete           // x[S] is deleted
	Insert           // y[T] is inserted
)

// Step is a single edit operation. S and T are 0-based indices into x and y. For Delete, T is
// unused and for Insert, S is unused; both are set to -1 in that case.
type Step struct {
	Op   Op
	S, T int
}

// Table is the longest common subsequence table for two sequences. Cell (s, t) holds the length
// of the longest common subsequence of x[:s] and y[:t].
type Table struct {
	n, m  int
	cells []int // row-major, (n+1)*(m+1)
}

// At returns the value of cell (s, t).
func (tb *Table) At(s, t int) int {
	return tb.cells[s*(tb.m+1)+t]
}

// Len returns the length of the longest common subsequence.
func (tb *Table) Len() int {
	return tb.At(tb.n, tb.m)
}

// Build fills the longest common subsequence table for x and y using eq to compare elements.
func Build[T any](x, y []T, eq func(a, b T) bool) *Table {
	n, m := len(x), len(y)
	tb := &Table{n: n, m: m, cells: make([]int, (n+1)*(m+1))}
	w := m + 1
	for s := 1; s <= n; s++ {
		row, prev := tb.cells[s*w:(s+1)*w], tb.cells[(s-1)*w:s*w]
		for t := 1; t <= m; t++ {
			if eq(x[s-1], y[t-1]) {
				row[t] = prev[t-1] + 1
			} else {
				row[t] = max(prev[t], row[t-1])
			}
		}
	}
	return tb
}

// Script returns the edit script to convert x into y in document order.
func Script[T comparable](x, y []T) []Step {
	return ScriptFunc(x, y, func(a, b T) bool { return a == b })
}

// ScriptFunc returns the edit script to convert x into y in document order, using eq to compare
// elements.
func ScriptFunc[T any](x, y []T, eq func(a, b T) bool) []Step {
	if len(x) == 0 && len(y) == 0 {
		return nil
	}
	return backtrace(Build(x, y, eq), x, y, eq)
}

// backtrace walks the table from (n, m) to (0, 0) and returns the steps in document order.
func backtrace[T any](tb *Table, x, y []T, eq func(a, b T) bool) []Step {
	// Every step consumes at least one element and a match consumes two.
	out := make([]Step, 0, tb.n+tb.m-tb.Len())
	s, t := tb.n, tb.m
	for s > 0 || t > 0 {
		switch {
		case s > 0 && t > 0 && eq(x[s-1], y[t-1]):
			out = append(out, Step{Match, s - 1, t - 1})
			s--
			t--
		case t > 0 && (s == 0 || tb.At(s, t-1) >= tb.At(s-1, t)):
			out = append(out, Step{Insert, -1, t - 1})
			t--
		default:
			out = append(out, Step{Delete, s - 1, -1})
			s--
		}
	}
	slices.Reverse(out)
	return out
}
