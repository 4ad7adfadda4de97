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

package lcsdiff_test

import (
	"fmt"

	"znkr.io/lcsdiff"
)

// Compare two strings line by line and output the difference as a pseudo-unified diff.
func ExampleHunks_psudoUnified() {
	x := `this paragraph
is not
changed and
barely long
enough to
create a
new hunk

this paragraph
is going to be
removed`

	y := `this is a new paragraph
that is inserted at the top

this paragraph
is not
changed and
barely long
enough to
create a
new hunk`

	res := lcsdiff.Diff(x, y, lcsdiff.IgnoreWhitespace(false))
	for _, h := range lcsdiff.Hunks(res.Edits) {
		fmt.Printf("@@ -%d,%d +%d,%d @@\n", h.PosOld+1, h.EndOld-h.PosOld, h.PosNew+1, h.EndNew-h.PosNew)
		for _, r := range h.Edits {
			switch r.Kind {
			case lcsdiff.Match:
				fmt.Printf(" %s\n", r.OldText)
			case lcsdiff.Removed:
				fmt.Printf("-%s\n", r.OldText)
			case lcsdiff.Added:
				fmt.Printf("+%s\n", r.NewText)
			default:
				panic("never reached")
			}
		}
	}
	// Output:
	// @@ -1,3 +1,6 @@
	// +this is a new paragraph
	// +that is inserted at the top
	// +
	//  this paragraph
	//  is not
	//  changed and
	// @@ -5,7 +8,3 @@
	//  enough to
	//  create a
	//  new hunk
	// -
	// -this paragraph
	// -is going to be
	// -removed
}

// Compare two strings character by character.
func ExampleDiff() {
	res := lcsdiff.Diff("Hello, World", "hello, 世界", lcsdiff.Split(lcsdiff.Char))
	for _, r := range res.Edits {
		switch r.Kind {
		case lcsdiff.Match:
			fmt.Printf("%s", r.NewText)
		case lcsdiff.Removed:
			fmt.Printf("-%s", r.OldText)
		case lcsdiff.Added:
			fmt.Printf("+%s", r.NewText)
		default:
			panic("never reached")
		}
	}
	fmt.Println()
	// Output:
	// hello, -W-o-r-l-d+世+界
}

// Align two word sequences, distinguishing upper and lower case.
func ExampleAlign() {
	x := lcsdiff.Tokenize("The quick brown fox", lcsdiff.Split(lcsdiff.Word))
	y := lcsdiff.Tokenize("the quick red fox", lcsdiff.Split(lcsdiff.Word))
	for _, r := range lcsdiff.Align(x, y, lcsdiff.Split(lcsdiff.Word), lcsdiff.CaseSensitive(true)) {
		fmt.Printf("%-7v %q %q\n", r.Kind, r.OldText, r.NewText)
	}
	// Output:
	// Removed "The" ""
	// Added   "" "the"
	// Match   "quick" "quick"
	// Removed "brown" ""
	// Added   "" "red"
	// Match   "fox" "fox"
}
