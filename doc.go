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

// Package lcsdiff compares two texts by splitting them into lines, words, or characters and
// aligning the resulting token sequences using a longest common subsequence table.
//
// The main functions are [Diff], which tokenizes and aligns two texts in one go, [Tokenize] and
// [Align], which expose the two steps individually, and [Hunks], which groups an edit script into
// contextual blocks.
//
// By default, texts are compared line by line, differences in whitespace are ignored, and the
// comparison is case insensitive. Use [Split], [IgnoreWhitespace], and [CaseSensitive] to change
// that.
//
// Performance: Time and space complexity is O(NM) where N and M are the number of tokens in the
// two texts. The full table is kept in memory, callers need to limit input sizes if that's a
// concern.
//
// In return, the output is stable: Among all alignments of maximal length, the one reported is
// the one that, read from the end, prefers insertions over deletions.
//
// Note: For a textual rendering of the differences, please see [znkr.io/lcsdiff/textdiff].
//
// [znkr.io/lcsdiff/textdiff]: https://pkg.go.dev/znkr.io/lcsdiff/textdiff
package lcsdiff
