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
	"fmt"
	"strconv"
)

// Kind describes an edit record.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Match   Kind = iota // A token of the old text matches a token of the new text
	Added               // A token only present in the new text
	Removed             // A token only present in the old text
)

// MarshalText implements [encoding.TextMarshaler]. The text forms are "match", "added", and
// "removed".
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Match:
		return []byte("match"), nil
	case Added:
		return []byte("added"), nil
	case Removed:
		return []byte("removed"), nil
	default:
		return nil, fmt.Errorf("invalid kind: %v", k)
	}
}

// Pos is a 1-based position of a token in its sequence. The zero Pos marks an absent position.
type Pos int

// Valid reports whether p is a position, i.e., not the absent marker.
func (p Pos) Valid() bool { return p > 0 }

// MarshalJSON implements [encoding/json.Marshaler]. An absent Pos is encoded as an empty string.
func (p Pos) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return []byte(`""`), nil
	}
	return strconv.AppendInt(nil, int64(p), 10), nil
}

// Record describes a single entry of an edit script.
//
//   - For Match, all fields are set.
//   - For Added, New and NewText are set, Old is absent and OldText is empty.
//   - For Removed, Old and OldText are set, New is absent and NewText is empty.
type Record struct {
	Kind    Kind   `json:"diffType"`
	Old     Pos    `json:"oldIndex"`
	New     Pos    `json:"newIndex"`
	OldText string `json:"oldStr"`
	NewText string `json:"newStr"`
}
