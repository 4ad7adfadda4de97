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

// Package message runs the diff on loosely typed message payloads.
//
// A message is a JSON-like object that carries the two texts and, optionally, the comparison
// settings. Every setting is resolved in three tiers: the message field wins, then the preset of
// the [Processor], then the built-in default. Invalid values never fail a call, they fall back
// to the default instead.
//
// Processing a message leaves all fields of the input untouched and adds three output fields:
//
//   - oldArray: the tokens of oldText
//   - newArray: the tokens of newText
//   - diffs: the edit records as produced by [lcsdiff.Diff]
package message

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Message is a loosely typed payload.
type Message map[string]any

// Field names of a message.
const (
	OldText       = "oldText"
	NewText       = "newText"
	DiffMode      = "diffMode"
	IgnoreWS      = "ignoreWS"
	CaseSensitive = "caseSensitive"

	OldArray = "oldArray"
	NewArray = "newArray"
	Diffs    = "diffs"
)

// Decode reads a single JSON object from r.
func Decode(r io.Reader) (Message, error) {
	var msg Message
	if err := json.NewDecoder(r).Decode(&msg); err != nil {
		return nil, fmt.Errorf("decoding message: %w", err)
	}
	if msg == nil {
		return nil, fmt.Errorf("decoding message: not a JSON object")
	}
	return msg, nil
}

// Encode writes msg as indented JSON followed by a newline.
func Encode(w io.Writer, msg Message) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(msg); err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}
	return nil
}

// text returns the named field if it is a string and "" otherwise.
func text(msg Message, name string) string {
	s, _ := msg[name].(string)
	return s
}
