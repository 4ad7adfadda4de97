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

package message

import (
	"strconv"
	"strings"
)

// Outcome classifies the result of looking up a parameter.
type Outcome int

const (
	Absent  Outcome = iota // Neither the message nor the preset has the field
	Empty                  // The field is a blank string
	Invalid                // The field has a type that can't be used
	Valid                  // The field holds a usable value
)

func (o Outcome) String() string {
	switch o {
	case Absent:
		return "absent"
	case Empty:
		return "empty"
	case Invalid:
		return "invalid"
	case Valid:
		return "valid"
	default:
		return "Outcome(" + strconv.Itoa(int(o)) + ")"
	}
}

// Value is the result of a parameter lookup. V is only meaningful if Outcome is Valid.
type Value[T any] struct {
	Outcome Outcome
	V       T
}

// Get returns the value and whether it is valid.
func (v Value[T]) Get() (T, bool) {
	return v.V, v.Outcome == Valid
}

// StringParam looks up a string parameter. The message takes priority over the preset; a field
// that is present in the message is used even if it is invalid.
//
// Strings are trimmed, numbers are converted to their decimal representation.
func StringParam(name string, msg, preset Message) Value[string] {
	v, ok := lookup(name, msg, preset)
	if !ok {
		return Value[string]{}
	}
	switch v := v.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return Value[string]{Outcome: Empty}
		}
		return Value[string]{Valid, s}
	case int:
		return Value[string]{Valid, strconv.Itoa(v)}
	case int64:
		return Value[string]{Valid, strconv.FormatInt(v, 10)}
	case float64:
		return Value[string]{Valid, strconv.FormatFloat(v, 'f', -1, 64)}
	default:
		return Value[string]{Outcome: Invalid}
	}
}

// BoolParam looks up a boolean parameter with the same priorities as [StringParam]. Only booleans
// are valid, a blank string is reported as Empty.
func BoolParam(name string, msg, preset Message) Value[bool] {
	v, ok := lookup(name, msg, preset)
	if !ok {
		return Value[bool]{}
	}
	switch v := v.(type) {
	case bool:
		return Value[bool]{Valid, v}
	case string:
		if strings.TrimSpace(v) == "" {
			return Value[bool]{Outcome: Empty}
		}
		return Value[bool]{Outcome: Invalid}
	default:
		return Value[bool]{Outcome: Invalid}
	}
}

func lookup(name string, msg, preset Message) (any, bool) {
	if v, ok := msg[name]; ok {
		return v, true
	}
	v, ok := preset[name]
	return v, ok
}
