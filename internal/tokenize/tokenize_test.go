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

package tokenize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/lcsdiff/internal/config"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		mode     config.Mode
		ignoreWS bool
		want     []string
	}{
		{
			name:     "line-empty",
			text:     "",
			mode:     config.ModeLine,
			ignoreWS: false,
			want:     nil,
		},
		{
			name:     "line-ignore-ws-drops-blank-lines",
			text:     "a\n\nb\n",
			mode:     config.ModeLine,
			ignoreWS: true,
			want:     []string{"a", "b"},
		},
		{
			name:     "line-keeps-interior-blank-lines",
			text:     "a\n\nb\n",
			mode:     config.ModeLine,
			ignoreWS: false,
			want:     []string{"a", "", "b"},
		},
		{
			name:     "line-crlf",
			text:     "a\r\nb\r\n",
			mode:     config.ModeLine,
			ignoreWS: false,
			want:     []string{"a", "b"},
		},
		{
			name:     "line-bare-cr-is-content",
			text:     "a\rb\nc\r",
			mode:     config.ModeLine,
			ignoreWS: false,
			want:     []string{"a\rb", "c\r"},
		},
		{
			name:     "line-only-newline",
			text:     "\n",
			mode:     config.ModeLine,
			ignoreWS: false,
			want:     []string{""},
		},
		{
			name:     "line-only-newline-ignore-ws",
			text:     "\n",
			mode:     config.ModeLine,
			ignoreWS: true,
			want:     nil,
		},
		{
			name:     "line-ignore-ws-trims-text-not-lines",
			text:     "  a  \n b\n \n",
			mode:     config.ModeLine,
			ignoreWS: true,
			want:     []string{"a  ", " b"},
		},
		{
			name:     "line-ignore-ws-keeps-whitespace-only-lines",
			text:     "a\n  \nb",
			mode:     config.ModeLine,
			ignoreWS: true,
			want:     []string{"a", "  ", "b"},
		},
		{
			name:     "line-only-last-trailing-empty-dropped",
			text:     "a\n\n\n",
			mode:     config.ModeLine,
			ignoreWS: false,
			want:     []string{"a", "", ""},
		},
		{
			name:     "word",
			text:     "  foo   bar\n baz ",
			mode:     config.ModeWord,
			ignoreWS: true,
			want:     []string{"foo", "bar", "baz"},
		},
		{
			name:     "word-ignore-ws-has-no-effect",
			text:     "  foo   bar\n baz ",
			mode:     config.ModeWord,
			ignoreWS: false,
			want:     []string{"foo", "bar", "baz"},
		},
		{
			name:     "word-whitespace-only",
			text:     " \t\n ",
			mode:     config.ModeWord,
			ignoreWS: false,
			want:     []string{},
		},
		{
			name:     "char",
			text:     "ab",
			mode:     config.ModeChar,
			ignoreWS: true,
			want:     []string{"a", "b"},
		},
		{
			name:     "char-empty",
			text:     "",
			mode:     config.ModeChar,
			ignoreWS: true,
			want:     nil,
		},
		{
			name:     "char-whitespace",
			text:     " a\n",
			mode:     config.ModeChar,
			ignoreWS: true,
			want:     []string{" ", "a", "\n"},
		},
		{
			name:     "char-multibyte",
			text:     "Hi, 世界",
			mode:     config.ModeChar,
			ignoreWS: false,
			want:     []string{"H", "i", ",", " ", "世", "界"},
		},
		{
			name:     "char-invalid-utf8",
			text:     "a\xffb",
			mode:     config.ModeChar,
			ignoreWS: false,
			want:     []string{"a", "\xff", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text, tt.mode, tt.ignoreWS)
			if diff := cmp.Diff(tt.want, got, cmpEmpty); diff != "" {
				t.Errorf("Split(%q, %v, %v) result are different [-want,+got]:\n%s", tt.text, tt.mode, tt.ignoreWS, diff)
			}
		})
	}
}

// cmpEmpty treats nil and empty slices as equal.
var cmpEmpty = cmp.Comparer(func(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
})

func TestNormalizer(t *testing.T) {
	tests := []struct {
		name          string
		a, b          string
		mode          config.Mode
		ignoreWS      bool
		caseSensitive bool
		want          bool
	}{
		{
			name: "case-insensitive",
			a:    "Foo",
			b:    "foo",
			mode: config.ModeWord,
			want: true,
		},
		{
			name:          "case-sensitive",
			a:             "Foo",
			b:             "foo",
			mode:          config.ModeWord,
			caseSensitive: true,
			want:          false,
		},
		{
			name:     "line-collapse-whitespace",
			a:        "a   b",
			b:        "a b",
			mode:     config.ModeLine,
			ignoreWS: true,
			want:     true,
		},
		{
			name:     "line-trim",
			a:        "\ta b  ",
			b:        "a b",
			mode:     config.ModeLine,
			ignoreWS: true,
			want:     true,
		},
		{
			name:     "line-whitespace-significant",
			a:        "a   b",
			b:        "a b",
			mode:     config.ModeLine,
			ignoreWS: false,
			want:     false,
		},
		{
			name:     "line-whitespace-does-not-remove-separation",
			a:        "ab",
			b:        "a b",
			mode:     config.ModeLine,
			ignoreWS: true,
			want:     false,
		},
		{
			name:          "line-collapse-and-case",
			a:             "  A   B ",
			b:             "a b",
			mode:          config.ModeLine,
			ignoreWS:      true,
			caseSensitive: false,
			want:          true,
		},
		{
			name:     "char-whitespace-not-normalized",
			a:        " ",
			b:        "\t",
			mode:     config.ModeChar,
			ignoreWS: true,
			want:     false,
		},
		{
			name:          "char-case-sensitive",
			a:             "A",
			b:             "A",
			mode:          config.ModeChar,
			caseSensitive: true,
			want:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Equal(tt.a, tt.b, tt.mode, tt.ignoreWS, tt.caseSensitive)
			if got != tt.want {
				t.Errorf("Equal(%q, %q, %v, %v, %v) = %v, want %v", tt.a, tt.b, tt.mode, tt.ignoreWS, tt.caseSensitive, got, tt.want)
			}
		})
	}
}

func TestKeys(t *testing.T) {
	norm := Normalizer(config.ModeLine, true, false)
	got := Keys([]string{" Foo  Bar", "baz"}, norm)
	want := []string{"foo bar", "baz"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Keys(...) result are different [-want,+got]:\n%s", diff)
	}
}
