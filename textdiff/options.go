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

package textdiff

import (
	"znkr.io/lcsdiff"
	"znkr.io/lcsdiff/internal/config"
	"znkr.io/lcsdiff/textdiff/color"
)

// Color enables colored output using ANSI escape sequences.
//
// Without further options, hunk headers are cyan, deletions are red, insertions are green, and
// matches are not colored. The options in package [color] override individual colors.
func Color(opts ...color.Option) lcsdiff.Option {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}
	return func(cfg *config.Config) config.Flag {
		cfg.Color = &cc
		return config.Color
	}
}
