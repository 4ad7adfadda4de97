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
	"maps"

	"go.uber.org/zap"
	"znkr.io/lcsdiff"
)

// Processor diffs messages. It is safe for concurrent use.
type Processor struct {
	preset Message
	logger *zap.Logger
}

// ProcessorOption configures a [Processor].
type ProcessorOption func(*Processor)

// WithLogger sets the logger for parameter fallbacks and processed messages.
func WithLogger(logger *zap.Logger) ProcessorOption {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProcessor returns a processor that uses preset for every setting a message doesn't carry.
// The preset is copied.
func NewProcessor(preset Message, opts ...ProcessorOption) *Processor {
	p := &Processor{
		preset: maps.Clone(preset),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Settings resolves the settings of msg against the preset of p.
func (p *Processor) Settings(msg Message) Settings {
	return resolve(msg, p.preset, p.logger)
}

// Process diffs oldText against newText of msg and returns a shallow copy of msg with the output
// fields set. Texts that are missing or not strings are treated as empty.
func (p *Processor) Process(msg Message) Message {
	s := p.Settings(msg)
	res := lcsdiff.Diff(text(msg, OldText), text(msg, NewText), s.Options()...)

	out := make(Message, len(msg)+3)
	maps.Copy(out, msg)
	out[OldArray] = orEmpty(res.Old)
	out[NewArray] = orEmpty(res.New)
	out[Diffs] = orEmpty(res.Edits)

	p.logger.Debug("processed message",
		zap.Stringer("mode", s.Mode),
		zap.Bool("ignoreWhitespace", s.IgnoreWhitespace),
		zap.Bool("caseSensitive", s.CaseSensitive),
		zap.Int("old", len(res.Old)),
		zap.Int("new", len(res.New)),
		zap.Int("edits", len(res.Edits)),
	)
	return out
}

// orEmpty makes sure empty outputs are encoded as [] rather than null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
