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
	"go.uber.org/zap"
	"znkr.io/lcsdiff"
	"znkr.io/lcsdiff/internal/config"
)

// Settings are the resolved comparison settings of a message.
type Settings struct {
	Mode             lcsdiff.Mode
	IgnoreWhitespace bool
	CaseSensitive    bool
}

// DefaultSettings are used for every setting that neither the message nor the preset provide.
var DefaultSettings = Settings{
	Mode:             config.Default.Mode,
	IgnoreWhitespace: config.Default.IgnoreWhitespace,
	CaseSensitive:    config.Default.CaseSensitive,
}

// Options returns the settings as options for [lcsdiff.Diff].
func (s Settings) Options() []lcsdiff.Option {
	return []lcsdiff.Option{
		lcsdiff.Split(s.Mode),
		lcsdiff.IgnoreWhitespace(s.IgnoreWhitespace),
		lcsdiff.CaseSensitive(s.CaseSensitive),
	}
}

// Resolve resolves the settings of msg. Fields missing from msg are taken from preset (which may
// be nil); fields that are missing or invalid in both use [DefaultSettings].
func Resolve(msg, preset Message) Settings {
	return resolve(msg, preset, zap.NewNop())
}

func resolve(msg, preset Message, logger *zap.Logger) Settings {
	s := DefaultSettings

	mode := StringParam(DiffMode, msg, preset)
	if v, ok := mode.Get(); ok {
		if m, ok := config.ParseMode(v); ok {
			s.Mode = m
		} else {
			logger.Debug("unknown diff mode, using default",
				zap.String("value", v), zap.Stringer("default", s.Mode))
		}
	} else {
		fallback(logger, DiffMode, mode.Outcome)
	}

	ignoreWS := BoolParam(IgnoreWS, msg, preset)
	if v, ok := ignoreWS.Get(); ok {
		s.IgnoreWhitespace = v
	} else {
		fallback(logger, IgnoreWS, ignoreWS.Outcome)
	}

	caseSensitive := BoolParam(CaseSensitive, msg, preset)
	if v, ok := caseSensitive.Get(); ok {
		s.CaseSensitive = v
	} else {
		fallback(logger, CaseSensitive, caseSensitive.Outcome)
	}
	return s
}

func fallback(logger *zap.Logger, field string, o Outcome) {
	if o == Absent {
		return
	}
	logger.Debug("unusable parameter, using default", zap.String("field", field), zap.Stringer("outcome", o))
}
