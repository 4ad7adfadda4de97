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

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"znkr.io/lcsdiff"
	"znkr.io/lcsdiff/message"
	"znkr.io/lcsdiff/textdiff"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Compare two files",
		Long: `Compare the files OLD and NEW and print the differences.

Either file can be - to read it from stdin. The output format is selected with
--format: text prints a unified diff, inline marks removed tokens with [-...-]
and added tokens with {+...+}, and json prints the full result as a message.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-" && args[1] == "-" {
				return fmt.Errorf("only one of OLD and NEW can be read from stdin")
			}
			x, err := readInput(cmd, args[0])
			if err != nil {
				return fmt.Errorf("reading old file: %w", err)
			}
			y, err := readInput(cmd, args[1])
			if err != nil {
				return fmt.Errorf("reading new file: %w", err)
			}
			return writeDiff(cmd.OutOrStdout(), sessionFrom(cmd.Context()), x, y)
		},
	}
}

func writeDiff(w io.Writer, s *session, x, y string) error {
	p := message.NewProcessor(s.cfg.Preset(), message.WithLogger(s.logger))
	msg := message.Message{message.OldText: x, message.NewText: y}

	var out string
	switch s.cfg.Format {
	case FormatJSON:
		return message.Encode(w, p.Process(msg))
	case FormatInline:
		out = textdiff.Inline(x, y, s.textOptions(p.Settings(msg))...)
		if out != "" {
			out += "\n"
		}
	case FormatText:
		opts := append(s.textOptions(p.Settings(msg)), lcsdiff.Context(s.cfg.Context))
		out = textdiff.Unified(x, y, opts...)
	default:
		return fmt.Errorf("unknown format %q", s.cfg.Format)
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("writing diff: %w", err)
	}
	return nil
}

// textOptions returns the options shared by all text renderings.
func (s *session) textOptions(settings message.Settings) []lcsdiff.Option {
	opts := settings.Options()
	if s.cfg.Color {
		opts = append(opts, textdiff.Color())
	}
	return opts
}

// readInput reads the named file, or stdin if name is "-".
func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	}
	b, err := os.ReadFile(name)
	return string(b), err
}
