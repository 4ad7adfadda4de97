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

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"znkr.io/lcsdiff"
	"znkr.io/lcsdiff/message"
	"znkr.io/lcsdiff/textdiff"
)

const devNull = "/dev/null"

func newGitDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "git-diff PATH OLD-FILE OLD-HEX OLD-MODE NEW-FILE NEW-HEX NEW-MODE",
		Short: "Act as an external diff driver for git",
		Long: `Print a unified diff in the format git expects from an external diff driver.

Use it with

    GIT_EXTERNAL_DIFF="lcsdiff git-diff" git diff`,
		Args: cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, oldFile, oldHex, newFile, newHex, newMode := args[0], args[1], args[2], args[4], args[5], args[6]

			x, err := readGitFile(cmd, oldFile)
			if err != nil {
				return fmt.Errorf("reading old file: %w", err)
			}
			y, err := readGitFile(cmd, newFile)
			if err != nil {
				return fmt.Errorf("reading new file: %w", err)
			}

			s := sessionFrom(cmd.Context())
			s.logger.Debug("git diff", zap.String("path", path))
			settings := message.NewProcessor(s.cfg.Preset(), message.WithLogger(s.logger)).Settings(nil)
			opts := append(s.textOptions(settings), lcsdiff.Context(s.cfg.Context))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "diff --git a/%s b/%s\n", path, path)
			fmt.Fprintf(w, "index %s..%s %s\n", abbrev(oldHex), abbrev(newHex), newMode)
			fmt.Fprintf(w, "--- a/%s\n", path)
			fmt.Fprintf(w, "+++ b/%s\n", path)
			if _, err := io.WriteString(w, textdiff.Unified(x, y, opts...)); err != nil {
				return fmt.Errorf("writing diff: %w", err)
			}
			return nil
		},
	}
}

func readGitFile(cmd *cobra.Command, name string) (string, error) {
	if name == devNull {
		return "", nil
	}
	return readInput(cmd, name)
}

func abbrev(hex string) string {
	if len(hex) > 10 {
		return hex[:10]
	}
	return hex
}
