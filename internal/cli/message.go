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
	"znkr.io/lcsdiff/message"
)

func newMessageCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "message",
		Short: "Process a JSON message",
		Long: `Read a JSON object, compare its oldText and newText fields, and print the
object with the added fields oldArray, newArray, and diffs.

The fields diffMode, ignoreWS, and caseSensitive of the message take priority
over the configured settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := sessionFrom(cmd.Context())

			var r io.Reader = cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return fmt.Errorf("opening input: %w", err)
				}
				defer f.Close()
				r = f
			}

			msg, err := message.Decode(r)
			if err != nil {
				return err
			}
			p := message.NewProcessor(s.cfg.Preset(), message.WithLogger(s.logger))
			return message.Encode(cmd.OutOrStdout(), p.Process(msg))
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "read the message from this file instead of stdin")
	return cmd
}
