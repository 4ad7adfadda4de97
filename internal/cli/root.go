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

// Package cli implements the lcsdiff command.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time.
var Version = "dev"

type sessionKey struct{}

// session is the state shared by all commands. It is created before a command runs.
type session struct {
	cfg    *Config
	logger *zap.Logger
}

func sessionFrom(ctx context.Context) *session {
	if e, ok := ctx.Value(sessionKey{}).(*session); ok {
		return e
	}
	panic("command session not initialized")
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "lcsdiff",
		Short: "Compare texts line by line, word by word, or character by character",
		Long: `lcsdiff compares two texts by their longest common subsequence.

Texts are split into lines, words, or characters, and every token of the
old text is reported as matched or removed, every token of the new text as
matched or added.

Settings are read from flags, LCSDIFF_* environment variables, and the config
file lcsdiff.yaml in this order of priority.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			logger.Debug("loaded config",
				zap.String("mode", cfg.Mode),
				zap.Bool("ignoreWhitespace", cfg.IgnoreWhitespace),
				zap.Bool("caseSensitive", cfg.CaseSensitive),
				zap.String("format", cfg.Format),
			)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, sessionKey{}, &session{cfg: cfg, logger: logger}))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if e, ok := cmd.Context().Value(sessionKey{}).(*session); ok {
				_ = e.logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./"+DefaultConfigFile+")")
	flags.StringP("mode", "m", "L", "split texts into lines (L), words (W), or characters (C)")
	flags.Bool("ignore-whitespace", true, "ignore leading, trailing, and repeated whitespace and blank lines")
	flags.Bool("case-sensitive", false, "compare tokens case sensitively")
	flags.IntP("context", "U", 3, "number of matching lines around every hunk")
	flags.StringP("format", "f", FormatText, "output format of diff (text|inline|json)")
	flags.Bool("color", false, "colorize text and inline output")
	flags.String("log-level", "info", "log level (debug|info|warn|error)")
	flags.String("log-format", "console", "log format (console|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"L", "W", "C"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{FormatText, FormatInline, FormatJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newMessageCmd())
	rootCmd.AddCommand(newGitDiffCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}
