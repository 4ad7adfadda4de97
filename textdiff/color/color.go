// Package color configures the ANSI colors of [textdiff.Unified] and [textdiff.Inline] output.
//
// Colors are specified as [Select Graphic Rendition parameters]. For example, the code below
// renders removed tokens in bold red:
//
//	Deletes(1, 31)
//
// This is equivalent to the raw ANSI sequence \033[1;31m. Calling an option without parameters
// disables coloring for that part of the output.
//
// It's the responsibility of the caller to ensure that the parameters are supported by the
// terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
// [textdiff.Unified]: https://pkg.go.dev/znkr.io/lcsdiff/textdiff#Unified
// [textdiff.Inline]: https://pkg.go.dev/znkr.io/lcsdiff/textdiff#Inline
package color

import (
	"strconv"
	"strings"

	"znkr.io/lcsdiff/internal/config"
)

// An Option overrides one of the default colors.
type Option func(*config.ColorConfig)

// HunkHeaders colors hunk headers, the "@@ ... @@" lines of unified output.
func HunkHeaders(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.HunkHeader = code
	}
}

// Matches colors matching tokens.
func Matches(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Match = code
	}
}

// Deletes colors removed tokens.
func Deletes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Delete = code
	}
}

// Inserts colors added tokens.
func Inserts(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Insert = code
	}
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('m')
	return sb.String()
}
