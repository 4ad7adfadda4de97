// Package benchmarks compares lcsdiff with other diff libraries.
package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/lcsdiff"
	"znkr.io/lcsdiff/textdiff"
)

// Impl is a line diff implementation. Diff returns a unified diff or something close to it.
type Impl struct {
	Name string
	Diff func(x, y string) string
}

// Exact are the options that make lcsdiff compare lines the way all other libraries do.
var Exact = []lcsdiff.Option{lcsdiff.IgnoreWhitespace(false), lcsdiff.CaseSensitive(true)}

var Impls = []Impl{
	{
		Name: "lcsdiff",
		Diff: func(x, y string) string {
			return textdiff.Unified(x, y, Exact...)
		},
	},
	{
		Name: "lcsdiff-default",
		Diff: func(x, y string) string {
			return textdiff.Unified(x, y)
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y string) string {
			return string(gointernal.Diff("x", []byte(x), "y", []byte(y)))
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y string) string {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(x, y)
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			var sb strings.Builder
			for _, diff := range diffs {
				var prefix string
				switch diff.Type {
				case diffmatchpatch.DiffInsert:
					prefix = "+"
				case diffmatchpatch.DiffDelete:
					prefix = "-"
				case diffmatchpatch.DiffEqual:
					prefix = " "
				}
				for _, line := range strings.SplitAfter(diff.Text, "\n") {
					if line == "" {
						continue
					}
					sb.WriteString(prefix)
					sb.WriteString(line)
				}
			}
			return sb.String()
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y string) string {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			return godebug.Diff(x, y)
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y string) string {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			d := mb0lines{
				x: bytes.SplitAfter([]byte(x), []byte("\n")),
				y: bytes.SplitAfter([]byte(y), []byte("\n")),
			}
			changes := mb0.Diff(len(d.x), len(d.y), d)
			var buf bytes.Buffer
			a := 0
			for _, ch := range changes {
				for a < ch.A {
					buf.WriteString(" ")
					buf.Write(d.x[a])
					a++
				}
				for i := range ch.Del {
					buf.WriteString("-")
					buf.Write(d.x[ch.A+i])
					a++
				}
				for i := range ch.Ins {
					buf.WriteString("+")
					buf.Write(d.y[ch.B+i])
				}
			}
			for a < len(d.x) {
				buf.WriteString(" ")
				buf.Write(d.x[a])
				a++
			}
			return buf.String()
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y string) string {
			return udiff.Unified("x", "y", x, y)
		},
	},
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }

// Edits counts the lines of a diff that start with + or -, ignoring file headers.
func Edits(diff string) int {
	n := 0
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "--- ") || strings.HasPrefix(line, "+++ ") {
			continue
		}
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
			n++
		}
	}
	return n
}

// MinEdits returns the smallest number of inserted and deleted lines needed to turn x into y.
func MinEdits(x, y string) int {
	n := 0
	for _, r := range lcsdiff.Diff(x, y, Exact...).Edits {
		if r.Kind != lcsdiff.Match {
			n++
		}
	}
	return n
}
