// Command diff prints the diff of two files as computed by one of the benchmarked libraries.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/tools/txtar"
	"znkr.io/lcsdiff/internal/benchmarks"
)

type config struct {
	lib   string
	x, y  string
	txtar string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.lib, "lib", "lcsdiff", "library to use for diffing")
	flag.StringVar(&cfg.txtar, "txtar", "", "use testdata txtar file instead of two input files")
	flag.Parse()

	if cfg.txtar != "" {
		if flag.CommandLine.NArg() != 0 {
			fmt.Fprintf(os.Stderr, "error: usage: diff -txtar <file>\n")
			os.Exit(1)
		}
	} else {
		if flag.CommandLine.NArg() != 2 {
			fmt.Fprintf(os.Stderr, "error: usage: diff <x> <y>\n")
			os.Exit(1)
		}
		cfg.x = flag.CommandLine.Arg(0)
		cfg.y = flag.CommandLine.Arg(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	var lib *benchmarks.Impl
	for i := range benchmarks.Impls {
		if benchmarks.Impls[i].Name == cfg.lib {
			lib = &benchmarks.Impls[i]
		}
	}
	if lib == nil {
		return fmt.Errorf("lib not found %q", cfg.lib)
	}

	var x, y string
	if cfg.txtar != "" {
		ar, err := txtar.ParseFile(cfg.txtar)
		if err != nil {
			return err
		}
		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				x = string(f.Data)
			case "y":
				y = string(f.Data)
			}
		}
	} else {
		bx, err := os.ReadFile(cfg.x)
		if err != nil {
			return err
		}
		by, err := os.ReadFile(cfg.y)
		if err != nil {
			return err
		}
		x, y = string(bx), string(by)
	}

	edits := benchmarks.Edits(lib.Diff(x, y))
	fmt.Print(lib.Diff(x, y))
	fmt.Fprintf(os.Stderr, "%d edits, %d minimal\n", edits, benchmarks.MinEdits(x, y))
	return nil
}
