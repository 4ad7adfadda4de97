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

// Package unixpatch applies unified diffs with the patch(1) tool. It is used to check that
// rendered diffs are valid patches.
package unixpatch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Available reports whether the patch tool can be found.
func Available() bool {
	_, err := exec.LookPath("patch")
	return err == nil
}

// Apply applies hunks to orig and returns the patched text. The hunks are expected without file
// headers, these are added by Apply.
func Apply(orig, hunks string) (string, error) {
	// patch doesn't create an output file for an empty diff.
	if hunks == "" {
		return orig, nil
	}

	dir, err := os.MkdirTemp("", "unixpatch-*")
	if err != nil {
		return "", fmt.Errorf("creating temporary directory: %w", err)
	}
	defer os.RemoveAll(dir)

	patchfile := filepath.Join(dir, "patch")
	origfile := filepath.Join(dir, "orig")
	outfile := filepath.Join(dir, "out")

	if err := os.WriteFile(patchfile, []byte("--- orig\n+++ out\n"+hunks), 0o644); err != nil {
		return "", fmt.Errorf("writing patch file: %w", err)
	}
	if err := os.WriteFile(origfile, []byte(orig), 0o644); err != nil {
		return "", fmt.Errorf("writing orig file: %w", err)
	}

	cmd := exec.Command("patch", "-u", "-f", "-s", "-i", patchfile, "-o", outfile, origfile)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("running %s: %w\n%s", cmd, err, out)
	}

	out, err := os.ReadFile(outfile)
	if err != nil {
		return "", fmt.Errorf("reading patched file: %w", err)
	}
	return string(out), nil
}
