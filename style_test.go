// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package decint

import (
	"bytes"
	"flag"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ghemawat/stream"
)

var (
	flagStyle = flag.Bool("style", false, "enable style test")
)

const pkgScope = "./..."

// lint runs name in dir and reports every line it prints to stdout through
// report. A non-zero exit is only fatal when the tool also wrote to stderr.
func lint(t *testing.T, dir string, report func(string), name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		t.Fatal(err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		t.Skipf("%s: %v", name, err)
	}
	if err := stream.ForEach(stream.ReadLines(stdout), report); err != nil {
		t.Error(err)
	}
	if err := cmd.Wait(); err != nil {
		if out := stderr.String(); len(out) > 0 {
			t.Fatalf("err=%s, stderr=%s", err, out)
		}
	}
}

func TestStyle(t *testing.T) {
	if !*flagStyle {
		t.Skip("enable with -style")
	}

	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("TestMisspell", func(t *testing.T) {
		t.Parallel()
		lint(t, dir, func(s string) { t.Error(s) }, "misspell", "-i", "arithemtic", ".")
	})

	t.Run("TestGofmtSimplify", func(t *testing.T) {
		t.Parallel()
		lint(t, dir, func(s string) { t.Error(s) }, "gofmt", "-s", "-l", ".")
	})

	t.Run("TestVet", func(t *testing.T) {
		t.Parallel()
		cmd := exec.Command("go", "vet", pkgScope)
		cmd.Dir = dir
		var b bytes.Buffer
		cmd.Stdout = &b
		cmd.Stderr = &b
		switch err := cmd.Run(); err.(type) {
		case nil:
		case *exec.ExitError:
			// vet reports findings with a non-zero exit.
		default:
			t.Fatal(err)
		}
		if err := stream.ForEach(stream.Sequence(
			stream.Items(strings.Split(b.String(), "\n")...),
			stream.Grep(`\S`),
			stream.GrepNot(`^#`),
		), func(s string) {
			t.Error(s)
		}); err != nil {
			t.Error(err)
		}
	})

	t.Run("TestStaticcheck", func(t *testing.T) {
		t.Parallel()
		lint(t, dir, func(s string) {
			t.Error(filepath.ToSlash(s))
		}, "staticcheck", pkgScope)
	})
}
