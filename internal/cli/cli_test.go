package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sprawl/pkg/errors"
	"github.com/matzehuels/sprawl/pkg/observability"
)

func execute(t *testing.T, level log.Level, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	defer observability.Reset()

	var out, logs bytes.Buffer
	root := New(&logs, level).RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestRootPrintsImage(t *testing.T) {
	stdout, stderr, err := execute(t, LogInfo)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty at info level", stderr)
	}

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines)%2 != 0 {
		t.Fatalf("got %d lines, want an even number", len(lines))
	}
	width := utf8.RuneCountInString(lines[0])
	if width == 0 || width%4 != 0 {
		t.Fatalf("line width = %d, want a positive multiple of 4", width)
	}
	blanks := 0
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			t.Errorf("line %d width = %d, want %d", i, n, width)
		}
		if i%2 == 0 {
			blanks += strings.Count(line, "    ")
		}
	}
	if blanks != 129 {
		t.Errorf("blank cells = %d, want 129", blanks)
	}
}

func TestRootWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprawl.toml")
	cfg := "steps = 0\n[glyphs]\ntop = \"####\"\nbottom = \"====\"\nblank = \"....\"\n"
	if err := os.WriteFile(path, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, LogInfo, "--config", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "....\n....\n" {
		t.Errorf("stdout = %q, want %q", stdout, "....\n....\n")
	}
}

func TestRootInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprawl.toml")
	if err := os.WriteFile(path, []byte("steps = -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, LogInfo, "--config", path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Execute() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want nothing on error", stdout)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	if _, _, err := execute(t, LogInfo, "extra"); err == nil {
		t.Error("Execute() with positional args should fail")
	}
}

func TestRootVerbose(t *testing.T) {
	stdout, stderr, err := execute(t, LogDebug)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"annexed", "grew shape", "run=", "cells"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q", want)
		}
	}
	if strings.Contains(stdout, "annexed") {
		t.Error("logs leaked into stdout")
	}
}

func TestRootVersion(t *testing.T) {
	stdout, _, err := execute(t, LogInfo, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "sprawl version") {
		t.Errorf("stdout = %q, want version banner", stdout)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "invariant",
			err:  fmt.Errorf("render: %w", errors.New(errors.ErrCodeEmptySet, "bounding box of an empty set")),
			want: "invariant violation: bounding box of an empty set",
		},
		{
			name: "config",
			err:  errors.New(errors.ErrCodeInvalidConfig, "steps must be >= 0, got -1"),
			want: "steps must be >= 0, got -1",
		},
		{
			name: "plain",
			err:  stderrors.New(`unknown flag: --seed`),
			want: "unknown flag: --seed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
