package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("docoutline %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestTocCommand(t *testing.T) {
	path := writeDoc(t, "guide.md", "# Guide\n## Install\n# FAQ\n")

	got := run(t, "toc", path, "--format", "markdown")
	want := "- [Guide](#heading-0)\n  - [Install](#heading-1)\n- [FAQ](#heading-2)\n"
	if got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestActiveCommand(t *testing.T) {
	path := writeDoc(t, "guide.md", "# Guide\n## Install\n### Linux\n")

	got := run(t, "active", path, "--tops", "0,300,600", "--scroll", "350", "--threshold", "100")
	if strings.TrimSpace(got) != "heading-1\tGuide > Install" {
		t.Errorf("unexpected output %q", got)
	}

	got = run(t, "active", path, "--tops", "0,300,600", "--scroll=-10", "--threshold", "100")
	if strings.TrimSpace(got) != "no active heading" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestParseTops(t *testing.T) {
	got, err := parseTops(" 0, 12.5,300 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[1] != 12.5 {
		t.Errorf("unexpected offsets %v", got)
	}
	if _, err := parseTops("1,x"); err == nil {
		t.Error("expected error for invalid offset")
	}
}
