package main

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

// TestGetVersion tests the version resolution priority.
func TestGetVersion(t *testing.T) {
	t.Run("ldflags version wins", func(t *testing.T) {
		orig := version
		t.Cleanup(func() { version = orig })

		version = "1.2.3"
		if got := getVersion(); got != "1.2.3" {
			t.Errorf("getVersion() = %q, want 1.2.3", got)
		}
	})

	t.Run("falls back without ldflags", func(t *testing.T) {
		orig := version
		t.Cleanup(func() { version = orig })

		version = ""
		if got := getVersion(); got == "" {
			t.Error("expected non-empty fallback version")
		}
	})
}

// TestGetCommit tests the commit resolution priority.
func TestGetCommit(t *testing.T) {
	orig := commit
	t.Cleanup(func() { commit = orig })

	commit = "abcdef1"
	if got := getCommit(); got != "abcdef1" {
		t.Errorf("getCommit() = %q, want abcdef1", got)
	}

	commit = ""
	if got := getCommit(); got == "" {
		t.Error("expected non-empty fallback commit")
	}
}

// TestVersionCmd tests the version command output.
func TestVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.Run(cmd, nil)

	out := buf.String()
	if !strings.Contains(out, "localtap ") {
		t.Errorf("expected version line, got %q", out)
	}
	if !strings.Contains(out, "commit ") || !strings.Contains(out, "built ") {
		t.Errorf("expected commit and build fields, got %q", out)
	}
	if !strings.Contains(out, runtime.Version()) {
		t.Errorf("expected Go runtime version, got %q", out)
	}
}
