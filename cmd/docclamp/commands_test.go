package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/docclamp/internal/preview"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClampCmd_HTML(t *testing.T) {
	path := writeFile(t, "msg.html", "<p>The quick brown fox jumps</p>")
	out, err := run(t, "clamp", "--words", "3", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "<p>The quick brown…</p>" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestClampCmd_JSON(t *testing.T) {
	path := writeFile(t, "notes.md", "Hi\n\nthere")
	out, err := run(t, "clamp", "-w", "5", "-f", "json", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var pv preview.Preview
	if err := json.Unmarshal([]byte(out), &pv); err != nil {
		t.Fatalf("decode: %v (%s)", err, out)
	}
	if pv.Truncated || pv.Remaining != 3 {
		t.Errorf("expected untruncated with 3 left, got %+v", pv)
	}
}

func TestClampCmd_LongForm(t *testing.T) {
	path := writeFile(t, "a.txt", "one two\n\nthree")
	out, err := run(t, "clamp", "-w", "1", "--long", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected short and long lines, got %q", out)
	}
	if lines[0] != "<p>one…</p>" {
		t.Errorf("unexpected short form %q", lines[0])
	}
	if !strings.Contains(lines[1], "three") {
		t.Errorf("expected long form to include all content, got %q", lines[1])
	}
}

func TestCountCmd(t *testing.T) {
	path := writeFile(t, "a.txt", "one two\n\nthree")
	out, err := run(t, "count", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "3" {
		t.Errorf("expected 3, got %q", out)
	}
}

func TestClampCmd_Errors(t *testing.T) {
	path := writeFile(t, "a.txt", "words")
	tests := [][]string{
		{"clamp", "-w", "-2", path},
		{"clamp", "-f", "yaml", path},
		{"clamp", filepath.Join(t.TempDir(), "missing.txt")},
		{"clamp", writeFile(t, "a.exe", "x")},
		{"clamp"},
	}
	for _, args := range tests {
		if _, err := run(t, args...); err == nil {
			t.Errorf("args %v: expected error", args)
		}
	}
}
