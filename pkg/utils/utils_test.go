package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputManager_FilePath(t *testing.T) {
	base := t.TempDir()
	om := NewOutputManager(base)

	path, err := om.FilePath("run-1", "../../etc/report.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(base, "run-1", "report.csv"); path != want {
		t.Fatalf("expected %s, got %s", want, path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Fatalf("run directory not created: %v", err)
	}

	if _, err := om.FilePath("", "report.csv"); err == nil {
		t.Fatalf("expected error for empty run ID")
	}
}

func TestFormat(t *testing.T) {
	tests := map[string]string{
		"report.json": FormatJSON,
		"REPORT.JSON": FormatJSON,
		"report.csv":  FormatCSV,
		"report":      FormatCSV,
		"report.txt":  FormatCSV,
	}
	for name, want := range tests {
		if got := Format(name); got != want {
			t.Errorf("Format(%q) = %s, want %s", name, got, want)
		}
	}
}

func TestTitle(t *testing.T) {
	if got := Title("new york  city"); got != "New York City" {
		t.Fatalf("got %q", got)
	}
	if got := Title(""); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestParseIntDefault(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 5},
		{" 12 ", 12},
		{"-3", -3},
		{"x", 5},
	}
	for _, tt := range tests {
		if got := ParseIntDefault(tt.in, 5); got != tt.want {
			t.Errorf("ParseIntDefault(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
