package ext

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValue(t *testing.T) {
	if got := DefaultValue(0, 6); got != 6 {
		t.Errorf("expected fallback 6, got %d", got)
	}
	if got := DefaultValue(3, 6); got != 3 {
		t.Errorf("expected value 3, got %d", got)
	}
	if got := DefaultValue("", "TRASH"); got != "TRASH" {
		t.Errorf("expected fallback TRASH, got %q", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		value, low, high, expected int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.value, tt.low, tt.high); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.value, tt.low, tt.high, got, tt.expected)
		}
	}
}

func TestReplaceHomeDirWithTilde(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		t.Skip("no home directory")
	}
	got := ReplaceHomeDirWithTilde(filepath.Join(homeDir, "Template"))
	if got != "~"+string(filepath.Separator)+"Template" {
		t.Errorf("unexpected path %q", got)
	}
	if got := ReplaceHomeDirWithTilde("relative/path"); got != "relative/path" {
		t.Errorf("expected path to be untouched, got %q", got)
	}
}

func TestReplaceHomeDirWithTilde_RequiresSeparatorAfterHome(t *testing.T) {
	home := filepath.Join(string(filepath.Separator), "home", "bob")
	t.Setenv("HOME", home)

	tests := map[string]string{
		home:                             "~",
		filepath.Join(home, "x"):         "~" + string(filepath.Separator) + "x",
		filepath.Join(home+"2", "x"):     filepath.Join(home+"2", "x"),
		filepath.Join(home+"by", "logs"): filepath.Join(home+"by", "logs"),
	}
	for path, expected := range tests {
		if got := ReplaceHomeDirWithTilde(path); got != expected {
			t.Errorf("ReplaceHomeDirWithTilde(%q) = %q, expected %q", path, got, expected)
		}
	}
}

func TestIsWithin(t *testing.T) {
	tests := []struct {
		path, dir string
		expected  bool
	}{
		{"/work/TRASH/Template", "/work/TRASH", true},
		{"/work/TRASH/Template", "/work/TRASH/", true},
		{"/work/TRASH", "/work/TRASH", false},
		{"/work/TRASHY/Template", "/work/TRASH", false},
		{"/work", "/work/TRASH", false},
	}
	for _, tt := range tests {
		if got := IsWithin(filepath.FromSlash(tt.path), filepath.FromSlash(tt.dir)); got != tt.expected {
			t.Errorf("IsWithin(%q, %q) = %v, expected %v", tt.path, tt.dir, got, tt.expected)
		}
	}
}

func TestExecutableSibling(t *testing.T) {
	got := ExecutableSibling("Template")
	if filepath.Base(got) != "Template" {
		t.Errorf("expected Template as last element, got %q", got)
	}
}

func TestSiblingOf_InstalledBinary(t *testing.T) {
	tempDir := t.TempDir()
	executable := filepath.FromSlash("/opt/gtc/bin/gtc")

	got := siblingOf(executable, tempDir, "Template")

	if expected := filepath.FromSlash("/opt/gtc/bin/Template"); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestSiblingOf_TemporaryBuildFallsBackToWorkingDirectory(t *testing.T) {
	tempDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	executable := filepath.Join(tempDir, "go-build1234", "b001", "exe", "gtc")

	got := siblingOf(executable, tempDir, "Template")

	if got != "Template" {
		t.Errorf("expected relative Template for a go run binary, got %q", got)
	}
}
