package ext

import (
	"os"
	"path/filepath"
	"strings"
)

// ReplaceHomeDirWithTilde replaces the home directory in an absolute path with ~
func ReplaceHomeDirWithTilde(path string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return path
	}

	if path == homeDir || IsWithin(path, homeDir) {
		return "~" + strings.TrimPrefix(path, homeDir)
	}
	return path
}

// IsWithin reports whether path lies strictly below dir. Both are compared as given.
func IsWithin(path, dir string) bool {
	return strings.HasPrefix(path, strings.TrimSuffix(dir, string(filepath.Separator))+string(filepath.Separator))
}

// ExecutableSibling resolves name relative to the directory holding the running binary.
// Falls back to the current directory when the executable cannot be located or lives in a
// temporary build directory, as it does under `go run`.
func ExecutableSibling(name string) string {
	executable, err := os.Executable()
	if err != nil {
		return name
	}
	if resolved, err := filepath.EvalSymlinks(executable); err == nil {
		executable = resolved
	}
	return siblingOf(executable, os.TempDir(), name)
}

func siblingOf(executable, tempDir, name string) string {
	if resolved, err := filepath.EvalSymlinks(tempDir); err == nil {
		tempDir = resolved
	}
	if IsWithin(executable, filepath.Clean(tempDir)) {
		return name
	}
	return filepath.Join(filepath.Dir(executable), name)
}
