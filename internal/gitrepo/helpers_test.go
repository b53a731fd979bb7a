package gitrepo

import (
	"gtc/internal/sh"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// initTemplateRepo creates a git repository with one commit holding files (relative path -> content).
func initTemplateRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	for path, content := range files {
		full := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	for _, command := range []sh.ShellCommand{
		"git init -q",
		"git add .",
		"git -c user.name=test -c user.email=test@test commit -q -m init",
	} {
		_, err := sh.ExecuteShellCommand(sh.DirectoryPath(dir), command)
		require.NoError(t, err, "run %q", command)
	}
	return dir
}
