package gitrepo

import (
	"context"
	"errors"
	"gtc/internal/sh"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	command sh.Command
	result  sh.Result
	err     error
}

func (r *recordingRunner) run(_ context.Context, command sh.Command) (sh.Result, error) {
	r.command = command
	return r.result, r.err
}

func TestExecCloner_PassesNonInteractiveEnvPerInvocation(t *testing.T) {
	runner := &recordingRunner{}
	cloner := &ExecCloner{GitBinary: "git", Runner: runner.run}

	outcome := cloner.Clone(context.Background(), "https://github.com/org/repo.git", "TRASH/repo", CloneOptions{NonInteractive: true})

	require.False(t, outcome.Failed())
	assert.Equal(t, "git", runner.command.Name)
	assert.Equal(t, []string{"clone", "--", "https://github.com/org/repo.git", "TRASH/repo"}, runner.command.Args)
	assert.Contains(t, runner.command.Env, "GIT_TERMINAL_PROMPT=0")
}

func TestExecCloner_InteractiveLeavesEnvAlone(t *testing.T) {
	runner := &recordingRunner{}
	cloner := &ExecCloner{GitBinary: "git", Runner: runner.run}

	cloner.Clone(context.Background(), "https://github.com/org/repo.git", "TRASH/repo", CloneOptions{Depth: 1})

	assert.Empty(t, runner.command.Env)
	assert.Equal(t, []string{"clone", "--depth", "1", "--", "https://github.com/org/repo.git", "TRASH/repo"}, runner.command.Args)
}

func TestExecCloner_CredentialMarkerFailsDespiteZeroExit(t *testing.T) {
	runner := &recordingRunner{
		result: sh.Result{ExitCode: 0, Stderr: "Username for 'https://github.com': "},
	}
	cloner := &ExecCloner{GitBinary: "git", Runner: runner.run}

	outcome := cloner.Clone(context.Background(), "https://github.com/org/private.git", "TRASH/private", CloneOptions{NonInteractive: true})

	require.True(t, outcome.Failed())
	var cloneErr *CloneError
	require.True(t, errors.As(outcome.Err, &cloneErr))
	assert.True(t, cloneErr.AuthRequired)
	assert.Equal(t, Reference("https://github.com/org/private.git"), outcome.Reference)
}

func TestExecCloner_NonexistentRepositoryFails(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	root := t.TempDir()
	missing := filepath.Join(root, "does-not-exist")

	outcome := NewExecCloner().Clone(context.Background(), Reference(missing), filepath.Join(root, "dest"), CloneOptions{NonInteractive: true})

	require.True(t, outcome.Failed())
	var cloneErr *CloneError
	require.True(t, errors.As(outcome.Err, &cloneErr))
	assert.NotZero(t, cloneErr.ExitCode)
	assert.False(t, cloneErr.AuthRequired)
}

func TestExecCloner_ClonesLocalRepository(t *testing.T) {
	source := initTemplateRepo(t, map[string]string{"http/cve.yaml": "id: cve"})
	destination := filepath.Join(t.TempDir(), "clone")

	outcome := NewExecCloner().Clone(context.Background(), Reference(source), destination, CloneOptions{NonInteractive: true})

	require.NoError(t, outcome.Err)
	assert.FileExists(t, filepath.Join(destination, "http", "cve.yaml"))
}
